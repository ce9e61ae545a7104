package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/lzamboni86/dp-dashboardpos/pkg/contracts"
)

// HealthHandler reports process liveness and dataset status.
type HealthHandler struct {
	service DatasetServiceInterface
	logger  *slog.Logger
	started time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(service DatasetServiceInterface, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		service: service,
		logger:  logger.With(slog.String("component", "health_handler")),
		started: time.Now(),
	}
}

// HealthCheck handles GET /api/healthz.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{
		"status":       "ok",
		"version":      contracts.Version,
		"dataset_size": h.service.Size(),
		"uptime":       time.Since(h.started).String(),
	})
}
