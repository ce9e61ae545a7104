package errors

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/lzamboni86/dp-dashboardpos/internal/ingest"
	"github.com/lzamboni86/dp-dashboardpos/internal/services"
)

// ErrorHandler provides centralized error handling: full detail goes to the
// log, a summarized envelope goes to the client.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{
		logger: logger.With(slog.String("component", "error_handler")),
	}
}

// HandleError logs err with request context and renders its API envelope.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("remote_addr", r.RemoteAddr),
	)

	render.Render(w, r, h.ToAPIError(err))
}

// ToAPIError maps any error onto the API envelope. Ingestion failures keep
// their full message in the details and a user-facing summary in the
// message; everything unrecognized becomes a 500.
func (h *ErrorHandler) ToAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, ingest.ErrEmptySheet):
		return NewWithDetails(ErrEmptySheet.StatusCode, ErrEmptySheet.ErrorCode, Summarize(err.Error()), err.Error())
	case isSchemaError(err):
		return NewWithDetails(ErrSchema.StatusCode, ErrSchema.ErrorCode, Summarize(err.Error()), err.Error())
	case isIngestError(err):
		return NewWithDetails(ErrIngestFailed.StatusCode, ErrIngestFailed.ErrorCode, Summarize(err.Error()), err.Error())
	case isStoreError(err):
		return NewWithDetails(ErrStoreFailed.StatusCode, ErrStoreFailed.ErrorCode, Summarize(err.Error()), err.Error())
	default:
		return NewWithDetails(ErrInternalServer.StatusCode, ErrInternalServer.ErrorCode, Summarize(err.Error()), err.Error())
	}
}

func isSchemaError(err error) bool {
	var schemaErr *ingest.SchemaError
	return errors.As(err, &schemaErr)
}

func isIngestError(err error) bool {
	var ingestErr *ingest.IngestError
	return errors.As(err, &ingestErr)
}

func isStoreError(err error) bool {
	var storeErr *services.StoreError
	return errors.As(err, &storeErr)
}
