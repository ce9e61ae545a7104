// Package http contains the chi handlers behind /api.
package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "github.com/lzamboni86/dp-dashboardpos/internal/errors"
	"github.com/lzamboni86/dp-dashboardpos/internal/validation"
	"github.com/lzamboni86/dp-dashboardpos/pkg/contracts/domain"
)

// DataHandler handles dataset HTTP requests: upload, record listing, and
// the aggregation feeds for cards and charts.
type DataHandler struct {
	service      DatasetServiceInterface
	validator    *validation.UploadValidator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	maxFileBytes int64
}

// NewDataHandler creates a new data handler.
func NewDataHandler(service DatasetServiceInterface, maxFileBytes int64, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DataHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DataHandler{
		service:      service,
		validator:    validation.NewUploadValidator(maxFileBytes, logger),
		logger:       logger.With(slog.String("component", "data_handler")),
		errorHandler: errorHandler,
		maxFileBytes: maxFileBytes,
	}
}

// Routes returns the dataset routes.
func (h *DataHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/upload", h.Upload)
	r.Get("/records", h.GetRecords)
	r.Get("/summary", h.GetSummary)
	r.Get("/charts/{field}", h.GetChart)

	return r
}

// Upload handles POST /api/data/upload. It expects a multipart form with
// the workbook under "file", runs the ingestion pipeline, and adopts the
// new dataset only when the whole pipeline succeeds.
func (h *DataHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			apierrors.ErrReadFailed.StatusCode,
			apierrors.ErrReadFailed.ErrorCode,
			apierrors.ErrReadFailed.Message,
			err.Error(),
		))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			apierrors.ErrReadFailed.StatusCode,
			apierrors.ErrReadFailed.ErrorCode,
			apierrors.ErrReadFailed.Message,
			err.Error(),
		))
		return
	}

	h.logger.InfoContext(r.Context(), "upload received",
		slog.String("filename", header.Filename),
		slog.Int("bytes", len(data)))

	if err := h.validator.ValidateWorkbook(header.Filename, data); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", err.Error()))
		return
	}

	records, err := h.service.IngestUpload(r.Context(), data)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]any{
		"success": true,
		"records": len(records),
	})
}

// GetRecords handles GET /api/data/records and returns the current dataset
// in source order.
func (h *DataHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	records := h.service.Records(r.Context())
	render.JSON(w, r, map[string]any{
		"records": records,
		"count":   len(records),
	})
}

// Card is one dashboard summary card.
type Card struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// GetSummary handles GET /api/data/summary: status counts for the cards,
// case-insensitive grouping, in first-seen order. Card labels are the
// grouping key with its first rune uppercased.
func (h *DataHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	table := h.service.StatusCards(r.Context())

	cards := make([]Card, 0, table.Len())
	for _, key := range table.Keys() {
		cards = append(cards, Card{
			Key:   key,
			Label: capitalize(key),
			Count: table.Get(key),
		})
	}

	render.JSON(w, r, map[string]any{
		"cards": cards,
		"total": table.Total(),
	})
}

// GetChart handles GET /api/data/charts/{field}: case-sensitive counts for
// one of the text fields, in first-seen order.
func (h *DataHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")
	if _, ok := (domain.Record{}).TextField(field); !ok {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("field",
			fmt.Sprintf("unknown chart field: %s", field)))
		return
	}

	table := h.service.ChartCounts(r.Context(), field)
	render.JSON(w, r, map[string]any{
		"field":  field,
		"counts": table,
		"total":  table.Total(),
	})
}

// capitalize uppercases the first rune of s, matching how the dashboard has
// always titled its cards.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
