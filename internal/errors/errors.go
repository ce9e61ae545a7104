// Package errors defines the structured error envelope the API returns and
// the handler that maps domain failures onto it.
package errors

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

// APIError represents a structured API error response.
type APIError struct {
	StatusCode int    `json:"status_code"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Render implements render.Renderer for chi/render.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates a new APIError.
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NewWithDetails creates a new APIError with additional details.
func NewWithDetails(statusCode int, errorCode, message string, details any) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// Predefined errors for common scenarios.
var (
	ErrInvalidRequest = New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	ErrNotFound       = New(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrInternalServer = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")

	ErrEmptySheet   = New(http.StatusUnprocessableEntity, "EMPTY_SHEET", "A planilha enviada está vazia")
	ErrSchema       = New(http.StatusUnprocessableEntity, "SCHEMA_INVALID", "A planilha não contém as colunas obrigatórias")
	ErrIngestFailed = New(http.StatusUnprocessableEntity, "INGEST_FAILED", "Não foi possível processar a planilha")
	ErrReadFailed   = New(http.StatusBadRequest, "READ_FAILED", "Não foi possível ler o arquivo enviado")
	ErrStoreFailed  = New(http.StatusInternalServerError, "STORE_FAILED", "Não foi possível salvar os dados")
)

// ValidationError carries field-level validation details.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrValidation creates a validation error with field details.
func ErrValidation(field, message string) *APIError {
	return NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", ValidationError{
		Field:   field,
		Message: message,
	})
}

// Summarize reduces an error message to the single line shown to the user:
// the text after the last colon, trimmed. A message with no colon passes
// through whole. This mirrors how the dashboard has always displayed upload
// failures, lossy as it is.
func Summarize(message string) string {
	if i := strings.LastIndex(message, ":"); i >= 0 {
		return strings.TrimSpace(message[i+1:])
	}
	return strings.TrimSpace(message)
}
