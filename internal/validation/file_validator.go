// Package validation checks uploaded files before they reach the
// ingestion pipeline.
package validation

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// xlsxMagic is the ZIP local-file-header signature. Every .xlsx workbook
// is a ZIP container, so the first four bytes must match.
var xlsxMagic = []byte{'P', 'K', 0x03, 0x04}

// UploadValidator screens uploaded workbooks by name and raw content so
// obviously broken files are rejected before the decoder runs.
type UploadValidator struct {
	logger       *slog.Logger
	maxFileBytes int64
}

// NewUploadValidator creates an upload validator. maxFileBytes of zero
// disables the size check.
func NewUploadValidator(maxFileBytes int64, logger *slog.Logger) *UploadValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadValidator{
		logger:       logger.With(slog.String("component", "upload_validator")),
		maxFileBytes: maxFileBytes,
	}
}

// ValidateWorkbook checks the filename and bytes of an uploaded workbook.
// It verifies the file is non-empty, within the size limit, carries a
// spreadsheet extension, is not an editor temp file, and starts with the
// ZIP signature that every .xlsx file has.
func (v *UploadValidator) ValidateWorkbook(filename string, data []byte) error {
	if len(data) == 0 {
		v.logger.Warn("empty upload rejected", slog.String("filename", filename))
		return fmt.Errorf("uploaded file %s is empty", filename)
	}

	if v.maxFileBytes > 0 && int64(len(data)) > v.maxFileBytes {
		v.logger.Warn("oversized upload rejected",
			slog.String("filename", filename),
			slog.Int("bytes", len(data)),
			slog.Int64("limit", v.maxFileBytes))
		return fmt.Errorf("uploaded file %s exceeds the %d byte limit", filename, v.maxFileBytes)
	}

	base := filepath.Base(filename)
	if strings.HasPrefix(base, "~$") {
		v.logger.Warn("temporary workbook rejected", slog.String("filename", filename))
		return fmt.Errorf("file %s is a temporary workbook copy", base)
	}

	ext := strings.ToLower(filepath.Ext(base))
	if ext != ".xlsx" && ext != ".xlsm" {
		v.logger.Warn("unsupported extension rejected",
			slog.String("filename", filename),
			slog.String("extension", ext))
		return fmt.Errorf("file %s is not a spreadsheet (extension: %s)", base, ext)
	}

	if !bytes.HasPrefix(data, xlsxMagic) {
		v.logger.Warn("non-workbook content rejected", slog.String("filename", filename))
		return fmt.Errorf("file %s does not look like a workbook", base)
	}

	v.logger.Debug("upload validated",
		slog.String("filename", filename),
		slog.Int("bytes", len(data)))
	return nil
}
