package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySheet reports a worksheet with no rows at all, not even a header
// row. It aborts ingestion before schema validation runs.
var ErrEmptySheet = errors.New("sheet contains no rows")

// SchemaError reports required columns missing from the header row.
// Missing keeps the canonical column ordering regardless of the order the
// columns appear (or fail to appear) in the upload.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// IngestError wraps a decode or mapping failure so that callers never see a
// raw spreadsheet-library error. The original cause stays reachable through
// Unwrap.
type IngestError struct {
	Err error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("failed to ingest workbook: %v", e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}
