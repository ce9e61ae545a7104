package ingest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lzamboni86/dp-dashboardpos/pkg/contracts/domain"
)

// Ingestor decodes uploaded workbook bytes and runs the validation and
// mapping stages over the first worksheet.
type Ingestor struct {
	logger *slog.Logger
}

// NewIngestor creates an ingestor with the given logger.
func NewIngestor(logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{
		logger: logger.With(slog.String("component", "ingestor")),
	}
}

// Ingest decodes data as a spreadsheet workbook and returns one normalized
// record per data row, in source row order.
//
// Only the first sheet (by position, never by name) is read. Cells are read
// raw so date cells stay spreadsheet serial numbers for CoerceDate. The
// literal first row is the header row; there is no header inference.
//
// Failure modes: ErrEmptySheet when the sheet has no rows at all, a
// *SchemaError when required columns are missing, and an *IngestError
// wrapping anything the decoder reports.
func (in *Ingestor) Ingest(ctx context.Context, data []byte) ([]domain.Record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &IngestError{Err: fmt.Errorf("decode workbook: %w", err)}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &IngestError{Err: fmt.Errorf("read sheet %q: %w", sheet, err)}
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	if err := ValidateHeaders(headers); err != nil {
		return nil, err
	}

	idx := indexColumns(headers)
	records := make([]domain.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, idx.mapRow(row))
	}

	in.logger.InfoContext(ctx, "workbook ingested",
		slog.String("sheet", sheet),
		slog.Int("rows", len(records)))

	return records, nil
}
