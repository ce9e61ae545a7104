package ingest

import (
	"time"

	"github.com/lzamboni86/dp-dashboardpos/pkg/contracts/domain"
)

// columnIndex locates each required column in the header row. Built once per
// sheet after validation, so every lookup is guaranteed to hit.
type columnIndex map[string]int

func indexColumns(headers []string) columnIndex {
	idx := make(columnIndex, len(domain.RequiredColumns))
	for i, h := range headers {
		if _, seen := idx[h]; !seen {
			idx[h] = i
		}
	}
	return idx
}

// cell reads the value of a column from a data row. Rows shorter than the
// header row are legal; absent cells read as the empty string.
func (idx columnIndex) cell(row []string, column string) string {
	i, ok := idx[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// date reads a column and coerces it through CoerceDate. An unparseable
// value maps to nil rather than an error.
func (idx columnIndex) date(row []string, column string) *time.Time {
	raw := idx.cell(row, column)
	if raw == "" {
		return nil
	}
	return CoerceDate(raw)
}

// MapRow projects one raw data row onto the fixed record shape using header
// positions resolved against headers. It never fails: text cells fall back
// to the empty string and date cells to nil.
func MapRow(headers []string, row []string) domain.Record {
	return indexColumns(headers).mapRow(row)
}

func (idx columnIndex) mapRow(row []string) domain.Record {
	return domain.Record{
		Region:     idx.cell(row, domain.ColumnRegion),
		Stage:      idx.cell(row, domain.ColumnStage),
		Product:    idx.cell(row, domain.ColumnProduct),
		PONumber:   idx.cell(row, domain.ColumnPONumber),
		CreatedAt:  idx.date(row, domain.ColumnCreatedAt),
		Status:     idx.cell(row, domain.ColumnStatus),
		DueDate:    idx.date(row, domain.ColumnDueDate),
		Supplier:   idx.cell(row, domain.ColumnSupplier),
		Tracking:   idx.cell(row, domain.ColumnTracking),
		LastUpdate: idx.date(row, domain.ColumnLastUpdate),
	}
}
