package ingest

import (
	"github.com/lzamboni86/dp-dashboardpos/pkg/contracts/domain"
)

// ValidateHeaders checks that every required column name appears in the
// header row. Matching is exact: case-sensitive, no fuzzy matching, any
// column order. Extra columns are ignored. Headers are expected to be
// trimmed already, with blank cells mapped to the empty string.
//
// On failure the returned SchemaError lists the missing names in canonical
// column order, independent of upload order.
func ValidateHeaders(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, col := range domain.RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
