// Package analytics computes the frequency tables behind the dashboard's
// summary cards and bar charts. Tables are cheap and recomputed from the
// current dataset on every request; nothing here is cached or persisted.
package analytics

import (
	"strings"

	"github.com/lzamboni86/dp-dashboardpos/pkg/contracts/domain"
)

// Sentinel keys for records whose grouping field is empty. The chart and
// card paths intentionally use different sentinels and different key
// normalization; the dashboard has always rendered them that way and the
// two must not be unified.
const (
	SentinelNotInformed = "Não Informado"
	SentinelUnknown     = "desconhecido"
)

// CountByField groups records by the trimmed value of one of the text
// fields, preserving case. Empty values group under SentinelNotInformed.
// Key order is first-seen order, which fixes bar order on the charts.
// An unknown field name yields an empty table.
func CountByField(records []domain.Record, field string) *domain.CountTable {
	table := domain.NewCountTable()
	if _, ok := (domain.Record{}).TextField(field); !ok {
		return table
	}
	for _, rec := range records {
		value, _ := rec.TextField(field)
		key := strings.TrimSpace(value)
		if key == "" {
			key = SentinelNotInformed
		}
		table.Add(key)
	}
	return table
}

// StatusSummary groups records by status for the summary cards, trimmed and
// lowercased so "Open" and " open " land on the same card. Empty statuses
// group under SentinelUnknown.
func StatusSummary(records []domain.Record) *domain.CountTable {
	table := domain.NewCountTable()
	for _, rec := range records {
		key := strings.ToLower(strings.TrimSpace(rec.Status))
		if key == "" {
			key = SentinelUnknown
		}
		table.Add(key)
	}
	return table
}
