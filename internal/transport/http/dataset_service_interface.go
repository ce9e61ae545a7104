package http

import (
	"context"

	"github.com/lzamboni86/dp-dashboardpos/pkg/contracts/domain"
)

// DatasetServiceInterface is what the handlers need from the dataset
// service. Kept as an interface so handler tests can substitute a mock.
type DatasetServiceInterface interface {
	IngestUpload(ctx context.Context, data []byte) ([]domain.Record, error)
	Records(ctx context.Context) []domain.Record
	ChartCounts(ctx context.Context, field string) *domain.CountTable
	StatusCards(ctx context.Context) *domain.CountTable
	Size() int
}
