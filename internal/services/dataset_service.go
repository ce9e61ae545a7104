package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lzamboni86/dp-dashboardpos/internal/analytics"
	"github.com/lzamboni86/dp-dashboardpos/internal/infrastructure"
	"github.com/lzamboni86/dp-dashboardpos/internal/ingest"
	"github.com/lzamboni86/dp-dashboardpos/pkg/contracts/domain"
)

// DefaultMaxRecords caps how many records one upload may persist. Anything
// past the cap is dropped, keeping the first rows in source order.
const DefaultMaxRecords = 5000

// StoreError reports a failure persisting an accepted dataset. The upload is
// rejected and the prior dataset stays current.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("persist dataset: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// DatasetStore is the persistence surface the service needs: one named
// dataset, replaced wholesale and read back verbatim.
type DatasetStore interface {
	Replace(ctx context.Context, records []domain.Record) error
	Load(ctx context.Context) ([]domain.Record, error)
}

// RefreshNotifier is told when the current dataset has been replaced, so
// open dashboards can re-render.
type RefreshNotifier interface {
	NotifyDataRefresh(count int)
}

// DatasetService owns the current dataset. It is empty at startup,
// optionally primed from the store, then replaced wholesale on each
// successful upload. A failed upload leaves both the in-memory dataset and
// the stored one untouched.
type DatasetService struct {
	ingestor   *ingest.Ingestor
	store      DatasetStore
	notifier   RefreshNotifier
	logger     *slog.Logger
	maxRecords int

	mu      sync.RWMutex
	current []domain.Record
}

// NewDatasetService wires a dataset service. notifier may be nil when no
// push channel exists (tests, CLI use). maxRecords <= 0 selects
// DefaultMaxRecords.
func NewDatasetService(store DatasetStore, notifier RefreshNotifier, maxRecords int, logger *slog.Logger) *DatasetService {
	if logger == nil {
		logger = slog.Default()
	}
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}
	return &DatasetService{
		ingestor:   ingest.NewIngestor(logger),
		store:      store,
		notifier:   notifier,
		logger:     logger.With(slog.String("component", "dataset_service")),
		maxRecords: maxRecords,
		current:    []domain.Record{},
	}
}

// LoadInitial primes the current dataset from the store. Read failures are
// swallowed apart from a log line: the dashboard starts empty rather than
// refusing to start over a bad read.
func (s *DatasetService) LoadInitial(ctx context.Context) {
	records, err := s.store.Load(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "could not load saved dataset, starting empty",
			slog.String("error", err.Error()))
		return
	}

	s.mu.Lock()
	s.current = records
	s.mu.Unlock()

	infrastructure.SetDatasetSize(len(records))
	s.logger.InfoContext(ctx, "dataset loaded from store", slog.Int("records", len(records)))
}

// IngestUpload runs the full upload pipeline: decode and normalize the
// workbook, truncate to the record cap, persist, and only then adopt the
// new dataset and notify listeners. Any failure along the way leaves the
// prior dataset in place.
func (s *DatasetService) IngestUpload(ctx context.Context, data []byte) ([]domain.Record, error) {
	records, err := s.ingestor.Ingest(ctx, data)
	if err != nil {
		infrastructure.ObserveUpload("rejected")
		return nil, err
	}

	if len(records) > s.maxRecords {
		s.logger.WarnContext(ctx, "dataset truncated to record cap",
			slog.Int("rows", len(records)),
			slog.Int("cap", s.maxRecords))
		records = records[:s.maxRecords]
	}

	if err := s.store.Replace(ctx, records); err != nil {
		infrastructure.ObserveUpload("store_failed")
		return nil, &StoreError{Err: err}
	}

	s.mu.Lock()
	s.current = records
	s.mu.Unlock()

	infrastructure.ObserveUpload("accepted")
	infrastructure.AddRecordsIngested(len(records))
	infrastructure.SetDatasetSize(len(records))

	if s.notifier != nil {
		s.notifier.NotifyDataRefresh(len(records))
	}

	s.logger.InfoContext(ctx, "dataset replaced", slog.Int("records", len(records)))
	return records, nil
}

// Records returns a copy of the current dataset in source order.
func (s *DatasetService) Records(ctx context.Context) []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Record, len(s.current))
	copy(out, s.current)
	return out
}

// Size returns the number of records in the current dataset.
func (s *DatasetService) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.current)
}

// ChartCounts aggregates the current dataset by one of the text fields for
// the bar charts: trimmed, case-sensitive keys.
func (s *DatasetService) ChartCounts(ctx context.Context, field string) *domain.CountTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.CountByField(s.current, field)
}

// StatusCards aggregates the current dataset by status for the summary
// cards: trimmed, case-insensitive keys.
func (s *DatasetService) StatusCards(ctx context.Context) *domain.CountTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.StatusSummary(s.current)
}
