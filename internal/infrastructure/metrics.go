package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dashboard metrics, registered on the default Prometheus registry and
// served from /metrics.
var (
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dpdash",
		Name:      "uploads_total",
		Help:      "Spreadsheet uploads by outcome (accepted, rejected, store_failed).",
	}, []string{"outcome"})

	recordsIngestedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dpdash",
		Name:      "records_ingested_total",
		Help:      "Normalized records adopted into the dataset across all uploads.",
	})

	datasetSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "dpdash",
		Name:      "dataset_size",
		Help:      "Number of records in the current dataset.",
	})
)

// ObserveUpload records the outcome of one upload attempt.
func ObserveUpload(outcome string) {
	uploadsTotal.WithLabelValues(outcome).Inc()
}

// AddRecordsIngested adds n to the total of adopted records.
func AddRecordsIngested(n int) {
	recordsIngestedTotal.Add(float64(n))
}

// SetDatasetSize updates the current dataset size gauge.
func SetDatasetSize(n int) {
	datasetSize.Set(float64(n))
}
