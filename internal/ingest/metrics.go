package ingest

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeInserted  = "inserted"
	outcomeDuplicate = "duplicate"
	outcomeMalformed = "malformed"
	outcomeRejected  = "rejected"

	statusSucceeded = "succeeded"
	statusFailed    = "failed"
)

// Metrics exposes ingestion counters. A nil registerer leaves them unregistered.
type Metrics struct {
	records      *prometheus.CounterVec
	files        *prometheus.CounterVec
	fileDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		records: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledgerload_ingest_records_total",
			Help: "Shard lines processed, by entity kind and outcome.",
		}, []string{"kind", "outcome"}),
		files: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledgerload_ingest_files_total",
			Help: "Shard files processed, by entity kind and status.",
		}, []string{"kind", "status"}),
		fileDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledgerload_ingest_file_duration_seconds",
			Help:    "Time spent ingesting one shard file.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"kind", "status"}),
	}
}

func (m *Metrics) observeRecords(kind Kind, stats FileStats) {
	k := string(kind)
	m.records.WithLabelValues(k, outcomeInserted).Add(float64(stats.Inserted))
	m.records.WithLabelValues(k, outcomeDuplicate).Add(float64(stats.Duplicates()))
	m.records.WithLabelValues(k, outcomeMalformed).Add(float64(stats.Malformed))
	m.records.WithLabelValues(k, outcomeRejected).Add(float64(stats.Rejected))
}

func (m *Metrics) observeFile(kind Kind, err error, elapsed time.Duration) {
	status := statusSucceeded
	if err != nil {
		status = statusFailed
	}
	m.files.WithLabelValues(string(kind), status).Inc()
	m.fileDuration.WithLabelValues(string(kind), status).Observe(elapsed.Seconds())
}
