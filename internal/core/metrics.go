package core

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	duration *prometheus.HistogramVec
	cache    *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledgerload_lookup_duration_seconds",
			Help:    "Lookup latency by operation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		cache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledgerload_lookup_cache_total",
			Help: "Lookup cache results by namespace.",
		}, []string{"namespace", "result"}),
	}
}

func (m *Metrics) since(operation string, start time.Time) {
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) cacheResult(namespace string, hits, misses int) {
	m.cache.WithLabelValues(namespace, "hit").Add(float64(hits))
	m.cache.WithLabelValues(namespace, "miss").Add(float64(misses))
}
