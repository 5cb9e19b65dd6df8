package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewRegistry creates a Registry with all collectors registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initQueryMetrics()
	r.initGraphMetrics()
	r.initStoreMetrics()

	return r
}

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthnet_queries_total",
			Help: "Total number of graph queries",
		},
		[]string{"query", "status"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "healthnet_query_duration_seconds",
			Help:    "Graph query duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"query"},
	)
}

func (r *Registry) initGraphMetrics() {
	r.Centers = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "healthnet_centers",
			Help: "Number of health centers in the network",
		},
	)

	r.Connections = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "healthnet_connections",
			Help: "Number of connections in the network",
		},
	)
}

func (r *Registry) initStoreMetrics() {
	r.StoreWritesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthnet_store_writes_total",
			Help: "Total number of CSV file writes",
		},
		[]string{"file", "status"},
	)

	r.RowsSkippedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthnet_rows_skipped_total",
			Help: "Malformed or rejected CSV rows skipped while loading",
		},
		[]string{"file"},
	)
}
