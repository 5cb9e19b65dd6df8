package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every healthnet collector on a private Prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	// Query metrics
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec

	// Graph size
	Centers     prometheus.Gauge
	Connections prometheus.Gauge

	// Store metrics
	StoreWritesTotal *prometheus.CounterVec
	RowsSkippedTotal *prometheus.CounterVec
}

// Sample is one gathered metric value, flattened for display.
type Sample struct {
	Name   string
	Labels string // "k=v,k=v" in label-name order, empty if none
	Value  float64
}

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)
