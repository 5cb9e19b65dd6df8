package metrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// RecordQuery records a query execution.
func (r *Registry) RecordQuery(query string, err error, duration time.Duration) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	r.QueriesTotal.WithLabelValues(query, status).Inc()
	r.QueryDuration.WithLabelValues(query).Observe(duration.Seconds())
}

// SetGraphSize updates the center and connection gauges.
func (r *Registry) SetGraphSize(centers, connections int) {
	r.Centers.Set(float64(centers))
	r.Connections.Set(float64(connections))
}

// RecordStoreWrite records one file write.
func (r *Registry) RecordStoreWrite(file string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	r.StoreWritesTotal.WithLabelValues(file, status).Inc()
}

// RecordSkippedRows adds n skipped rows for file.
func (r *Registry) RecordSkippedRows(file string, n int) {
	if n > 0 {
		r.RowsSkippedTotal.WithLabelValues(file).Add(float64(n))
	}
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// Snapshot gathers every metric into flat samples. Histograms contribute
// their sample count and sum as "<name>_count" and "<name>_sum".
func (r *Registry) Snapshot() ([]Sample, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}
	var out []Sample
	for _, mf := range families {
		name := mf.GetName()
		for _, m := range mf.GetMetric() {
			labels := labelString(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out = append(out, Sample{Name: name, Labels: labels, Value: m.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				out = append(out, Sample{Name: name, Labels: labels, Value: m.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				out = append(out,
					Sample{Name: name + "_count", Labels: labels, Value: float64(h.GetSampleCount())},
					Sample{Name: name + "_sum", Labels: labels, Value: h.GetSampleSum()},
				)
			}
		}
	}

	return out, nil
}

func labelString(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+"="+p.GetValue())
	}
	return strings.Join(parts, ",")
}
