package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/healthnet/metrics"
)

func TestRecordQuery(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordQuery("shortest_path", nil, 2*time.Millisecond)
	r.RecordQuery("shortest_path", nil, time.Millisecond)
	r.RecordQuery("shortest_path", errors.New("boom"), time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.QueriesTotal.WithLabelValues("shortest_path", metrics.StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.QueriesTotal.WithLabelValues("shortest_path", metrics.StatusError)))
	assert.Equal(t, 1, testutil.CollectAndCount(r.QueryDuration))
}

func TestGraphAndStore(t *testing.T) {
	r := metrics.NewRegistry()
	r.SetGraphSize(4, 3)
	r.RecordStoreWrite("centers", nil)
	r.RecordStoreWrite("centers", errors.New("disk full"))
	r.RecordSkippedRows("connections", 2)
	r.RecordSkippedRows("connections", 0)

	assert.Equal(t, 4.0, testutil.ToFloat64(r.Centers))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.Connections))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.StoreWritesTotal.WithLabelValues("centers", metrics.StatusError)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.RowsSkippedTotal.WithLabelValues("connections")))
}

func TestSnapshot(t *testing.T) {
	r := metrics.NewRegistry()
	r.SetGraphSize(2, 1)
	r.RecordQuery("bfs", nil, time.Millisecond)

	samples, err := r.Snapshot()
	require.NoError(t, err)

	byName := map[string]metrics.Sample{}
	for _, s := range samples {
		byName[s.Name+"{"+s.Labels+"}"] = s
	}
	assert.Equal(t, 2.0, byName["healthnet_centers{}"].Value)
	assert.Equal(t, 1.0, byName["healthnet_queries_total{query=bfs,status=ok}"].Value)
	assert.Equal(t, 1.0, byName["healthnet_query_duration_seconds_count{query=bfs}"].Value)

	n, err := testutil.GatherAndCount(r.Gatherer(), "healthnet_connections")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
