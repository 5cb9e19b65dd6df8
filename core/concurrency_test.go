package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/healthnet/core"
)

// TestConcurrentReadersAndWriter hammers the store from several goroutines;
// run with -race to check the locking discipline.
func TestConcurrentReadersAndWriter(t *testing.T) {
	g := core.NewGraph()
	const n = 200
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddCenter(core.Center{ID: i}))
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i < n; i++ {
			_ = g.AddConnection(core.Connection{From: i - 1, To: i, Distance: float64(i)})
		}
	}()
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				_ = g.Neighbors(i)
				_ = g.Connections()
				_ = g.HasCenter(i)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, n-1, g.ConnectionCount())
	assert.Len(t, g.Connections(), n-1)
}
