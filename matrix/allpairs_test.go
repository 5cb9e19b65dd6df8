package matrix_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/healthnet/builder"
	"github.com/katalvlaran/healthnet/core"
	"github.com/katalvlaran/healthnet/dijkstra"
	"github.com/katalvlaran/healthnet/matrix"
)

func TestShortestPaths_SparseIDs(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []int{900, 7, 42, 3} {
		require.NoError(t, g.AddCenter(core.Center{ID: id}))
	}
	require.NoError(t, g.AddConnection(core.Connection{From: 7, To: 42, Distance: 2}))
	require.NoError(t, g.AddConnection(core.Connection{From: 42, To: 900, Distance: 3}))
	require.NoError(t, g.AddConnection(core.Connection{From: 7, To: 900, Distance: 10}))

	ap, err := matrix.ShortestPaths(g)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7, 42, 900}, ap.IDs())

	d, err := ap.Distance(7, 900)
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	path, err := ap.Path(900, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{900, 42, 7}, path)

	d, err = ap.Distance(3, 7)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
	ok, err := ap.Reachable(3, 7)
	require.NoError(t, err)
	assert.False(t, ok)
	path, err = ap.Path(3, 7)
	require.NoError(t, err)
	assert.Nil(t, path)

	d, err = ap.Distance(3, 3)
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = ap.Distance(1, 3)
	assert.ErrorIs(t, err, matrix.ErrVertexNotFound)
	assert.ErrorIs(t, err, core.ErrCenterNotFound)
	_, err = ap.Path(3, 1)
	assert.ErrorIs(t, err, matrix.ErrVertexNotFound)

	m := ap.Matrix()
	require.NotNil(t, m)
	assert.Equal(t, 4, m.Rows())
}

func TestShortestPaths_Empty(t *testing.T) {
	ap, err := matrix.ShortestPaths(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, ap.IDs())
	assert.Nil(t, ap.Matrix())

	_, err = matrix.ShortestPaths(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

// TestShortestPaths_MatchesDijkstra cross-checks every pair, including +Inf
// for disconnected pairs.
func TestShortestPaths_MatchesDijkstra(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("floyd-warshall equals dijkstra", prop.ForAll(
		func(seed int64, n int, p float64) bool {
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
			if err != nil {
				return false
			}
			ap, err := matrix.ShortestPaths(g)
			if err != nil {
				return false
			}
			for _, src := range g.CenterIDs() {
				res, err := dijkstra.Dijkstra(g, src)
				if err != nil {
					return false
				}
				for _, dst := range g.CenterIDs() {
					d, err := ap.Distance(src, dst)
					if err != nil || d != res.Dist[dst] {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 15),
		gen.Float64Range(0, 0.4),
	))

	properties.TestingRun(t)
}
