// Package dijkstra_test validates input checks, distances, paths, tie-breaking
// and the stopping options of the Dijkstra implementation.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/healthnet/core"
	"github.com/katalvlaran/healthnet/dijkstra"
)

func newGraph(t *testing.T, ids []int, conns ...core.Connection) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddCenter(core.Center{ID: id}))
	}
	for _, c := range conns {
		require.NoError(t, g.AddConnection(c))
	}
	return g
}

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := newGraph(t, []int{1})
	_, err = dijkstra.Dijkstra(g, 2)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	assert.ErrorIs(t, err, core.ErrCenterNotFound)
}

// TestScenario walks a 1-2-3 chain, then adds a short
// 1-3 bridge.
func TestScenario(t *testing.T) {
	g := newGraph(t, []int{1, 2, 3},
		core.Connection{From: 1, To: 2, Distance: 4},
		core.Connection{From: 2, To: 3, Distance: 3},
	)
	p, err := dijkstra.ShortestPath(g, 1, 3)
	require.NoError(t, err)
	assert.True(t, p.Reachable)
	assert.Equal(t, 7.0, p.Distance)
	assert.Equal(t, []int{1, 2, 3}, p.Nodes)

	require.NoError(t, g.AddConnection(core.Connection{From: 1, To: 3, Distance: 1}))
	p, err = dijkstra.ShortestPath(g, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Distance)
	assert.Equal(t, []int{1, 3}, p.Nodes)
}

func TestDijkstra_DistancesAndPrev(t *testing.T) {
	//   1 --4-- 2 --1-- 4
	//   |       |
	//   1       1
	//   |       |
	//   3 --1---+       5 (isolated)
	g := newGraph(t, []int{1, 2, 3, 4, 5},
		core.Connection{From: 1, To: 2, Distance: 4},
		core.Connection{From: 1, To: 3, Distance: 1},
		core.Connection{From: 3, To: 2, Distance: 1},
		core.Connection{From: 2, To: 4, Distance: 1},
	)
	res, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Dist[1])
	assert.Equal(t, 1.0, res.Dist[3])
	assert.Equal(t, 2.0, res.Dist[2])
	assert.Equal(t, 3.0, res.Dist[4])
	assert.True(t, math.IsInf(res.Dist[5], 1))
	assert.False(t, res.Reachable(5))

	assert.Equal(t, map[int]int{3: 1, 2: 3, 4: 2}, res.Prev)
	assert.Equal(t, []int{1, 3, 2, 4}, res.Order)
	assert.Equal(t, []int{1, 3, 2, 4}, res.PathTo(4))
	assert.Nil(t, res.PathTo(5))
	assert.Equal(t, []int{1}, res.PathTo(1))
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := newGraph(t, []int{1, 2})
	p, err := dijkstra.ShortestPath(g, 1, 2)
	require.NoError(t, err)
	assert.False(t, p.Reachable)
	assert.True(t, math.IsInf(p.Distance, 1))
	assert.Empty(t, p.Nodes)

	_, err = dijkstra.ShortestPath(g, 1, 9)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.ShortestPath(g, 9, 1)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestShortestPath_SameCenter(t *testing.T) {
	g := newGraph(t, []int{4})
	p, err := dijkstra.ShortestPath(g, 4, 4)
	require.NoError(t, err)
	assert.True(t, p.Reachable)
	assert.Zero(t, p.Distance)
	assert.Equal(t, []int{4}, p.Nodes)
}

func TestDijkstra_TieBreakLowestID(t *testing.T) {
	// Two equal routes 1→3→4 and 1→2→4; 2 is finalized first, so it wins.
	g := newGraph(t, []int{1, 2, 3, 4},
		core.Connection{From: 1, To: 3, Distance: 2},
		core.Connection{From: 1, To: 2, Distance: 2},
		core.Connection{From: 3, To: 4, Distance: 2},
		core.Connection{From: 2, To: 4, Distance: 2},
	)
	res, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, res.Order)
	assert.Equal(t, 2, res.Prev[4])
}

func TestDijkstra_ZeroWeight(t *testing.T) {
	g := newGraph(t, []int{1, 2, 3},
		core.Connection{From: 1, To: 2, Distance: 0},
		core.Connection{From: 2, To: 3, Distance: 0},
	)
	p, err := dijkstra.ShortestPath(g, 1, 3)
	require.NoError(t, err)
	assert.Zero(t, p.Distance)
	assert.Equal(t, []int{1, 2, 3}, p.Nodes)
}

func TestDijkstra_TargetStopsEarly(t *testing.T) {
	g := newGraph(t, []int{1, 2, 3},
		core.Connection{From: 1, To: 2, Distance: 1},
		core.Connection{From: 2, To: 3, Distance: 1},
	)
	res, err := dijkstra.Dijkstra(g, 1, dijkstra.WithTarget(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Order)
	assert.Equal(t, 1.0, res.Dist[2])
}
