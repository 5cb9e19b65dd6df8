package routing_test

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
	"github.com/katalvlaran/healthnet/routing"
)

// scenario: 1(cap 10) -4- 2(cap 5) -3- 3(cap 20)
func scenario(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddCenter(core.Center{ID: 1, Name: "A", Capacity: 10}))
	require.NoError(t, g.AddCenter(core.Center{ID: 2, Name: "B", Capacity: 5}))
	require.NoError(t, g.AddCenter(core.Center{ID: 3, Name: "C", Capacity: 20}))
	require.NoError(t, g.AddConnection(core.Connection{From: 1, To: 2, Distance: 4}))
	require.NoError(t, g.AddConnection(core.Connection{From: 2, To: 3, Distance: 3}))
	return g
}

func TestNearestWithCapacity_Scenario(t *testing.T) {
	g := scenario(t)
	r, err := routing.NearestWithCapacity(g, 1, 15)
	require.NoError(t, err)
	assert.True(t, r.Found)
	assert.Equal(t, 3, r.Center.ID)
	assert.Equal(t, 7.0, r.Distance)
	assert.Equal(t, []int{1, 2, 3}, r.Path)

	// Capacity 5 lets the closer center 2 qualify.
	r, err = routing.NearestWithCapacity(g, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Center.ID)
	assert.Equal(t, 4.0, r.Distance)
}

func TestNearestWithCapacity_NeverStart(t *testing.T) {
	g := scenario(t)
	// 3 has enough capacity itself but is excluded as the start.
	r, err := routing.NearestWithCapacity(g, 3, 20)
	require.NoError(t, err)
	assert.False(t, r.Found)
	assert.True(t, math.IsInf(r.Distance, 1))
}

func TestNearestWithCapacity_Unreachable(t *testing.T) {
	g := scenario(t)
	require.NoError(t, g.AddCenter(core.Center{ID: 9, Capacity: 100}))
	r, err := routing.NearestWithCapacity(g, 1, 50)
	require.NoError(t, err)
	assert.False(t, r.Found)
}

func TestNearestWithCapacity_TieLowestID(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []int{1, 7, 4} {
		require.NoError(t, g.AddCenter(core.Center{ID: id, Capacity: 10}))
	}
	require.NoError(t, g.AddConnection(core.Connection{From: 1, To: 7, Distance: 2}))
	require.NoError(t, g.AddConnection(core.Connection{From: 1, To: 4, Distance: 2}))

	r, err := routing.NearestWithCapacity(g, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Center.ID)
}

func TestCandidates(t *testing.T) {
	g := scenario(t)
	cs, err := routing.Candidates(g, 1, 0)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, 2, cs[0].Center.ID)
	assert.Equal(t, 3, cs[1].Center.ID)
	assert.Equal(t, 7.0, cs[1].Distance)

	_, err = routing.Candidates(g, 42, 0)
	assert.ErrorIs(t, err, routing.ErrVertexNotFound)
	assert.ErrorIs(t, err, core.ErrCenterNotFound)
	_, err = routing.NearestWithCapacity(nil, 1, 0)
	assert.ErrorIs(t, err, routing.ErrGraphNil)
}

func TestNearestWithCapacity_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	properties.Property("never start, never under capacity", prop.ForAll(
		func(seed int64, n int, p float64, minCap int) bool {
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
			if err != nil {
				return false
			}
			r, err := routing.NearestWithCapacity(g, 0, minCap)
			if err != nil {
				return false
			}
			if !r.Found {
				return true
			}
			return r.Center.ID != 0 && r.Center.Capacity >= minCap && r.Path[0] == 0
		},
		gen.Int64(),
		gen.IntRange(1, 25),
		gen.Float64Range(0, 0.3),
		gen.IntRange(0, 60),
	))

	properties.TestingRun(t)
}
