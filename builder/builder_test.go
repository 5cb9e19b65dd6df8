// Package builder_test verifies topology, counts, determinism and
// parameter validation of every constructor.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/healthnet/builder"
	"github.com/katalvlaran/healthnet/core"
)

func TestConstructors_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
	}{
		{"Path(4)", builder.Path(4), 4, 3},
		{"Cycle(5)", builder.Cycle(5), 5, 5},
		{"Star(6)", builder.Star(6), 6, 5},
		{"Complete(5)", builder.Complete(5), 5, 10},
		{"Complete(1)", builder.Complete(1), 1, 0},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 3*3 + 4*2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.CenterCount())
			assert.Equal(t, tc.wantE, g.ConnectionCount())
		})
	}
}

func TestPath_Topology(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDOffset(10)}, builder.Path(3))
	require.NoError(t, err)

	assert.Equal(t, []int{10, 11, 12}, g.CenterIDs())
	assert.True(t, g.HasConnection(10, 11))
	assert.True(t, g.HasConnection(11, 12))
	assert.False(t, g.HasConnection(10, 12))

	c, err := g.Connection(10, 11)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Distance)
	assert.Equal(t, "Path", c.Description)

	center, err := g.Center(10)
	require.NoError(t, err)
	assert.Equal(t, "Center 10", center.Name)
	assert.Equal(t, 10, center.Capacity)
}

func TestGrid_Neighbors(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(2, 3))
	require.NoError(t, err)

	// 0 1 2
	// 3 4 5
	assert.ElementsMatch(t, []int{1, 3, 5}, linkTargets(g.Neighbors(4)))
	assert.ElementsMatch(t, []int{1, 3}, linkTargets(g.Neighbors(0)))
}

func TestConstructors_Compose(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
		builder.Path(6), builder.Cycle(6))
	require.NoError(t, err)

	assert.Equal(t, 6, g.CenterCount())
	// Path edges are reused by the ring; only 5-0 is new.
	assert.Equal(t, 6, g.ConnectionCount())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(20, 0.3))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, a.Connections(), b.Connections())
	assert.Equal(t, a.Centers(), b.Centers())
}

func TestRandomSparse_Extremes(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithRand(r)}, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Zero(t, g.ConnectionCount())

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithRand(r)}, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, g.ConnectionCount())
}

func TestBuildGraph_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"path too small", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"cycle too small", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"star too small", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"grid zero", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"bad probability", builder.RandomSparse(4, 1.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"no rng", builder.RandomSparse(4, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildGraph_StoreBound(t *testing.T) {
	_, err := builder.BuildGraph([]core.GraphOption{core.WithMaxCenterID(3)}, nil, builder.Path(6))
	assert.ErrorIs(t, err, core.ErrIDOutOfRange)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithIDOffset(-1) })
	assert.Panics(t, func() { builder.WithDistanceFn(nil) })
	assert.Panics(t, func() { builder.WithCapacityFn(nil) })
	assert.Panics(t, func() { builder.WithNameFn(nil) })
}

func TestCustomGenerators(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithDistanceFn(func(*rand.Rand) float64 { return 2.5 }),
		builder.WithCapacityFn(func(idx int, _ *rand.Rand) int { return idx * 10 }),
		builder.WithNameFn(func(id int) string { return "HC" }),
	}
	g, err := builder.BuildGraph(nil, opts, builder.Star(3))
	require.NoError(t, err)

	for _, c := range g.Connections() {
		assert.Equal(t, 2.5, c.Distance)
	}
	c2, err := g.Center(2)
	require.NoError(t, err)
	assert.Equal(t, 20, c2.Capacity)
	assert.Equal(t, "HC", c2.Name)
}

func linkTargets(links []core.Link) []int {
	out := make([]int, len(links))
	for i, l := range links {
		out[i] = l.To
	}
	return out
}
