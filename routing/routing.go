package routing

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/healthnet/core"
	"github.com/katalvlaran/healthnet/dijkstra"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("routing: graph is nil")

	// ErrVertexNotFound is returned when the start center does not exist.
	ErrVertexNotFound = fmt.Errorf("routing: start: %w", core.ErrCenterNotFound)
)

// Candidate is a reachable center meeting the capacity requirement.
type Candidate struct {
	Center   core.Center
	Distance float64
	Path     []int
}

// Route is the answer of NearestWithCapacity. When Found is false the other
// fields are zero and Distance is +Inf.
type Route struct {
	Found    bool
	Center   core.Center
	Distance float64
	Path     []int
}

// NearestWithCapacity returns the closest center other than start whose
// capacity is at least minCapacity.
func NearestWithCapacity(g *core.Graph, start, minCapacity int) (Route, error) {
	cands, err := Candidates(g, start, minCapacity)
	if err != nil {
		return Route{}, err
	}
	if len(cands) == 0 {
		return Route{Distance: math.Inf(1)}, nil
	}
	best := cands[0]

	return Route{Found: true, Center: best.Center, Distance: best.Distance, Path: best.Path}, nil
}

// Candidates lists every qualifying reachable center ordered by distance,
// then by ID.
func Candidates(g *core.Graph, start, minCapacity int) ([]Candidate, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasCenter(start) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, start)
	}
	res, err := dijkstra.Dijkstra(g, start)
	if err != nil {
		return nil, fmt.Errorf("routing: %w", err)
	}

	var out []Candidate
	for _, c := range g.Centers() {
		if c.ID == start || c.Capacity < minCapacity || !res.Reachable(c.ID) {
			continue
		}
		out = append(out, Candidate{Center: c, Distance: res.Dist[c.ID], Path: res.PathTo(c.ID)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Center.ID < out[j].Center.ID
	})

	return out, nil
}
