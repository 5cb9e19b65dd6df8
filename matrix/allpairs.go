// SPDX-License-Identifier: MIT
// Package: matrix
//
// allpairs.go - Floyd–Warshall over the live centers of a core.Graph.
//
// Centers are compacted into a dense index in ascending ID order, so the
// matrix is |V|×|V| regardless of how sparse the ID space is.

package matrix

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/healthnet/core"
)

// AllPairs is the result of ShortestPaths: an all-pairs distance table with
// next-hop information for path reconstruction.
type AllPairs struct {
	ids   []int
	index map[int]int
	dist  *Dense // nil when the graph has no centers
	next  []int
}

// ShortestPaths computes the shortest distance between every pair of centers.
//
// Steps:
//  1. Index centers by ascending ID.
//  2. dist[i][i] = 0, dist[i][j] = connection distance, +Inf elsewhere.
//  3. Run Floyd–Warshall (k → i → j) keeping a next-hop table.
//
// Complexity: O(V³) time, O(V²) memory.
func ShortestPaths(g *core.Graph) (*AllPairs, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.CenterIDs()
	ap := &AllPairs{ids: ids, index: make(map[int]int, len(ids))}
	for i, id := range ids {
		ap.index[id] = i
	}
	n := len(ids)
	if n == 0 {
		return ap, nil
	}

	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	next := make([]int, n*n)
	inf := math.Inf(1)
	for i := range d.data {
		d.data[i] = inf
		next[i] = -1
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 0
		next[i*n+i] = i
	}
	for _, c := range g.Connections() {
		a, b := ap.index[c.From], ap.index[c.To]
		if c.Distance < d.data[a*n+b] {
			d.data[a*n+b], d.data[b*n+a] = c.Distance, c.Distance
			next[a*n+b], next[b*n+a] = b, a
		}
	}
	floydWarshallInPlace(d, next)
	ap.dist, ap.next = d, next

	return ap, nil
}

// IDs returns the center IDs in matrix order (ascending).
func (ap *AllPairs) IDs() []int { return slices.Clone(ap.ids) }

// Matrix returns a copy of the distance matrix, or nil for an empty graph.
func (ap *AllPairs) Matrix() *Dense {
	if ap.dist == nil {
		return nil
	}
	return ap.dist.Clone()
}

func (ap *AllPairs) lookup(from, to int) (int, int, error) {
	i, ok := ap.index[from]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	j, ok := ap.index[to]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}

	return i, j, nil
}

// Distance returns the shortest distance from→to, +Inf when disconnected.
func (ap *AllPairs) Distance(from, to int) (float64, error) {
	i, j, err := ap.lookup(from, to)
	if err != nil {
		return 0, err
	}

	return ap.dist.data[i*len(ap.ids)+j], nil
}

// Reachable reports whether to can be reached from from.
func (ap *AllPairs) Reachable(from, to int) (bool, error) {
	d, err := ap.Distance(from, to)
	if err != nil {
		return false, err
	}

	return !math.IsInf(d, 1), nil
}

// Path returns the center sequence from→to, or nil when disconnected.
func (ap *AllPairs) Path(from, to int) ([]int, error) {
	i, j, err := ap.lookup(from, to)
	if err != nil {
		return nil, err
	}
	n := len(ap.ids)
	if ap.next[i*n+j] < 0 {
		return nil, nil
	}
	path := []int{ap.ids[i]}
	for i != j {
		i = ap.next[i*n+j]
		path = append(path, ap.ids[i])
	}

	return path, nil
}
