// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// health-center network.
//
// Notes on implementation choices:
//
//   - An upfront scan of all connections (O(E)) rejects negative weights.
//   - "Lazy" decrease-key: duplicates are pushed and stale entries ignored on pop.
//   - Equal distances pop in ascending center ID, so results are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/healthnet/core"
)

// Dijkstra computes shortest distances from source to every center of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
//  3. No connection may have a negative distance (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasCenter(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}
	for _, c := range g.Connections() {
		if c.Distance < 0 {
			return nil, fmt.Errorf("%w: connection %d-%d distance=%g", ErrNegativeWeight, c.From, c.To, c.Distance)
		}
	}

	ids := g.CenterIDs()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]float64, len(ids)),
		prev:    make(map[int]int, len(ids)),
		visited: make(map[int]bool, len(ids)),
		pq:      make(nodePQ, 0, len(ids)),
	}
	r.init(ids, source)
	r.process()

	return &Result{Source: source, Dist: r.dist, Prev: r.prev, Order: r.order}, nil
}

// ShortestPath returns the minimum-distance path between start and end.
// Both centers must exist (ErrVertexNotFound). An unreachable end yields
// Path{Reachable: false, Distance: +Inf} and a nil error.
func ShortestPath(g *core.Graph, start, end int) (Path, error) {
	if g == nil {
		return Path{}, ErrNilGraph
	}
	if !g.HasCenter(end) {
		return Path{}, fmt.Errorf("%w: %d", ErrVertexNotFound, end)
	}
	res, err := Dijkstra(g, start, WithTarget(end))
	if err != nil {
		return Path{}, err
	}
	if !res.Reachable(end) {
		return Path{Distance: math.Inf(1)}, nil
	}

	return Path{Nodes: res.PathTo(end), Distance: res.Dist[end], Reachable: true}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[int]float64
	prev    map[int]int
	visited map[int]bool
	order   []int
	pq      nodePQ
}

// init sets every distance to +Inf and pushes source with distance 0.
func (r *runner) init(ids []int, source int) {
	for _, v := range ids {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process repeatedly finalizes the closest center and relaxes its links.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable centers processed).
//   - The target, if any, has been finalized.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true
		r.order = append(r.order, u)
		if r.options.HasTarget && u == r.options.Target {
			return
		}
		r.relax(u)
	}
}

// relax tries to improve the distance of every unfinalized neighbor of u.
// Only strictly shorter paths replace a predecessor.
func (r *runner) relax(u int) {
	for _, l := range r.g.Neighbors(u) {
		v := l.To
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + l.Distance
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a center and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
