package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/healthnet/core"
)

// queueItem pairs a center ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, ErrStartNotFound, ErrOptionViolation, a context error
// or any OnVisit error. On a hook error the partial Result is returned too.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasCenter(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.CenterCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(start, 0, start)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and records its parent (none for the root).
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != id {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, l := range w.graph.Neighbors(item.id) {
		if w.visited[l.To] || !w.opts.FilterNeighbor(item.id, l) {
			continue
		}
		w.enqueue(l.To, next, item.id)
	}
}
