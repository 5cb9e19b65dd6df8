package bfs

import (
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/katalvlaran/healthnet/core"
)

// Walk returns the centers reachable from start in breadth-first order as a
// lazy sequence. Each center is yielded exactly once, the start first.
//
// The sequence is one-shot: the first range consumes it and any later range
// yields nothing. Breaking out of the loop early stops the traversal.
func Walk(g *core.Graph, start int) (iter.Seq[int], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasCenter(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	var used atomic.Bool
	return func(yield func(int) bool) {
		if used.Swap(true) {
			return
		}
		visited := map[int]bool{start: true}
		queue := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if !yield(cur) {
				return
			}
			for _, l := range g.Neighbors(cur) {
				if !visited[l.To] {
					visited[l.To] = true
					queue = append(queue, l.To)
				}
			}
		}
	}, nil
}
