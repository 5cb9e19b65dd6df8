package dfs

import (
	"slices"

	"github.com/katalvlaran/healthnet/core"
)

// HasCycle reports whether g contains a simple cycle of length ≥ 3.
// A nil or empty graph is cycle-free.
func HasCycle(g *core.Graph) bool {
	return FindCycle(g) != nil
}

// FindCycle returns one cycle of g as a closed walk [v0 v1 … vk v0], or nil
// if g is acyclic. Roots are tried in ascending ID order and links in
// adjacency insertion order, so the witness is deterministic.
func FindCycle(g *core.Graph) []int {
	if g == nil {
		return nil
	}
	ids := g.CenterIDs()
	state := make(map[int]int, len(ids))
	for _, root := range ids {
		if state[root] != White {
			continue
		}
		if cycle := visit(g, root, state); cycle != nil {
			return cycle
		}
	}

	return nil
}

// visit runs an iterative DFS from root and returns the first cycle closed
// by a back-link, or nil once the component is exhausted.
func visit(g *core.Graph, root int, state map[int]int) []int {
	path := []int{root}
	stack := []*frame{{id: root, parent: -1, links: g.Neighbors(root)}}
	state[root] = Gray

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.links) {
			// Backtrack: fully explored.
			state[top.id] = Black
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
			continue
		}
		l := top.links[top.next]
		top.next++
		if l.To == top.parent {
			continue
		}

		switch state[l.To] {
		case White:
			state[l.To] = Gray
			path = append(path, l.To)
			stack = append(stack, &frame{id: l.To, parent: top.id, links: g.Neighbors(l.To)})
		case Gray:
			idx := slices.Index(path, l.To)
			cycle := slices.Clone(path[idx:])
			return append(cycle, l.To)
		}
	}

	return nil
}
