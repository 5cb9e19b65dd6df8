package bfs

import (
	"slices"

	"github.com/katalvlaran/healthnet/core"
)

// Components partitions g into connected components.
// Each component is sorted ascending; components are ordered by their
// smallest ID. A nil graph yields nil.
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	seen := make(map[int]bool, g.CenterCount())
	var out [][]int
	for _, id := range g.CenterIDs() {
		if seen[id] {
			continue
		}
		comp := []int{id}
		seen[id] = true
		for i := 0; i < len(comp); i++ {
			for _, l := range g.Neighbors(comp[i]) {
				if !seen[l.To] {
					seen[l.To] = true
					comp = append(comp, l.To)
				}
			}
		}
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out
}
