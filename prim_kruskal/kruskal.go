package prim_kruskal

import (
	"sort"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/healthnet/core"
)

// Kruskal computes a minimum spanning forest of g.
//
// Steps:
//  1. Sort connections by distance, then From, then To (deterministic).
//  2. One disjoint-set element per center.
//  3. Take each connection whose endpoints are in different sets and union them.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal(g *core.Graph) (*Forest, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	ids := g.CenterIDs()
	sets := make(map[int]*disjoint.Element, len(ids))
	for _, id := range ids {
		sets[id] = disjoint.NewElement()
	}

	conns := g.Connections()
	sort.SliceStable(conns, func(i, j int) bool {
		a, b := conns[i], conns[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	f := &Forest{Components: len(ids)}
	for _, c := range conns {
		ra, rb := sets[c.From].Find(), sets[c.To].Find()
		if ra == rb {
			continue
		}
		disjoint.Union(ra, rb)
		f.Edges = append(f.Edges, c)
		f.Total += c.Distance
		f.Components--
	}

	return f, nil
}
