package network

import (
	"github.com/katalvlaran/healthnet/bfs"
	"github.com/katalvlaran/healthnet/core"
	"github.com/katalvlaran/healthnet/dfs"
	"github.com/katalvlaran/healthnet/dijkstra"
	"github.com/katalvlaran/healthnet/matrix"
	"github.com/katalvlaran/healthnet/prim_kruskal"
	"github.com/katalvlaran/healthnet/routing"
	"github.com/katalvlaran/healthnet/store"
)

// Query names used as metric labels.
const (
	QueryShortestPath   = "shortest_path"
	QueryTraverse       = "traverse"
	QueryHasCycle       = "has_cycle"
	QueryFindCycle      = "find_cycle"
	QueryAllPairs       = "all_pairs"
	QueryMST            = "mst"
	QuerySpanningForest = "spanning_forest"
	QueryNearest        = "nearest_with_capacity"
	QueryComponents     = "components"
	QueryRelationships  = "relationships"
)

// ShortestPath returns the minimum-distance path between two centers.
func (n *Network) ShortestPath(start, end int) (p dijkstra.Path, err error) {
	err = n.query(QueryShortestPath, func(g *core.Graph) error {
		p, err = dijkstra.ShortestPath(g, start, end)
		return err
	})
	return p, err
}

// Traverse returns the BFS order from start.
func (n *Network) Traverse(start int) (order []int, err error) {
	err = n.query(QueryTraverse, func(g *core.Graph) error {
		seq, err := bfs.Walk(g, start)
		if err != nil {
			return err
		}
		for id := range seq {
			order = append(order, id)
		}
		return nil
	})
	return order, err
}

// HasCycle reports whether the network contains a cycle.
func (n *Network) HasCycle() (found bool) {
	_ = n.query(QueryHasCycle, func(g *core.Graph) error {
		found = dfs.HasCycle(g)
		return nil
	})
	return found
}

// FindCycle returns one closed cycle, or nil.
func (n *Network) FindCycle() (cycle []int) {
	_ = n.query(QueryFindCycle, func(g *core.Graph) error {
		cycle = dfs.FindCycle(g)
		return nil
	})
	return cycle
}

// AllPairsShortestPaths runs Floyd–Warshall over every center.
func (n *Network) AllPairsShortestPaths() (ap *matrix.AllPairs, err error) {
	err = n.query(QueryAllPairs, func(g *core.Graph) error {
		ap, err = matrix.ShortestPaths(g)
		return err
	})
	return ap, err
}

// MinimumSpanningTree grows Prim's tree from start.
func (n *Network) MinimumSpanningTree(start int) (t *prim_kruskal.Tree, err error) {
	err = n.query(QueryMST, func(g *core.Graph) error {
		t, err = prim_kruskal.Prim(g, start)
		return err
	})
	return t, err
}

// SpanningForest builds the Kruskal minimum spanning forest.
func (n *Network) SpanningForest() (f *prim_kruskal.Forest, err error) {
	err = n.query(QuerySpanningForest, func(g *core.Graph) error {
		f, err = prim_kruskal.Kruskal(g)
		return err
	})
	return f, err
}

// NearestWithCapacity finds the closest other center with enough capacity.
func (n *Network) NearestWithCapacity(start, minCapacity int) (r routing.Route, err error) {
	err = n.query(QueryNearest, func(g *core.Graph) error {
		r, err = routing.NearestWithCapacity(g, start, minCapacity)
		return err
	})
	return r, err
}

// Components lists the connected components.
func (n *Network) Components() (comps [][]int) {
	_ = n.query(QueryComponents, func(g *core.Graph) error {
		comps = bfs.Components(g)
		return nil
	})
	return comps
}

// Relationships builds the relationship table and, when the persister can,
// exports it to its file.
func (n *Network) Relationships() (rows []store.Relationship, err error) {
	err = n.query(QueryRelationships, func(g *core.Graph) error {
		if ex, ok := n.persist.(RelationshipExporter); ok {
			rows, err = ex.ExportRelationships(g)
			return err
		}
		rows = store.Relationships(g)
		return nil
	})
	return rows, err
}

// Centers returns every center in insertion order.
func (n *Network) Centers() []core.Center {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.g.Centers()
}

// Center returns one center.
func (n *Network) Center(id int) (core.Center, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.g.Center(id)
}

// Connections returns every connection once, smaller ID first.
func (n *Network) Connections() []core.Connection {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.g.Connections()
}

// Connection returns the connection between a and b.
func (n *Network) Connection(a, b int) (core.Connection, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.g.Connection(a, b)
}

// Size returns the number of centers and connections.
func (n *Network) Size() (centers, connections int) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.g.CenterCount(), n.g.ConnectionCount()
}
