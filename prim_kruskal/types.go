// Package prim_kruskal defines the result types and sentinel errors of the
// minimum spanning tree engine.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/healthnet/core"
)

// ErrInvalidGraph indicates a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrVertexNotFound indicates that the Prim root does not exist.
var ErrVertexNotFound = fmt.Errorf("prim_kruskal: root: %w", core.ErrCenterNotFound)

// Tree is the minimum spanning tree grown by Prim from Root.
//
// Edges are listed in extraction order as (parent, center) pairs.
// Reached counts the centers in the tree (root included), so
// len(Edges) == Reached-1. Spanning is true when the tree covers every
// center of the graph; a tree limited to Root's component is still a
// valid result.
type Tree struct {
	Root     int
	Edges    []core.Connection
	Total    float64
	Reached  int
	Spanning bool
}

// Forest is the minimum spanning forest built by Kruskal.
// Components is the number of trees in the forest.
type Forest struct {
	Edges      []core.Connection
	Total      float64
	Components int
}
