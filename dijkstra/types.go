// Package dijkstra defines the types and options of the single-source
// shortest-path engine.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/healthnet/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a requested center does not exist.
	ErrVertexNotFound = fmt.Errorf("dijkstra: %w", core.ErrCenterNotFound)

	// ErrNegativeWeight indicates that a negative connection distance was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Target – if set (HasTarget), stop as soon as Target is finalized.
type Options struct {
	Target    int
	HasTarget bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no target.
func DefaultOptions() Options {
	return Options{}
}

// WithTarget stops the search once target's distance is final. Distances of
// centers not finalized by then stay as tentative values or +Inf.
func WithTarget(target int) Option {
	return func(o *Options) {
		o.Target = target
		o.HasTarget = true
	}
}

// Result holds the outcome of one Dijkstra run.
//
// Dist maps every center to its distance from Source (+Inf if unreachable).
// Prev maps every reached center except Source to its predecessor.
// Order lists centers in the order their distance became final.
type Result struct {
	Source int
	Dist   map[int]float64
	Prev   map[int]int
	Order  []int
}

// Reachable reports whether id was reached from Source.
func (r *Result) Reachable(id int) bool {
	d, ok := r.Dist[id]
	return ok && !math.IsInf(d, 1)
}

// PathTo walks Prev back from dest. It returns nil if dest was not reached.
func (r *Result) PathTo(dest int) []int {
	if !r.Reachable(dest) {
		return nil
	}
	path := []int{dest}
	for cur := dest; cur != r.Source; {
		prev, ok := r.Prev[cur]
		if !ok {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Path is a start→end shortest path.
//
// Nodes runs from start to end inclusive. An unreachable end is reported as
// Reachable=false with Distance=+Inf and no Nodes, not as an error.
type Path struct {
	Nodes     []int
	Distance  float64
	Reachable bool
}
