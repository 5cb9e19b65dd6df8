package dfs

import "github.com/katalvlaran/healthnet/core"

// Visitation states used by the DFS.
const (
	White = iota // not yet discovered
	Gray         // on the current DFS stack
	Black        // fully explored
)

// frame is one level of the explicit DFS stack.
type frame struct {
	id     int
	parent int // -1 for a root; center IDs are non-negative
	links  []core.Link
	next   int // index of the next link to examine
}
