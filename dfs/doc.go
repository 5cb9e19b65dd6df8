// Package dfs implements cycle detection over the undirected health-center
// network using depth-first search with three-color marking.
//
// A connection is stored on both of its endpoints, so the link back to the
// DFS parent is skipped; any other link into a center still on the DFS
// stack (Gray) closes a simple cycle of length ≥ 3.
//
// The search uses an explicit stack, so its depth is bounded by heap memory
// rather than goroutine stack size.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs
