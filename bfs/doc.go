// Package bfs provides breadth-first traversal over a core.Graph of health
// centers, returning visit order, hop depths and parent links.
//
// What
//
//   - Walk returns a lazy, one-shot iter.Seq[int] in BFS order.
//   - BFS runs the traversal eagerly and returns a Result with:
//   - Order: visit sequence
//   - Depth: map from center → hops from start
//   - Parent: map from center → its predecessor in the BFS tree
//   - Components partitions the network into connected components.
//
// Determinism
//
//	Neighbors are scanned in adjacency insertion order (the order connections
//	were added), so the visit sequence is reproducible for a given store.
//
// Complexity (V = centers, E = connections)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	seq, err := bfs.Walk(g, 1)
//	if err != nil {
//	    // errors.Is(err, bfs.ErrStartNotFound)
//	}
//	for id := range seq {
//	    fmt.Println(id)
//	}
//
//	res, err := bfs.BFS(g, 1, bfs.WithMaxDepth(2))
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartNotFound    if the start center does not exist (wraps core.ErrCenterNotFound).
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
