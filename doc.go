// Package healthnet manages a network of health centers and the roads
// between them, and answers routing questions over it.
//
// The network is an undirected weighted graph: centers are nodes keyed by a
// non-negative integer ID, connections are edges weighted by distance in km.
// It is persisted as CSV files and driven from a numbered text menu
// (cmd/healthnet).
//
// Packages:
//
//	core/         - thread-safe graph store (centers, connections, adjacency)
//	bfs/          - breadth-first traversal and connected components
//	dijkstra/     - single-source shortest paths
//	matrix/       - dense matrix and Floyd–Warshall all-pairs shortest paths
//	dfs/          - cycle detection
//	prim_kruskal/ - minimum spanning tree (Prim) and forest (Kruskal)
//	routing/      - nearest center with a minimum capacity
//	store/        - CSV load/save and relationship export
//	network/      - locked facade that persists every edit and records metrics
//	cli/          - numbered menu
//	builder/      - deterministic topology generators for tests and demo data
//	config/, logging/, metrics/ - ambient setup
//
// Ties between equal distances are always broken by the lowest center ID, so
// every query is deterministic for a given network.
package healthnet
