// Package core provides the in-memory store of a health-center network:
// centers (nodes) keyed by a non-negative integer ID, and undirected,
// weighted connections (edges) between them.
//
// The Graph G = (V,E) keeps a symmetric adjacency structure:
//
//   - every connection {a,b} is stored as a Link on a and as a Link on b,
//     with identical Distance, Time and Description;
//   - self-loops and duplicate connections between the same pair are rejected;
//   - distances are finite and non-negative (Dijkstra and Prim depend on it);
//   - removing a center removes every connection touching it.
//
// Why a map and not a fixed array?
//
//	IDs are assigned externally and may be sparse. Centers live in a
//	map[int]*Center and adjacency in a map[int][]Link, so there is no
//	hard ceiling on the ID range. WithMaxCenterID re-introduces an upper
//	bound for deployments that still need one (historically 1000).
//
// Core Methods:
//
//	// Center lifecycle
//	AddCenter(c Center) error            // O(1)
//	UpdateCenter(c Center) error         // O(1)
//	RemoveCenter(id int) error           // O(deg(id)²)
//	HasCenter(id int) bool               // O(1)
//	Center(id int) (Center, error)       // O(1)
//
//	// Connection lifecycle
//	AddConnection(c Connection) error    // O(deg)
//	UpdateConnection(c Connection) error // O(deg), mirrored
//	RemoveConnection(a, b int) error     // O(deg), both directions at once
//	HasConnection(a, b int) bool         // O(deg)
//
//	// Query
//	Neighbors(id int) []Link             // insertion order, empty if absent
//	CenterIDs() []int                    // ascending
//	Centers() []Center                   // insertion order
//	Connections() []Connection           // each pair once, From < To
//
// Errors:
//
//	ErrCenterNotFound      – referenced center does not exist
//	ErrDuplicateCenter     – AddCenter with an ID already in use
//	ErrNegativeID          – IDs must be ≥ 0
//	ErrIDOutOfRange        – ID above the WithMaxCenterID bound
//	ErrLoopNotAllowed      – connection from a center to itself
//	ErrDuplicateConnection – the pair is already connected
//	ErrConnectionNotFound  – the pair is not connected
//	ErrBadDistance         – negative, NaN or infinite distance
//
// Concurrency: a single sync.RWMutex guards all state (single writer,
// many readers). Every slice handed out is a copy.
package core
