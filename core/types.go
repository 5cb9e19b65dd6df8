package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrCenterNotFound indicates an operation referenced a non-existent center.
	ErrCenterNotFound = errors.New("core: center not found")

	// ErrDuplicateCenter indicates AddCenter was called with an ID already in use.
	ErrDuplicateCenter = errors.New("core: center ID already exists")

	// ErrNegativeID indicates a negative center ID.
	ErrNegativeID = errors.New("core: center ID must be non-negative")

	// ErrIDOutOfRange indicates a center ID above the configured maximum.
	ErrIDOutOfRange = errors.New("core: center ID out of range")

	// ErrLoopNotAllowed indicates a connection from a center to itself.
	ErrLoopNotAllowed = errors.New("core: cannot connect a center to itself")

	// ErrDuplicateConnection indicates the two centers are already connected.
	ErrDuplicateConnection = errors.New("core: connection already exists")

	// ErrConnectionNotFound indicates the two centers are not connected.
	ErrConnectionNotFound = errors.New("core: connection not found")

	// ErrBadDistance indicates a negative, NaN or infinite distance.
	ErrBadDistance = errors.New("core: distance must be finite and non-negative")

	// ErrBadText indicates a field separator inside a text attribute: a comma
	// or line break in Name or District, a line break in Description.
	ErrBadText = errors.New("core: text contains a field separator")
)

// Center is a health center, the node type of the network.
//
// ID is assigned by the caller and must be unique and non-negative.
// Capacity is only consulted by capacity-constrained routing.
type Center struct {
	ID       int
	Name     string
	District string
	Lat      float64
	Lon      float64
	Capacity int
}

// Connection is an undirected link between two centers.
//
// The pair {From, To} identifies the connection; orientation carries no
// meaning. Distance is the weight used by every weighted algorithm, Time
// is informational only.
type Connection struct {
	From        int
	To          int
	Distance    float64
	Time        int
	Description string
}

// Link is the neighbor entry stored on one side of a Connection.
type Link struct {
	To          int
	Distance    float64
	Time        int
	Description string
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithMaxCenterID rejects center IDs greater than max with ErrIDOutOfRange.
// A non-positive max means "no bound", which is also the default.
func WithMaxCenterID(max int) GraphOption {
	return func(g *Graph) {
		if max > 0 {
			g.maxID = max
		}
	}
}

// Graph is the in-memory store of centers and connections.
//
// centers maps ID → *Center, order keeps insertion order for Centers(),
// adjacency maps ID → []Link in insertion order. mu guards all three.
type Graph struct {
	mu sync.RWMutex

	maxID int // 0 = unbounded

	centers   map[int]*Center
	order     []int
	adjacency map[int][]Link
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		centers:   make(map[int]*Center),
		adjacency: make(map[int][]Link),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Reverse returns the same connection seen from the other endpoint.
func (c Connection) Reverse() Connection {
	c.From, c.To = c.To, c.From
	return c
}

// link converts c into the Link stored on c.From.
func (c Connection) link() Link {
	return Link{To: c.To, Distance: c.Distance, Time: c.Time, Description: c.Description}
}
