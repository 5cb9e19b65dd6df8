// File: methods_connections.go
// Role: Connection lifecycle & queries, plus the Neighbors contract used by
//       every algorithm package.
// Determinism:
//   - Neighbors() keeps insertion order.
//   - Connections() emits each pair once as From < To, ascending From, then
//     adjacency insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// AddConnection links two existing centers in both directions.
//
// Steps:
//  1. Validate distance (ErrBadDistance), description (ErrBadText) and
//     reject loops (ErrLoopNotAllowed).
//  2. Lock mu; both endpoints must exist (ErrCenterNotFound).
//  3. Reject an existing pair (ErrDuplicateConnection).
//  4. Append the Link on From and its mirror on To.
//
// Complexity: O(deg(From)).
func (g *Graph) AddConnection(c Connection) error {
	if err := checkConnection(c); err != nil {
		return err
	}
	if c.From == c.To {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, c.From)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.requireBoth(c.From, c.To); err != nil {
		return err
	}
	if indexOfLink(g.adjacency[c.From], c.To) >= 0 {
		return fmt.Errorf("%w: %d-%d", ErrDuplicateConnection, c.From, c.To)
	}

	g.adjacency[c.From] = append(g.adjacency[c.From], c.link())
	g.adjacency[c.To] = append(g.adjacency[c.To], c.Reverse().link())
	g.edgeCount++

	return nil
}

// UpdateConnection overwrites Distance, Time and Description of an existing
// connection on both sides. Orientation of c does not matter.
//
// Complexity: O(deg(From) + deg(To)).
func (g *Graph) UpdateConnection(c Connection) error {
	if err := checkConnection(c); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.requireBoth(c.From, c.To); err != nil {
		return err
	}
	i := indexOfLink(g.adjacency[c.From], c.To)
	j := indexOfLink(g.adjacency[c.To], c.From)
	if i < 0 || j < 0 {
		return fmt.Errorf("%w: %d-%d", ErrConnectionNotFound, c.From, c.To)
	}
	g.adjacency[c.From][i] = c.link()
	g.adjacency[c.To][j] = c.Reverse().link()

	return nil
}

// RemoveConnection deletes the connection {a,b}. Both mirrored links go
// away under one write lock, so no reader ever sees half of it.
//
// Complexity: O(deg(a) + deg(b)).
func (g *Graph) RemoveConnection(a, b int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.requireBoth(a, b); err != nil {
		return err
	}
	if indexOfLink(g.adjacency[a], b) < 0 {
		return fmt.Errorf("%w: %d-%d", ErrConnectionNotFound, a, b)
	}
	g.adjacency[a] = withoutLink(g.adjacency[a], b)
	g.adjacency[b] = withoutLink(g.adjacency[b], a)
	g.edgeCount--

	return nil
}

// HasConnection reports whether a and b are directly connected.
func (g *Graph) HasConnection(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return indexOfLink(g.adjacency[a], b) >= 0
}

// Connection returns the connection {a,b} oriented as a→b.
func (g *Graph) Connection(a, b int) (Connection, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i := indexOfLink(g.adjacency[a], b)
	if i < 0 {
		return Connection{}, fmt.Errorf("%w: %d-%d", ErrConnectionNotFound, a, b)
	}
	l := g.adjacency[a][i]

	return Connection{From: a, To: b, Distance: l.Distance, Time: l.Time, Description: l.Description}, nil
}

// Neighbors returns a copy of the links stored on id, in insertion order.
// An absent id yields an empty slice, not an error; callers that need to
// tell the two apart check HasCenter first.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.adjacency[id]
	out := make([]Link, len(src))
	copy(out, src)

	return out
}

// Connections returns every connection exactly once, keyed by the
// unordered pair and oriented From < To.
//
// Complexity: O(V log V + E).
func (g *Graph) Connections() []Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]Connection, 0, g.edgeCount)
	for _, id := range ids {
		for _, l := range g.adjacency[id] {
			if l.To < id {
				continue // emitted from the smaller endpoint
			}
			out = append(out, Connection{
				From:        id,
				To:          l.To,
				Distance:    l.Distance,
				Time:        l.Time,
				Description: l.Description,
			})
		}
	}

	return out
}

// ConnectionCount returns the number of undirected connections.
func (g *Graph) ConnectionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

func (g *Graph) requireBoth(a, b int) error {
	if _, ok := g.centers[a]; !ok {
		return fmt.Errorf("%w: %d", ErrCenterNotFound, a)
	}
	if _, ok := g.centers[b]; !ok {
		return fmt.Errorf("%w: %d", ErrCenterNotFound, b)
	}

	return nil
}

// checkConnection validates the attributes of c. Description is the last
// column of a row, so only line breaks are rejected.
func checkConnection(c Connection) error {
	if err := checkDistance(c.Distance); err != nil {
		return err
	}
	if strings.ContainsAny(c.Description, "\r\n") {
		return fmt.Errorf("%w: description %q", ErrBadText, c.Description)
	}

	return nil
}

func checkDistance(d float64) error {
	if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return fmt.Errorf("%w: %v", ErrBadDistance, d)
	}

	return nil
}

func indexOfLink(links []Link, to int) int {
	for i, l := range links {
		if l.To == to {
			return i
		}
	}

	return -1
}

// withoutLink returns a fresh slice holding links minus the one pointing at to.
func withoutLink(links []Link, to int) []Link {
	out := make([]Link, 0, len(links))
	for _, l := range links {
		if l.To != to {
			out = append(out, l)
		}
	}

	return out
}
