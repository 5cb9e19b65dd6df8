// File: methods_centers.go
// Role: Center lifecycle & queries: AddCenter/UpdateCenter/RemoveCenter,
//       HasCenter/Center/Centers/CenterIDs/CenterCount.
// Determinism:
//   - Centers() returns insertion order.
//   - CenterIDs() returns ascending IDs.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// AddCenter inserts a new center.
//
// Steps:
//  1. Validate ID (ErrNegativeID, ErrIDOutOfRange) and text (ErrBadText).
//  2. Lock mu, reject an existing ID (ErrDuplicateCenter).
//  3. Store a copy and append the ID to the insertion order.
//
// Complexity: O(1) amortized.
func (g *Graph) AddCenter(c Center) error {
	if err := g.checkID(c.ID); err != nil {
		return err
	}
	if err := checkCenterText(c); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.centers[c.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateCenter, c.ID)
	}
	stored := c
	g.centers[c.ID] = &stored
	g.order = append(g.order, c.ID)

	return nil
}

// UpdateCenter replaces the descriptive attributes of an existing center.
// Connections are untouched. Text is checked as in AddCenter.
//
// Complexity: O(1).
func (g *Graph) UpdateCenter(c Center) error {
	if err := checkCenterText(c); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	cur, ok := g.centers[c.ID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrCenterNotFound, c.ID)
	}
	*cur = c

	return nil
}

// RemoveCenter deletes a center and every connection touching it.
//
// Steps:
//  1. Lock mu, ErrCenterNotFound if missing.
//  2. For each neighbor n, rebuild n's link list without id (filtered copy).
//  3. Drop id's own adjacency, the center and its slot in the insertion order.
//
// Complexity: O(Σ deg(n)) over the neighbors of id.
func (g *Graph) RemoveCenter(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.centers[id]; !ok {
		return fmt.Errorf("%w: %d", ErrCenterNotFound, id)
	}

	for _, l := range g.adjacency[id] {
		g.adjacency[l.To] = withoutLink(g.adjacency[l.To], id)
		g.edgeCount--
	}
	delete(g.adjacency, id)
	delete(g.centers, id)

	kept := g.order[:0]
	for _, v := range g.order {
		if v != id {
			kept = append(kept, v)
		}
	}
	g.order = kept

	return nil
}

// HasCenter reports whether a center with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasCenter(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.centers[id]

	return ok
}

// Center returns a copy of the center with the given ID.
func (g *Graph) Center(id int) (Center, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, ok := g.centers[id]
	if !ok {
		return Center{}, fmt.Errorf("%w: %d", ErrCenterNotFound, id)
	}

	return *c, nil
}

// Centers returns copies of all centers in insertion order.
// Complexity: O(V).
func (g *Graph) Centers() []Center {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Center, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.centers[id])
	}

	return out
}

// CenterIDs returns every center ID in ascending order.
// Complexity: O(V log V).
func (g *Graph) CenterIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.centers))
	for id := range g.centers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// CenterCount returns the number of centers.
func (g *Graph) CenterCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.centers)
}

// MaxCenterID reports the configured ID bound (0 when unbounded).
func (g *Graph) MaxCenterID() int {
	return g.maxID
}

func (g *Graph) checkID(id int) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeID, id)
	}
	if g.maxID > 0 && id > g.maxID {
		return fmt.Errorf("%w: %d > %d", ErrIDOutOfRange, id, g.maxID)
	}

	return nil
}

// checkCenterText keeps Name and District free of the characters that
// delimit a center row.
func checkCenterText(c Center) error {
	if strings.ContainsAny(c.Name, ",\r\n") {
		return fmt.Errorf("%w: name %q", ErrBadText, c.Name)
	}
	if strings.ContainsAny(c.District, ",\r\n") {
		return fmt.Errorf("%w: district %q", ErrBadText, c.District)
	}

	return nil
}
