package core

// Clone returns a deep copy of g: centers, insertion order, adjacency and
// the ID bound. The copy shares no memory with g, so callers can run
// algorithms against it while g keeps changing.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cp := &Graph{
		maxID:     g.maxID,
		centers:   make(map[int]*Center, len(g.centers)),
		order:     append([]int(nil), g.order...),
		adjacency: make(map[int][]Link, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for id, c := range g.centers {
		v := *c
		cp.centers[id] = &v
	}
	for id, links := range g.adjacency {
		cp.adjacency[id] = append([]Link(nil), links...)
	}

	return cp
}
