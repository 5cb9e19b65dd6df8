// Package prim_kruskal provides Prim's node-keyed minimum spanning tree and
// a Kruskal spanning forest used as an independent cross-check.
package prim_kruskal

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/healthnet/core"
)

// Prim grows a minimum spanning tree from root.
//
// Steps:
//  1. key[v] = +Inf for every center, key[root] = 0.
//  2. Extract the center with the smallest key (ties: lowest ID), skipping
//     stale heap entries; once extracted it is in the tree.
//  3. For each neighbor not yet in the tree, a strictly smaller distance
//     replaces key and parent.
//  4. Stop when the heap is empty. Centers outside root's component are
//     never extracted and the result reports Spanning=false.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, root int) (*Tree, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	if !g.HasCenter(root) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, root)
	}

	n := g.CenterCount()
	key := make(map[int]float64, n)
	parent := make(map[int]int, n)
	parentLink := make(map[int]core.Link, n)
	inMST := make(map[int]bool, n)
	for _, id := range g.CenterIDs() {
		key[id] = math.Inf(1)
	}
	key[root] = 0

	t := &Tree{Root: root, Edges: make([]core.Connection, 0, n-1)}
	pq := &keyPQ{}
	heap.Init(pq)
	heap.Push(pq, keyItem{id: root, key: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(keyItem)
		u := item.id
		if inMST[u] {
			continue // stale entry
		}
		inMST[u] = true
		t.Reached++
		if u != root {
			l := parentLink[u]
			t.Edges = append(t.Edges, core.Connection{
				From:        parent[u],
				To:          u,
				Distance:    l.Distance,
				Time:        l.Time,
				Description: l.Description,
			})
			t.Total += l.Distance
		}
		for _, l := range g.Neighbors(u) {
			v := l.To
			if inMST[v] || l.Distance >= key[v] {
				continue
			}
			key[v] = l.Distance
			parent[v] = u
			parentLink[v] = l
			heap.Push(pq, keyItem{id: v, key: l.Distance})
		}
	}
	t.Spanning = t.Reached == n

	return t, nil
}

// keyItem is a center and its candidate key at push time.
type keyItem struct {
	id  int
	key float64
}

// keyPQ is a min-heap of keyItem ordered by key, then by id.
type keyPQ []keyItem

func (pq keyPQ) Len() int { return len(pq) }

func (pq keyPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}
	return pq[i].id < pq[j].id
}

func (pq keyPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *keyPQ) Push(x interface{}) { *pq = append(*pq, x.(keyItem)) }

func (pq *keyPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
