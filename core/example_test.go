package core_test

import (
	"fmt"

	"github.com/katalvlaran/healthnet/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddCenter(core.Center{ID: 1, Name: "Central"})
	_ = g.AddCenter(core.Center{ID: 2, Name: "North"})
	_ = g.AddCenter(core.Center{ID: 3, Name: "East"})
	_ = g.AddConnection(core.Connection{From: 1, To: 2, Distance: 4})
	_ = g.AddConnection(core.Connection{From: 2, To: 3, Distance: 3})

	fmt.Println("Centers:", g.CenterIDs())
	fmt.Println("2-1 connected?", g.HasConnection(2, 1))

	// Removing a center drops its connections as well.
	_ = g.RemoveCenter(2)
	fmt.Println("After removing 2:", g.CenterIDs(), "connections:", g.ConnectionCount())

	// Output:
	// Centers: [1 2 3]
	// 2-1 connected? true
	// After removing 2: [1 3] connections: 0
}

// ExampleGraph_Neighbors shows the mirrored neighbor entries.
func ExampleGraph_Neighbors() {
	g := core.NewGraph()
	_ = g.AddCenter(core.Center{ID: 10})
	_ = g.AddCenter(core.Center{ID: 20})
	_ = g.AddConnection(core.Connection{From: 10, To: 20, Distance: 2.5, Time: 7, Description: "highway"})

	for _, l := range g.Neighbors(20) {
		fmt.Printf("20 -> %d %.1f km %d min %s\n", l.To, l.Distance, l.Time, l.Description)
	}

	// Output:
	// 20 -> 10 2.5 km 7 min highway
}
