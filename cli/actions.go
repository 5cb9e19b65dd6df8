package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/healthnet/core"
	"github.com/katalvlaran/healthnet/matrix"
)

func (c *CLI) addCenter() error {
	var (
		hc  core.Center
		err error
	)
	if hc.ID, err = c.readInt("ID", "Enter Health Center ID: "); err != nil {
		return err
	}
	if hc.Name, err = c.readText("Enter Name: "); err != nil {
		return err
	}
	if hc.District, err = c.readText("Enter District: "); err != nil {
		return err
	}
	if hc.Lat, err = c.readFloat("Latitude", "Enter Latitude: "); err != nil {
		return err
	}
	if hc.Lon, err = c.readFloat("Longitude", "Enter Longitude: "); err != nil {
		return err
	}
	if hc.Capacity, err = c.readInt("Capacity", "Enter Capacity: "); err != nil {
		return err
	}
	if err = c.net.AddCenter(hc); err != nil {
		return err
	}
	c.ok("Health Center added successfully.")
	return nil
}

func (c *CLI) editCenter() error {
	id, err := c.readInt("ID", "Enter Health Center ID to edit: ")
	if err != nil {
		return err
	}
	hc, err := c.net.Center(id)
	if err != nil {
		return err
	}

	if hc.Name, err = c.readTextOr(fmt.Sprintf("Enter new Name (current: %s): ", hc.Name), hc.Name); err != nil {
		return err
	}
	if hc.District, err = c.readTextOr(fmt.Sprintf("Enter new District (current: %s): ", hc.District), hc.District); err != nil {
		return err
	}
	if hc.Lat, err = c.readFloatOr("Latitude", fmt.Sprintf("Enter new Latitude (current: %.4f): ", hc.Lat), hc.Lat); err != nil {
		return err
	}
	if hc.Lon, err = c.readFloatOr("Longitude", fmt.Sprintf("Enter new Longitude (current: %.4f): ", hc.Lon), hc.Lon); err != nil {
		return err
	}
	if hc.Capacity, err = c.readIntOr("Capacity", fmt.Sprintf("Enter new Capacity (current: %d): ", hc.Capacity), hc.Capacity); err != nil {
		return err
	}
	if err = c.net.UpdateCenter(hc); err != nil {
		return err
	}
	c.ok("Health Center updated successfully.")
	return nil
}

func (c *CLI) viewCenters() error {
	centers := c.net.Centers()
	if len(centers) == 0 {
		fmt.Fprintln(c.out, "No health centers found.")
		return nil
	}
	rows := make([][]string, 0, len(centers))
	for _, hc := range centers {
		rows = append(rows, []string{
			strconv.Itoa(hc.ID), hc.Name, hc.District,
			fmt.Sprintf("%.4f", hc.Lat), fmt.Sprintf("%.4f", hc.Lon),
			strconv.Itoa(hc.Capacity),
		})
	}
	c.table([]string{"ID", "Name", "District", "Latitude", "Longitude", "Capacity"}, rows)
	return nil
}

func (c *CLI) removeCenter() error {
	id, err := c.readInt("ID", "Enter Health Center ID to remove: ")
	if err != nil {
		return err
	}
	if err = c.net.RemoveCenter(id); err != nil {
		return err
	}
	c.ok("Health Center and related connections removed successfully.")
	return nil
}

// readPair asks for the two ends of a connection.
func (c *CLI) readPair() (int, int, error) {
	from, err := c.readInt("ID", "Enter From Health Center ID: ")
	if err != nil {
		return 0, 0, err
	}
	to, err := c.readInt("ID", "Enter To Health Center ID: ")
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

func (c *CLI) addConnection() error {
	from, to, err := c.readPair()
	if err != nil {
		return err
	}
	conn := core.Connection{From: from, To: to}
	if conn.Distance, err = c.readFloat("Distance", "Enter Distance (km): "); err != nil {
		return err
	}
	if conn.Time, err = c.readInt("Time", "Enter Time (minutes): "); err != nil {
		return err
	}
	if conn.Description, err = c.readText("Enter Description: "); err != nil {
		return err
	}
	if err = c.net.AddConnection(conn); err != nil {
		return err
	}
	c.ok("Connection added successfully.")
	return nil
}

func (c *CLI) editConnection() error {
	from, to, err := c.readPair()
	if err != nil {
		return err
	}
	conn, err := c.net.Connection(from, to)
	if err != nil {
		return err
	}
	if conn.Distance, err = c.readFloatOr("Distance", fmt.Sprintf("Enter new Distance (km, current: %.2f): ", conn.Distance), conn.Distance); err != nil {
		return err
	}
	if conn.Time, err = c.readIntOr("Time", fmt.Sprintf("Enter new Time (minutes, current: %d): ", conn.Time), conn.Time); err != nil {
		return err
	}
	if conn.Description, err = c.readTextOr(fmt.Sprintf("Enter new Description (current: %s): ", conn.Description), conn.Description); err != nil {
		return err
	}
	if err = c.net.UpdateConnection(conn); err != nil {
		return err
	}
	c.ok("Connection updated successfully.")
	return nil
}

func (c *CLI) viewConnections() error {
	conns := c.net.Connections()
	if len(conns) == 0 {
		fmt.Fprintln(c.out, "No connections found.")
		return nil
	}
	rows := make([][]string, 0, len(conns))
	for _, conn := range conns {
		rows = append(rows, []string{
			strconv.Itoa(conn.From), strconv.Itoa(conn.To),
			fmt.Sprintf("%.2f", conn.Distance), strconv.Itoa(conn.Time),
			conn.Description,
		})
	}
	c.table([]string{"FromID", "ToID", "Distance(km)", "Time(min)", "Description"}, rows)
	return nil
}

func (c *CLI) removeConnection() error {
	from, to, err := c.readPair()
	if err != nil {
		return err
	}
	if err = c.net.RemoveConnection(from, to); err != nil {
		return err
	}
	c.ok("Connection removed successfully.")
	return nil
}

func (c *CLI) viewRelationships() error {
	rels, err := c.net.Relationships()
	if err != nil {
		return err
	}
	if len(rels) == 0 {
		fmt.Fprintln(c.out, "No health centers found.")
		return nil
	}
	rows := make([][]string, 0, len(rels))
	for _, r := range rels {
		rows = append(rows, []string{strconv.Itoa(r.ID), r.Name, r.JoinedConnected(), r.JoinedDescriptions()})
	}
	c.table([]string{"Health Center ID", "Name", "Connected Centers", "Descriptions"}, rows)
	c.ok("Relationships exported successfully.")
	return nil
}

func (c *CLI) shortestPath() error {
	start, err := c.readInt("ID", "Enter start Health Center ID: ")
	if err != nil {
		return err
	}
	end, err := c.readInt("ID", "Enter end Health Center ID: ")
	if err != nil {
		return err
	}
	p, err := c.net.ShortestPath(start, end)
	if err != nil {
		return err
	}
	if !p.Reachable {
		fmt.Fprintf(c.out, "No path exists between %d and %d.\n", start, end)
		return nil
	}
	fmt.Fprintf(c.out, "Shortest distance from %d to %d: %.2f km\n", start, end, p.Distance)
	fmt.Fprintf(c.out, "Path: %s\n", joinIDs(p.Nodes, " -> "))
	return nil
}

func (c *CLI) traverse() error {
	start, err := c.readInt("ID", "Enter start Health Center ID: ")
	if err != nil {
		return err
	}
	order, err := c.net.Traverse(start)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "BFS Traversal starting from %d: %s\n", start, joinIDs(order, " "))
	return nil
}

func (c *CLI) detectCycle() error {
	cycle := c.net.FindCycle()
	if cycle == nil {
		fmt.Fprintln(c.out, "No cycle detected in the network.")
		return nil
	}
	fmt.Fprintf(c.out, "Cycle detected in the network: %s\n", joinIDs(cycle, " -> "))
	return nil
}

func (c *CLI) allPairs() error {
	ap, err := c.net.AllPairsShortestPaths()
	if err != nil {
		return err
	}
	ids := ap.IDs()
	if len(ids) == 0 {
		fmt.Fprintln(c.out, "No health centers found.")
		return nil
	}
	m := ap.Matrix()
	headers := []string{`From\To`}
	for _, id := range ids {
		headers = append(headers, strconv.Itoa(id))
	}
	rows := make([][]string, len(ids))
	for i, id := range ids {
		row := []string{strconv.Itoa(id)}
		for j := range ids {
			d, _ := m.At(i, j)
			row = append(row, formatDistance(d))
		}
		rows[i] = row
	}
	fmt.Fprintln(c.out, "All-Pairs Shortest Paths (distances in km):")
	c.table(headers, rows)
	return c.longestRoute(ap)
}

// longestRoute prints the pair of connected centers that are furthest apart
// by road, first pair in ID order on ties.
func (c *CLI) longestRoute(ap *matrix.AllPairs) error {
	ids := ap.IDs()
	from, to, longest := 0, 0, 0.0
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			d, err := ap.Distance(a, b)
			if err != nil {
				return err
			}
			if !math.IsInf(d, 1) && d > longest {
				from, to, longest = a, b, d
			}
		}
	}
	if longest == 0 {
		return nil
	}
	path, err := ap.Path(from, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Longest shortest route: %s (%.2f km)\n", joinIDs(path, " -> "), longest)
	return nil
}

func (c *CLI) minimumSpanningTree() error {
	if centers, _ := c.net.Size(); centers == 0 {
		fmt.Fprintln(c.out, "No health centers available.")
		return nil
	}
	start, err := c.readInt("ID", "Enter starting Health Center ID: ")
	if err != nil {
		return err
	}
	tree, err := c.net.MinimumSpanningTree(start)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Minimum Spanning Tree Edges:")
	for _, e := range tree.Edges {
		fmt.Fprintf(c.out, "%d - %d (%.2f km)\n", e.From, e.To, e.Distance)
	}
	fmt.Fprintf(c.out, "Total MST weight: %.2f km\n", tree.Total)
	if !tree.Spanning {
		centers, _ := c.net.Size()
		fmt.Fprintf(c.out, "Only %d of %d centers are reachable from %d.\n", tree.Reached, centers, start)
		forest, err := c.net.SpanningForest()
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Spanning forest over all centers: %d components, total %.2f km\n",
			forest.Components, forest.Total)
	}
	return nil
}

func (c *CLI) emergencyRouting() error {
	minCapacity, err := c.readInt("Capacity", "Enter minimum capacity: ")
	if err != nil {
		return err
	}
	start, err := c.readInt("ID", "Enter starting Health Center ID: ")
	if err != nil {
		return err
	}
	r, err := c.net.NearestWithCapacity(start, minCapacity)
	if err != nil {
		return err
	}
	if !r.Found {
		fmt.Fprintf(c.out, "No health center found with capacity >= %d.\n", minCapacity)
		return nil
	}
	fmt.Fprintf(c.out, "Nearest Health Center with capacity >= %d: ID %d (%s), Distance: %.2f km\n",
		minCapacity, r.Center.ID, r.Center.Name, r.Distance)
	fmt.Fprintf(c.out, "Path: %s\n", joinIDs(r.Path, " -> "))
	return nil
}

func (c *CLI) components() error {
	comps := c.net.Components()
	fmt.Fprintf(c.out, "Connected components: %d\n", len(comps))
	for i, comp := range comps {
		fmt.Fprintf(c.out, "%d: %s\n", i+1, joinIDs(comp, ", "))
	}
	return nil
}

func (c *CLI) statistics() error {
	if c.metrics == nil {
		fmt.Fprintln(c.out, "Statistics are not being collected.")
		return nil
	}
	samples, err := c.metrics.Snapshot()
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, []string{s.Name, s.Labels, strconv.FormatFloat(s.Value, 'g', -1, 64)})
	}
	c.table([]string{"Metric", "Labels", "Value"}, rows)
	return nil
}

func joinIDs(ids []int, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, sep)
}
