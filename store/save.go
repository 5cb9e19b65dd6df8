package store

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/healthnet/core"
)

// Relationship is one row of the relationship table: a center with the IDs
// and descriptions of its connections in adjacency order.
type Relationship struct {
	ID           int
	Name         string
	Connected    []int
	Descriptions []string
}

// Save writes both the centers and the connections file.
func (s *Store) Save(g *core.Graph) error {
	if err := s.SaveCenters(g); err != nil {
		return err
	}
	return s.SaveConnections(g)
}

// SaveCenters rewrites the centers file in insertion order.
// Latitude and longitude carry four decimals.
func (s *Store) SaveCenters(g *core.Graph) error {
	var b bytes.Buffer
	b.WriteString(CentersHeader + "\n")
	for _, c := range g.Centers() {
		fmt.Fprintf(&b, "%d,%s,%s,%.4f,%.4f,%d\n", c.ID, c.Name, c.District, c.Lat, c.Lon, c.Capacity)
	}

	return s.write(FileCenters, s.paths.Centers, b.Bytes())
}

// SaveConnections rewrites the connections file, each connection once with
// the smaller ID first. Distance carries two decimals.
func (s *Store) SaveConnections(g *core.Graph) error {
	var b bytes.Buffer
	b.WriteString(ConnectionsHeader + "\n")
	for _, c := range g.Connections() {
		fmt.Fprintf(&b, "%d,%d,%.2f,%d,%s\n", c.From, c.To, c.Distance, c.Time, c.Description)
	}

	return s.write(FileConnections, s.paths.Connections, b.Bytes())
}

// Relationships builds the relationship table of g in center insertion order.
func Relationships(g *core.Graph) []Relationship {
	centers := g.Centers()
	out := make([]Relationship, 0, len(centers))
	for _, c := range centers {
		r := Relationship{ID: c.ID, Name: c.Name}
		for _, l := range g.Neighbors(c.ID) {
			r.Connected = append(r.Connected, l.To)
			r.Descriptions = append(r.Descriptions, l.Description)
		}
		out = append(out, r)
	}

	return out
}

// JoinedConnected renders Connected as "a;b;c", or "None".
func (r Relationship) JoinedConnected() string {
	if len(r.Connected) == 0 {
		return "None"
	}
	parts := make([]string, len(r.Connected))
	for i, id := range r.Connected {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ";")
}

// JoinedDescriptions renders Descriptions as "x;y;z", or "None".
func (r Relationship) JoinedDescriptions() string {
	if len(r.Connected) == 0 {
		return "None"
	}
	return strings.Join(r.Descriptions, ";")
}

// ExportRelationships writes the relationship table and returns its rows.
func (s *Store) ExportRelationships(g *core.Graph) ([]Relationship, error) {
	rows := Relationships(g)
	var b bytes.Buffer
	b.WriteString(RelationshipsHeader + "\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%d,%s,%s,%s\n", r.ID, r.Name, r.JoinedConnected(), r.JoinedDescriptions())
	}
	if err := s.write(FileRelationships, s.paths.Relationships, b.Bytes()); err != nil {
		return rows, err
	}

	return rows, nil
}
