// Package store persists the health-center network as three plain-text,
// comma-separated files on an afero filesystem:
//
//	centers:       ID,Name,District,Latitude,Longitude,Capacity
//	connections:   FromID,ToID,DistanceKM,TimeMinutes,Description
//	relationships: Health Center ID,Name,Connected Centers,Descriptions
//
// The files are line-oriented, not RFC 4180: fields are never quoted and the
// connection description runs to the end of the line, commas included.
//
// Loading is lenient. A row that does not parse, fails validation or is
// rejected by the graph store is skipped, logged at warn level and returned
// in the LoadReport; it never aborts the load. A missing file is created
// with just its header.
package store
