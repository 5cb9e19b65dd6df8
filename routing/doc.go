// Package routing answers capacity-constrained queries: the nearest center,
// by road distance, that can still take at least a given number of patients.
//
// Distances come from a full Dijkstra run from the start center. The start
// itself is never a candidate and neither is any center whose Capacity is
// below the requested minimum. Among qualifying centers the smallest
// distance wins; equal distances resolve to the lowest ID.
package routing
