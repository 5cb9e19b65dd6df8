// SPDX-License-Identifier: MIT
// Package: healthnet/builder
//
// impl_path_cycle_star.go - Path, Cycle and Star constructors.
//
// Canonical models:
//   Path(n):   chain 0-1-…-(n-1), n ≥ 2, n-1 connections.
//   Cycle(n):  ring 0-1-…-(n-1)-0, n ≥ 3, n connections.
//   Star(n):   hub 0 connected to leaves 1…n-1, n ≥ 2, n-1 connections.
//
// IDs are offset by WithIDOffset. Existing centers and connections are kept.

package builder

import (
	"fmt"

	"github.com/katalvlaran/healthnet/core"
)

// File-local constants (no magic numbers).
const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path returns a Constructor that builds a simple chain of n centers.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := ensureCenters(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(methodPath, g, cfg, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a ring of n centers.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := ensureCenters(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(methodCycle, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that connects center 0 (the hub) to every
// other center.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids, err := ensureCenters(methodStar, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(methodStar, g, cfg, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
