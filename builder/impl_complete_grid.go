// SPDX-License-Identifier: MIT
// Package: healthnet/builder
//
// impl_complete_grid.go - Complete and Grid constructors.
//
// Complete(n): every pair connected, n ≥ 1, n(n-1)/2 connections.
// Grid(r, c):  r×c lattice, index = row*c + col, 4-neighborhood,
//              r(c-1) + c(r-1) connections.

package builder

import (
	"fmt"

	"github.com/katalvlaran/healthnet/core"
)

const (
	methodComplete = "Complete"
	methodGrid     = "Grid"

	minCompleteNodes = 1
	minGridSide      = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := ensureCenters(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(methodComplete, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor that builds a rows×cols lattice.
// Connections are added row by row: right neighbor first, then down.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		ids, err := ensureCenters(methodGrid, g, cfg, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				idx := r*cols + c
				if c+1 < cols {
					if err = connect(methodGrid, g, cfg, ids[idx], ids[idx+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = connect(methodGrid, g, cfg, ids[idx], ids[idx+cols]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
