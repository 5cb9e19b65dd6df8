// SPDX-License-Identifier: MIT
// Package: healthnet/builder
//
// impl_random_sparse.go - Erdős–Rényi style G(n, p) constructor.
//
// Contract:
//   • n ≥ 1, 0 ≤ p ≤ 1, RNG required (WithSeed / WithRand).
//   • Pairs are visited in (i<j) lexicographic order and each one is kept
//     with probability p, so the graph is a pure function of (n, p, seed).

package builder

import (
	"fmt"

	"github.com/katalvlaran/healthnet/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
)

// RandomSparse returns a Constructor that builds G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || p != p {
			return fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := ensureCenters(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err = connect(methodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
