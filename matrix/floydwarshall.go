// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order.
//   - In-place, O(n³) time; the optional next-hop table costs O(n²) extra.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.

package matrix

import "math"

const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Determinism: loop order is fixed (k → i → j) and only strictly shorter
// candidates replace a value.
func FloydWarshall(m *Dense) error {
	if m == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}
	if m.r != m.c {
		return matrixErrorf(opFloydWarshall, ErrNonSquare)
	}
	floydWarshallInPlace(m, nil)

	return nil
}

// floydWarshallInPlace runs the closure on d. When next is non-nil it is an
// n×n row-major next-hop table (next[i*n+j] = first step on i→j, -1 if none)
// and is kept in sync with every relaxation.
func floydWarshallInPlace(d *Dense, next []int) {
	n := d.r
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
					if next != nil {
						next[baseI+j] = next[baseI+k]
					}
				}
			}
		}
	}
}
