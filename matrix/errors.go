// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/healthnet/core"
)

var (
	// ErrBadShape is returned when requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrGraphNil indicates that a nil *core.Graph was passed into ShortestPaths.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrVertexNotFound indicates a center that is not part of the all-pairs index.
	ErrVertexNotFound = fmt.Errorf("matrix: %w", core.ErrCenterNotFound)
)

// matrixErrorf prefixes err with the operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
