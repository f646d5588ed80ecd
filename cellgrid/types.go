// SPDX-License-Identifier: MIT

// Package cellgrid: sentinel errors for grid construction.
package cellgrid

import "errors"

var (
	// ErrBadExtents indicates a constructor was given a non-positive bank or
	// channel extent. Construction is the only operation that can fail.
	ErrBadExtents = errors.New("cellgrid: extents must be positive")

	// ErrExtentMismatch indicates two grids with different extents were
	// combined in a whole-grid operation that requires matching shapes.
	ErrExtentMismatch = errors.New("cellgrid: grid extents do not match")
)
