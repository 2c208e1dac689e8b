// Package bandio: sentinel error set. Matched with errors.Is; I/O context
// (path, position) is added via fmt.Errorf("...: %w") at the call sites.

package bandio

import "errors"

var (
	// ErrBadDimensions indicates that a dimensions file produced a
	// non-positive order or a negative bandwidth.
	ErrBadDimensions = errors.New("bandio: dimensions must satisfy n > 0, k >= 0")

	// ErrTruncated indicates that a source held fewer values than its
	// declared dimensions require. Short inputs are fatal, never under-read.
	ErrTruncated = errors.New("bandio: input shorter than declared dimensions")

	// ErrDimensionMismatch indicates that an in-memory vector disagrees with
	// the length the sink was asked to write.
	ErrDimensionMismatch = errors.New("bandio: dimension mismatch")
)
