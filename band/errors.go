// Package band: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the band
// package. All algorithms MUST return these sentinels and tests MUST check
// them via errors.Is. No algorithm panics on user-triggered error conditions;
// panics are reserved for programmer errors (invalid option values).

package band

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "band: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that a requested order or bandwidth is
	// invalid (n <= 0 or k < 0). Constructors must validate before allocating.
	ErrInvalidDimensions = errors.New("band: dimensions must satisfy n > 0, k >= 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("band: index out of range")

	// ErrOutOfBand indicates a write to an entry that lies outside the stored
	// band. Such entries are structurally zero and cannot hold a value.
	ErrOutOfBand = errors.New("band: entry outside stored band")

	// ErrDimensionMismatch indicates incompatible lengths between the storage
	// and a supplied vector or row set (e.g. len(f) != n).
	ErrDimensionMismatch = errors.New("band: dimension mismatch")

	// ErrNilStorage indicates that a nil *Storage or *Factorization was used.
	ErrNilStorage = errors.New("band: nil storage")

	// ErrNilVector indicates that a nil vector was passed where a length-n
	// slice is required.
	ErrNilVector = errors.New("band: nil vector")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (ingestion via FromRows or Set).
	ErrNaNInf = errors.New("band: NaN or Inf encountered")

	// ErrSingular is returned when a zero (or near-zero, within the pivot
	// epsilon) pivot D[i] is encountered during factorization. The matrix is
	// singular or requires pivoting, which this non-pivoting scheme does not
	// perform; the factorization is abandoned and no partial result escapes.
	ErrSingular = errors.New("band: singular matrix")
)
