// Package band provides compact storage for symmetric band matrices.
// Storage keeps the strictly-lower band rows in a flat row-major slice plus a
// separate diagonal, mirroring entries above the diagonal structurally instead
// of materializing them.
package band

import (
	"fmt"
	"math"
	"strings"
)

// Storage is a symmetric band matrix of order n with half-bandwidth k.
//
// The strictly-lower entry (i, j) with 1 <= i-j <= k lives in the flat slot
// i*k + (k - i + j); rows with i < k simply leave their leading slots unused
// (zero). The diagonal lives in its own slice. Entries with |i-j| > k are
// structurally zero and never stored; the upper triangle is read through the
// lower one by symmetry.
type Storage struct {
	n, k int       // order and half-bandwidth
	band []float64 // flat lower-band slots, length n*k
	diag []float64 // diagonal entries, length n
}

// New creates a zero-initialized Storage of order n and half-bandwidth k.
// Stage 1 (Validate): ensure n > 0 and k >= 0.
// Stage 2 (Prepare): allocate flat band and diagonal slices.
// Stage 3 (Finalize): return new Storage or ErrInvalidDimensions.
// Complexity: O(n*k) time and memory.
func New(n, k int) (*Storage, error) {
	// Validate dimensions
	if n <= 0 || k < 0 {
		return nil, ErrInvalidDimensions
	}

	// Allocate compact backing slices
	return &Storage{
		n:    n,
		k:    k,
		band: make([]float64, n*k),
		diag: make([]float64, n),
	}, nil
}

// FromRows builds a Storage from n band rows of k values each plus a length-n
// diagonal, copying both. Row i's slot k-i+j (for j in [max(0,i-k), i)) holds
// the matrix entry (i, j); leading slots of the first k rows are padding and
// are copied verbatim so externally produced row sets round-trip bit-for-bit.
// Stage 1 (Validate): shape checks — this is the fatal-on-short-input policy;
// a source that supplies fewer than n rows or rows shorter than k is rejected
// rather than silently under-read.
// Stage 2 (Validate): reject NaN/±Inf anywhere in the payload.
// Stage 3 (Execute): copy rows and diagonal into fresh backing slices.
// Errors: ErrNilVector, ErrDimensionMismatch, ErrNaNInf, ErrInvalidDimensions.
// Complexity: O(n*k) time and memory.
func FromRows(rows [][]float64, diag []float64) (*Storage, error) {
	// Validate presence of both sources.
	if rows == nil || diag == nil {
		return nil, fmt.Errorf("FromRows: %w", ErrNilVector)
	}
	n := len(diag)
	if n == 0 || len(rows) != n {
		return nil, fmt.Errorf("FromRows: %d rows for %d diagonal entries: %w", len(rows), n, ErrDimensionMismatch)
	}
	// All rows must agree on the bandwidth.
	k := len(rows[0])
	for i := 1; i < n; i++ {
		if len(rows[i]) != k {
			return nil, fmt.Errorf("FromRows: row %d has %d slots, want %d: %w", i, len(rows[i]), k, ErrDimensionMismatch)
		}
	}

	st, err := New(n, k)
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}

	// Copy with finite-value validation.
	var i, j int
	for i = 0; i < n; i++ {
		if math.IsNaN(diag[i]) || math.IsInf(diag[i], 0) {
			return nil, fmt.Errorf("FromRows: diag[%d]: %w", i, ErrNaNInf)
		}
		st.diag[i] = diag[i]
		for j = 0; j < k; j++ {
			if math.IsNaN(rows[i][j]) || math.IsInf(rows[i][j], 0) {
				return nil, fmt.Errorf("FromRows: row %d slot %d: %w", i, j, ErrNaNInf)
			}
			st.band[i*k+j] = rows[i][j]
		}
	}

	return st, nil
}

// N returns the matrix order.
// Complexity: O(1).
func (s *Storage) N() int { return s.n }

// Bandwidth returns the half-bandwidth k.
// Complexity: O(1).
func (s *Storage) Bandwidth() int { return s.k }

// slot computes the flat band index of the strictly-lower entry (i, j).
// Precondition (caller-checked): 1 <= i-j <= k.
// Complexity: O(1).
func (s *Storage) slot(i, j int) int {
	return i*s.k + s.k - i + j
}

// checkIndex validates that (i, j) addresses a cell of the logical n×n matrix.
// Returns ErrOutOfRange otherwise. Out-of-band cells are valid to address —
// they read as zero — so no band check happens here.
// Complexity: O(1).
func (s *Storage) checkIndex(i, j int) error {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return fmt.Errorf("index (%d,%d) of %dx%d: %w", i, j, s.n, s.n, ErrOutOfRange)
	}

	return nil
}

// At retrieves the logical matrix entry (i, j).
// Stage 1 (Validate): bounds check against [0, n).
// Stage 2 (Execute): diagonal, mirrored lower-band slot, or structural zero.
// Reads above the diagonal are answered from the transposed lower slot; the
// upper band has no storage of its own.
// Complexity: O(1).
func (s *Storage) At(i, j int) (float64, error) {
	if err := s.checkIndex(i, j); err != nil {
		return 0, fmt.Errorf("At: %w", err)
	}

	// Diagonal entry.
	if i == j {
		return s.diag[i], nil
	}
	// Normalize to the lower triangle: the row with the larger index owns the slot.
	if j > i {
		i, j = j, i
	}
	if i-j > s.k {
		return 0, nil // structural zero outside the band
	}

	return s.band[s.slot(i, j)], nil
}

// Set assigns v to the logical matrix entry (i, j), writing the mirrored
// lower slot for upper-triangle coordinates.
// Stage 1 (Validate): bounds check, finite-value check.
// Stage 2 (Execute): diagonal or band slot write; out-of-band cells are
// structurally zero and reject writes with ErrOutOfBand.
// Complexity: O(1).
func (s *Storage) Set(i, j int, v float64) error {
	if err := s.checkIndex(i, j); err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Set(%d,%d): %w", i, j, ErrNaNInf)
	}

	if i == j {
		s.diag[i] = v
		return nil
	}
	if j > i {
		i, j = j, i
	}
	if i-j > s.k {
		return fmt.Errorf("Set(%d,%d): bandwidth %d: %w", i, j, s.k, ErrOutOfBand)
	}
	s.band[s.slot(i, j)] = v

	return nil
}

// Clone returns a deep copy of the Storage.
// Complexity: O(n*k) time and memory.
func (s *Storage) Clone() *Storage {
	bandCopy := make([]float64, len(s.band))
	copy(bandCopy, s.band)
	diagCopy := make([]float64, len(s.diag))
	copy(diagCopy, s.diag)

	return &Storage{n: s.n, k: s.k, band: bandCopy, diag: diagCopy}
}

// Dense expands the compact storage into an explicit n×n matrix.
// Symmetric by construction: only the stored lower band and diagonal are
// read, and each off-diagonal value is written to both triangles.
// Complexity: O(n²) time and memory — verification/debugging only.
func (s *Storage) Dense() [][]float64 {
	out := make([][]float64, s.n)
	var i, j int
	for i = 0; i < s.n; i++ {
		out[i] = make([]float64, s.n)
		out[i][i] = s.diag[i]
	}
	for i = 0; i < s.n; i++ {
		// Mirror each stored lower entry into both triangles.
		for j = max(0, i-s.k); j < i; j++ {
			v := s.band[s.slot(i, j)]
			out[i][j] = v
			out[j][i] = v
		}
	}

	return out
}

// MulVec computes y = A·x against the compact storage without expanding A.
// Each stored lower entry (i, j) contributes to both y[i] (as A[i,j]·x[j])
// and y[j] (as the mirrored A[j,i]·x[i]); the diagonal contributes once.
// Used to validate a computed solution via the residual ‖A·x − f‖; never on
// the solve path itself.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n*k) time, O(n) memory.
func (s *Storage) MulVec(x []float64) ([]float64, error) {
	if x == nil {
		return nil, fmt.Errorf("MulVec: %w", ErrNilVector)
	}
	if len(x) != s.n {
		return nil, fmt.Errorf("MulVec: len(x)=%d, n=%d: %w", len(x), s.n, ErrDimensionMismatch)
	}

	res := make([]float64, s.n)
	var i, j int
	var v float64
	for i = 0; i < s.n; i++ {
		for j = max(0, i-s.k); j < i; j++ {
			v = s.band[s.slot(i, j)]
			res[i] += v * x[j] // lower-triangle contribution
			res[j] += v * x[i] // mirrored upper-triangle contribution
		}
		res[i] += s.diag[i] * x[i]
	}

	return res, nil
}

// String renders the raw band rows and diagonal in fixed-width columns for
// debugging. The expanded symmetric matrix is available via Dense.
func (s *Storage) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.k; j++ {
			fmt.Fprintf(&sb, "%10.4f ", s.band[i*s.k+j])
		}
		fmt.Fprintf(&sb, "| %10.4f\n", s.diag[i])
	}

	return sb.String()
}
