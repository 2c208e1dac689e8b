package band

import "fmt"

// Solve computes x with A·x = rhs from the factorization A = L·D·Lᵀ.
//
// The three substitution phases run strictly in order:
//  1. Forward  (L·y = f):  y[i] = f[i] − Σ_{j≥max(0,i−k)}^{i−1} L[i,j]·y[j].
//     Sequential — y[i] depends on every earlier y inside the band.
//  2. Diagonal (D·z = y):  z[i] = y[i] / D[i].
//     Independent per index; distributed across workers when enabled.
//  3. Backward (Lᵀ·x = z): x[i] = z[i] − Σ_{j=i+1}^{min(n−1,i+k)} L[j,i]·x[j],
//     descending i. Sequential — x[i] depends on every later x inside the band.
//
// Separate y/z/x buffers keep the phase semantics explicit; rhs is read-only.
// Pivots were validated against the pivot epsilon during Factorize, so the
// diagonal phase never divides by (near-)zero. Given finite rhs the result is
// finite and satisfies A·x ≈ rhs up to rounding accumulated over O(n·k)
// operations; no iterative refinement is performed.
//
// Errors:
//   - ErrNilStorage        (nil receiver).
//   - ErrNilVector         (rhs == nil).
//   - ErrDimensionMismatch (len(rhs) != n).
//
// Complexity: O(n·k) time, O(n) memory.
func (f *Factorization) Solve(rhs []float64) ([]float64, error) {
	// Validate receiver and input shape.
	if f == nil {
		return nil, fmt.Errorf("Solve: %w", ErrNilStorage)
	}
	if rhs == nil {
		return nil, fmt.Errorf("Solve: %w", ErrNilVector)
	}
	if len(rhs) != f.n {
		return nil, fmt.Errorf("Solve: len(rhs)=%d, n=%d: %w", len(rhs), f.n, ErrDimensionMismatch)
	}

	n, k := f.n, f.k
	y := make([]float64, n)
	z := make([]float64, n)
	x := make([]float64, n)

	var i, j int
	var sum float64

	// Phase 1: forward substitution, L·y = rhs.
	for i = 0; i < n; i++ {
		sum = 0.0
		for j = max(0, i-k); j < i; j++ {
			sum += f.low[f.slot(i, j)] * y[j]
		}
		y[i] = rhs[i] - sum
	}

	// Phase 2: diagonal substitution, D·z = y. Per-index independent.
	parallelRange(0, n-1, f.workers, func(from, to int) {
		for ii := from; ii <= to; ii++ {
			z[ii] = y[ii] / f.diag[ii]
		}
	})

	// Phase 3: backward substitution, Lᵀ·x = z. Column i of L is read as the
	// mirrored band slots of the rows below i.
	for i = n - 1; i >= 0; i-- {
		sum = 0.0
		for j = i + 1; j < n && j <= i+k; j++ {
			sum += f.low[f.slot(j, i)] * x[j]
		}
		x[i] = z[i] - sum
	}

	return x, nil
}
