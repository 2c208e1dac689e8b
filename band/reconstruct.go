package band

import "fmt"

// Reconstruct recombines the factors as L·D·Lᵀ and returns the product as a
// fresh band Storage. For an exact-arithmetic factorization the result equals
// the original matrix; comparing the two bounds the factorization's rounding
// error, which is the whole point — this is a verification facility, never
// part of the solve path.
//
// Entry formulas (lower triangle, j < i within the band):
//
//	A[i,i] = D[i] + Σ_{m≥max(0,i−k)}^{i−1} L[i,m]²·D[m]
//	A[i,j] = L[i,j]·D[j] + Σ_{m≥max(0,i−k)}^{j−1} L[i,m]·D[m]·L[j,m]
//
// The m window starts at the band edge of row i: both factors are stored
// there, and row j's slots reach at least as far back.
//
// Errors: ErrNilStorage (nil receiver).
// Complexity: O(n·k²) time, O(n·k) memory.
func (f *Factorization) Reconstruct() (*Storage, error) {
	if f == nil {
		return nil, fmt.Errorf("Reconstruct: %w", ErrNilStorage)
	}

	st, err := New(f.n, f.k)
	if err != nil {
		return nil, fmt.Errorf("Reconstruct: %w", err)
	}

	var i, j, m int
	var acc float64
	for i = 0; i < f.n; i++ {
		// Diagonal entry.
		acc = f.diag[i]
		for m = max(0, i-f.k); m < i; m++ {
			lim := f.low[f.slot(i, m)]
			acc += lim * lim * f.diag[m]
		}
		st.diag[i] = acc

		// Strictly-lower band entries of row i.
		for j = max(0, i-f.k); j < i; j++ {
			acc = f.low[f.slot(i, j)] * f.diag[j]
			for m = max(0, i-f.k); m < j; m++ {
				acc += f.low[f.slot(i, m)] * f.diag[m] * f.low[f.slot(j, m)]
			}
			st.band[st.slot(i, j)] = acc
		}
	}

	return st, nil
}
