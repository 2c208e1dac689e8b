package band

import (
	"fmt"
	"math"
	"sync"
)

// Factorization is the result of the LDLT decomposition A = L·D·Lᵀ of a
// symmetric band matrix: a unit-lower-triangular L with the same bandwidth as
// A and a diagonal D of pivots. It owns its own storage — the input Storage
// is never mutated — so the original matrix stays available for residual
// checks without any reload step.
type Factorization struct {
	n, k    int       // order and half-bandwidth, copied from the input
	low     []float64 // strictly-lower multipliers of L, Storage band layout
	diag    []float64 // pivots D[0..n-1]
	workers int       // goroutine count for the data-parallel loops
}

// slot computes the flat index of multiplier L[i,j].
// Precondition (caller-checked): 1 <= i-j <= k.
// Complexity: O(1).
func (f *Factorization) slot(i, j int) int {
	return i*f.k + f.k - i + j
}

// Factorize decomposes the symmetric band matrix a as L·D·Lᵀ.
//
// Implementation:
//   - Stage 1: validate the input and resolve options; copy band and diagonal
//     into a fresh Factorization (a is read-only from here on).
//   - Stage 2: for i = 0..n-1 in order:
//     pivot   D[i] = A[i,i] − Σ_{j≥max(0,i−k)}^{i−1} L[i,j]²·D[j],
//     column  L[j,i] = (A[j,i] − Σ_m L[j,m]·L[i,m]·D[m]) / D[i]
//     for every j in (i, min(n−1, i+k)].
//
// The recurrence only reads rows/columns already finalized by earlier
// iterations, and for a fixed i the column writes L[j,i] hit pairwise
// disjoint slots, so that inner loop is distributed across workers when
// WithWorkers enables it. The outer loop stays sequential: D[i] must be
// final before anything divides by it.
//
// Behavior highlights:
//   - Deterministic: fixed loop orders; identical inputs, identical bits.
//   - Near-zero pivots fail fast with ErrSingular instead of letting the
//     division produce Inf/NaN that would poison every later entry.
//
// Errors:
//   - ErrNilStorage (a == nil).
//   - ErrSingular   (|D[i]| <= pivot epsilon at some step i).
//
// Complexity:
//   - Time O(n·k²), Space O(n·k) for the owned copy.
func Factorize(a *Storage, opts ...Option) (*Factorization, error) {
	// Validate input presence.
	if a == nil {
		return nil, fmt.Errorf("Factorize: %w", ErrNilStorage)
	}
	o := gatherOptions(opts...)

	// Own a private copy: A's storage stays pristine.
	n, k := a.n, a.k
	f := &Factorization{
		n:       n,
		k:       k,
		low:     make([]float64, n*k),
		diag:    make([]float64, n),
		workers: o.workers,
	}
	copy(f.low, a.band)
	copy(f.diag, a.diag)

	var i, j int
	var sumD, di float64
	for i = 0; i < n; i++ {
		// Pivot: D[i] = A[i,i] − Σ L[i,j]²·D[j] over the band window of row i.
		sumD = 0.0
		for j = max(0, i-k); j < i; j++ {
			lij := f.low[f.slot(i, j)]
			sumD += lij * lij * f.diag[j]
		}
		f.diag[i] -= sumD

		di = f.diag[i]
		if math.Abs(di) <= o.pivotEps {
			return nil, fmt.Errorf("Factorize: pivot %d = %g: %w", i, di, ErrSingular)
		}

		// Column i multipliers: disjoint writes L[j,i] for j in (i, i+k].
		// m starts at max(0, j−k): terms below it pair a structural zero of
		// row j and contribute nothing.
		parallelRange(i+1, min(n-1, i+k), o.workers, func(from, to int) {
			var jj, mm int
			var acc float64
			for jj = from; jj <= to; jj++ {
				acc = 0.0
				for mm = max(0, jj-k); mm < i; mm++ {
					acc += f.low[f.slot(jj, mm)] * f.low[f.slot(i, mm)] * f.diag[mm]
				}
				f.low[f.slot(jj, i)] = (f.low[f.slot(jj, i)] - acc) / di
			}
		})
	}

	return f, nil
}

// N returns the order of the factored matrix.
// Complexity: O(1).
func (f *Factorization) N() int { return f.n }

// Bandwidth returns the half-bandwidth k of L.
// Complexity: O(1).
func (f *Factorization) Bandwidth() int { return f.k }

// Pivots returns a copy of the diagonal D.
// Complexity: O(n).
func (f *Factorization) Pivots() []float64 {
	out := make([]float64, f.n)
	copy(out, f.diag)

	return out
}

// Lower returns the entry (i, j) of the unit-lower-triangular factor L:
// 1 on the diagonal, the stored multiplier inside the band, 0 elsewhere.
// Errors: ErrOutOfRange for indices outside [0, n).
// Complexity: O(1).
func (f *Factorization) Lower(i, j int) (float64, error) {
	if i < 0 || i >= f.n || j < 0 || j >= f.n {
		return 0, fmt.Errorf("Lower(%d,%d): %w", i, j, ErrOutOfRange)
	}

	switch {
	case i == j:
		return 1, nil // implicit unit diagonal
	case j > i || i-j > f.k:
		return 0, nil // upper triangle or outside the band
	default:
		return f.low[f.slot(i, j)], nil
	}
}

// parallelRange runs body over the inclusive range [lo, hi], splitting it
// into contiguous chunks across up to `workers` goroutines. Short spans and
// workers <= 1 run inline; callers guarantee that concurrent chunks write
// disjoint locations.
func parallelRange(lo, hi, workers int, body func(from, to int)) {
	span := hi - lo + 1
	if span <= 0 {
		return
	}
	if workers <= 1 || span < minParallelSpan {
		body(lo, hi)
		return
	}

	chunk := (span + workers - 1) / workers
	var wg sync.WaitGroup
	for start := lo; start <= hi; start += chunk {
		end := min(start+chunk-1, hi)
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			body(from, to)
		}(start, end)
	}
	wg.Wait()
}
