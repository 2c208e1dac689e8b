// Package bandsolve solves symmetric banded linear systems A·x = f through
// LDLT factorization on compact band storage — from the storage layout and
// index arithmetic up to the file-backed solve pipeline.
//
// 🚀 What is bandsolve?
//
//	A focused numeric library that keeps a symmetric band matrix as n band
//	rows plus a diagonal (n·k + n values instead of n²) and runs:
//		• Storage & indexing: O(1) mapping of (row, col) onto compact slots
//		• Factorization: A = L·D·Lᵀ with unit-lower L; the factors own their
//		  storage, the input matrix stays pristine
//		• Triangular solve: forward, diagonal, backward substitution
//		• Verification: dense expansion, expand-free A·x, L·D·Lᵀ recombination
//
// ✨ Why choose bandsolve?
//
//   - Compact — the upper triangle is structural, never stored
//   - Rock-solid guarantees — sentinel errors, fail-fast singularity checks
//   - Deterministic — fixed loop orders, bit-identical reruns
//   - Data-parallel where provably safe, strictly sequential where not
//
// Under the hood, everything is organized under three packages:
//
//	band/    — storage, factorization, triangular solve, reconstruction
//	bandio/  — flat-file sources and sinks (dimensions, band rows, vectors)
//	cmd/     — the bandsolve command: load → factorize → solve → write
//
// Quick example:
//
//	st, _ := band.FromRows(rows, diag)
//	fac, err := band.Factorize(st) // band.ErrSingular ⇒ zero/near-zero pivot
//	x, _ := fac.Solve(f)
//
// See band/example_test.go and examples/ for complete, runnable walkthroughs.
//
//	go get github.com/katalvlaran/bandsolve/band
package bandsolve
