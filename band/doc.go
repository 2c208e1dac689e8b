// Package band solves symmetric banded linear systems A·x = f via LDLT
// (square-root-free Cholesky) factorization on compact band storage.
//
// 🚀 What is band?
//
//	A symmetric matrix whose nonzero entries lie within a fixed distance k
//	of the main diagonal needs only n·k + n stored values instead of n².
//	band keeps exactly that: the strictly-lower band rows plus the diagonal,
//	and runs the whole factor/solve pipeline on the compact layout:
//	  • Storage       — n×k band rows + length-n diagonal, O(1) indexing
//	  • Factorize     — A = L·D·Lᵀ with unit-lower L, in O(n·k²)
//	  • Solve         — forward / diagonal / backward substitution, O(n·k)
//	  • Dense, MulVec — verification helpers (expansion, residual checks)
//
// ✨ Why choose band?
//
//   - Compact — upper triangle is never materialized; symmetry is structural
//   - Safe by construction — sentinel errors, no panics on user input
//   - Deterministic — fixed loop orders; identical inputs, identical bits
//   - Verifiable — Reconstruct recombines L·D·Lᵀ for residual validation
//
// ⚙️ Usage:
//
//	st, _ := band.FromRows(rows, diag)      // n×k band rows + diagonal
//	fac, err := band.Factorize(st)          // st stays untouched
//	if err != nil {
//	  // errors.Is(err, band.ErrSingular) ⇒ zero/near-zero pivot
//	}
//	x, err := fac.Solve(f)                  // Ly=f, Dz=y, Lᵀx=z
//
// Performance:
//
//   - Factorize: O(n·k²) time, O(n·k) memory (owns its own copy)
//   - Solve:     O(n·k)  time, O(n)   memory
//
// See example_test.go for complete walkthroughs, including the Hilbert
// generator used for numerical-stability experiments.
package band
