// Package band: functional configuration for factorization and solving.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.

package band

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotEpsilon is the non-negative magnitude below which a pivot
	// D[i] is treated as zero and factorization fails with ErrSingular.
	// The reference recurrence divides through regardless and lets Inf/NaN
	// propagate; failing fast here is the deliberate improvement. Set 0 via
	// WithPivotEpsilon to reject exact zeros only.
	DefaultPivotEpsilon = 1e-12

	// DefaultWorkers is the number of goroutines used for the data-parallel
	// loops (the per-column multiplier updates during factorization and the
	// diagonal substitution). 1 means fully sequential execution.
	DefaultWorkers = 1

	// minParallelSpan is the smallest loop span worth splitting across
	// workers. Below it goroutine startup dominates the arithmetic.
	minParallelSpan = 64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotEpsInvalid = "band: WithPivotEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid  = "band: WithWorkers: workers must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type options struct {
	pivotEps float64 // >= 0; DefaultPivotEpsilon
	workers  int     // >= 1 after resolution; DefaultWorkers
}

// ---------- Constructors (WithX) ----------

// WithPivotEpsilon sets the pivot tolerance used by Factorize.
// A pivot with |D[i]| <= eps aborts factorization with ErrSingular.
// Panics if eps is negative, NaN or ±Inf (programmer error).
// Complexity: O(1).
func WithPivotEpsilon(eps float64) Option {
	// Validate: tolerance must be a finite non-negative number.
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicPivotEpsInvalid)
	}

	return func(o *options) { o.pivotEps = eps }
}

// WithWorkers sets the goroutine count for the data-parallel loops.
// workers == 0 selects runtime.NumCPU(); workers == 1 forces sequential
// execution. The strictly sequential phases (forward and backward
// substitution) are never parallelized regardless of this setting.
// Panics if workers is negative (programmer error).
// Complexity: O(1).
func WithWorkers(workers int) Option {
	// Validate: negative worker counts are nonsensical.
	if workers < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) {
		if workers == 0 {
			o.workers = runtime.NumCPU()
			return
		}
		o.workers = workers
	}
}

// gatherOptions resolves defaults, applies setters in order, and enforces
// invariants. Internal single entry point for all public APIs.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	// Start from documented defaults.
	o := options{
		pivotEps: DefaultPivotEpsilon,
		workers:  DefaultWorkers,
	}
	// Apply setters in call order (last write wins).
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
