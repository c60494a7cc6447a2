// Package brute — functional configuration for the exhaustive solver.
//
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package brute

import (
	"math"
	"time"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMaxVariables caps the exhaustive scan at 2²⁴ assignments.
	// Larger instances must opt in explicitly via WithMaxVariables.
	DefaultMaxVariables = 24

	// DefaultEps is the non-negative tolerance for energy ties: two
	// assignments are co-optimal when their energies differ by ≤ eps.
	DefaultEps = 1e-9

	// DefaultWorkers runs the scan on a single goroutine. Parallel shards
	// require the objective (and validator) to be safe for concurrent use.
	DefaultWorkers = 1

	// maxVariablesHardCap bounds WithMaxVariables so that the assignment
	// counter always fits a uint64 with headroom.
	maxVariablesHardCap = 62
)

// Internal panic messages (no magic strings).
const (
	panicMaxVariablesInvalid = "brute: WithMaxVariables: n must be in [1, 62]"
	panicEpsInvalid          = "brute: WithEps: eps must be finite, non-negative"
	panicWorkersInvalid      = "brute: WithWorkers: count must be >= 1"
	panicTimeLimitInvalid    = "brute: WithTimeLimit: budget must be >= 0"
	panicValidatorNil        = "brute: WithValidator: fn must be non-nil"
	panicNilObjective        = "brute: Minimize: nil objective"
)

// Validator inspects one full assignment and reports whether it is
// admissible. A returned error aborts the whole search.
type Validator func(assignment map[int]bool) (bool, error)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; Minimize accepts
// `...Option` and resolves them via gatherOptions.
type Options struct {
	maxVariables int
	eps          float64
	timeLimit    time.Duration // 0 ⇒ no budget
	workers      int
	validator    Validator
	firstOnly    bool
}

// WithMaxVariables raises (or lowers) the variable-count cap.
// Panics when n is outside [1, 62].
func WithMaxVariables(n int) Option {
	if n < 1 || n > maxVariablesHardCap {
		panic(panicMaxVariablesInvalid)
	}

	return func(o *Options) { o.maxVariables = n }
}

// WithEps sets the tie tolerance for co-optimal assignments.
// Panics when eps is negative, NaN or ±Inf.
func WithEps(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithTimeLimit sets a soft wall-clock budget for the scan. The budget is
// checked sparsely (every 4096 assignments) so its overhead is negligible;
// zero disables the budget. Panics when d is negative.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(panicTimeLimitInvalid)
	}

	return func(o *Options) { o.timeLimit = d }
}

// WithWorkers shards the scan across count goroutines over contiguous
// assignment ranges. Results are identical to the single-worker scan.
// Panics when count < 1.
func WithWorkers(count int) Option {
	if count < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = count }
}

// WithValidator filters assignments before evaluation; inadmissible
// assignments never reach the objective. Panics when fn is nil.
func WithValidator(fn Validator) Option {
	if fn == nil {
		panic(panicValidatorNil)
	}

	return func(o *Options) { o.validator = fn }
}

// WithFirstOnly keeps only the first optimum in scan order instead of
// collecting every co-optimal assignment. The scan itself is unchanged.
func WithFirstOnly() Option {
	return func(o *Options) { o.firstOnly = true }
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		maxVariables: DefaultMaxVariables,
		eps:          DefaultEps,
		workers:      DefaultWorkers,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
