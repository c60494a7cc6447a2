// Package brute — sentinel errors.
//
// Policy: callers branch on these with errors.Is; no dynamic error text
// beyond the stable prefix "brute:".

package brute

import "errors"

// ErrTooManyVariables is returned by Minimize when the variable count
// exceeds the configured cap (WithMaxVariables, default 24).
//
// Usage: shrink the problem or raise the cap explicitly — the cap exists
// so that an accidental 2⁶⁰-state scan fails fast instead of hanging.
var ErrTooManyVariables = errors.New("brute: too many variables")

// ErrIncompleteSearch is returned when the time budget expired or the
// context was cancelled before the scan covered every assignment.
//
// Usage: the accompanying Result still holds the best incumbent found so
// far; treat its Value as an upper bound, not as the optimum.
var ErrIncompleteSearch = errors.New("brute: search incomplete")

// ErrNoAdmissibleSolution is returned when the scan completed but every
// assignment was rejected by the validator (or evaluated to +Inf).
var ErrNoAdmissibleSolution = errors.New("brute: no admissible solution")
