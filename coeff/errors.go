// SPDX-License-Identifier: MIT
// Package: quopt/coeff
//
// errors.go — sentinel errors for the coeff package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     layers above attach context via fmt.Errorf("...: %w", ErrX).

package coeff

import "errors"

// ErrUnsubstituted indicates an attempt to use a coefficient numerically
// (evaluation, conversion to a solver payload, bound computation) while it
// still carries unresolved symbols. Resolve with Substitute first.
// Usage: if errors.Is(err, coeff.ErrUnsubstituted) { /* supply symbol values */ }.
var ErrUnsubstituted = errors.New("coeff: unsubstituted symbol")
