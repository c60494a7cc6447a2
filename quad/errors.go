// errors.go — sentinel errors for the quad package.
//
// Callers branch with errors.Is; producers wrap with %w to attach the
// offending id or fingerprint.

package quad

import "errors"

// ErrIncompleteAssignment indicates a payload evaluation over an assignment
// that lacks a value for some id the payload references.
var ErrIncompleteAssignment = errors.New("quad: incomplete assignment")

// ErrMappingMismatch indicates an attempt to decode or cross-apply a payload
// (or a solution derived from one) against a variable mapping other than the
// one it was produced from.
var ErrMappingMismatch = errors.New("quad: payload mapping mismatch")

// ErrSpinDomain indicates a spin assignment value outside {-1, +1}.
var ErrSpinDomain = errors.New("quad: spin value out of domain")
