// SPDX-License-Identifier: MIT
// Package: quopt/pcbo
//
// errors.go — sentinel errors of the constrained model.
//
// Policy: callers branch with errors.Is; message text is stable and always
// carries the "pcbo:" prefix. Errors that originate in the underlying
// packages (boolpoly.ErrIncompleteAssignment, coeff.ErrUnsubstituted,
// quad.ErrMappingMismatch) are forwarded, not re-wrapped into new kinds.

package pcbo

import "errors"

// ErrInvalidArity is returned when a fixed-arity operation receives the
// wrong number of operands (AddOR needs exactly two) or a nil polynomial.
var ErrInvalidArity = errors.New("pcbo: invalid constraint arity")

// ErrReduction is returned when degree reduction cannot make progress.
// By construction this indicates a broken internal invariant, not bad
// caller input.
var ErrReduction = errors.New("pcbo: degree reduction stalled")

// ErrFrozen is returned by every mutating call after the model has been
// converted to a payload. Conversions freeze the id mapping so that
// payloads, decoded assignments and the model stay aligned.
var ErrFrozen = errors.New("pcbo: model frozen")
