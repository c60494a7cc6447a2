// SPDX-License-Identifier: MIT
// Package: quopt/coeff
//
// coeff.go — the Coeff interface and its numeric implementation.

package coeff

import "strconv"

// Coeff is a coefficient value: a numeric constant or a symbolic expression
// over named symbols. Implementations are immutable; every operation returns
// a fresh value in canonical form.
//
// Contracts:
//   - Add/Mul/Neg are total and never lose symbolic structure.
//   - Substitute replaces the named symbols with numbers and re-normalizes;
//     unlisted symbols survive untouched.
//   - Float reports (value, true) only for fully numeric values.
//   - Equal compares canonical forms, so algebraically identical values built
//     along different routes compare equal.
//   - Symbols lists the distinct symbol names in sorted order (nil if none).
//
// The interface is sealed: only this package may implement it, which is what
// lets every operation trust its operand's canonical form.
type Coeff interface {
	Add(other Coeff) Coeff
	Mul(other Coeff) Coeff
	Neg() Coeff
	Substitute(vals map[string]float64) Coeff
	Float() (float64, bool)
	IsZero() bool
	Equal(other Coeff) bool
	Symbols() []string
	String() string

	sealed()
}

// Num is a numeric constant coefficient.
type Num float64

// Of wraps a float64 as a Coeff.
func Of(v float64) Coeff { return Num(v) }

// Zero and One are the ring identities, handy for accumulation loops.
var (
	Zero = Of(0)
	One  = Of(1)
)

// Add returns n+other. Mixing with a symbolic value defers to the symbolic
// side, which knows how to absorb constants.
func (n Num) Add(other Coeff) Coeff {
	if m, ok := other.(Num); ok {
		return n + m
	}
	return other.Add(n)
}

// Mul returns n·other.
func (n Num) Mul(other Coeff) Coeff {
	if m, ok := other.(Num); ok {
		return n * m
	}
	return other.Mul(n)
}

// Neg returns -n.
func (n Num) Neg() Coeff { return -n }

// Substitute is the identity for constants.
func (n Num) Substitute(map[string]float64) Coeff { return n }

// Float reports the constant's value; always ok.
func (n Num) Float() (float64, bool) { return float64(n), true }

// IsZero reports whether the constant is exactly zero.
func (n Num) IsZero() bool { return n == 0 }

// Equal reports numeric equality with another constant.
func (n Num) Equal(other Coeff) bool {
	m, ok := other.(Num)
	return ok && n == m
}

// Symbols returns nil: constants carry no symbols.
func (n Num) Symbols() []string { return nil }

// String formats the constant with the shortest round-trippable notation.
func (n Num) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

func (n Num) sealed() {}
