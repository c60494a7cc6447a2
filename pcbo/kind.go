// SPDX-License-Identifier: MIT
// Package: quopt/pcbo
//
// kind.go — the closed constraint-relation enum and the per-kind store.

package pcbo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quopt/boolpoly"
	"github.com/katalvlaran/quopt/coeff"
)

// Kind names the relation a constraint polynomial is held to. The set is
// closed: solvers and validators switch exhaustively over these six values
// and a new relation requires touching every switch.
type Kind uint8

const (
	// Eq holds when the polynomial evaluates to zero.
	Eq Kind = iota
	// Le holds when the polynomial evaluates to ≤ 0.
	Le
	// Lt holds when the polynomial evaluates to < 0.
	Lt
	// Ge holds when the polynomial evaluates to ≥ 0.
	Ge
	// Gt holds when the polynomial evaluates to > 0.
	Gt
	// Ne holds when the polynomial evaluates to anything but zero.
	Ne

	numKinds = int(Ne) + 1
)

// DefaultEps is the tolerance used when checking constraint relations
// against evaluated (float) polynomial values.
const DefaultEps = 1e-9

// String returns the lowercase relation name ("eq", "le", ...).
func (k Kind) String() string {
	switch k {
	case Eq:
		return "eq"
	case Le:
		return "le"
	case Lt:
		return "lt"
	case Ge:
		return "ge"
	case Gt:
		return "gt"
	case Ne:
		return "ne"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// holds reports whether value v satisfies the relation within DefaultEps.
// The tolerance absorbs float drift around the integer values the
// constraint polynomials are assumed to take.
func (k Kind) holds(v float64) bool {
	switch k {
	case Eq:
		return math.Abs(v) <= DefaultEps
	case Le:
		return v <= DefaultEps
	case Lt:
		return v < -DefaultEps
	case Ge:
		return v >= -DefaultEps
	case Gt:
		return v > DefaultEps
	case Ne:
		return math.Abs(v) > DefaultEps
	default:
		return false
	}
}

// Constraint pairs a polynomial with the relation it must satisfy and the
// penalty weight that was folded into the objective when it was added.
type Constraint struct {
	Kind   Kind
	Poly   *boolpoly.Poly
	Weight coeff.Coeff
}

// store keeps constraints grouped by kind, append-only, in add order.
type store struct {
	byKind [numKinds][]Constraint
}

func (s *store) add(c Constraint) {
	s.byKind[c.Kind] = append(s.byKind[c.Kind], c)
}

func (s *store) size() int {
	n := 0
	for _, list := range s.byKind {
		n += len(list)
	}

	return n
}

// all returns the constraints in kind order (Eq first), each kind in add
// order. The slice is fresh but shares the stored polynomials.
func (s *store) all() []Constraint {
	out := make([]Constraint, 0, s.size())
	for _, list := range s.byKind {
		out = append(out, list...)
	}

	return out
}
