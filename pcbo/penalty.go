// SPDX-License-Identifier: MIT
// Package: quopt/pcbo
//
// penalty.go — penalty constructions that turn constraints into objective
// terms.
//
// Every construction yields a polynomial that is zero exactly when the
// constraint holds and strictly positive otherwise, assuming the constraint
// polynomial is integer-valued over boolean assignments (the usual case for
// combinatorial encodings; callers feeding fractional-valued polynomials
// into inequality constraints get safe but possibly loose penalties).
//
// Constructions:
//   - eq:  P² (non-negative, zero iff P = 0).
//   - le:  bounds [lo, hi] from monomial signs; hi ≤ 0 means always
//     satisfied (no penalty), lo > 0 means never satisfiable (penalty P²),
//     otherwise (P + S)² with a capped log-encoded slack S ∈ [0, ⌈−lo⌉]
//     over fresh ancilla bits.
//   - lt:  le on P + 1.       ge / gt: le / lt on −P.
//   - ne:  branch ancilla z and two le-style inequalities, z = 0 forcing
//     P ≤ −1 and z = 1 forcing P ≥ 1; the inactive branch is disarmed by a
//     bound-sized constant.
//
// Inequality and ne constructions require numeric coefficients in the
// constraint polynomial (the slack is sized from its bounds); symbolic
// coefficients surface as coeff.ErrUnsubstituted at add time. Symbolic
// penalty WEIGHTS are always fine — they scale the finished penalty.

package pcbo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quopt/boolpoly"
	"github.com/katalvlaran/quopt/coeff"
)

// eqPenalty returns P² as a fresh polynomial.
func eqPenalty(p *boolpoly.Poly) *boolpoly.Poly {
	return p.Mul(p)
}

// slackPoly builds Σ cⱼ·bⱼ over fresh ancilla bits with capped power-of-two
// coefficients 1, 2, 4, …, so that its value range is exactly the integers
// [0, max]. A max of zero yields the empty polynomial.
func (m *Model[L]) slackPoly(max int64) (*boolpoly.Poly, error) {
	s := boolpoly.NewPoly()
	v := int64(1)
	for rem := max; rem > 0; {
		c := v
		if c > rem {
			c = rem
		}
		id, err := m.mapper.Ancilla()
		if err != nil {
			return nil, err
		}
		s.AddTerm(coeff.Of(float64(c)), id)
		rem -= c
		v <<= 1
	}

	return s, nil
}

// lePenalty returns the penalty for P ≤ 0, or nil when the constraint can
// never be violated. The caller owns scaling by the constraint weight.
func (m *Model[L]) lePenalty(p *boolpoly.Poly) (*boolpoly.Poly, error) {
	lo, hi, err := p.Bounds()
	if err != nil {
		return nil, fmt.Errorf("le penalty: %w", err)
	}
	if hi <= DefaultEps {
		return nil, nil // satisfied at every assignment
	}
	if lo > DefaultEps {
		// Never satisfiable; P² keeps the violation visibly positive.
		return eqPenalty(p), nil
	}

	slack, err := m.slackPoly(int64(math.Ceil(-lo)))
	if err != nil {
		return nil, err
	}
	sum := p.Clone().Add(slack)

	return eqPenalty(sum), nil
}

// ltPenalty returns the penalty for P < 0 via P + 1 ≤ 0.
func (m *Model[L]) ltPenalty(p *boolpoly.Poly) (*boolpoly.Poly, error) {
	return m.lePenalty(p.Clone().AddTerm(coeff.One))
}

// nePenalty returns the penalty for P ≠ 0, or nil when P can never be zero.
//
// A branch ancilla z selects which side of zero P must fall on:
//
//	z = 0:  P + 1 − z·(hi+1) ≤ 0   becomes P ≤ −1 (other branch disarmed)
//	z = 1: −P + lo + z·(1−lo) ≤ 0  becomes P ≥ +1 (other branch disarmed)
func (m *Model[L]) nePenalty(p *boolpoly.Poly) (*boolpoly.Poly, error) {
	lo, hi, err := p.Bounds()
	if err != nil {
		return nil, fmt.Errorf("ne penalty: %w", err)
	}
	if hi < -DefaultEps || lo > DefaultEps {
		return nil, nil // zero is out of range: satisfied everywhere
	}
	if lo > -1+DefaultEps && hi < 1-DefaultEps {
		// The only reachable integer value is zero; the constraint cannot
		// hold, so the penalty is the constant violation marker.
		return boolpoly.NewPoly().AddTerm(coeff.One), nil
	}

	z, err := m.mapper.Ancilla()
	if err != nil {
		return nil, err
	}

	left := p.Clone().AddTerm(coeff.One).AddTerm(coeff.Of(-(hi + 1)), z)
	lp, err := m.lePenalty(left)
	if err != nil {
		return nil, err
	}

	right := p.Clone().Scale(coeff.Of(-1)).AddTerm(coeff.Of(lo)).AddTerm(coeff.Of(1-lo), z)
	rp, err := m.lePenalty(right)
	if err != nil {
		return nil, err
	}

	pen := boolpoly.NewPoly()
	if lp != nil {
		pen.Add(lp)
	}
	if rp != nil {
		pen.Add(rp)
	}

	return pen, nil
}

// orPoly builds (1−a)(1−b): one exactly when both inputs are 0, zero as
// soon as either is 1.
func orPoly(a, b int) *boolpoly.Poly {
	one := boolpoly.NewPoly().AddTerm(coeff.One).AddTerm(coeff.Of(-1), a)
	other := boolpoly.NewPoly().AddTerm(coeff.One).AddTerm(coeff.Of(-1), b)

	return one.Mul(other)
}
