// SPDX-License-Identifier: MIT
// Package: quopt/pcbo
//
// reduce.go — degree reduction of the penalized objective to degree ≤ 2.
//
// Each round picks the lexicographically smallest monomial of degree > 2
// (by its sorted id sequence), takes its two smallest ids (a, b) and
// replaces the {a, b} subproduct with a fresh ancilla k across the whole
// objective. The substitution k = a·b is enforced by the quadratic penalty
//
//	M·(ab − 2ka − 2kb + 3k)
//
// which is zero exactly when k = a∧b and ≥ M otherwise, with M chosen once
// per Reduce call as 1 + Σ|coefficients|: larger than any energy the rest
// of the objective can recover by lying about k. The matching equality
// constraint k − ab = 0 is recorded so that validation can check ancilla
// consistency on full assignments.
//
// Determinism: the monomial order is total and the two smallest ids are a
// fixed pick, so the same objective always reduces the same way.

package pcbo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quopt/boolpoly"
	"github.com/katalvlaran/quopt/coeff"
)

// degreeMass sums max(0, degree−2) over the stored monomials; zero exactly
// when the polynomial is quadratic or lower.
func degreeMass(p *boolpoly.Poly) int {
	mass := 0
	for _, t := range p.Terms() {
		if d := len(t.IDs) - 2; d > 0 {
			mass += d
		}
	}

	return mass
}

// pickTarget returns the smallest degree > 2 monomial in the total term
// order, or nil when the polynomial is already quadratic.
func pickTarget(p *boolpoly.Poly) []int {
	for _, t := range p.Terms() {
		if len(t.IDs) > 2 {
			return t.IDs
		}
	}

	return nil
}

// containsBoth reports whether the sorted id list holds both a and b.
func containsBoth(ids []int, a, b int) bool {
	foundA, foundB := false, false
	for _, id := range ids {
		if id == a {
			foundA = true
		}
		if id == b {
			foundB = true
		}
	}

	return foundA && foundB
}

// replacePair returns ids with a and b removed and k appended; the caller
// re-canonicalizes through AddTerm.
func replacePair(ids []int, a, b, k int) []int {
	out := make([]int, 0, len(ids)-1)
	for _, id := range ids {
		if id != a && id != b {
			out = append(out, id)
		}
	}

	return append(out, k)
}

// Reduce rewrites the objective until its degree is ≤ 2, allocating one
// ancilla per round. No-op below degree 3. Frozen models fail with
// ErrFrozen, symbolic coefficients with coeff.ErrUnsubstituted, and a
// round that fails to shrink the degree mass with ErrReduction.
func (m *Model[L]) Reduce() error {
	if m.objective.Degree() <= 2 {
		return nil
	}
	if m.frozen {
		return ErrFrozen
	}

	// Penalty magnitude, fixed for the whole call: the objective gathers
	// only non-negative penalty terms afterwards, so the original mass
	// bound keeps dominating.
	mass := 1.0
	for _, t := range m.objective.Terms() {
		f, ok := t.Coeff.Float()
		if !ok {
			return fmt.Errorf("Reduce: %w", coeff.ErrUnsubstituted)
		}
		mass += math.Abs(f)
	}
	weight := coeff.Of(mass)

	for m.objective.Degree() > 2 {
		before := degreeMass(m.objective)

		target := pickTarget(m.objective)
		if target == nil {
			return fmt.Errorf("Reduce: degree > 2 with no target: %w", ErrReduction)
		}
		a, b := target[0], target[1]
		k, err := m.mapper.Ancilla()
		if err != nil {
			return err
		}

		rewritten := boolpoly.NewPoly()
		for _, t := range m.objective.Terms() {
			if containsBoth(t.IDs, a, b) {
				rewritten.AddTerm(t.Coeff, replacePair(t.IDs, a, b, k)...)
			} else {
				rewritten.AddTerm(t.Coeff, t.IDs...)
			}
		}
		m.objective = rewritten

		// Product-enforcement penalty: zero iff k = a·b.
		pen := boolpoly.NewPoly().
			AddTerm(coeff.One, a, b).
			AddTerm(coeff.Of(-2), k, a).
			AddTerm(coeff.Of(-2), k, b).
			AddTerm(coeff.Of(3), k)
		m.objective.Add(pen.Scale(weight))

		// Ancilla-consistency equality for validation.
		link := boolpoly.NewPoly().
			AddTerm(coeff.One, k).
			AddTerm(coeff.Of(-1), a, b)
		m.cons.add(Constraint{Kind: Eq, Poly: link, Weight: weight})

		if degreeMass(m.objective) >= before {
			return fmt.Errorf("Reduce: no progress replacing {%d,%d}: %w", a, b, ErrReduction)
		}
	}

	return nil
}
