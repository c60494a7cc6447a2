// SPDX-License-Identifier: MIT
// Package: quopt/pcbo
//
// validate.go — constraint validation against a boolean assignment.

package pcbo

import (
	"fmt"

	"github.com/katalvlaran/quopt/coeff"
)

// Validate checks every stored constraint of every kind against the
// assignment, relation per kind within DefaultEps. The assignment must
// cover every id a constraint references — including slack and reduction
// ancillas when the model has them; a missing id fails with
// boolpoly.ErrIncompleteAssignment, symbolic leftovers with
// coeff.ErrUnsubstituted. The boolean result is meaningful only when the
// error is nil.
func (m *Model[L]) Validate(assign map[int]bool) (bool, error) {
	for _, c := range m.cons.all() {
		v, err := c.Poly.Value(assign)
		if err != nil {
			return false, err
		}
		f, ok := v.Float()
		if !ok {
			return false, fmt.Errorf("Validate: %s constraint: %w", c.Kind, coeff.ErrUnsubstituted)
		}
		if !c.Kind.holds(f) {
			return false, nil
		}
	}

	return true, nil
}

// IsSolutionValid is the fail-closed convenience form of Validate: any
// violated constraint, missing id or evaluation failure yields false.
func (m *Model[L]) IsSolutionValid(assign map[int]bool) bool {
	ok, err := m.Validate(assign)

	return err == nil && ok
}
