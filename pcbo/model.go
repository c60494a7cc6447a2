// SPDX-License-Identifier: MIT
// Package: quopt/pcbo
//
// model.go — the constrained pseudo-boolean model: objective accumulation,
// constraint adders, substitution, conversion and decoding.
//
// A Model owns one Mapper for its whole lifetime. Every adder may allocate
// ids (labels through Var/AddObjectiveTerm, ancillas through slack bits and
// degree reduction), and each added constraint immediately folds
// weight·penalty into the objective, so the objective alone is already the
// penalized energy. The constraint store exists for validation, not for
// solving.
//
// Conversion freezes the model: the payload carries the mapper fingerprint,
// later mutating adds fail with ErrFrozen, and Decode rejects payload tags
// from any other model. Substitution of symbolic coefficients stays legal
// after freeze because it never touches the id mapping.

package pcbo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/quopt/boolpoly"
	"github.com/katalvlaran/quopt/brute"
	"github.com/katalvlaran/quopt/coeff"
	"github.com/katalvlaran/quopt/quad"
)

// Model is a polynomial constrained boolean optimization problem over
// caller-chosen labels. The zero value is not usable; construct with New.
// A Model is not safe for concurrent mutation; read-only use (Evaluate,
// Validate) may be concurrent once mutation stops.
type Model[L comparable] struct {
	mapper    *boolpoly.Mapper[L]
	objective *boolpoly.Poly
	cons      store
	frozen    bool
}

// New returns an empty model with a fresh mapping fingerprint.
func New[L comparable]() *Model[L] {
	return &Model[L]{
		mapper:    boolpoly.NewMapper[L](),
		objective: boolpoly.NewPoly(),
	}
}

// Var returns the variable id of label, allocating it on first use.
// After freeze, unseen labels fail with boolpoly.ErrFrozenMapping.
func (m *Model[L]) Var(label L) (int, error) {
	return m.mapper.IDOf(label)
}

// Mapper exposes the model's label↔id mapping. The mapper is shared, not a
// copy; adapters use it for decoding and ancilla-aware bookkeeping.
func (m *Model[L]) Mapper() *boolpoly.Mapper[L] { return m.mapper }

// Fingerprint returns the mapping identity carried by every payload
// converted from this model.
func (m *Model[L]) Fingerprint() uuid.UUID { return m.mapper.Fingerprint() }

// Frozen reports whether a conversion has frozen the model.
func (m *Model[L]) Frozen() bool { return m.frozen }

// Objective returns a snapshot of the penalized objective.
func (m *Model[L]) Objective() *boolpoly.Poly { return m.objective.Clone() }

// Degree returns the current degree of the penalized objective.
func (m *Model[L]) Degree() int { return m.objective.Degree() }

// Constraints returns every stored constraint in kind order (Eq first),
// each kind in add order. Polynomials are cloned; mutating them does not
// affect the model.
func (m *Model[L]) Constraints() []Constraint {
	out := m.cons.all()
	for i := range out {
		out[i].Poly = out[i].Poly.Clone()
	}

	return out
}

// NumVariables returns the number of allocated ids, ancillas included.
func (m *Model[L]) NumVariables() int { return m.mapper.Len() }

// NumConstraints returns the number of stored constraints.
func (m *Model[L]) NumConstraints() int { return m.cons.size() }

// Variables returns every allocated id in ascending order. This is the id
// set a solver must assign, whether or not each id currently appears in
// the objective (a never-violable constraint contributes no penalty term).
func (m *Model[L]) Variables() []int { return m.mapper.IDs() }

// Evaluate returns the penalized objective energy of a full assignment.
// Model satisfies brute.Objective through this method.
func (m *Model[L]) Evaluate(assign map[int]bool) (float64, error) {
	return m.objective.Evaluate(assign)
}

// Value is Evaluate without the numeric restriction: symbolic coefficients
// survive into the result.
func (m *Model[L]) Value(assign map[int]bool) (coeff.Coeff, error) {
	return m.objective.Value(assign)
}

// AddObjectiveTerm adds c·Πlabels to the objective, allocating ids for
// unseen labels. No labels means a constant shift.
func (m *Model[L]) AddObjectiveTerm(c coeff.Coeff, labels ...L) error {
	if m.frozen {
		return ErrFrozen
	}
	ids := make([]int, len(labels))
	for i, label := range labels {
		id, err := m.mapper.IDOf(label)
		if err != nil {
			return err
		}
		ids[i] = id
	}
	m.objective.AddTerm(c, ids...)

	return nil
}

// AddObjective merges a polynomial already expressed over this model's ids
// into the objective.
func (m *Model[L]) AddObjective(p *boolpoly.Poly) error {
	if m.frozen {
		return ErrFrozen
	}
	if p == nil {
		return fmt.Errorf("AddObjective: nil polynomial: %w", ErrInvalidArity)
	}
	m.objective.Add(p)

	return nil
}

// defaultWeight substitutes the unit weight for a nil one.
func defaultWeight(w coeff.Coeff) coeff.Coeff {
	if w == nil {
		return coeff.One
	}

	return w
}

// addConstraint records the constraint and folds weight·penalty into the
// objective. A nil penalty means the constraint can never be violated.
func (m *Model[L]) addConstraint(k Kind, p *boolpoly.Poly, w coeff.Coeff, pen *boolpoly.Poly) {
	m.cons.add(Constraint{Kind: k, Poly: p.Clone(), Weight: w})
	if pen != nil && pen.Len() > 0 {
		m.objective.Add(pen.Scale(w))
	}
}

// AddEqZero enforces p == 0 with penalty weight·p². A nil weight defaults
// to 1; symbolic weights are legal and stay unsimplified until Substitute.
func (m *Model[L]) AddEqZero(p *boolpoly.Poly, weight coeff.Coeff) error {
	if m.frozen {
		return ErrFrozen
	}
	if p == nil {
		return fmt.Errorf("AddEqZero: nil polynomial: %w", ErrInvalidArity)
	}
	m.addConstraint(Eq, p, defaultWeight(weight), eqPenalty(p))

	return nil
}

// AddLeZero enforces p ≤ 0 through a slack-completed square penalty; slack
// bits are fresh ancillas sized from the polynomial's bounds. The
// polynomial must be numeric (coeff.ErrUnsubstituted otherwise); p is
// assumed integer-valued over boolean assignments.
func (m *Model[L]) AddLeZero(p *boolpoly.Poly, weight coeff.Coeff) error {
	if m.frozen {
		return ErrFrozen
	}
	if p == nil {
		return fmt.Errorf("AddLeZero: nil polynomial: %w", ErrInvalidArity)
	}
	pen, err := m.lePenalty(p)
	if err != nil {
		return err
	}
	m.addConstraint(Le, p, defaultWeight(weight), pen)

	return nil
}

// AddLtZero enforces p < 0 (as p + 1 ≤ 0 for integer-valued p).
func (m *Model[L]) AddLtZero(p *boolpoly.Poly, weight coeff.Coeff) error {
	if m.frozen {
		return ErrFrozen
	}
	if p == nil {
		return fmt.Errorf("AddLtZero: nil polynomial: %w", ErrInvalidArity)
	}
	pen, err := m.ltPenalty(p)
	if err != nil {
		return err
	}
	m.addConstraint(Lt, p, defaultWeight(weight), pen)

	return nil
}

// AddGeZero enforces p ≥ 0 (as −p ≤ 0).
func (m *Model[L]) AddGeZero(p *boolpoly.Poly, weight coeff.Coeff) error {
	if m.frozen {
		return ErrFrozen
	}
	if p == nil {
		return fmt.Errorf("AddGeZero: nil polynomial: %w", ErrInvalidArity)
	}
	pen, err := m.lePenalty(p.Clone().Scale(coeff.Of(-1)))
	if err != nil {
		return err
	}
	m.addConstraint(Ge, p, defaultWeight(weight), pen)

	return nil
}

// AddGtZero enforces p > 0 (as −p < 0).
func (m *Model[L]) AddGtZero(p *boolpoly.Poly, weight coeff.Coeff) error {
	if m.frozen {
		return ErrFrozen
	}
	if p == nil {
		return fmt.Errorf("AddGtZero: nil polynomial: %w", ErrInvalidArity)
	}
	pen, err := m.ltPenalty(p.Clone().Scale(coeff.Of(-1)))
	if err != nil {
		return err
	}
	m.addConstraint(Gt, p, defaultWeight(weight), pen)

	return nil
}

// AddNeZero enforces p ≠ 0 through a branch ancilla choosing the side of
// zero; see nePenalty for the construction.
func (m *Model[L]) AddNeZero(p *boolpoly.Poly, weight coeff.Coeff) error {
	if m.frozen {
		return ErrFrozen
	}
	if p == nil {
		return fmt.Errorf("AddNeZero: nil polynomial: %w", ErrInvalidArity)
	}
	pen, err := m.nePenalty(p)
	if err != nil {
		return err
	}
	m.addConstraint(Ne, p, defaultWeight(weight), pen)

	return nil
}

// AddOR enforces a ∨ b over exactly two labels, as the equality
// (1−a)(1−b) == 0: the penalty fires only in the both-zero state. Passing
// the same label twice degenerates to the unit clause a == 1.
func (m *Model[L]) AddOR(weight coeff.Coeff, labels ...L) error {
	if m.frozen {
		return ErrFrozen
	}
	if len(labels) != 2 {
		return fmt.Errorf("AddOR: got %d operands, need 2: %w", len(labels), ErrInvalidArity)
	}
	a, err := m.mapper.IDOf(labels[0])
	if err != nil {
		return err
	}
	b, err := m.mapper.IDOf(labels[1])
	if err != nil {
		return err
	}
	or := orPoly(a, b)
	m.addConstraint(Eq, or, defaultWeight(weight), eqPenalty(or))

	return nil
}

// Substitute folds symbol values into the objective, every stored
// constraint polynomial and every weight, in place. The mapping — and with
// it the fingerprint — is untouched, so payloads converted before and
// after substitution decode interchangeably. Legal on frozen models.
func (m *Model[L]) Substitute(vals map[string]float64) {
	m.objective = m.objective.Substitute(vals)
	for k := range m.cons.byKind {
		for i, c := range m.cons.byKind[k] {
			m.cons.byKind[k][i].Poly = c.Poly.Substitute(vals)
			m.cons.byKind[k][i].Weight = c.Weight.Substitute(vals)
		}
	}
}

// freeze stops id allocation and mutating adds. Idempotent.
func (m *Model[L]) freeze() {
	m.frozen = true
	m.mapper.Freeze()
}

// ToQUBO reduces the objective to degree ≤ 2 if needed, freezes the model
// and returns an independent payload tagged with the mapping fingerprint.
// Symbolic coefficients fail with coeff.ErrUnsubstituted.
func (m *Model[L]) ToQUBO() (quad.QUBO, error) {
	if m.objective.Degree() > 2 {
		if err := m.Reduce(); err != nil {
			return quad.QUBO{}, err
		}
	}

	q := quad.NewQUBO(m.mapper.Fingerprint())
	for _, t := range m.objective.Terms() {
		f, ok := t.Coeff.Float()
		if !ok {
			return quad.QUBO{}, fmt.Errorf("ToQUBO: %w", coeff.ErrUnsubstituted)
		}
		switch len(t.IDs) {
		case 0:
			q.Offset += f
		case 1:
			q.Add(quad.NewPair(t.IDs[0], t.IDs[0]), f)
		case 2:
			q.Add(quad.NewPair(t.IDs[0], t.IDs[1]), f)
		default:
			return quad.QUBO{}, fmt.Errorf("ToQUBO: degree-%d term after reduction: %w",
				len(t.IDs), ErrReduction)
		}
	}
	m.freeze()

	return q, nil
}

// ToIsing converts through ToQUBO and the exact affine spin map.
func (m *Model[L]) ToIsing() (quad.Ising, error) {
	q, err := m.ToQUBO()
	if err != nil {
		return quad.Ising{}, err
	}

	return q.ToIsing(), nil
}

// Decode turns a raw solver sample back into labels. The tag must match
// this model's fingerprint (quad.ErrMappingMismatch otherwise), every
// labeled id needs a value (boolpoly.ErrIncompleteAssignment), ancilla ids
// are dropped, and both 0/1 and ±1 domains are accepted: +1 is true, 0 and
// −1 are false. Any other value fails with quad.ErrSpinDomain.
func (m *Model[L]) Decode(raw map[int]int, tag uuid.UUID) (map[L]bool, error) {
	if tag != m.mapper.Fingerprint() {
		return nil, fmt.Errorf("Decode: tag %s: %w", tag, quad.ErrMappingMismatch)
	}
	out := make(map[L]bool, m.mapper.LabelCount())
	for _, label := range m.mapper.Labels() {
		id, err := m.mapper.IDOf(label)
		if err != nil {
			return nil, err
		}
		r, ok := raw[id]
		if !ok {
			return nil, fmt.Errorf("Decode: id %d: %w", id, boolpoly.ErrIncompleteAssignment)
		}
		switch r {
		case 1:
			out[label] = true
		case 0, -1:
			out[label] = false
		default:
			return nil, fmt.Errorf("Decode: id %d value %d: %w", id, r, quad.ErrSpinDomain)
		}
	}

	return out, nil
}

// SolveBrute exhaustively minimizes the penalized objective over every
// allocated id with constraint validation switched on, and reports the
// optima in label space (ancillas dropped, duplicates from co-optimal
// ancilla settings merged). Options are forwarded to brute.Minimize; a
// validator passed by the caller is overridden.
func (m *Model[L]) SolveBrute(ctx context.Context, opts ...brute.Option) ([]map[L]bool, float64, error) {
	valid := func(a map[int]bool) (bool, error) { return m.Validate(a) }
	args := append(append([]brute.Option{}, opts...), brute.WithValidator(valid))

	res, err := brute.Minimize(ctx, m, m.Variables(), args...)
	if err != nil {
		return nil, 0, err
	}

	labels := m.mapper.Labels()
	seen := make(map[string]struct{}, len(res.Assignments))
	out := make([]map[L]bool, 0, len(res.Assignments))
	sig := make([]byte, len(labels))
	for _, a := range res.Assignments {
		decoded := make(map[L]bool, len(labels))
		for i, label := range labels {
			id, ierr := m.mapper.IDOf(label)
			if ierr != nil {
				return nil, 0, ierr
			}
			decoded[label] = a[id]
			sig[i] = '0'
			if a[id] {
				sig[i] = '1'
			}
		}
		// Assignments differing only in ancilla bits collapse here.
		if _, dup := seen[string(sig)]; dup {
			continue
		}
		seen[string(sig)] = struct{}{}
		out = append(out, decoded)
	}

	return out, res.Value, nil
}
