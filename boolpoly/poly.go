// SPDX-License-Identifier: MIT
// Package: quopt/boolpoly
//
// poly.go — sparse boolean polynomials with canonical monomials.
//
// A monomial is a sorted, duplicate-free id slice; the empty slice is the
// constant term. Canonical form is enforced on every mutation, so the map
// key (ids joined with commas) is a pure function of the monomial and no
// zero-coefficient entry ever survives a mutation.

package boolpoly

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/quopt/coeff"
)

// Term is one monomial→coefficient entry of a Poly.
// IDs is canonical (ascending, no repeats); empty IDs is the constant term.
type Term struct {
	IDs   []int
	Coeff coeff.Coeff
}

// Poly is a sparse multivariate polynomial over boolean variables.
//
// Mutation contract: AddTerm, Add and Scale mutate the receiver and return
// it for chaining; Mul and Substitute return a fresh Poly. Evaluation and
// iteration are read-only and deterministic.
type Poly struct {
	terms map[string]Term
}

// NewPoly returns the zero polynomial.
func NewPoly() *Poly { return &Poly{terms: make(map[string]Term)} }

// canonMono copies ids into canonical form: sorted ascending with repeats
// collapsed (boolean idempotence, x·x = x).
func canonMono(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	out := make([]int, len(ids))
	copy(out, ids)
	sort.Ints(out)
	w := 1
	for r := 1; r < len(out); r++ {
		if out[r] != out[r-1] {
			out[w] = out[r]
			w++
		}
	}
	return out[:w]
}

// monoKey renders a canonical monomial as the map key.
func monoKey(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}

// compareMono orders canonical monomials elementwise, shorter prefix first.
// The constant term sorts before everything.
func compareMono(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// unionIDs merges two canonical id slices into their canonical union.
func unionIDs(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

// AddTerm merges c·Πids into the polynomial. Zero coefficients are no-ops;
// an entry whose merged coefficient becomes exactly zero is removed.
func (p *Poly) AddTerm(c coeff.Coeff, ids ...int) *Poly {
	if c.IsZero() {
		return p
	}
	mono := canonMono(ids)
	k := monoKey(mono)
	if prev, ok := p.terms[k]; ok {
		merged := prev.Coeff.Add(c)
		if merged.IsZero() {
			delete(p.terms, k)
		} else {
			p.terms[k] = Term{IDs: prev.IDs, Coeff: merged}
		}
		return p
	}
	p.terms[k] = Term{IDs: mono, Coeff: c}
	return p
}

// Add merges every term of other into p (p += other).
func (p *Poly) Add(other *Poly) *Poly {
	if other == p {
		return p.Scale(coeff.Of(2))
	}
	for _, t := range other.terms {
		p.AddTerm(t.Coeff, t.IDs...)
	}
	return p
}

// Scale multiplies every coefficient by c in place (p *= c).
func (p *Poly) Scale(c coeff.Coeff) *Poly {
	if c.IsZero() {
		p.terms = make(map[string]Term)
		return p
	}
	for k, t := range p.terms {
		p.terms[k] = Term{IDs: t.IDs, Coeff: t.Coeff.Mul(c)}
	}
	return p
}

// Mul returns the distributive product p·other as a fresh polynomial.
// Monomial products take the id-set union (idempotent collapse included).
func (p *Poly) Mul(other *Poly) *Poly {
	out := NewPoly()
	for _, a := range p.terms {
		for _, b := range other.terms {
			out.AddTerm(a.Coeff.Mul(b.Coeff), unionIDs(a.IDs, b.IDs)...)
		}
	}
	return out
}

// Substitute returns a copy with symbol values folded into every coefficient
// and freshly zeroed monomials pruned.
func (p *Poly) Substitute(vals map[string]float64) *Poly {
	out := NewPoly()
	for _, t := range p.terms {
		out.AddTerm(t.Coeff.Substitute(vals), t.IDs...)
	}
	return out
}

// Value evaluates the polynomial at a full boolean assignment, keeping any
// symbolic structure in the result. Every id referenced by a stored term
// must be present in assign, even inside terms another factor already
// turned off; absence fails with ErrIncompleteAssignment.
func (p *Poly) Value(assign map[int]bool) (coeff.Coeff, error) {
	acc := coeff.Zero
	for _, t := range p.Terms() {
		live := true
		for _, id := range t.IDs {
			v, ok := assign[id]
			if !ok {
				return nil, fmt.Errorf("Value: id %d: %w", id, ErrIncompleteAssignment)
			}
			if !v {
				live = false
			}
		}
		if live {
			acc = acc.Add(t.Coeff)
		}
	}
	return acc, nil
}

// Evaluate is Value restricted to numeric polynomials; symbolic leftovers
// fail with coeff.ErrUnsubstituted.
func (p *Poly) Evaluate(assign map[int]bool) (float64, error) {
	v, err := p.Value(assign)
	if err != nil {
		return 0, err
	}
	f, ok := v.Float()
	if !ok {
		return 0, fmt.Errorf("Evaluate: %w", coeff.ErrUnsubstituted)
	}
	return f, nil
}

// Bounds returns a lower and an upper bound of the polynomial over all
// boolean assignments, from monomial signs: each nonconstant monomial
// contributes either 0 or its coefficient. The bounds are safe, not tight.
// Symbolic coefficients fail with coeff.ErrUnsubstituted.
func (p *Poly) Bounds() (lo, hi float64, err error) {
	for _, t := range p.terms {
		f, ok := t.Coeff.Float()
		if !ok {
			return 0, 0, fmt.Errorf("Bounds: %w", coeff.ErrUnsubstituted)
		}
		switch {
		case len(t.IDs) == 0:
			lo += f
			hi += f
		case f > 0:
			hi += f
		default:
			lo += f
		}
	}
	return lo, hi, nil
}

// Degree returns the size of the largest stored monomial (0 for constants
// and for the zero polynomial).
func (p *Poly) Degree() int {
	maxDeg := 0
	for _, t := range p.terms {
		if len(t.IDs) > maxDeg {
			maxDeg = len(t.IDs)
		}
	}
	return maxDeg
}

// Offset returns the constant term's coefficient (zero if absent).
func (p *Poly) Offset() coeff.Coeff {
	if t, ok := p.terms[""]; ok {
		return t.Coeff
	}
	return coeff.Zero
}

// Len returns the number of stored terms.
func (p *Poly) Len() int { return len(p.terms) }

// Terms returns the terms ordered by compareMono (constant first, then by
// id sequence). IDs slices are copies; mutating them does not touch p.
func (p *Poly) Terms() []Term {
	out := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		ids := make([]int, len(t.IDs))
		copy(ids, t.IDs)
		out = append(out, Term{IDs: ids, Coeff: t.Coeff})
	}
	sort.Slice(out, func(i, j int) bool { return compareMono(out[i].IDs, out[j].IDs) < 0 })
	return out
}

// Variables returns the sorted distinct ids referenced by stored terms.
func (p *Poly) Variables() []int {
	seen := make(map[int]struct{})
	for _, t := range p.terms {
		for _, id := range t.IDs {
			seen[id] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Clone returns a deep copy.
func (p *Poly) Clone() *Poly {
	out := &Poly{terms: make(map[string]Term, len(p.terms))}
	for k, t := range p.terms {
		ids := make([]int, len(t.IDs))
		copy(ids, t.IDs)
		out.terms[k] = Term{IDs: ids, Coeff: t.Coeff}
	}
	return out
}

// String renders the polynomial with terms in canonical order, variables as
// x<id>: "3 + 2*x0*x1 - (1 + lam)*x2".
func (p *Poly) String() string {
	terms := p.Terms()
	if len(terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range terms {
		part := formatPolyTerm(t)
		if i == 0 {
			sb.WriteString(part)
			continue
		}
		if strings.HasPrefix(part, "-") {
			sb.WriteString(" - ")
			sb.WriteString(part[1:])
		} else {
			sb.WriteString(" + ")
			sb.WriteString(part)
		}
	}
	return sb.String()
}

// formatPolyTerm renders one term; symbolic coefficients are parenthesized.
func formatPolyTerm(t Term) string {
	cs := t.Coeff.String()
	if len(t.IDs) == 0 {
		if strings.Contains(cs, " ") {
			return "(" + cs + ")"
		}
		return cs
	}
	var vars strings.Builder
	for i, id := range t.IDs {
		if i > 0 {
			vars.WriteByte('*')
		}
		vars.WriteByte('x')
		vars.WriteString(strconv.Itoa(id))
	}
	if f, ok := t.Coeff.Float(); ok {
		switch f {
		case 1:
			return vars.String()
		case -1:
			return "-" + vars.String()
		default:
			return cs + "*" + vars.String()
		}
	}
	return "(" + cs + ")*" + vars.String()
}
