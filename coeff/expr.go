// SPDX-License-Identifier: MIT
// Package: quopt/coeff
//
// expr.go — symbolic coefficients as canonical polynomials over symbols.
//
// Representation: a map from a canonical monomial key (symbol names sorted,
// repeats kept for powers, joined with "*") to the term's numeric factor.
// Keeping the polynomial normal form instead of a rewrite tree makes Add,
// Mul, Equal and Substitute deterministic with no simplification passes.

package coeff

import (
	"sort"
	"strconv"
	"strings"
)

// symTerm is one term of a symbolic polynomial: c · Π syms.
// syms is sorted and may repeat (λ·λ = λ²); empty syms is the constant term.
type symTerm struct {
	syms []string
	c    float64
}

// expr is a non-degenerate symbolic polynomial: it always holds at least one
// term with a nonempty symbol product. Anything weaker collapses to Num in
// normalize, so expr values are exactly the "still symbolic" coefficients.
type expr struct {
	terms map[string]symTerm
}

// Symbol returns the coefficient consisting of the single named symbol.
// The name must be nonempty; it is the caller's handle for Substitute.
func Symbol(name string) Coeff {
	if name == "" {
		panic("coeff: Symbol requires a nonempty name")
	}
	return expr{terms: map[string]symTerm{
		name: {syms: []string{name}, c: 1},
	}}
}

// termKey builds the canonical map key for a sorted symbol slice.
func termKey(syms []string) string { return strings.Join(syms, "*") }

// normalize prunes exact zeros and collapses degenerate maps back to Num.
func normalize(terms map[string]symTerm) Coeff {
	for k, t := range terms {
		if t.c == 0 {
			delete(terms, k)
		}
	}
	switch len(terms) {
	case 0:
		return Num(0)
	case 1:
		if t, ok := terms[""]; ok {
			return Num(t.c)
		}
	}
	return expr{terms: terms}
}

// addInto merges a single term into the accumulator map.
func addInto(terms map[string]symTerm, syms []string, c float64) {
	k := termKey(syms)
	if prev, ok := terms[k]; ok {
		prev.c += c
		terms[k] = prev
		return
	}
	terms[k] = symTerm{syms: syms, c: c}
}

// mergeSorted merges two sorted symbol slices, keeping repeats.
func mergeSorted(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

// Add returns e+other in canonical form.
func (e expr) Add(other Coeff) Coeff {
	sum := make(map[string]symTerm, len(e.terms)+1)
	for k, t := range e.terms {
		sum[k] = t
	}
	switch o := other.(type) {
	case Num:
		if o != 0 {
			addInto(sum, nil, float64(o))
		}
	case expr:
		for _, t := range o.terms {
			addInto(sum, t.syms, t.c)
		}
	default:
		panic("coeff: foreign Coeff implementation")
	}
	return normalize(sum)
}

// Mul returns e·other in canonical form (full convolution of terms).
func (e expr) Mul(other Coeff) Coeff {
	switch o := other.(type) {
	case Num:
		if o == 0 {
			return Num(0)
		}
		prod := make(map[string]symTerm, len(e.terms))
		for k, t := range e.terms {
			prod[k] = symTerm{syms: t.syms, c: t.c * float64(o)}
		}
		return normalize(prod)
	case expr:
		prod := make(map[string]symTerm, len(e.terms)*len(o.terms))
		for _, a := range e.terms {
			for _, b := range o.terms {
				addInto(prod, mergeSorted(a.syms, b.syms), a.c*b.c)
			}
		}
		return normalize(prod)
	default:
		panic("coeff: foreign Coeff implementation")
	}
}

// Neg returns -e.
func (e expr) Neg() Coeff { return e.Mul(Num(-1)) }

// Substitute replaces every listed symbol with its numeric value, folding the
// value into the term factor; symbols absent from vals survive. A fully
// resolved expression collapses to Num.
func (e expr) Substitute(vals map[string]float64) Coeff {
	out := make(map[string]symTerm, len(e.terms))
	for _, t := range e.terms {
		factor := t.c
		var left []string
		for _, s := range t.syms {
			if v, ok := vals[s]; ok {
				factor *= v
			} else {
				left = append(left, s)
			}
		}
		addInto(out, left, factor)
	}
	return normalize(out)
}

// Float reports not-ok: an expr carries at least one live symbol by invariant.
func (e expr) Float() (float64, bool) { return 0, false }

// IsZero reports false: zero never survives normalize as an expr.
func (e expr) IsZero() bool { return false }

// Equal compares canonical term maps.
func (e expr) Equal(other Coeff) bool {
	o, ok := other.(expr)
	if !ok || len(e.terms) != len(o.terms) {
		return false
	}
	for k, t := range e.terms {
		ot, present := o.terms[k]
		if !present || ot.c != t.c {
			return false
		}
	}
	return true
}

// Symbols returns the distinct symbol names in sorted order.
func (e expr) Symbols() []string {
	seen := make(map[string]struct{})
	for _, t := range e.terms {
		for _, s := range t.syms {
			seen[s] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for s := range seen {
		names = append(names, s)
	}
	sort.Strings(names)
	return names
}

// String renders the polynomial with terms in sorted key order, the constant
// term (empty key) first: "3 + 2*lam - lam*lam".
func (e expr) String() string {
	keys := make([]string, 0, len(e.terms))
	for k := range e.terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		t := e.terms[k]
		part := formatTerm(t)
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

func (e expr) sealed() {}

// formatTerm renders a single term: "lam", "-lam", "2*lam", "7".
func formatTerm(t symTerm) string {
	if len(t.syms) == 0 {
		return strconv.FormatFloat(t.c, 'g', -1, 64)
	}
	base := strings.Join(t.syms, "*")
	switch t.c {
	case 1:
		return base
	case -1:
		return "-" + base
	default:
		return strconv.FormatFloat(t.c, 'g', -1, 64) + "*" + base
	}
}
