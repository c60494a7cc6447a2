// Package pcbo_test — model lifecycle: labels, decoding, substitution
// identity and the exhaustive-solve convenience.

package pcbo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/quopt/boolpoly"
	"github.com/katalvlaran/quopt/coeff"
	"github.com/katalvlaran/quopt/pcbo"
	"github.com/katalvlaran/quopt/quad"
	"github.com/stretchr/testify/require"
)

func TestVar_FirstSeenOrder(t *testing.T) {
	m := pcbo.New[string]()

	b, err := m.Var("b")
	require.NoError(t, err)
	a, err := m.Var("a")
	require.NoError(t, err)
	b2, err := m.Var("b")
	require.NoError(t, err)

	require.Equal(t, 0, b)
	require.Equal(t, 1, a)
	require.Equal(t, b, b2)
	require.Equal(t, []string{"b", "a"}, m.Mapper().Labels())
}

func TestDecode_DomainsAndRejections(t *testing.T) {
	m := pcbo.New[string]()
	require.NoError(t, m.AddObjectiveTerm(coeff.One, "a"))
	require.NoError(t, m.AddObjectiveTerm(coeff.One, "b"))

	q, err := m.ToQUBO()
	require.NoError(t, err)

	// Boolean domain.
	sol, err := m.Decode(map[int]int{0: 1, 1: 0}, q.Mapping)
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"a": true, "b": false}, sol)

	// Spin domain: +1 is true, −1 is false.
	sol, err = m.Decode(map[int]int{0: -1, 1: 1}, q.Mapping)
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"a": false, "b": true}, sol)

	// Foreign tag.
	_, err = m.Decode(map[int]int{0: 1, 1: 0}, uuid.New())
	require.ErrorIs(t, err, quad.ErrMappingMismatch)

	// Missing labeled id.
	_, err = m.Decode(map[int]int{0: 1}, q.Mapping)
	require.ErrorIs(t, err, boolpoly.ErrIncompleteAssignment)

	// Value outside both domains.
	_, err = m.Decode(map[int]int{0: 2, 1: 0}, q.Mapping)
	require.ErrorIs(t, err, quad.ErrSpinDomain)
}

func TestDecode_DropsAncillas(t *testing.T) {
	m := pcbo.New[string]()
	require.NoError(t, m.AddObjectiveTerm(coeff.Of(-1), "a", "b", "c"))

	q, err := m.ToQUBO()
	require.NoError(t, err)
	require.Equal(t, 4, m.NumVariables(), "reduction allocated an ancilla")

	sol, err := m.Decode(map[int]int{0: 1, 1: 1, 2: 1, 3: 1}, q.Mapping)
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, sol)
}

func TestSubstitute_KeepsMappingIdentity(t *testing.T) {
	m := pcbo.New[string]()
	require.NoError(t, m.AddObjectiveTerm(coeff.One, "a"))
	require.NoError(t, m.AddOR(coeff.Symbol("lam"), "a", "b"))

	tag := m.Fingerprint()
	m.Substitute(map[string]float64{"lam": 2})
	require.Equal(t, tag, m.Fingerprint(), "substitution must not rebuild the mapping")

	q, err := m.ToQUBO()
	require.NoError(t, err)
	require.Equal(t, tag, q.Mapping)

	// Substitution stays legal after freeze (coefficients only).
	m.Substitute(map[string]float64{"unused": 1})
	sol, err := m.Decode(map[int]int{0: 1, 1: 0}, q.Mapping)
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"a": true, "b": false}, sol)
}

func TestVariables_IncludePenaltyFreeConstraintIDs(t *testing.T) {
	m := pcbo.New[string]()

	// x − 1 ≤ 0 never fires a penalty, yet x is a real model variable.
	id, err := m.Var("x")
	require.NoError(t, err)
	p := boolpoly.NewPoly().AddTerm(coeff.One, id).AddTerm(coeff.Of(-1))
	require.NoError(t, m.AddLeZero(p, coeff.One))

	require.Equal(t, []int{0}, m.Variables())
	require.Equal(t, 0, m.Objective().Len())
}

func TestSolveBrute_MinimalValidAssignments(t *testing.T) {
	m := pcbo.New[string]()

	// Minimize a + b subject to a ∨ b.
	require.NoError(t, m.AddObjectiveTerm(coeff.One, "a"))
	require.NoError(t, m.AddObjectiveTerm(coeff.One, "b"))
	require.NoError(t, m.AddOR(coeff.Of(2), "a", "b"))

	sols, value, err := m.SolveBrute(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1.0, value)
	require.ElementsMatch(t, []map[string]bool{
		{"a": true, "b": false},
		{"a": false, "b": true},
	}, sols)
}

func TestSolveBrute_MergesAncillaVariants(t *testing.T) {
	m := pcbo.New[string]()

	// x0 + x1 + x2 − 2 ≤ 0 with no objective: every ≤2-subset is optimal.
	// The capped slack encodes some values two ways; label-space answers
	// must still be unique.
	for _, l := range []string{"x0", "x1", "x2"} {
		_, err := m.Var(l)
		require.NoError(t, err)
	}
	p := boolpoly.NewPoly().
		AddTerm(coeff.One, 0).
		AddTerm(coeff.One, 1).
		AddTerm(coeff.One, 2).
		AddTerm(coeff.Of(-2))
	require.NoError(t, m.AddLeZero(p, coeff.One))

	sols, value, err := m.SolveBrute(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0.0, value)
	require.Len(t, sols, 7, "all assignments except all-three")
}

func TestValidate_FailClosed(t *testing.T) {
	m := pcbo.New[string]()
	require.NoError(t, m.AddOR(coeff.Of(2), "a", "b"))

	ok, err := m.Validate(map[int]bool{0: true, 1: false})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = m.Validate(map[int]bool{0: false, 1: false})
	require.NoError(t, err)
	require.False(t, ok)

	// Missing id: error out, and the convenience form turns it into false.
	_, err = m.Validate(map[int]bool{0: true})
	require.ErrorIs(t, err, boolpoly.ErrIncompleteAssignment)
	require.False(t, m.IsSolutionValid(map[int]bool{0: true}))
	require.True(t, m.IsSolutionValid(map[int]bool{0: true, 1: true}))
}

func TestKind_Strings(t *testing.T) {
	require.Equal(t, "eq", pcbo.Eq.String())
	require.Equal(t, "le", pcbo.Le.String())
	require.Equal(t, "lt", pcbo.Lt.String())
	require.Equal(t, "ge", pcbo.Ge.String())
	require.Equal(t, "gt", pcbo.Gt.String())
	require.Equal(t, "ne", pcbo.Ne.String())
}

func TestAddObjective_MergesPolynomial(t *testing.T) {
	m := pcbo.New[string]()
	a, err := m.Var("a")
	require.NoError(t, err)

	p := boolpoly.NewPoly().AddTerm(coeff.Of(3), a)
	require.NoError(t, m.AddObjective(p))
	require.NoError(t, m.AddObjective(p))
	require.ErrorIs(t, m.AddObjective(nil), pcbo.ErrInvalidArity)

	v, err := m.Evaluate(map[int]bool{a: true})
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}
