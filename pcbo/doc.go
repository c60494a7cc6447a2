// SPDX-License-Identifier: MIT
// Package: quopt/pcbo
//
// doc.go — package overview.

// Package pcbo models polynomial constrained boolean optimization: a
// polynomial objective over boolean variables plus equality, inequality
// and disjunction constraints, compiled into an unconstrained penalized
// polynomial and from there into quadratic QUBO / Ising payloads.
//
// The flow mirrors how penalty-method solvers are fed:
//
//	m := pcbo.New[string]()
//	_ = m.AddObjectiveTerm(coeff.One, "x")          // objective terms
//	_ = m.AddOR(coeff.Of(2), "x", "y")              // constraints fold
//	q, err := m.ToQUBO()                            // reduce + freeze + tag
//	... hand q to any QUBO solver ...
//	sol, err := m.Decode(raw, q.Mapping)            // back to labels
//
// Every constraint adder immediately adds weight·penalty to the objective,
// so the model's Evaluate is the penalized energy at any point. The
// constraint store is kept purely for validation: Validate re-checks each
// stored relation directly, independent of the penalties.
//
// Conversion allocates nothing new except through degree reduction,
// freezes the id mapping, and tags the payload with the mapping
// fingerprint. Decode refuses samples tagged by a different model, which
// turns the classic substitute-then-decode-with-stale-mapping mistake into
// an error instead of a silently wrong answer: Substitute works in place
// and keeps the fingerprint, so payloads from before and after a
// substitution stay decodable.
//
// Weights may be symbolic (see package coeff): add constraints with a
// symbolic λ, Substitute a concrete value later, convert, solve — without
// rebuilding the model or invalidating earlier bookkeeping.
package pcbo
