// Package exact finds provably minimum vertex covers with SAT machinery,
// complementing the exhaustive search in brute with solvers that scale
// past a few dozen vertices.
//
// Two backends are available:
//
//   - Gini (default): one positive literal per vertex and a clause
//     (u ∨ v) per edge on a CDCL solver, plus a sorting-network
//     cardinality bound over all vertex literals. The search assumes
//     "≤ w vertices chosen" and descends w from the incumbent model's
//     size until the bound becomes unsatisfiable; the last model is a
//     minimum cover, proven optimal by that final refutation.
//   - MaxSAT: the same hard clauses with a soft clause ¬v per vertex,
//     handed to a weighted partial MaxSAT solver in one shot. The
//     returned model minimizes the number of violated soft clauses,
//     which is exactly the cover size.
//
// Properties:
//
//   - Exactness: both backends return a cover of minimum cardinality,
//     never an approximation.
//   - Determinism: a fixed edge list yields a fixed cover; vertices in
//     the result follow first-seen edge order.
//   - Context: the Gini descend honors deadlines inside each round and
//     cancellation between rounds, failing with ErrIncomplete once
//     interrupted. The MaxSAT call is uninterruptible and checks the
//     context only on entry.
//
// Which minimum cover is returned (when several exist) is an artifact of
// the backend's internal heuristics; callers needing every optimum should
// use the exhaustive path on cover.Problem instead.
package exact
