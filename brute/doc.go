// Package brute provides exhaustive minimization of pseudo-boolean
// objectives over a finite variable set.
//
// It enumerates every assignment of the given variable ids, optionally in
// parallel shards, and reports the minimum energy together with every
// assignment that attains it:
//
//   - Minimize — scan all 2ⁿ assignments of n variables.
//
//   - Complexity: O(2ⁿ · cost(Evaluate))
//
//   - Memory:     O(n + |optima|)
//
//   - Deterministic: optima are reported in ascending assignment order
//     regardless of worker count.
//
// The search is feasibility-aware: an optional validator filters
// inadmissible assignments before they are evaluated, and an optional time
// budget (or context cancellation) stops the scan early, returning the best
// incumbent found so far alongside ErrIncompleteSearch.
//
// Use this package when exactness matters and the variable count is small
// (n ≤ 24 by default); anything larger belongs to a dedicated solver.
package brute
