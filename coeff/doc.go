// SPDX-License-Identifier: MIT
// Package: quopt/coeff
//
// Package coeff provides the coefficient algebra shared by every polynomial
// in quopt: plain float64 constants and symbolic expressions over named
// symbols (penalty multipliers such as "lam"), closed under addition,
// multiplication and negation.
//
// Two implementations back the Coeff interface:
//
//   - Num  — a numeric constant; the common case and the fast path.
//   - expr — a canonical polynomial over symbols (Σ cᵢ·Πsymbols), produced
//     by Symbol and by any arithmetic that mixes symbols in.
//
// Canonical form is maintained on every operation: like terms are collected
// under sorted symbol keys, exact zeros are dropped, and an expression whose
// symbols all cancel (or are substituted away) collapses back to Num. Two
// equal values therefore always compare Equal and print identically, which
// keeps penalty construction and payload output deterministic.
//
// No simplification ever depends on the sign of a symbol: a symbolic weight
// travels verbatim through penalty construction until Substitute assigns it
// a number. Numeric evaluation of a value that still carries symbols is the
// caller's error, reported via ErrUnsubstituted.
package coeff
