// SPDX-License-Identifier: MIT
// Package: quopt/boolpoly
//
// Package boolpoly implements the two value types every model in quopt is
// built from:
//
//   - Mapper — a bijection between caller-chosen variable labels and the
//     dense integer ids solvers consume. Ids are handed out in first-seen
//     order, ancilla ids (synthetic, unlabeled) share the same sequence, and
//     every Mapper carries a random fingerprint so payloads and assignments
//     can be bound to the exact mapping that produced them.
//
//   - Poly — a sparse multivariate polynomial over boolean variables: a map
//     from canonical monomials (sorted, duplicate-free id sets; the empty
//     set is the constant term) to coeff.Coeff values. Boolean idempotence
//     x·x = x is applied on construction, exact zeros are pruned on every
//     mutation, and term iteration is deterministic.
//
// A Mapper is owned by exactly one model for its whole life. Two models
// built by separate call sequences may assign different ids to "the same"
// labels, so an id-indexed artifact (payload, assignment) from one must
// never be applied to another; the fingerprint exists to make that mistake
// loud instead of silent.
package boolpoly
