// SPDX-License-Identifier: MIT
// Package: quopt/boolpoly
//
// errors.go — sentinel errors for the boolpoly package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Producers attach context (the offending id, the method name) with %w
//     wrapping, never by editing the sentinel text.

package boolpoly

import "errors"

// ErrUnknownID indicates an inverse lookup of an id that was never allocated
// or that belongs to an unlabeled ancilla variable.
// Usage: if errors.Is(err, boolpoly.ErrUnknownID) { /* id is not a label */ }.
var ErrUnknownID = errors.New("boolpoly: unknown variable id")

// ErrIncompleteAssignment indicates an evaluation or decode over an
// assignment that lacks a value for some referenced variable id.
// Usage: if errors.Is(err, boolpoly.ErrIncompleteAssignment) { /* fill in ids */ }.
var ErrIncompleteAssignment = errors.New("boolpoly: incomplete assignment")

// ErrFrozenMapping indicates an allocation attempt (new label or ancilla) on
// a mapper that was frozen by a model conversion.
// Usage: if errors.Is(err, boolpoly.ErrFrozenMapping) { /* model already converted */ }.
var ErrFrozenMapping = errors.New("boolpoly: mapping frozen")
