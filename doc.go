// Package quopt is your in-memory workbench for penalized boolean
// optimization — from multilinear polynomials to solver-ready QUBO and
// Ising payloads, with exact solvers to check every step.
//
// 🚀 What is quopt?
//
//	A modular library that brings together:
//		• Polynomial core: multilinear pseudo-boolean polynomials over int ids
//		• Label mapping: any comparable label type, first-seen id order, ancillas
//		• Constraints: eq/le/lt/ge/gt/ne folded in as squared or slack penalties
//		• Degree reduction: cubic-and-up objectives rewritten to quadratic
//		• Payloads: QUBO and Ising forms linked by the exact affine spin map
//		• Solvers: exhaustive scan with validation, SAT and MaxSAT min-cover
//		• Adapters: vertex cover and number partitioning, ready to decode
//
// ✨ Why choose quopt?
//
//   - Deterministic – first-seen variable order, sorted payload terms
//   - Honest energies – penalties dominate by construction, validators double-check
//   - Decodable – payloads carry a mapping fingerprint; stale samples are refused
//   - Exact where it counts – brute scan and SAT descend both prove optimality
//
// Under the hood, everything is organized in small subpackages:
//
//	coeff/     — numeric and symbolic coefficients with exact substitution
//	boolpoly/  — multilinear polynomials and the label↔id mapper
//	pcbo/      — the constrained model: penalties, reduction, validation
//	quad/      — QUBO and Ising payloads + conversions
//	brute/     — exhaustive minimization with workers and validators
//	cover/     — minimum vertex cover adapter
//	partition/ — number partitioning adapter
//	exact/     — SAT/MaxSAT minimum-cover backends
//	cmd/quopt/ — the CLI: solve, payload, lambda, partition
//
// Quick ASCII example:
//
//	    a───b
//	     \ /
//	      c
//
//	a triangle; any two vertices cover all three edges, and the
//	penalized model prices exactly those three pair-states lowest.
//
// Dive into examples/ for full walkthroughs of the cover pipeline,
// payload equivalence, degree reduction and partitioning.
//
//	go get github.com/katalvlaran/quopt
package quopt
