package exact

import "errors"

// ErrUnsat reports that the hard clauses admit no model at all.
//
// Usage: returned by MinCover when the backend proves the edge
// constraints themselves unsatisfiable. A plain edge set always has the
// all-vertices cover, so this is reachable only through backend failure
// and is surfaced rather than swallowed.
var ErrUnsat = errors.New("exact: constraints unsatisfiable")

// ErrIncomplete reports interruption before optimality was proven.
//
// Usage: returned by MinCover when the context is cancelled or its
// deadline expires mid-search. No cover accompanies the error; partial
// incumbents are deliberately not exposed.
var ErrIncomplete = errors.New("exact: interrupted before optimality was proven")
