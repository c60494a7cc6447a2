// qubo.go — the QUBO payload: quadratic 0/1 form with offset.

package quad

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Pair is an unordered id pair in canonical order (I ≤ J). A pair with
// I == J keys a linear term.
type Pair struct {
	I, J int
}

// NewPair returns the canonical pair for two ids in any order.
func NewPair(a, b int) Pair {
	if a <= b {
		return Pair{I: a, J: b}
	}
	return Pair{I: b, J: a}
}

// Linear reports whether the pair keys a linear (single-variable) term.
func (p Pair) Linear() bool { return p.I == p.J }

// QUBO is a degree ≤ 2 boolean objective: minimize
// Σ Terms[{i,j}]·x_i·x_j + Offset over x ∈ {0,1}ⁿ.
// Mapping is the fingerprint of the variable mapping the ids index into.
type QUBO struct {
	Terms   map[Pair]float64
	Offset  float64
	Mapping uuid.UUID
}

// NewQUBO returns an empty payload bound to the given mapping fingerprint.
func NewQUBO(mapping uuid.UUID) QUBO {
	return QUBO{Terms: make(map[Pair]float64), Mapping: mapping}
}

// Add accumulates v into the pair's coefficient, pruning exact zeros.
func (q QUBO) Add(p Pair, v float64) {
	next := q.Terms[p] + v
	if next == 0 {
		delete(q.Terms, p)
		return
	}
	q.Terms[p] = next
}

// Variables returns the sorted distinct ids the payload references.
func (q QUBO) Variables() []int {
	seen := make(map[int]struct{})
	for p := range q.Terms {
		seen[p.I] = struct{}{}
		seen[p.J] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Evaluate computes the objective at a full boolean assignment, offset
// included. Every referenced id must be present.
func (q QUBO) Evaluate(bits map[int]bool) (float64, error) {
	total := q.Offset
	for _, p := range q.SortedPairs() {
		xi, ok := bits[p.I]
		if !ok {
			return 0, fmt.Errorf("Evaluate: id %d: %w", p.I, ErrIncompleteAssignment)
		}
		xj, ok := bits[p.J]
		if !ok {
			return 0, fmt.Errorf("Evaluate: id %d: %w", p.J, ErrIncompleteAssignment)
		}
		if xi && xj {
			total += q.Terms[p]
		}
	}
	return total, nil
}

// ToIsing re-expresses the payload over spin variables via x = (1+s)/2.
// Pair and linear contributions split exactly (divisors 2 and 4), so the
// two payloads agree on every assignment.
func (q QUBO) ToIsing() Ising {
	is := NewIsing(q.Mapping)
	is.Offset = q.Offset
	for p, v := range q.Terms {
		if p.Linear() {
			// v·x = v/2 + (v/2)·s
			is.H[p.I] += v / 2
			is.Offset += v / 2
			continue
		}
		// v·x_i·x_j = v/4·(1 + s_i + s_j + s_i·s_j)
		is.J[p] += v / 4
		is.H[p.I] += v / 4
		is.H[p.J] += v / 4
		is.Offset += v / 4
	}
	is.prune()
	return is
}

// SortedPairs returns the payload's pair keys in deterministic order.
func (q QUBO) SortedPairs() []Pair {
	pairs := make([]Pair, 0, len(q.Terms))
	for p := range q.Terms {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].I != pairs[b].I {
			return pairs[a].I < pairs[b].I
		}
		return pairs[a].J < pairs[b].J
	})
	return pairs
}
