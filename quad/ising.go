// ising.go — the Ising/QUSO payload: linear field, couplings, offset.

package quad

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Ising is a quadratic spin objective: minimize
// Σ H[i]·s_i + Σ J[{i,j}]·s_i·s_j + Offset over s ∈ {−1,+1}ⁿ.
// J keys are strict pairs (I < J); linear terms live in H only.
type Ising struct {
	H       map[int]float64
	J       map[Pair]float64
	Offset  float64
	Mapping uuid.UUID
}

// NewIsing returns an empty payload bound to the given mapping fingerprint.
func NewIsing(mapping uuid.UUID) Ising {
	return Ising{
		H:       make(map[int]float64),
		J:       make(map[Pair]float64),
		Mapping: mapping,
	}
}

// Variables returns the sorted distinct ids the payload references.
func (is Ising) Variables() []int {
	seen := make(map[int]struct{})
	for id := range is.H {
		seen[id] = struct{}{}
	}
	for p := range is.J {
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

// EvaluateSpins computes the objective at a full spin assignment, offset
// included. Values must be −1 or +1; anything else is ErrSpinDomain.
func (is Ising) EvaluateSpins(spins map[int]int) (float64, error) {
	total := is.Offset
	for _, id := range is.Variables() {
		if _, ok := spins[id]; !ok {
			return 0, fmt.Errorf("EvaluateSpins: id %d: %w", id, ErrIncompleteAssignment)
		}
		if s := spins[id]; s != 1 && s != -1 {
			return 0, fmt.Errorf("EvaluateSpins: id %d value %d: %w", id, s, ErrSpinDomain)
		}
	}
	for _, id := range is.sortedH() {
		total += is.H[id] * float64(spins[id])
	}
	for _, p := range is.SortedPairs() {
		total += is.J[p] * float64(spins[p.I]) * float64(spins[p.J])
	}
	return total, nil
}

// Evaluate computes the objective at a boolean assignment through the spin
// substitution s = 2x − 1 (true → +1, false → −1).
func (is Ising) Evaluate(bits map[int]bool) (float64, error) {
	spins := make(map[int]int, len(bits))
	for id, b := range bits {
		if b {
			spins[id] = 1
		} else {
			spins[id] = -1
		}
	}
	return is.EvaluateSpins(spins)
}

// ToQUBO re-expresses the payload over boolean variables via s = 2x − 1,
// inverting QUBO.ToIsing exactly.
func (is Ising) ToQUBO() QUBO {
	q := NewQUBO(is.Mapping)
	q.Offset = is.Offset
	for id, v := range is.H {
		// v·s = 2v·x − v
		q.Add(Pair{I: id, J: id}, 2*v)
		q.Offset -= v
	}
	for p, v := range is.J {
		// v·s_i·s_j = 4v·x_i·x_j − 2v·x_i − 2v·x_j + v
		q.Add(p, 4*v)
		q.Add(Pair{I: p.I, J: p.I}, -2*v)
		q.Add(Pair{I: p.J, J: p.J}, -2*v)
		q.Offset += v
	}
	return q
}

// SortedPairs returns the coupling keys in deterministic order.
func (is Ising) SortedPairs() []Pair {
	pairs := make([]Pair, 0, len(is.J))
	for p := range is.J {
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

// sortedH returns the field ids in ascending order.
func (is Ising) sortedH() []int {
	ids := make([]int, 0, len(is.H))
	for id := range is.H {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// prune removes exact-zero entries left by cancellation during conversion.
func (is Ising) prune() {
	for id, v := range is.H {
		if v == 0 {
			delete(is.H, id)
		}
	}
	for p, v := range is.J {
		if v == 0 {
			delete(is.J, p)
		}
	}
}
