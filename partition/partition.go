package partition

import (
	"context"

	"github.com/google/uuid"
	"github.com/katalvlaran/quopt/boolpoly"
	"github.com/katalvlaran/quopt/brute"
	"github.com/katalvlaran/quopt/coeff"
	"github.com/katalvlaran/quopt/pcbo"
	"github.com/katalvlaran/quopt/quad"
)

// Problem is a number partitioning instance bound to one model and one
// mapping. Variables are the weight indices 0..n−1.
type Problem struct {
	model   *pcbo.Model[int]
	weights []int64
}

// New builds the penalized model for the given weights: the single
// equality Σ wᵢ·(2xᵢ − 1) == 0 at unit weight. Weights may repeat and may
// be negative or zero; indices are allocated in input order.
func New(weights []int64) (*Problem, error) {
	m := pcbo.New[int]()

	imbalance := boolpoly.NewPoly()
	var total int64
	for i, w := range weights {
		id, err := m.Var(i)
		if err != nil {
			return nil, err
		}
		imbalance.AddTerm(coeff.Of(float64(2*w)), id)
		total += w
	}
	imbalance.AddTerm(coeff.Of(float64(-total)))

	if err := m.AddEqZero(imbalance, coeff.One); err != nil {
		return nil, err
	}

	return &Problem{model: m, weights: append([]int64(nil), weights...)}, nil
}

// Model exposes the underlying constrained model (shared, not a copy).
func (p *Problem) Model() *pcbo.Model[int] { return p.model }

// Weights returns the instance weights in input order.
func (p *Problem) Weights() []int64 {
	out := make([]int64, len(p.weights))
	copy(out, p.weights)

	return out
}

// Total returns the sum of all weights.
func (p *Problem) Total() int64 {
	var t int64
	for _, w := range p.weights {
		t += w
	}

	return t
}

// ToQUBO converts the penalized model to its quadratic payload.
func (p *Problem) ToQUBO() (quad.QUBO, error) { return p.model.ToQUBO() }

// ToIsing converts through the exact affine spin map. The payload holds
// couplings and an offset only; the field terms cancel exactly.
func (p *Problem) ToIsing() (quad.Ising, error) { return p.model.ToIsing() }

// Decode turns a raw solver sample (0/1 or ±1 values) into the two index
// sets, each in input order: left holds the indices assigned true. The
// tag must match this problem's mapping.
func (p *Problem) Decode(raw map[int]int, tag uuid.UUID) (left, right []int, err error) {
	sol, err := p.model.Decode(raw, tag)
	if err != nil {
		return nil, nil, err
	}

	left = make([]int, 0, len(p.weights))
	right = make([]int, 0, len(p.weights))
	for i := range p.weights {
		if sol[i] {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	return left, right, nil
}

// IsBalanced re-encodes the left index set and checks the stored
// equality: both sides must carry exactly half the total. Indices outside
// the instance are ignored; they carry no weight.
func (p *Problem) IsBalanced(left []int) bool {
	chosen := make(map[int]struct{}, len(left))
	for _, i := range left {
		chosen[i] = struct{}{}
	}

	assign := make(map[int]bool, len(p.weights))
	for i := range p.weights {
		id, err := p.model.Var(i)
		if err != nil {
			return false
		}
		_, in := chosen[i]
		assign[id] = in
	}

	return p.model.IsSolutionValid(assign)
}

// SolveBrute exhaustively finds every perfectly balanced split, reported
// as left index sets in deterministic assignment order. Infeasible
// instances (odd totals included) surface as
// brute.ErrNoAdmissibleSolution.
func (p *Problem) SolveBrute(ctx context.Context, opts ...brute.Option) ([][]int, float64, error) {
	sols, value, err := p.model.SolveBrute(ctx, opts...)
	if err != nil {
		return nil, 0, err
	}

	lefts := make([][]int, 0, len(sols))
	for _, s := range sols {
		left := make([]int, 0, len(s))
		for i := range p.weights {
			if s[i] {
				left = append(left, i)
			}
		}
		lefts = append(lefts, left)
	}

	return lefts, value, nil
}
