package cover

import (
	"context"

	"github.com/google/uuid"
	"github.com/katalvlaran/quopt/brute"
	"github.com/katalvlaran/quopt/coeff"
	"github.com/katalvlaran/quopt/pcbo"
	"github.com/katalvlaran/quopt/quad"
)

// DefaultLambda is the constraint weight used when WithLambda is absent.
// Two is the smallest integer sufficient for exact minimizer sets on any
// instance: dropping a vertex from a cover saves 1 but uncovers at least
// one edge, costing λ.
var DefaultLambda = coeff.Of(2)

const panicLambdaNil = "cover: WithLambda: nil coefficient"

// Edge joins two vertex labels. Orientation is irrelevant.
type Edge[L comparable] struct {
	U, V L
}

// Option configures New.
type Option func(*options)

type options struct {
	lambda coeff.Coeff
}

// WithLambda overrides the per-edge constraint weight. Symbolic weights
// are legal; substitute them on the Model before converting. Panics when
// c is nil.
func WithLambda(c coeff.Coeff) Option {
	if c == nil {
		panic(panicLambdaNil)
	}

	return func(o *options) { o.lambda = c }
}

// Problem is a vertex cover instance bound to one model and one mapping.
type Problem[L comparable] struct {
	model  *pcbo.Model[L]
	edges  []Edge[L]
	lambda coeff.Coeff
}

// New builds the penalized model for the given edge set. Duplicate edges
// in either orientation collapse; self-loops become unit clauses.
func New[L comparable](edges []Edge[L], opts ...Option) (*Problem[L], error) {
	o := options{lambda: DefaultLambda}
	for _, set := range opts {
		set(&o)
	}

	kept := dedupeEdges(edges)
	m := pcbo.New[L]()

	// Unit cost per vertex, in first-seen order.
	seen := make(map[L]struct{}, 2*len(kept))
	for _, e := range kept {
		for _, v := range [2]L{e.U, e.V} {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if err := m.AddObjectiveTerm(coeff.One, v); err != nil {
				return nil, err
			}
		}
	}

	// Coverage constraint per edge.
	for _, e := range kept {
		if err := m.AddOR(o.lambda, e.U, e.V); err != nil {
			return nil, err
		}
	}

	return &Problem[L]{model: m, edges: kept, lambda: o.lambda}, nil
}

// dedupeEdges drops repeated edges regardless of orientation, keeping
// first occurrences in order.
func dedupeEdges[L comparable](edges []Edge[L]) []Edge[L] {
	seen := make(map[Edge[L]]struct{}, len(edges))
	kept := make([]Edge[L], 0, len(edges))
	for _, e := range edges {
		if _, dup := seen[e]; dup {
			continue
		}
		if _, dup := seen[Edge[L]{U: e.V, V: e.U}]; dup {
			continue
		}
		seen[e] = struct{}{}
		kept = append(kept, e)
	}

	return kept
}

// AddVertices declares vertices the edge set does not mention. Isolated
// vertices still carry the unit cost, so they never join a minimum cover;
// declaring them keeps Vertices, payloads and decode output aligned with
// the caller's full vertex set. Already-known labels are ignored. Fails
// with pcbo.ErrFrozen once the problem has been converted.
func (p *Problem[L]) AddVertices(vs ...L) error {
	known := make(map[L]struct{}, p.model.NumVariables())
	for _, l := range p.model.Mapper().Labels() {
		known[l] = struct{}{}
	}
	for _, v := range vs {
		if _, ok := known[v]; ok {
			continue
		}
		known[v] = struct{}{}
		if err := p.model.AddObjectiveTerm(coeff.One, v); err != nil {
			return err
		}
	}

	return nil
}

// Model exposes the underlying constrained model (shared, not a copy).
func (p *Problem[L]) Model() *pcbo.Model[L] { return p.model }

// Edges returns the deduplicated edge set in kept order.
func (p *Problem[L]) Edges() []Edge[L] {
	out := make([]Edge[L], len(p.edges))
	copy(out, p.edges)

	return out
}

// Vertices returns the vertex labels in first-seen order.
func (p *Problem[L]) Vertices() []L { return p.model.Mapper().Labels() }

// ToQUBO converts the penalized model to its quadratic payload.
func (p *Problem[L]) ToQUBO() (quad.QUBO, error) { return p.model.ToQUBO() }

// ToIsing converts through the exact affine spin map.
func (p *Problem[L]) ToIsing() (quad.Ising, error) { return p.model.ToIsing() }

// Decode turns a raw solver sample (0/1 or ±1 values) into the chosen
// vertex set, in first-seen order. The tag must match this problem's
// mapping.
func (p *Problem[L]) Decode(raw map[int]int, tag uuid.UUID) ([]L, error) {
	sol, err := p.model.Decode(raw, tag)
	if err != nil {
		return nil, err
	}

	out := make([]L, 0, len(sol))
	for _, label := range p.model.Mapper().Labels() {
		if sol[label] {
			out = append(out, label)
		}
	}

	return out, nil
}

// IsCoverValid re-encodes the vertex set and checks every edge constraint.
// Labels outside the graph are ignored; they cannot cover anything.
func (p *Problem[L]) IsCoverValid(set []L) bool {
	chosen := make(map[L]struct{}, len(set))
	for _, v := range set {
		chosen[v] = struct{}{}
	}

	assign := make(map[int]bool, p.model.NumVariables())
	for _, label := range p.model.Mapper().Labels() {
		id, err := p.model.Var(label)
		if err != nil {
			return false
		}
		_, in := chosen[label]
		assign[id] = in
	}

	return p.model.IsSolutionValid(assign)
}

// SolveBrute exhaustively finds every minimum cover. Covers are reported
// in deterministic assignment order, each in first-seen vertex order.
func (p *Problem[L]) SolveBrute(ctx context.Context, opts ...brute.Option) ([][]L, float64, error) {
	sols, value, err := p.model.SolveBrute(ctx, opts...)
	if err != nil {
		return nil, 0, err
	}

	covers := make([][]L, 0, len(sols))
	for _, s := range sols {
		cover := make([]L, 0, len(s))
		for _, label := range p.model.Mapper().Labels() {
			if s[label] {
				cover = append(cover, label)
			}
		}
		covers = append(covers, cover)
	}

	return covers, value, nil
}
