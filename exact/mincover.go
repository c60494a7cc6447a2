package exact

import (
	"context"
	"strconv"
	"time"

	"github.com/crillab/gophersat/maxsat"
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/quopt/cover"
)

// SAT verdicts as gini reports them.
const (
	satisfiable   = 1
	unsatisfiable = -1
)

// MinCover returns one minimum vertex cover of the given edge set, in
// first-seen vertex order. Duplicate edges are harmless; a self-loop
// forces its vertex into every cover; an empty edge set yields an empty
// cover. A nil ctx is treated as context.Background().
func MinCover[L comparable](ctx context.Context, edges []cover.Edge[L], opts ...Option) ([]L, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := gatherOptions(opts...)
	if ctx.Err() != nil {
		return nil, ErrIncomplete
	}

	if o.backend == MaxSAT {
		return maxsatCover(edges)
	}

	return giniCover(ctx, edges)
}

// vertexOrder allocates indices for every distinct endpoint in
// first-seen edge order.
func vertexOrder[L comparable](edges []cover.Edge[L]) ([]L, map[L]int) {
	verts := make([]L, 0, 2*len(edges))
	index := make(map[L]int, 2*len(edges))
	for _, e := range edges {
		for _, v := range [2]L{e.U, e.V} {
			if _, ok := index[v]; ok {
				continue
			}
			index[v] = len(verts)
			verts = append(verts, v)
		}
	}

	return verts, index
}

// chosen filters verts by the model bits, preserving order.
func chosen[L comparable](verts []L, model []bool) []L {
	out := make([]L, 0, len(verts))
	for i, v := range verts {
		if model[i] {
			out = append(out, v)
		}
	}

	return out
}

// solveRound runs one SAT query, bounded by the context deadline when
// one is present. 0 means the round was cut short.
func solveRound(ctx context.Context, g *gini.Gini) int {
	deadline, ok := ctx.Deadline()
	if !ok {
		return g.Solve()
	}
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return 0
	}

	return g.Try(remaining)
}

// giniCover runs the cardinality descend: clause (u ∨ v) per edge, one
// sorting network over all vertex literals, then assume-and-solve with
// the bound one below the incumbent's size until refuted.
func giniCover[L comparable](ctx context.Context, edges []cover.Edge[L]) ([]L, error) {
	verts, index := vertexOrder(edges)
	if len(verts) == 0 {
		return []L{}, nil
	}

	g := gini.New()
	c := logic.NewC()
	lits := make([]z.Lit, len(verts))
	for i := range lits {
		lits[i] = c.Lit()
	}
	for _, e := range edges {
		g.Add(lits[index[e.U]])
		g.Add(lits[index[e.V]])
		g.Add(z.LitNull)
	}
	cs := logic.NewCardSort(lits, c)
	c.ToCnf(g)

	model := make([]bool, len(verts))
	haveModel := false
	// Choosing every vertex satisfies all clauses, so the first round
	// (bound = n) is satisfiable and the loop only tightens from there.
	for bound := len(verts); bound >= 0; {
		if ctx.Err() != nil {
			return nil, ErrIncomplete
		}
		g.Assume(cs.Leq(bound))
		switch solveRound(ctx, g) {
		case satisfiable:
			size := 0
			for i, m := range lits {
				model[i] = g.Value(m)
				if model[i] {
					size++
				}
			}
			haveModel = true
			bound = size - 1
		case unsatisfiable:
			if !haveModel {
				return nil, ErrUnsat
			}

			return chosen(verts, model), nil
		default:
			return nil, ErrIncomplete
		}
	}

	// The bound fell below zero: the incumbent is empty and trivially
	// minimal.
	return chosen(verts, model), nil
}

// maxsatCover casts the instance as weighted partial MaxSAT: hard
// (u ∨ v) per edge, soft ¬v per vertex, so an optimal model violates
// exactly the vertices of a minimum cover.
func maxsatCover[L comparable](edges []cover.Edge[L]) ([]L, error) {
	verts, index := vertexOrder(edges)
	if len(verts) == 0 {
		return []L{}, nil
	}

	constrs := make([]maxsat.Constr, 0, len(edges)+len(verts))
	for _, e := range edges {
		constrs = append(constrs, maxsat.HardClause(
			maxsat.Var(strconv.Itoa(index[e.U])),
			maxsat.Var(strconv.Itoa(index[e.V])),
		))
	}
	for i := range verts {
		constrs = append(constrs, maxsat.SoftClause(maxsat.Not(strconv.Itoa(i))))
	}

	sol, _ := maxsat.New(constrs...).Solve()
	if sol == nil {
		return nil, ErrUnsat
	}

	model := make([]bool, len(verts))
	for i := range verts {
		model[i] = sol[strconv.Itoa(i)]
	}

	return chosen(verts, model), nil
}
