// Package partition casts number partitioning as a penalized boolean model:
// split n integer weights into two sides of equal sum.
//
// One variable per weight index, x_i = true meaning "left side". The whole
// problem is a single equality constraint,
//
//	Σ wᵢ·(2xᵢ − 1) == 0  (weight 1),
//
// whose penalty is the squared imbalance between the sides. There is no
// separate cost term: a sample is optimal exactly when it is feasible, and
// the minimum objective of a splittable instance is 0.
//
// The identity 2x − 1 = s makes the spin view of this model unusually
// clean: ToIsing carries couplings Jᵢⱼ = 2wᵢwⱼ and the constant Σ wᵢ² with
// every field term hᵢ cancelling exactly. Odd totals (and any instance
// with no equal-sum split) are infeasible; exhaustive solving surfaces
// that as brute.ErrNoAdmissibleSolution.
//
// Flow mirrors the vertex cover adapter:
//
//	p, _ := partition.New([]int64{1, 2, 3})
//	q, _ := p.ToQUBO()
//	// ... minimize q externally ...
//	left, right, _ := p.Decode(raw, q.Mapping)
//
// Mirror images count separately: swapping the sides is a distinct
// assignment and both are reported by SolveBrute.
package partition
