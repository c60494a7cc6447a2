// Package cover encodes minimum vertex cover as a constrained
// pseudo-boolean model, following the penalty formulation of Lucas,
// "Ising formulations of many NP problems" (§4.3).
//
// One boolean variable per vertex (1 = in the cover), unit cost per chosen
// vertex, and one OR constraint per edge with penalty weight λ:
//
//	minimize   Σ_v x_v  +  λ · Σ_{(u,v)∈E} (1−x_u)(1−x_v)
//
// λ defaults to 2, the smallest integer weight for which the unconstrained
// minimizer set coincides exactly with the minimum covers (λ = 1 already
// attains the right minimum value but lets one-vertex-short states tie).
// Symbolic λ is supported through WithLambda for weight exploration.
//
// Duplicate edges (either orientation) collapse to one constraint, and a
// self-loop degenerates to the unit clause x_v == 1. Vertices no edge
// mentions can be declared with AddVertices; they carry the unit cost and
// therefore never join a minimum cover.
//
// Use New → ToQUBO/ToIsing → any solver → Decode, or SolveBrute for
// exhaustive ground truth on small graphs.
package cover
