// Package quad defines the solver-facing quadratic payloads of quopt and
// the exact conversions between them.
//
// Two encodings of the same energy function are supported:
//
//   - QUBO  — minimize Σ c_ij·x_i·x_j + offset over x ∈ {0,1}ⁿ, coefficients
//     keyed by unordered id pairs (a pair with I == J is a linear term).
//   - Ising — minimize Σ h_i·s_i + Σ J_ij·s_i·s_j + offset over s ∈ {−1,+1}ⁿ.
//
// The two are related by the affine substitution x = (1 + s)/2. Conversion
// is exact for dyadic-rational coefficients (the divisors are 2 and 4), so
// for every boolean assignment and its spin counterpart the two encodings
// evaluate to the same number, bit for bit.
//
// Payloads are value objects: they deep-copy nothing from the model that
// produced them except the mapping fingerprint, which binds the payload to
// the variable mapping its ids are indexed by. Decoding a payload's
// solution against any other mapping is rejected with ErrMappingMismatch.
package quad
