// Package kzg10 implements the Kate-Zaverucha-Goldberg polynomial commitment
// scheme (KZG10) over the BN254 pairing-friendly curve.
//
// The scheme lets a prover publish a constant-size commitment to a polynomial
// and later convince a verifier, with a constant-size witness and a pairing
// check, that the committed polynomial evaluates to a claimed value at a
// given point. It is the building block of pairing-based SNARK pipelines that
// reduce polynomial identity checks to a single evaluation point.
//
// The exposed operations follow the KZG10 paper:
//   - Setup generates a structured reference string from a transient trapdoor
//   - Commit maps a polynomial to a G1 point
//   - DeriveChallenge turns commitments into an evaluation point (Fiat-Shamir)
//   - Evaluate computes p(z) in the scalar field
//   - Open produces an evaluation witness for p(z)
//   - VerifyEval checks a witness against a commitment with three pairings
//
// Polynomials are coefficient slices ordered from the highest degree term
// down to the constant term: p = [pₜ₋₁, …, p₁, p₀] represents
// pₜ₋₁Xᵗ⁻¹ + … + p₁X + p₀.
package kzg10

import (
	"github.com/blang/semver/v4"
)

// Version of the library.
var Version = semver.MustParse("0.1.0")
