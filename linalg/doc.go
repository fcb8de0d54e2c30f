// SPDX-License-Identifier: MIT

// Package linalg provides random matrix ensembles and property predicates for
// quantum linear algebra on top of the matrix package.
//
// What it offers:
//
//   - Predicates: IsHermitian, IsProjector, IsUnitary and IsDensityOperator.
//     They never fail: a nil, non-square or non-2^n operand simply yields false.
//   - Sampler: an explicit random source with ensemble generators
//     (HermitianRandom, OrthogonalProjectionRandom, UnitaryHermitianRandom,
//     UnitaryRandomWithHermitianBlock, UnitaryRandom, HaarOrthogonal,
//     HaarUnitary, HaarStateVector, HaarDensityOperator, GinibreMatrix).
//   - NKron: left-folded Kronecker product of two or more operators.
//
// Randomness never comes from package globals. Construct a Sampler with
// WithSeed for reproducible draws, or with WithRand to share a *rand.Rand.
// Without either option the sampler seeds itself from the wall clock.
//
// Generator dimensions follow the qubit convention: n qubits give 2^n × 2^n
// operators, and n < 1 (or n > MaxQubits) fails with ErrInvalidQubits.
package linalg
