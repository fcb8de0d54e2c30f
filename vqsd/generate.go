// SPDX-License-Identifier: MIT

package vqsd

import (
	"math/bits"

	"github.com/katalvlaran/qlath/linalg"
	"github.com/katalvlaran/qlath/matrix"
	"gonum.org/v1/gonum/floats"
)

const opGenerate = "GenerateRhoSigma"

// GenerateRhoSigma builds an example problem instance:
//
//   - ρ = V·diag(spectrum)·V† for a Haar-random unitary V drawn from s;
//   - σ = diag(1, 2, …, d) / Σ, a unit-trace diagonal with distinct
//     increasing entries (0.1, 0.2, 0.3, 0.4 for d = 4).
//
// Errors: ErrNilSampler, ErrInvalidSpectrum.
func GenerateRhoSigma(s *linalg.Sampler, spectrum []float64) (rho, sigma *matrix.Dense, err error) {
	if s == nil {
		return nil, nil, vqsdErrorf(opGenerate, ErrNilSampler)
	}
	d := len(spectrum)
	if d < 2 || !matrix.IsPowerOfTwo(d) {
		return nil, nil, vqsdErrorf(opGenerate, ErrInvalidSpectrum)
	}
	numQubits := bits.TrailingZeros(uint(d))

	v, err := s.UnitaryRandom(numQubits)
	if err != nil {
		return nil, nil, vqsdErrorf(opGenerate, err)
	}
	diag := make([]complex128, d)
	for i, x := range spectrum {
		diag[i] = complex(x, 0)
	}
	dm, err := matrix.NewDiagonal(diag)
	if err != nil {
		return nil, nil, vqsdErrorf(opGenerate, err)
	}
	vd, err := matrix.Mul(v, dm)
	if err != nil {
		return nil, nil, vqsdErrorf(opGenerate, err)
	}
	if rho, err = matrix.MulDagger(vd, v); err != nil {
		return nil, nil, vqsdErrorf(opGenerate, err)
	}

	levels := make([]float64, d)
	floats.Span(levels, 1, float64(d))
	floats.Scale(1/floats.Sum(levels), levels)
	for i, x := range levels {
		diag[i] = complex(x, 0)
	}
	if sigma, err = matrix.NewDiagonal(diag); err != nil {
		return nil, nil, vqsdErrorf(opGenerate, err)
	}

	return rho, sigma, nil
}
