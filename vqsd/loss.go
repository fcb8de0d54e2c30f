// SPDX-License-Identifier: MIT

package vqsd

import "github.com/katalvlaran/qlath/matrix"

const opLoss = "Loss"

// Loss returns Re tr(σ·ρ̃) together with ρ̃ = U·ρ·U†.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNonSquare.
// Complexity: O(d³) for d×d operands.
func Loss(u, rho, sigma matrix.Matrix) (float64, *matrix.Dense, error) {
	ur, err := matrix.Mul(u, rho)
	if err != nil {
		return 0, nil, vqsdErrorf(opLoss, err)
	}
	rhoTilde, err := matrix.MulDagger(ur, u)
	if err != nil {
		return 0, nil, vqsdErrorf(opLoss, err)
	}
	sr, err := matrix.Mul(sigma, rhoTilde)
	if err != nil {
		return 0, nil, vqsdErrorf(opLoss, err)
	}
	tr, err := matrix.Trace(sr)
	if err != nil {
		return 0, nil, vqsdErrorf(opLoss, err)
	}

	return real(tr), rhoTilde, nil
}
