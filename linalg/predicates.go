// SPDX-License-Identifier: MIT
// Package linalg: boolean property predicates.
//
// Contract shared by every predicate:
//   - A nil, non-square, or non-power-of-two operand returns false (never an
//     error, never a panic).
//   - The residual is measured with matrix.AbsNorm (Frobenius norm of the
//     entrywise modulus) and compared with a strict "<" against eps.
//   - Pure and deterministic; operands are not mutated.

package linalg

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qlath/matrix"
)

// IsHermitian reports whether ‖M − M†‖ < eps (default DefaultHermitianEps).
func IsHermitian(m matrix.Matrix, opts ...Option) bool {
	if matrix.ValidateQubitShape(m) != nil {
		return false
	}
	md, err := matrix.Dagger(m)
	if err != nil {
		return false
	}

	return residualBelow(m, md, resolveEps(DefaultHermitianEps, opts))
}

// IsProjector reports whether ‖M·M − M‖ < eps (default DefaultProjectorEps).
func IsProjector(m matrix.Matrix, opts ...Option) bool {
	if matrix.ValidateQubitShape(m) != nil {
		return false
	}
	mm, err := matrix.Mul(m, m)
	if err != nil {
		return false
	}

	return residualBelow(mm, m, resolveEps(DefaultProjectorEps, opts))
}

// IsUnitary reports whether ‖M·M† − I‖ < eps (default DefaultUnitaryEps).
func IsUnitary(m matrix.Matrix, opts ...Option) bool {
	if matrix.ValidateQubitShape(m) != nil {
		return false
	}
	mmd, err := matrix.MulDagger(m, m)
	if err != nil {
		return false
	}
	id, err := matrix.NewIdentity(m.Rows())
	if err != nil {
		return false
	}

	return residualBelow(mmd, id, resolveEps(DefaultUnitaryEps, opts))
}

// IsDensityOperator reports whether M is Hermitian, has unit trace and no
// eigenvalue below −eps, all within eps (default DefaultDensityEps).
//
// Complexity: dominated by the eigen decomposition, O(sweeps·n³).
func IsDensityOperator(m matrix.Matrix, opts ...Option) bool {
	eps := resolveEps(DefaultDensityEps, opts)
	if !IsHermitian(m, WithEpsilon(eps)) {
		return false
	}
	tr, err := matrix.Trace(m)
	if err != nil || cmplx.Abs(tr-1) >= eps {
		return false
	}
	vals, _, err := matrix.EigenHermitian(m, matrix.WithEpsilon(eps))
	if err != nil {
		return false
	}

	return len(vals) > 0 && vals[0] >= -eps
}

// residualBelow reports ‖a − b‖ < eps.
func residualBelow(a, b matrix.Matrix, eps float64) bool {
	diff, err := matrix.Sub(a, b)
	if err != nil {
		return false
	}
	norm, err := matrix.AbsNorm(diff)
	if err != nil || math.IsNaN(norm) {
		return false
	}

	return norm < eps
}
