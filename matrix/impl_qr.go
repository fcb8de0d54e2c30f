// SPDX-License-Identifier: MIT
// Package matrix: QR computes the QR decomposition of a square complex matrix
// using Householder reflections, returning unitary Q and upper-triangular R
// such that m = Q×R.

package matrix

import (
	"math"
	"math/cmplx"
)

// QR returns Q and R for the decomposition m = Q×R.
//
// Implementation:
//   - Stage 1: Validate m is non-nil and square.
//   - Stage 2: Copy m into the working matrix A and start Qh = I.
//   - Stage 3: For each column k build the reflector v = x − α·e₁ with
//     α = −e^{i·arg(x₀)}·‖x‖ and apply H = I − (2/v†v)·v·v† to A and Qh.
//   - Stage 4: R is the reduced A (sub-diagonal zeroed), Q = Qh†.
//
// Behavior highlights:
//   - Diagonal of R carries the phases chosen by the reflectors; callers that
//     need a unique decomposition (Haar sampling) normalize them afterwards.
//   - A zero column is skipped (its reflector is the identity).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func QR(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	n := dm.r

	a := dm.clone()
	qh, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	v := make([]complex128, n)

	var (
		i, j, k    int
		norm, beta float64
		alpha, x0  complex128
		phase, sum complex128
		tau        complex128
	)
	for k = 0; k < n; k++ {
		// 3.1: ‖A[k:n, k]‖
		norm = NormZero
		for i = k; i < n; i++ {
			norm += sqAbs(a.data[i*n+k])
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue
		}

		// 3.2: α = −phase(x₀)·‖x‖
		x0 = a.data[k*n+k]
		phase = 1
		if x0 != 0 {
			phase = x0 / complex(cmplx.Abs(x0), 0)
		}
		alpha = -phase * complex(norm, 0)

		// 3.3: v = x − α·e₁, β = v†v
		beta = NormZero
		for i = k; i < n; i++ {
			v[i] = a.data[i*n+k]
		}
		v[k] -= alpha
		for i = k; i < n; i++ {
			beta += sqAbs(v[i])
		}
		if beta == NormZero {
			continue
		}
		tau = complex(2/beta, 0)

		// 3.4: A[k:, j] −= τ·v·(v†A[k:, j])
		for j = k; j < n; j++ {
			sum = 0
			for i = k; i < n; i++ {
				sum += cmplx.Conj(v[i]) * a.data[i*n+j]
			}
			sum *= tau
			for i = k; i < n; i++ {
				a.data[i*n+j] -= v[i] * sum
			}
		}

		// 3.5: Qh[k:, j] −= τ·v·(v†Qh[k:, j])
		for j = 0; j < n; j++ {
			sum = 0
			for i = k; i < n; i++ {
				sum += cmplx.Conj(v[i]) * qh.data[i*n+j]
			}
			sum *= tau
			for i = k; i < n; i++ {
				qh.data[i*n+j] -= v[i] * sum
			}
		}

		// 3.6: exact zeros below the pivot, exact α on it
		a.data[k*n+k] = alpha
		for i = k + 1; i < n; i++ {
			a.data[i*n+k] = 0
		}
	}

	q, err := Dagger(qh)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	return q, a, nil
}

// sqAbs returns |z|² without the square root.
func sqAbs(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
