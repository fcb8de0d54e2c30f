// SPDX-License-Identifier: MIT
// Package matrix: spectral kernels for Hermitian operators.
//
// Purpose:
//   - EigenHermitian: eigenvalues (ascending) and orthonormal eigenvectors.
//   - SqrtPSD: principal square root of a positive semidefinite Hermitian matrix.
//
// Strategy:
//   - Real-symmetric input (every imaginary part exactly zero) goes through
//     gonum's mat.EigenSym (LAPACK dsyev semantics).
//   - Genuinely complex input runs a classical complex Jacobi: each pivot
//     (p,q) is first de-phased with diag(1, e^{-iφ}) and then annihilated by a
//     real rotation, so degenerate spectra still produce an orthonormal basis.

package matrix

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// jacobiRelTol is the off-diagonal threshold relative to ‖A‖_F at which the
// complex Jacobi iteration stops.
const jacobiRelTol = 1e-14

// EigenHermitian computes the spectral decomposition A = V·diag(λ)·V† of a
// Hermitian matrix.
//
// Implementation:
//   - Stage 1: ValidateHermitian(m, eps) (nil, square, |A−A†| ≤ eps).
//   - Stage 2: Work on the symmetrized copy (A + A†)/2.
//   - Stage 3: Real input → gonum EigenSym; complex input → Jacobi rotations
//     pivoting on the largest |A[p,q]| in i→j order.
//   - Stage 4: Sort eigenpairs by ascending eigenvalue.
//
// Returns:
//   - []float64: eigenvalues in ascending order.
//   - *Dense: V whose columns are the matching orthonormal eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotHermitian, ErrEigenFailed.
//
// Determinism:
//   - Fixed pivot scan and update order; identical input gives identical output.
//
// Complexity:
//   - Time O(sweeps·n³), Space O(n²).
func EigenHermitian(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateHermitian(m, o.eps); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	a := hermitianPart(dm)

	var (
		vals []float64
		vecs *Dense
	)
	if isReal(a) {
		vals, vecs, err = eigenSymReal(a)
	} else {
		vals, vecs, err = eigenJacobi(a, o.maxSweeps)
	}
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	return sortEigen(vals, vecs)
}

// hermitianPart returns (A + A†)/2.
func hermitianPart(a *Dense) *Dense {
	n := a.r
	out := &Dense{r: n, c: n, data: make([]complex128, n*n), validateNaNInf: a.validateNaNInf}
	var i, j int
	var v complex128
	for i = 0; i < n; i++ {
		out.data[i*n+i] = complex(real(a.data[i*n+i]), 0)
		for j = i + 1; j < n; j++ {
			v = (a.data[i*n+j] + cmplx.Conj(a.data[j*n+i])) / 2
			out.data[i*n+j] = v
			out.data[j*n+i] = cmplx.Conj(v)
		}
	}

	return out
}

func isReal(a *Dense) bool {
	for _, v := range a.data {
		if imag(v) != 0 {
			return false
		}
	}

	return true
}

// eigenSymReal delegates a real-symmetric matrix to gonum.
func eigenSymReal(a *Dense) ([]float64, *Dense, error) {
	n := a.r
	raw := make([]float64, n*n)
	for idx, v := range a.data {
		raw[idx] = real(v)
	}
	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n, raw), true); !ok {
		return nil, nil, ErrEigenFailed
	}
	vals := es.Values(nil)
	var ev mat.Dense
	es.VectorsTo(&ev)

	vecs, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			vecs.data[i*n+j] = complex(ev.At(i, j), 0)
		}
	}

	return vals, vecs, nil
}

// eigenJacobi runs classical complex Jacobi on a Hermitian working copy a
// (mutated in place) and returns the diagonal and the accumulated rotations.
func eigenJacobi(a *Dense, maxSweeps int) ([]float64, *Dense, error) {
	n := a.r
	v, err := NewIdentity(n)
	if err != nil {
		return nil, nil, err
	}
	normF, _ := AbsNorm(a)
	tol := jacobiRelTol * math.Max(1, normF)
	maxRot := maxSweeps * max(1, n*(n-1)/2)

	var (
		rot, i, j, k, p, q int
		maxOff, off        float64
		alpha, gamma, b    float64
		theta, t, c, s     float64
		beta, ph           complex128
		jpp, jpq, jqp, jqq complex128
		xp, xq             complex128
	)
	for rot = 0; rot < maxRot; rot++ {
		// J.1: pivot (p,q) maximizing |A[p,q]|
		maxOff = NormZero
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = cmplx.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		// J.2: converged
		if maxOff < tol {
			break
		}

		// J.3: de-phase the pivot, then real rotation parameters
		beta = a.data[p*n+q]
		b = cmplx.Abs(beta)
		ph = beta / complex(b, 0) // e^{iφ}
		alpha = real(a.data[p*n+p])
		gamma = real(a.data[q*n+q])
		theta = (gamma - alpha) / (2 * b)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J = diag(1, e^{-iφ}) · [[c, s], [-s, c]] on the (p,q) plane
		jpp = complex(c, 0)
		jpq = complex(s, 0)
		jqp = -complex(s, 0) * cmplx.Conj(ph)
		jqq = complex(c, 0) * cmplx.Conj(ph)

		// J.4: A ← A·J (columns p,q), V ← V·J
		for k = 0; k < n; k++ {
			xp, xq = a.data[k*n+p], a.data[k*n+q]
			a.data[k*n+p] = xp*jpp + xq*jqp
			a.data[k*n+q] = xp*jpq + xq*jqq

			xp, xq = v.data[k*n+p], v.data[k*n+q]
			v.data[k*n+p] = xp*jpp + xq*jqp
			v.data[k*n+q] = xp*jpq + xq*jqq
		}
		// J.5: A ← J†·A (rows p,q)
		for k = 0; k < n; k++ {
			xp, xq = a.data[p*n+k], a.data[q*n+k]
			a.data[p*n+k] = cmplx.Conj(jpp)*xp + cmplx.Conj(jqp)*xq
			a.data[q*n+k] = cmplx.Conj(jpq)*xp + cmplx.Conj(jqq)*xq
		}
		// J.6: exact zeros on the annihilated pair, real diagonal
		a.data[p*n+q], a.data[q*n+p] = 0, 0
		a.data[p*n+p] = complex(real(a.data[p*n+p]), 0)
		a.data[q*n+q] = complex(real(a.data[q*n+q]), 0)
	}

	// Final convergence check.
	maxOff = NormZero
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			maxOff = math.Max(maxOff, cmplx.Abs(a.data[i*n+j]))
		}
	}
	if maxOff >= tol {
		return nil, nil, ErrEigenFailed
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = real(a.data[i*n+i])
	}

	return vals, v, nil
}

// sortEigen orders eigenpairs by ascending eigenvalue (stable).
func sortEigen(vals []float64, vecs *Dense) ([]float64, *Dense, error) {
	n := len(vals)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return vals[order[x]] < vals[order[y]] })

	sortedVals := make([]float64, n)
	sortedVecs, err := NewDense(vecs.r, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, col int
	for col = 0; col < n; col++ {
		sortedVals[col] = vals[order[col]]
		for i = 0; i < vecs.r; i++ {
			sortedVecs.data[i*n+col] = vecs.data[i*n+order[col]]
		}
	}

	return sortedVals, sortedVecs, nil
}

// SqrtPSD returns the principal square root S of a positive semidefinite
// Hermitian matrix A, i.e. the unique PSD S with S·S = A.
//
// Implementation:
//   - Stage 1: EigenHermitian(A) → λ, V.
//   - Stage 2: reject λ < −eps; clamp −eps ≤ λ < 0 to 0.
//   - Stage 3: S = (V·diag(√λ))·V†.
//
// Errors:
//   - Everything EigenHermitian returns, plus ErrNotPositiveSemidefinite.
//
// Complexity:
//   - Time O(sweeps·n³), Space O(n²).
func SqrtPSD(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	vals, vecs, err := EigenHermitian(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opSqrt, err)
	}

	n := len(vals)
	w := vecs.clone()
	var i, j int
	var root float64
	for j = 0; j < n; j++ {
		if vals[j] < -o.eps {
			return nil, matrixErrorf(opSqrt, ErrNotPositiveSemidefinite)
		}
		root = math.Sqrt(math.Max(vals[j], 0))
		for i = 0; i < n; i++ {
			w.data[i*n+j] *= complex(root, 0)
		}
	}

	s, err := MulDagger(w, vecs)
	if err != nil {
		return nil, matrixErrorf(opSqrt, err)
	}

	return s, nil
}
