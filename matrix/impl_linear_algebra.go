// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// conjugate transpose and scalar scaling. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical complex linear-algebra kernels used across qlath.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Products go through gonum's cblas128 (Zgemm); inputs that are not *Dense
//     are materialized once via asDense.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulDagger = "MulDagger"
	opDagger    = "Dagger"
	opConj      = "Conj"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opTrace     = "Trace"
	opAbsNorm   = "AbsNorm"
	opOuter     = "Outer"
	opKron      = "Kron"
	opBlock     = "Block"
	opQR        = "QR"
	opEigen     = "EigenHermitian"
	opSqrt      = "SqrtPSD"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Materialize both as *Dense.
//   - Stage 2: single flat loop 0..n-1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*M as a fresh Dense.
func Scale(m Matrix, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dm.clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// Mul computes the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (non-nil, a.Cols == b.Rows).
//   - Stage 2: allocate C (a.Rows × b.Cols) and call cblas128.Gemm with
//     alpha=1, beta=0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
//
// Notes:
//   - Gemm panics on inconsistent shapes; validation above rules that out.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return gemm(a, b, blas.NoTrans, a.Rows(), b.Cols(), opMul)
}

// MulDagger computes C = A × B† without materializing B†.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when a.Cols != b.Cols.
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func MulDagger(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulDagger, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMulDagger, err)
	}
	if a.Cols() != b.Cols() {
		return nil, matrixErrorf(opMulDagger, ErrDimensionMismatch)
	}

	return gemm(a, b, blas.ConjTrans, a.Rows(), b.Rows(), opMulDagger)
}

// gemm runs C = A × op(B) through cblas128 on freshly materialized operands.
func gemm(a, b Matrix, tB blas.Transpose, rows, cols int, opTag string) (*Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	cblas128.Gemm(blas.NoTrans, tB, 1, da.RawCMatrix(), db.RawCMatrix(), 0, res.RawCMatrix())

	return res, nil
}

// Dagger returns the conjugate transpose M†.
// Complexity: O(r*c).
func Dagger(m Matrix) (*Dense, error) {
	return transposeWith(m, cmplx.Conj, opDagger)
}

// Transpose returns Mᵀ (no conjugation).
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	return transposeWith(m, func(v complex128) complex128 { return v }, opTranspose)
}

func transposeWith(m Matrix, f func(complex128) complex128, opTag string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(dm.c, dm.r)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	var i, j int
	for i = 0; i < dm.r; i++ {
		for j = 0; j < dm.c; j++ {
			res.data[j*dm.r+i] = f(dm.data[i*dm.c+j])
		}
	}

	return res, nil
}

// Conj returns the entrywise complex conjugate of M.
func Conj(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConj, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opConj, err)
	}
	res := dm.clone()
	for idx, v := range res.data {
		res.data[idx] = cmplx.Conj(v)
	}

	return res, nil
}

// Trace returns Σ M[i,i] for a square M.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(m Matrix) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum complex128
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// AbsNorm returns the Frobenius norm of the entrywise absolute value |M|,
// i.e. sqrt(Σ |M[i,j]|²). It is the residual norm used by the quantum
// property predicates.
//
// Complexity: O(r*c). Uses math.Hypot-style scaling to avoid overflow.
func AbsNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opAbsNorm, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opAbsNorm, err)
	}
	scale, ssq := NormZero, 1.0
	var a, r float64
	for _, v := range dm.data {
		a = cmplx.Abs(v)
		if a == 0 {
			continue
		}
		if scale < a {
			r = scale / a
			ssq = 1 + ssq*r*r
			scale = a
		} else {
			r = a / scale
			ssq += r * r
		}
	}

	return scale * math.Sqrt(ssq), nil
}

// Outer returns v·v† for a column vector v (n×1), an n×n rank-1 matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch when v has more than one column.
func Outer(v Matrix) (*Dense, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	if v.Cols() != 1 {
		return nil, matrixErrorf(opOuter, ErrDimensionMismatch)
	}

	return MulDagger(v, v)
}

// EqualApprox reports whether a and b have the same shape and every entry
// differs by at most eps in modulus. Nil operands compare unequal.
func EqualApprox(a, b Matrix, eps float64) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, err := asDense(a)
	if err != nil {
		return false
	}
	db, err := asDense(b)
	if err != nil {
		return false
	}
	for idx := range da.data {
		if cmplx.Abs(da.data[idx]-db.data[idx]) > eps {
			return false
		}
	}

	return true
}
