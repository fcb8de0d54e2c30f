// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/Hermitian checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - The Hermitian check runs O(n²) on the upper triangle only.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math/bits"
	"math/cmplx"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil catches both an untyped nil interface and a typed nil *Dense.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// IsPowerOfTwo reports whether n = 2^k for some k >= 0.
func IsPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// ValidateQubitShape checks that m is a non-nil square matrix whose side is a
// power of two, i.e. an operator on some whole number of qubits.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotPowerOfTwo.
// Complexity: O(1).
func ValidateQubitShape(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if !IsPowerOfTwo(m.Rows()) {
		return validatorErrorf("ValidateQubitShape", ErrNotPowerOfTwo)
	}

	return nil
}

// ValidateHermitian checks |A[i,j] - conj(A[j,i])| <= tol for all i <= j.
// Diagonal entries must have |Im| <= tol.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotHermitian.
// Complexity: O(n²).
func ValidateHermitian(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	var i, j int
	var aij, aji complex128
	var err error
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateHermitian", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateHermitian", err)
			}
			if cmplx.Abs(aij-cmplx.Conj(aji)) > tol {
				return validatorErrorf("ValidateHermitian", ErrNotHermitian)
			}
		}
	}

	return nil
}
