// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an op tag via
// matrixErrorf) and tests check them via errors.Is. No kernel panics on
// user-triggered error conditions; panics are reserved for option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the kernel boundary with
// fmt.Errorf("Op: %w", ErrX); callers still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that a raw buffer does not match rows*cols.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotPowerOfTwo signals a side length that is not 2^n.
	ErrNotPowerOfTwo = errors.New("matrix: side is not a power of two")

	// ErrNotHermitian signals that a matrix expected to be Hermitian violated
	// M = M† beyond the configured epsilon.
	ErrNotHermitian = errors.New("matrix: matrix is not hermitian within eps")

	// ErrNotPositiveSemidefinite signals an eigenvalue below -eps where a PSD
	// operand was required (SqrtPSD).
	ErrNotPositiveSemidefinite = errors.New("matrix: matrix is not positive semidefinite")

	// ErrEigenFailed indicates that an eigen routine failed to converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrNaNInf signals a NaN or Inf component where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
