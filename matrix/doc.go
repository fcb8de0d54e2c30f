// SPDX-License-Identifier: MIT

// Package matrix provides the complex dense matrix used across qlath.
//
// The matrix package provides:
//
//   - Dense: a row-major complex128 matrix with bounds-checked At/Set and an
//     optional finite-value policy (NaN/Inf rejection).
//   - Kernels: Add, Sub, Scale, Mul (gonum cblas128 Zgemm), MulDagger, Dagger,
//     Conj, Transpose, Trace, AbsNorm, Outer, Kron, Block.
//   - Factorizations: QR (complex Householder), EigenHermitian (gonum EigenSym
//     for real-symmetric inputs, cyclic complex Jacobi otherwise) and SqrtPSD.
//   - Validators shared by every kernel (nil, shape, square, power-of-two side).
//
// All kernels are pure: operands are never mutated and every result is a
// freshly allocated *Dense. Errors are package sentinels wrapped with an
// operation tag ("Mul: matrix: dimension mismatch"); match them with errors.Is.
//
// Dimensions of quantum operators are powers of two (2^n for n qubits); only
// the quantum-specific validators enforce that, the algebra itself does not.
package matrix
