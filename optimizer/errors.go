// SPDX-License-Identifier: MIT
// Package optimizer: sentinel error set.

package optimizer

import "errors"

var (
	// ErrInvalidLearningRate indicates a learning rate that is not finite and > 0.
	ErrInvalidLearningRate = errors.New("optimizer: learning rate must be finite and > 0")

	// ErrInvalidSize indicates a non-positive parameter count.
	ErrInvalidSize = errors.New("optimizer: parameter count must be > 0")

	// ErrParamCount indicates parameter and gradient vectors of different lengths.
	ErrParamCount = errors.New("optimizer: parameter/gradient length mismatch")

	// ErrNonFinite indicates a NaN or Inf gradient entry.
	ErrNonFinite = errors.New("optimizer: non-finite gradient")
)
