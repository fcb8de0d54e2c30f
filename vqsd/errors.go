// SPDX-License-Identifier: MIT
// Package vqsd: sentinel error set.

package vqsd

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpectrum indicates a spectrum whose length is not a power of two ≥ 2.
	ErrInvalidSpectrum = errors.New("vqsd: spectrum length must be a power of two >= 2")

	// ErrNilSampler indicates GenerateRhoSigma(nil, ...).
	ErrNilSampler = errors.New("vqsd: nil sampler")
)

// vqsdErrorf wraps err with an operation tag, preserving it for errors.Is.
func vqsdErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
