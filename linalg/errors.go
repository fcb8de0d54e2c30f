// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQubits indicates a qubit count outside [1, MaxQubits].
	ErrInvalidQubits = errors.New("linalg: number of qubits must be in [1, MaxQubits]")

	// ErrInvalidRank indicates a density-operator rank outside (0, 2^n].
	ErrInvalidRank = errors.New("linalg: rank must satisfy 0 < rank <= 2^n")
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
