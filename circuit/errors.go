// SPDX-License-Identifier: MIT
// Package circuit: sentinel error set.

package circuit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQubits indicates a register size outside [1, MaxQubits].
	ErrInvalidQubits = errors.New("circuit: number of qubits must be in [1, MaxQubits]")

	// ErrQubitOutOfRange indicates a gate addressed a qubit outside [0, n).
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrSameQubit indicates a two-qubit gate whose two qubits coincide.
	ErrSameQubit = errors.New("circuit: two-qubit gate needs distinct qubits")

	// ErrParamCount indicates a parameter vector of the wrong length.
	ErrParamCount = errors.New("circuit: wrong number of parameters")

	// ErrNilGate indicates Append(nil).
	ErrNilGate = errors.New("circuit: nil gate")
)

// circuitErrorf wraps err with an operation tag, preserving it for errors.Is.
func circuitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
