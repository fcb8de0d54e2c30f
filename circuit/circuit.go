// SPDX-License-Identifier: MIT
// Package circuit: the Circuit container.
//
// Concurrency: a Circuit is NOT safe for concurrent use; UnitaryFor only reads
// the gate list and may run concurrently with other UnitaryFor calls as long
// as nothing is being added.

package circuit

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/qlath/matrix"
)

const (
	opNew           = "New"
	opAppend        = "Append"
	opSetParameters = "SetParameters"
	opUnitary       = "UnitaryFor"
)

// Circuit is an ordered list of gates over a fixed register plus the flat
// vector of their parameters.
type Circuit struct {
	numQubits int
	dtype     DType
	rng       *rand.Rand
	gates     []Gate
	offsets   []int     // offsets[i] = index of gate i's first parameter
	params    []float64 // concatenated gate parameters
}

// New creates an empty circuit on numQubits qubits.
//
// Errors: ErrInvalidQubits when numQubits ∉ [1, MaxQubits].
func New(numQubits int, opts ...Option) (*Circuit, error) {
	if numQubits < 1 || numQubits > MaxQubits {
		return nil, circuitErrorf(opNew, ErrInvalidQubits)
	}
	cfg := gatherConfig(opts...)

	return &Circuit{
		numQubits: numQubits,
		dtype:     cfg.dtype,
		rng:       cfg.rng,
	}, nil
}

// NumQubits returns the register width.
func (c *Circuit) NumQubits() int { return c.numQubits }

// DType returns the working precision.
func (c *Circuit) DType() DType { return c.dtype }

// NumGates returns the number of appended gates.
func (c *Circuit) NumGates() int { return len(c.gates) }

// NumParameters returns the length of the parameter vector.
func (c *Circuit) NumParameters() int { return len(c.params) }

// Parameters returns a copy of the current parameter vector.
func (c *Circuit) Parameters() []float64 {
	out := make([]float64, len(c.params))
	copy(out, c.params)

	return out
}

// SetParameters replaces the parameter vector (copied).
//
// Errors: ErrParamCount when len(p) != NumParameters().
func (c *Circuit) SetParameters(p []float64) error {
	if len(p) != len(c.params) {
		return circuitErrorf(opSetParameters, ErrParamCount)
	}
	copy(c.params, p)

	return nil
}

// Append adds g and draws its initial parameters uniformly from [0, 2π).
// Qubit indices of custom gates are checked when the unitary is built.
//
// Errors: ErrNilGate.
func (c *Circuit) Append(g Gate) error {
	if g == nil {
		return circuitErrorf(opAppend, ErrNilGate)
	}
	c.offsets = append(c.offsets, len(c.params))
	c.gates = append(c.gates, g)
	for k := 0; k < g.NumParams(); k++ {
		c.params = append(c.params, 2*math.Pi*c.rng.Float64())
	}

	return nil
}

// RX appends a rotation about X on qubit q.
func (c *Circuit) RX(q int) error {
	return c.appendSingle(rotation{tag: opRX, qubit: q, kernel: rxMatrix}, q, opRX)
}

// RY appends a rotation about Y on qubit q.
func (c *Circuit) RY(q int) error {
	return c.appendSingle(rotation{tag: opRY, qubit: q, kernel: ryMatrix}, q, opRY)
}

// RZ appends a rotation about Z on qubit q.
func (c *Circuit) RZ(q int) error {
	return c.appendSingle(rotation{tag: opRZ, qubit: q, kernel: rzMatrix}, q, opRZ)
}

// U3 appends the general single-qubit gate U3(θ, φ, λ) on qubit q.
func (c *Circuit) U3(q int) error {
	return c.appendSingle(u3{qubit: q}, q, opU3)
}

func (c *Circuit) appendSingle(g Gate, q int, tag string) error {
	if err := checkQubit(q, c.numQubits); err != nil {
		return circuitErrorf(tag, err)
	}

	return c.Append(g)
}

// CNOT appends a controlled-NOT.
//
// Errors: ErrQubitOutOfRange, ErrSameQubit.
func (c *Circuit) CNOT(control, target int) error {
	if err := c.checkPair(control, target); err != nil {
		return circuitErrorf(opCNOT, err)
	}

	return c.Append(cnot{control: control, target: target})
}

// UniversalTwoQubits appends the 15-parameter universal block on (q0, q1).
//
// Errors: ErrQubitOutOfRange, ErrSameQubit.
func (c *Circuit) UniversalTwoQubits(q0, q1 int) error {
	if err := c.checkPair(q0, q1); err != nil {
		return circuitErrorf(opUniversal, err)
	}

	return c.Append(universal{q0: q0, q1: q1})
}

func (c *Circuit) checkPair(a, b int) error {
	if err := checkQubit(a, c.numQubits); err != nil {
		return err
	}
	if err := checkQubit(b, c.numQubits); err != nil {
		return err
	}
	if a == b {
		return ErrSameQubit
	}

	return nil
}

// UnitaryMatrix returns the circuit unitary for the current parameters.
// An empty circuit yields the identity.
func (c *Circuit) UnitaryMatrix() (*matrix.Dense, error) {
	return c.UnitaryFor(c.params)
}

// UnitaryFor returns the circuit unitary for params without modifying the
// circuit.
//
// Implementation:
//   - Stage 1: check len(params) == NumParameters().
//   - Stage 2: U = I; for each gate in order, U = G(params slice)·U, rounding
//     to the circuit dtype after every product.
//
// Errors: ErrParamCount, plus any gate build error.
// Complexity: O(gates · 8^n).
func (c *Circuit) UnitaryFor(params []float64) (*matrix.Dense, error) {
	if len(params) != len(c.params) {
		return nil, circuitErrorf(opUnitary, ErrParamCount)
	}
	u, err := compose(c.gates, c.offsets, params, c.numQubits, c.dtype)
	if err != nil {
		return nil, circuitErrorf(opUnitary, err)
	}

	return u, nil
}
