// SPDX-License-Identifier: MIT
// Package circuit: gate operators.
//
// Each gate knows how many parameters it consumes and how to render itself as
// a full 2^n × 2^n operator for a given parameter slice. Rendering is pure:
// the same (params, numQubits, dtype) always yields the same matrix.

package circuit

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qlath/matrix"
)

// Gate is an operator on an n-qubit register with NumParams real parameters.
type Gate interface {
	// NumParams reports how many entries of the parameter vector the gate uses.
	NumParams() int

	// Matrix renders the gate as a 2^numQubits square operator.
	// len(params) must equal NumParams().
	Matrix(params []float64, numQubits int, dtype DType) (*matrix.Dense, error)
}

// Operation tags used in error wrapping.
const (
	opRX        = "RX"
	opRY        = "RY"
	opRZ        = "RZ"
	opU3        = "U3"
	opCNOT      = "CNOT"
	opUniversal = "UniversalTwoQubits"
)

// universalParams is the parameter count of the universal two-qubit block.
const universalParams = 15

// ---------- single-qubit 2×2 kernels ----------

func rxMatrix(theta float64) []complex128 {
	c, s := math.Cos(theta/2), math.Sin(theta/2)

	return []complex128{
		complex(c, 0), complex(0, -s),
		complex(0, -s), complex(c, 0),
	}
}

func ryMatrix(theta float64) []complex128 {
	c, s := math.Cos(theta/2), math.Sin(theta/2)

	return []complex128{
		complex(c, 0), complex(-s, 0),
		complex(s, 0), complex(c, 0),
	}
}

func rzMatrix(theta float64) []complex128 {
	return []complex128{
		cmplx.Exp(complex(0, -theta/2)), 0,
		0, cmplx.Exp(complex(0, theta/2)),
	}
}

// u3Matrix is U3(θ,φ,λ) = [[cos θ/2, −e^{iλ} sin θ/2], [e^{iφ} sin θ/2, e^{i(φ+λ)} cos θ/2]].
func u3Matrix(theta, phi, lambda float64) []complex128 {
	c, s := math.Cos(theta/2), math.Sin(theta/2)

	return []complex128{
		complex(c, 0), -cmplx.Exp(complex(0, lambda)) * complex(s, 0),
		cmplx.Exp(complex(0, phi)) * complex(s, 0), cmplx.Exp(complex(0, phi+lambda)) * complex(c, 0),
	}
}

// ---------- helpers ----------

func checkQubit(q, numQubits int) error {
	if q < 0 || q >= numQubits {
		return ErrQubitOutOfRange
	}

	return nil
}

func checkParams(params []float64, want int) error {
	if len(params) != want {
		return ErrParamCount
	}

	return nil
}

// embed lifts a 2×2 operator on qubit q to I(2^q) ⊗ G ⊗ I(2^(n−q−1)).
func embed(g2 []complex128, qubit, numQubits int) (*matrix.Dense, error) {
	g, err := matrix.NewDenseFrom(2, 2, g2)
	if err != nil {
		return nil, err
	}
	left, err := matrix.NewIdentity(1 << qubit)
	if err != nil {
		return nil, err
	}
	right, err := matrix.NewIdentity(1 << (numQubits - qubit - 1))
	if err != nil {
		return nil, err
	}
	lg, err := matrix.Kron(left, g)
	if err != nil {
		return nil, err
	}

	return matrix.Kron(lg, right)
}

// round applies the dtype policy in place.
func round(m *matrix.Dense, dtype DType) (*matrix.Dense, error) {
	if dtype != Complex64 {
		return m, nil
	}
	err := m.Apply(func(_, _ int, v complex128) complex128 {
		return complex128(complex64(v))
	})

	return m, err
}

// ---------- rotations ----------

// rotation is RX, RY or RZ on one qubit (one parameter).
type rotation struct {
	tag    string
	qubit  int
	kernel func(float64) []complex128
}

func (r rotation) NumParams() int { return 1 }

func (r rotation) Matrix(params []float64, numQubits int, dtype DType) (*matrix.Dense, error) {
	if err := checkParams(params, 1); err != nil {
		return nil, circuitErrorf(r.tag, err)
	}
	if err := checkQubit(r.qubit, numQubits); err != nil {
		return nil, circuitErrorf(r.tag, err)
	}
	m, err := embed(r.kernel(params[0]), r.qubit, numQubits)
	if err != nil {
		return nil, circuitErrorf(r.tag, err)
	}

	return round(m, dtype)
}

// u3 is the general single-qubit rotation (three parameters θ, φ, λ).
type u3 struct {
	qubit int
}

func (u u3) NumParams() int { return 3 }

func (u u3) Matrix(params []float64, numQubits int, dtype DType) (*matrix.Dense, error) {
	if err := checkParams(params, 3); err != nil {
		return nil, circuitErrorf(opU3, err)
	}
	if err := checkQubit(u.qubit, numQubits); err != nil {
		return nil, circuitErrorf(opU3, err)
	}
	m, err := embed(u3Matrix(params[0], params[1], params[2]), u.qubit, numQubits)
	if err != nil {
		return nil, circuitErrorf(opU3, err)
	}

	return round(m, dtype)
}

// cnot flips target when control is |1⟩. It is a permutation of basis states.
type cnot struct {
	control, target int
}

func (g cnot) NumParams() int { return 0 }

// Matrix builds the permutation directly: column b maps to row b ⊕ (1<<t)
// when bit c of b is set (bits counted from the most significant qubit).
//
// Complexity: O(4^n) for the zero fill, O(2^n) writes.
func (g cnot) Matrix(params []float64, numQubits int, _ DType) (*matrix.Dense, error) {
	if err := checkParams(params, 0); err != nil {
		return nil, circuitErrorf(opCNOT, err)
	}
	if err := checkQubit(g.control, numQubits); err != nil {
		return nil, circuitErrorf(opCNOT, err)
	}
	if err := checkQubit(g.target, numQubits); err != nil {
		return nil, circuitErrorf(opCNOT, err)
	}
	if g.control == g.target {
		return nil, circuitErrorf(opCNOT, ErrSameQubit)
	}
	dim := 1 << numQubits
	m, err := matrix.NewDense(dim, dim)
	if err != nil {
		return nil, circuitErrorf(opCNOT, err)
	}
	cBit := 1 << (numQubits - 1 - g.control)
	tBit := 1 << (numQubits - 1 - g.target)
	var row int
	for col := 0; col < dim; col++ {
		row = col
		if col&cBit != 0 {
			row ^= tBit
		}
		if err = m.Set(row, col, 1); err != nil {
			return nil, circuitErrorf(opCNOT, err)
		}
	}

	return m, nil
}

// universal is the 15-parameter two-qubit block:
//
//	U3(θ0..2)@q0, U3(θ3..5)@q1, CNOT(q1→q0), RZ(θ6)@q0, RY(θ7)@q1,
//	CNOT(q0→q1), RY(θ8)@q1, CNOT(q1→q0), U3(θ9..11)@q0, U3(θ12..14)@q1.
//
// Three CNOTs suffice for any element of U(4) up to global phase.
type universal struct {
	q0, q1 int
}

func (u universal) NumParams() int { return universalParams }

// steps lists the sub-gates in application order with their parameter offsets.
func (u universal) steps() ([]Gate, []int) {
	gates := []Gate{
		u3{qubit: u.q0},
		u3{qubit: u.q1},
		cnot{control: u.q1, target: u.q0},
		rotation{tag: opRZ, qubit: u.q0, kernel: rzMatrix},
		rotation{tag: opRY, qubit: u.q1, kernel: ryMatrix},
		cnot{control: u.q0, target: u.q1},
		rotation{tag: opRY, qubit: u.q1, kernel: ryMatrix},
		cnot{control: u.q1, target: u.q0},
		u3{qubit: u.q0},
		u3{qubit: u.q1},
	}
	offsets := []int{0, 3, 6, 6, 7, 8, 8, 9, 9, 12}

	return gates, offsets
}

func (u universal) Matrix(params []float64, numQubits int, dtype DType) (*matrix.Dense, error) {
	if err := checkParams(params, universalParams); err != nil {
		return nil, circuitErrorf(opUniversal, err)
	}
	if u.q0 == u.q1 {
		return nil, circuitErrorf(opUniversal, ErrSameQubit)
	}
	gates, offsets := u.steps()
	m, err := compose(gates, offsets, params, numQubits, dtype)
	if err != nil {
		return nil, circuitErrorf(opUniversal, err)
	}

	return m, nil
}

// compose returns G_k ··· G_1 for gates applied in slice order, gate i reading
// params[offsets[i] : offsets[i]+NumParams()].
func compose(gates []Gate, offsets []int, params []float64, numQubits int, dtype DType) (*matrix.Dense, error) {
	acc, err := matrix.NewIdentity(1 << numQubits)
	if err != nil {
		return nil, err
	}
	var g *matrix.Dense
	for i, gate := range gates {
		off := offsets[i]
		if g, err = gate.Matrix(params[off:off+gate.NumParams()], numQubits, dtype); err != nil {
			return nil, err
		}
		if acc, err = matrix.Mul(g, acc); err != nil {
			return nil, err
		}
		if acc, err = round(acc, dtype); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
