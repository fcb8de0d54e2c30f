// SPDX-License-Identifier: MIT
package circuit_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/qlath/circuit"
	"github.com/katalvlaran/qlath/linalg"
	"github.com/katalvlaran/qlath/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func mustFrom(tb testing.TB, r, c int, data ...complex128) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)

	return m
}

func mustCircuit(tb testing.TB, n int, opts ...circuit.Option) *circuit.Circuit {
	tb.Helper()
	c, err := circuit.New(n, append([]circuit.Option{circuit.WithSeed(1)}, opts...)...)
	require.NoError(tb, err)

	return c
}

func unitaryWith(tb testing.TB, c *circuit.Circuit, params ...float64) *matrix.Dense {
	tb.Helper()
	require.NoError(tb, c.SetParameters(params))
	u, err := c.UnitaryMatrix()
	require.NoError(tb, err)

	return u
}

func TestSingleQubitRotations(t *testing.T) {
	t.Parallel()

	c := mustCircuit(t, 1)
	require.NoError(t, c.RX(0))
	requireEq(t, mustFrom(t, 2, 2, 0, -1i, -1i, 0), unitaryWith(t, c, math.Pi))

	c = mustCircuit(t, 1)
	require.NoError(t, c.RY(0))
	requireEq(t, mustFrom(t, 2, 2, 0, -1, 1, 0), unitaryWith(t, c, math.Pi))

	c = mustCircuit(t, 1)
	require.NoError(t, c.RZ(0))
	requireEq(t, mustFrom(t, 2, 2, -1i, 0, 0, 1i), unitaryWith(t, c, math.Pi))

	// U3(π/2, 0, π) is the Hadamard gate.
	c = mustCircuit(t, 1)
	require.NoError(t, c.U3(0))
	h := complex(1/math.Sqrt2, 0)
	requireEq(t, mustFrom(t, 2, 2, h, h, h, -h), unitaryWith(t, c, math.Pi/2, 0, math.Pi))
}

func TestQubitOrderingIsMostSignificantFirst(t *testing.T) {
	t.Parallel()

	ry := mustFrom(t, 2, 2, 0, -1, 1, 0) // RY(π)
	id, _ := matrix.NewIdentity(2)

	c := mustCircuit(t, 2)
	require.NoError(t, c.RY(0))
	want, _ := matrix.Kron(ry, id)
	requireEq(t, want, unitaryWith(t, c, math.Pi))

	c = mustCircuit(t, 2)
	require.NoError(t, c.RY(1))
	want, _ = matrix.Kron(id, ry)
	requireEq(t, want, unitaryWith(t, c, math.Pi))
}

func TestCNOT(t *testing.T) {
	t.Parallel()

	c := mustCircuit(t, 2)
	require.NoError(t, c.CNOT(0, 1))
	require.Zero(t, c.NumParameters())
	u, err := c.UnitaryMatrix()
	require.NoError(t, err)
	requireEq(t, mustFrom(t, 4, 4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0), u)

	c = mustCircuit(t, 2)
	require.NoError(t, c.CNOT(1, 0))
	u, err = c.UnitaryMatrix()
	require.NoError(t, err)
	requireEq(t, mustFrom(t, 4, 4,
		1, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
		0, 1, 0, 0), u)
}

func TestUniversalTwoQubits(t *testing.T) {
	t.Parallel()

	c := mustCircuit(t, 2)
	require.NoError(t, c.UniversalTwoQubits(0, 1))
	require.Equal(t, 15, c.NumParameters())
	require.Equal(t, 1, c.NumGates())
	for _, p := range c.Parameters() {
		require.GreaterOrEqual(t, p, 0.0)
		require.Less(t, p, 2*math.Pi)
	}

	u, err := c.UnitaryMatrix()
	require.NoError(t, err)
	require.True(t, linalg.IsUnitary(u))

	// With every angle at zero only the three CNOTs remain: a SWAP.
	swap := unitaryWith(t, c, make([]float64, 15)...)
	requireEq(t, mustFrom(t, 4, 4,
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1), swap)
}

func TestUniversalTwoQubits_OnWiderRegister(t *testing.T) {
	t.Parallel()

	c := mustCircuit(t, 3)
	require.NoError(t, c.UniversalTwoQubits(2, 0))
	u, err := c.UnitaryMatrix()
	require.NoError(t, err)
	require.Equal(t, 8, u.Rows())
	require.True(t, linalg.IsUnitary(u))
}

func TestUnitaryForDoesNotMutate(t *testing.T) {
	t.Parallel()

	c := mustCircuit(t, 2)
	require.NoError(t, c.UniversalTwoQubits(0, 1))
	before := c.Parameters()
	_, err := c.UnitaryFor(make([]float64, 15))
	require.NoError(t, err)
	require.Equal(t, before, c.Parameters())

	// Parameters returns a copy.
	p := c.Parameters()
	p[0] = 100
	require.Equal(t, before, c.Parameters())
}

func TestSeedDeterminism(t *testing.T) {
	t.Parallel()

	a, _ := circuit.New(2, circuit.WithSeed(14))
	b, _ := circuit.New(2, circuit.WithSeed(14))
	require.NoError(t, a.UniversalTwoQubits(0, 1))
	require.NoError(t, b.UniversalTwoQubits(0, 1))
	require.Equal(t, a.Parameters(), b.Parameters())
}

func TestDTypeComplex64(t *testing.T) {
	t.Parallel()

	c := mustCircuit(t, 2, circuit.WithDType(circuit.Complex64))
	require.Equal(t, circuit.Complex64, c.DType())
	require.Equal(t, "complex64", c.DType().String())
	require.NoError(t, c.UniversalTwoQubits(0, 1))
	u, err := c.UnitaryMatrix()
	require.NoError(t, err)
	for _, v := range u.Raw() {
		require.Equal(t, v, complex128(complex64(v)))
	}
	require.True(t, linalg.IsUnitary(u))

	require.Panics(t, func() { circuit.WithDType(circuit.DType(9)) })
	require.Panics(t, func() { circuit.WithRand(nil) })
}

// phaseGate multiplies the whole register by e^{iθ}.
type phaseGate struct{}

func (phaseGate) NumParams() int { return 1 }

func (phaseGate) Matrix(params []float64, numQubits int, _ circuit.DType) (*matrix.Dense, error) {
	id, err := matrix.NewIdentity(1 << numQubits)
	if err != nil {
		return nil, err
	}

	return matrix.Scale(id, cmplx.Exp(complex(0, params[0])))
}

func TestAppendCustomGate(t *testing.T) {
	t.Parallel()

	c := mustCircuit(t, 1)
	require.NoError(t, c.Append(phaseGate{}))
	require.NoError(t, c.RX(0))
	require.Equal(t, 2, c.NumParameters())

	u := unitaryWith(t, c, math.Pi, math.Pi)
	requireEq(t, mustFrom(t, 2, 2, 0, 1i, 1i, 0), u)

	require.ErrorIs(t, c.Append(nil), circuit.ErrNilGate)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := circuit.New(0)
	require.ErrorIs(t, err, circuit.ErrInvalidQubits)
	_, err = circuit.New(circuit.MaxQubits + 1)
	require.ErrorIs(t, err, circuit.ErrInvalidQubits)

	c := mustCircuit(t, 2)
	require.ErrorIs(t, c.RX(2), circuit.ErrQubitOutOfRange)
	require.ErrorIs(t, c.U3(-1), circuit.ErrQubitOutOfRange)
	require.ErrorIs(t, c.CNOT(1, 1), circuit.ErrSameQubit)
	require.ErrorIs(t, c.UniversalTwoQubits(0, 0), circuit.ErrSameQubit)
	require.ErrorIs(t, c.UniversalTwoQubits(0, 5), circuit.ErrQubitOutOfRange)
	require.Zero(t, c.NumGates())

	require.NoError(t, c.RY(0))
	require.ErrorIs(t, c.SetParameters([]float64{1, 2}), circuit.ErrParamCount)
	_, err = c.UnitaryFor(nil)
	require.ErrorIs(t, err, circuit.ErrParamCount)
}

func TestEmptyCircuitIsIdentity(t *testing.T) {
	t.Parallel()

	c := mustCircuit(t, 2)
	u, err := c.UnitaryMatrix()
	require.NoError(t, err)
	id, _ := matrix.NewIdentity(4)
	requireEq(t, id, u)
}

func requireEq(tb testing.TB, want, got matrix.Matrix) {
	tb.Helper()
	require.Truef(tb, matrix.EqualApprox(want, got, tol), "want:\n%v\ngot:\n%v", want, got)
}
