// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the complex linear-algebra kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSubScale(t *testing.T) {
	a := MustFrom(t, 2, 2, 1, 2i, 3, 4)
	b := MustFrom(t, 2, 2, 1i, 1, 1, -4)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireApprox(t, MustFrom(t, 2, 2, 1+1i, 1+2i, 4, 0), sum, 0)

	diff, err := matrix.Sub(a, hide{b})
	require.NoError(t, err)
	requireApprox(t, MustFrom(t, 2, 2, 1-1i, -1+2i, 2, 8), diff, 0)

	sc, err := matrix.Scale(a, 1i)
	require.NoError(t, err)
	requireApprox(t, MustFrom(t, 2, 2, 1i, -2, 3i, 4i), sc, 0)

	// operands are not mutated
	require.Equal(t, complex128(1), MustAt(t, a, 0, 0))

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := MustFrom(t, 2, 3,
		1, 2, 3,
		4, 5, 6)
	b := MustFrom(t, 3, 2,
		1i, 0,
		0, 1,
		1, 1i)
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireApprox(t, MustFrom(t, 2, 2,
		3+1i, 2+3i,
		6+4i, 5+6i), got, tol)

	got2, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	requireApprox(t, got, got2, 0)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulDaggerMatchesExplicitDagger(t *testing.T) {
	a := randomDense(t, 3, 4, 1)
	b := randomDense(t, 5, 4, 2)

	bd, err := matrix.Dagger(b)
	require.NoError(t, err)
	want, err := matrix.Mul(a, bd)
	require.NoError(t, err)
	got, err := matrix.MulDagger(a, b)
	require.NoError(t, err)
	requireApprox(t, want, got, tol)

	_, err = matrix.MulDagger(a, MustDense(t, 4, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDaggerTransposeConj(t *testing.T) {
	m := MustFrom(t, 2, 3,
		1, 2i, 3,
		4i, 5, 6-1i)

	d, err := matrix.Dagger(m)
	require.NoError(t, err)
	requireApprox(t, MustFrom(t, 3, 2,
		1, -4i,
		-2i, 5,
		3, 6+1i), d, 0)

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	requireApprox(t, MustFrom(t, 3, 2,
		1, 4i,
		2i, 5,
		3, 6-1i), tr, 0)

	cj, err := matrix.Conj(m)
	require.NoError(t, err)
	trc, err := matrix.Conj(tr)
	require.NoError(t, err)
	requireApprox(t, d, trc, 0)
	require.Equal(t, -2i, MustAt(t, cj, 0, 1))

	// (AB)† = B†A†
	a := randomDense(t, 3, 3, 3)
	b := randomDense(t, 3, 3, 4)
	ab, _ := matrix.Mul(a, b)
	lhs, _ := matrix.Dagger(ab)
	ad, _ := matrix.Dagger(a)
	bd, _ := matrix.Dagger(b)
	rhs, _ := matrix.Mul(bd, ad)
	requireApprox(t, lhs, rhs, tol)
}

func TestTraceAbsNormOuter(t *testing.T) {
	m := MustFrom(t, 2, 2, 1+1i, 5, 7, 2-3i)
	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	require.Equal(t, 3-2i, tr)
	_, err = matrix.Trace(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	n, err := matrix.AbsNorm(MustFrom(t, 1, 2, 3i, 4))
	require.NoError(t, err)
	require.InDelta(t, 5.0, n, tol)
	z, err := matrix.AbsNorm(MustDense(t, 3, 3))
	require.NoError(t, err)
	require.Equal(t, 0.0, z)

	v := MustFrom(t, 2, 1, 1, 1i)
	o, err := matrix.Outer(v)
	require.NoError(t, err)
	requireApprox(t, MustFrom(t, 2, 2, 1, -1i, 1i, 1), o, tol)
	_, err = matrix.Outer(MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEqualApprox(t *testing.T) {
	a := MustFrom(t, 1, 2, 1, 2)
	require.True(t, matrix.EqualApprox(a, MustFrom(t, 1, 2, 1+1e-12, 2), 1e-9))
	require.False(t, matrix.EqualApprox(a, MustFrom(t, 1, 2, 1.1, 2), 1e-9))
	require.False(t, matrix.EqualApprox(a, MustDense(t, 2, 1), math.Inf(1)))
	require.False(t, matrix.EqualApprox(nil, a, 1))
}
