// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/stretchr/testify/require"
)

func TestKron_PauliX(t *testing.T) {
	id := MustFrom(t, 2, 2, 1, 0, 0, 1)
	x := MustFrom(t, 2, 2, 0, 1, 1, 0)

	got, err := matrix.Kron(id, x)
	require.NoError(t, err)
	requireApprox(t, MustFrom(t, 4, 4,
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0), got, 0)

	got, err = matrix.Kron(x, id)
	require.NoError(t, err)
	requireApprox(t, MustFrom(t, 4, 4,
		0, 0, 1, 0,
		0, 0, 0, 1,
		1, 0, 0, 0,
		0, 1, 0, 0), got, 0)
}

func TestKron_ShapesAndAssociativity(t *testing.T) {
	a := randomDense(t, 2, 3, 11)
	b := randomDense(t, 1, 2, 12)
	c := randomDense(t, 2, 2, 13)

	ab, err := matrix.Kron(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, ab.Rows())
	require.Equal(t, 6, ab.Cols())

	left, err := matrix.Kron(ab, c)
	require.NoError(t, err)
	bc, err := matrix.Kron(b, c)
	require.NoError(t, err)
	right, err := matrix.Kron(a, hide{bc})
	require.NoError(t, err)
	requireApprox(t, left, right, tol)

	_, err = matrix.Kron(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestBlock(t *testing.T) {
	a := MustFrom(t, 1, 1, 1)
	b := MustFrom(t, 1, 2, 2, 3)
	c := MustFrom(t, 1, 1, 4)
	d := MustFrom(t, 1, 2, 5, 6)

	got, err := matrix.Block(a, b, c, d)
	require.NoError(t, err)
	requireApprox(t, MustFrom(t, 2, 3,
		1, 2, 3,
		4, 5, 6), got, 0)

	_, err = matrix.Block(a, b, c, MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Block(a, nil, c, d)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
