// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	var nilDense *matrix.Dense
	sq := MustDense(t, 2, 2)
	rect := MustDense(t, 2, 3)

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(nilDense), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(sq))

	require.ErrorIs(t, matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(sq, nil), matrix.ErrNilMatrix)

	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(sq))

	require.ErrorIs(t, matrix.ValidateMulCompatible(rect, rect), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateMulCompatible(sq, rect))
}

func TestIsPowerOfTwo(t *testing.T) {
	for n, want := range map[int]bool{
		-4: false, 0: false, 1: true, 2: true, 3: false, 4: true, 6: false, 1024: true,
	} {
		require.Equalf(t, want, matrix.IsPowerOfTwo(n), "n=%d", n)
	}
}

func TestValidateQubitShape(t *testing.T) {
	require.NoError(t, matrix.ValidateQubitShape(MustDense(t, 4, 4)))
	require.NoError(t, matrix.ValidateQubitShape(MustDense(t, 1, 1)))
	require.ErrorIs(t, matrix.ValidateQubitShape(MustDense(t, 3, 3)), matrix.ErrNotPowerOfTwo)
	require.ErrorIs(t, matrix.ValidateQubitShape(MustDense(t, 2, 4)), matrix.ErrNonSquare)
}

func TestValidateHermitian(t *testing.T) {
	h := MustFrom(t, 2, 2,
		1, 2-1i,
		2+1i, 3)
	require.NoError(t, matrix.ValidateHermitian(h, 0))

	nh := MustFrom(t, 2, 2,
		1, 2+1i,
		2+1i, 3)
	require.ErrorIs(t, matrix.ValidateHermitian(nh, 1e-9), matrix.ErrNotHermitian)

	imagDiag := MustFrom(t, 1, 1, 1i)
	require.ErrorIs(t, matrix.ValidateHermitian(imagDiag, 1e-9), matrix.ErrNotHermitian)
	require.NoError(t, matrix.ValidateHermitian(hide{h}, 0))
}
