// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/stretchr/testify/require"
)

func TestQR_Reconstructs(t *testing.T) {
	for _, n := range []int{1, 2, 4, 7} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := randomDense(t, n, n, int64(n))
			q, r, err := matrix.QR(m)
			require.NoError(t, err)

			// Q unitary
			qqd, err := matrix.MulDagger(q, q)
			require.NoError(t, err)
			id, _ := matrix.NewIdentity(n)
			requireApprox(t, id, qqd, tol)

			// R upper triangular
			var i, j int
			for i = 0; i < n; i++ {
				for j = 0; j < i; j++ {
					require.Zero(t, MustAt(t, r, i, j))
				}
			}

			qr, err := matrix.Mul(q, r)
			require.NoError(t, err)
			requireApprox(t, m, qr, tol)
		})
	}
}

func TestQR_ZeroColumnAndErrors(t *testing.T) {
	m := MustFrom(t, 2, 2, 0, 1, 0, 1i)
	q, r, err := matrix.QR(m)
	require.NoError(t, err)
	qr, err := matrix.Mul(q, r)
	require.NoError(t, err)
	requireApprox(t, m, qr, tol)

	_, _, err = matrix.QR(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, _, err = matrix.QR(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
