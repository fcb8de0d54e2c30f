// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/stretchr/testify/require"
)

// reconstruct returns V·diag(vals)·V†.
func reconstruct(tb testing.TB, vals []float64, v *matrix.Dense) *matrix.Dense {
	tb.Helper()
	d := make([]complex128, len(vals))
	for i, x := range vals {
		d[i] = complex(x, 0)
	}
	dm, err := matrix.NewDiagonal(d)
	require.NoError(tb, err)
	vd, err := matrix.Mul(v, dm)
	require.NoError(tb, err)
	out, err := matrix.MulDagger(vd, v)
	require.NoError(tb, err)

	return out
}

func TestEigenHermitian_Reconstructs(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 8} {
		t.Run(fmt.Sprintf("complex/n=%d", n), func(t *testing.T) {
			h := randomHermitian(t, n, int64(100+n))
			vals, v, err := matrix.EigenHermitian(h)
			require.NoError(t, err)
			require.Len(t, vals, n)
			require.True(t, sort.Float64sAreSorted(vals))

			vvd, err := matrix.MulDagger(v, v)
			require.NoError(t, err)
			id, _ := matrix.NewIdentity(n)
			requireApprox(t, id, vvd, 1e-9)
			requireApprox(t, h, reconstruct(t, vals, v), 1e-9)
		})
	}
}

func TestEigenHermitian_RealSymmetricFastPath(t *testing.T) {
	m, err := matrix.NewReal(3, 3, []float64{
		2, 1, 0,
		1, 2, 0,
		0, 0, 5,
	})
	require.NoError(t, err)
	vals, v, err := matrix.EigenHermitian(m)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 3, 5}, vals, 1e-12)
	requireApprox(t, m, reconstruct(t, vals, v), 1e-12)
}

func TestEigenHermitian_KnownComplexSpectrum(t *testing.T) {
	// Pauli Y has eigenvalues -1, +1.
	y := MustFrom(t, 2, 2, 0, -1i, 1i, 0)
	vals, v, err := matrix.EigenHermitian(y)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{-1, 1}, vals, 1e-12)
	requireApprox(t, y, reconstruct(t, vals, v), 1e-12)
}

func TestEigenHermitian_Degenerate(t *testing.T) {
	// I ⊗ Y: each eigenvalue ±1 has multiplicity two.
	id := MustFrom(t, 2, 2, 1, 0, 0, 1)
	y := MustFrom(t, 2, 2, 0, -1i, 1i, 0)
	m, err := matrix.Kron(id, y)
	require.NoError(t, err)

	vals, v, err := matrix.EigenHermitian(m)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{-1, -1, 1, 1}, vals, 1e-12)
	vvd, _ := matrix.MulDagger(v, v)
	eye, _ := matrix.NewIdentity(4)
	requireApprox(t, eye, vvd, 1e-12)
}

func TestEigenHermitian_Errors(t *testing.T) {
	_, _, err := matrix.EigenHermitian(MustFrom(t, 2, 2, 0, 1, 2, 0))
	require.ErrorIs(t, err, matrix.ErrNotHermitian)
	_, _, err = matrix.EigenHermitian(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, _, err = matrix.EigenHermitian(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// a loose epsilon accepts a slightly non-Hermitian input
	_, _, err = matrix.EigenHermitian(MustFrom(t, 2, 2, 0, 1, 1+1e-6, 0), matrix.WithEpsilon(1e-3))
	require.NoError(t, err)
}

func TestSqrtPSD(t *testing.T) {
	// S = G·G† is PSD; its square root squares back to S.
	g := randomDense(t, 4, 4, 77)
	s, err := matrix.MulDagger(g, g)
	require.NoError(t, err)

	root, err := matrix.SqrtPSD(s)
	require.NoError(t, err)
	sq, err := matrix.Mul(root, root)
	require.NoError(t, err)
	requireApprox(t, s, sq, 1e-9)
	require.NoError(t, matrix.ValidateHermitian(root, 1e-9))

	diag, _ := matrix.NewDiagonal([]complex128{4, 9, 0})
	root, err = matrix.SqrtPSD(diag)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 3, 0}, root.RealDiag(), 1e-12)
}

func TestSqrtPSD_ClampAndReject(t *testing.T) {
	tiny, _ := matrix.NewDiagonal([]complex128{1, -1e-12})
	root, err := matrix.SqrtPSD(tiny)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 0}, root.RealDiag(), 1e-12)

	neg, _ := matrix.NewDiagonal([]complex128{1, -0.5})
	_, err = matrix.SqrtPSD(neg)
	require.ErrorIs(t, err, matrix.ErrNotPositiveSemidefinite)

	root, err = matrix.SqrtPSD(neg, matrix.WithEpsilon(1))
	require.NoError(t, err)
	require.False(t, math.IsNaN(real(MustAt(t, root, 0, 0))))
	require.InDeltaSlice(t, []float64{1, 0}, root.RealDiag(), 1e-12)
}
