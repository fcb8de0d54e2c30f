// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the comparison tolerance used by kernel tests.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback paths in kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustFrom builds an r×c matrix from row-major data or fails the test.
func MustFrom(tb testing.TB, r, c int, data ...complex128) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) complex128 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// randomDense fills an r×c matrix with complex entries in [-1,1)+i[-1,1).
func randomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]complex128, r*c)
	for i := range data {
		data[i] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	}

	return MustFrom(tb, r, c, data...)
}

// randomHermitian returns (G + G†)/2 for a random G.
func randomHermitian(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	g := randomDense(tb, n, n, seed)
	gd, err := matrix.Dagger(g)
	require.NoError(tb, err)
	s, err := matrix.Add(g, gd)
	require.NoError(tb, err)
	h, err := matrix.Scale(s, 0.5)
	require.NoError(tb, err)

	return h
}

// requireApprox asserts entrywise |a-b| <= eps.
func requireApprox(tb testing.TB, want, got matrix.Matrix, eps float64) {
	tb.Helper()
	require.Truef(tb, matrix.EqualApprox(want, got, eps), "want:\n%v\ngot:\n%v", want, got)
}
