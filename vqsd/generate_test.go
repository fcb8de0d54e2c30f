// SPDX-License-Identifier: MIT
package vqsd_test

import (
	"testing"

	"github.com/katalvlaran/qlath/linalg"
	"github.com/katalvlaran/qlath/matrix"
	"github.com/katalvlaran/qlath/vqsd"
	"github.com/stretchr/testify/require"
)

func TestGenerateRhoSigma(t *testing.T) {
	t.Parallel()

	rho, sigma, err := vqsd.GenerateRhoSigma(linalg.NewSampler(linalg.WithSeed(14)), vqsd.DefaultSpectrum)
	require.NoError(t, err)

	require.True(t, linalg.IsDensityOperator(rho))
	vals, _, err := matrix.EigenHermitian(rho)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.1, 0.1, 0.3, 0.5}, vals, 1e-9)

	require.InDeltaSlice(t, []float64{0.1, 0.2, 0.3, 0.4}, sigma.RealDiag(), 1e-15)
	require.True(t, linalg.IsDensityOperator(sigma))
}

func TestGenerateRhoSigma_Errors(t *testing.T) {
	t.Parallel()

	s := linalg.NewSampler(linalg.WithSeed(1))
	for _, spectrum := range [][]float64{nil, {1}, {0.5, 0.3, 0.2}} {
		_, _, err := vqsd.GenerateRhoSigma(s, spectrum)
		require.ErrorIs(t, err, vqsd.ErrInvalidSpectrum)
	}
	_, _, err := vqsd.GenerateRhoSigma(nil, vqsd.DefaultSpectrum)
	require.ErrorIs(t, err, vqsd.ErrNilSampler)
}
