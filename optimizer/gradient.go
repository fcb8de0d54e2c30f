// SPDX-License-Identifier: MIT

package optimizer

import (
	"fmt"

	"gonum.org/v1/gonum/diff/fd"
)

// DefaultStep is the central-difference step used by Gradient.
const DefaultStep = 1e-5

// Gradient writes ∇f(x) into dst using central differences
// (f(x+h·e_i) − f(x−h·e_i)) / 2h, evaluated through gonum's fd package.
// x is not modified.
//
// Errors: ErrParamCount when len(dst) != len(x).
// Complexity: 2·len(x) evaluations of f.
func Gradient(dst []float64, f func([]float64) float64, x []float64) error {
	if len(dst) != len(x) {
		return fmt.Errorf("Gradient: %w", ErrParamCount)
	}
	fd.Gradient(dst, f, x, &fd.Settings{
		Formula: fd.Central,
		Step:    DefaultStep,
	})

	return nil
}
