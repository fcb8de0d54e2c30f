// SPDX-License-Identifier: MIT

package optimizer

import "math"

const (
	// DefaultEpsilon is added to √acc in the denominator of the update.
	DefaultEpsilon = 1e-6

	// DefaultInitialAccumulator seeds every squared-gradient accumulator.
	DefaultInitialAccumulator = 0.0
)

// Option configures NewAdagrad.
type Option func(*Adagrad)

// WithEpsilon sets the denominator guard. Panics if eps is negative or not finite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("optimizer: WithEpsilon: eps must be finite and >= 0")
	}

	return func(a *Adagrad) { a.eps = eps }
}

// WithInitialAccumulator sets the starting value of every accumulator.
// Panics if v is negative or not finite.
func WithInitialAccumulator(v float64) Option {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		panic("optimizer: WithInitialAccumulator: value must be finite and >= 0")
	}

	return func(a *Adagrad) { a.initAcc = v }
}
