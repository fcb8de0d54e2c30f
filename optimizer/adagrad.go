// SPDX-License-Identifier: MIT

package optimizer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Adagrad scales each coordinate's step by the inverse root of its
// accumulated squared gradients:
//
//	acc  ← acc + g²
//	p    ← p − lr · g / (√acc + eps)
//
// Not safe for concurrent use.
type Adagrad struct {
	lr      float64
	eps     float64
	initAcc float64
	acc     []float64
	grad    []float64
	steps   int
}

// NewAdagrad creates an optimizer for numParams parameters.
//
// Errors: ErrInvalidLearningRate, ErrInvalidSize.
func NewAdagrad(lr float64, numParams int, opts ...Option) (*Adagrad, error) {
	if lr <= 0 || math.IsNaN(lr) || math.IsInf(lr, 0) {
		return nil, fmt.Errorf("NewAdagrad: %w", ErrInvalidLearningRate)
	}
	if numParams <= 0 {
		return nil, fmt.Errorf("NewAdagrad: %w", ErrInvalidSize)
	}
	a := &Adagrad{
		lr:      lr,
		eps:     DefaultEpsilon,
		initAcc: DefaultInitialAccumulator,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	a.acc = make([]float64, numParams)
	for i := range a.acc {
		a.acc[i] = a.initAcc
	}
	a.grad = make([]float64, numParams)

	return a, nil
}

// LearningRate returns lr.
func (a *Adagrad) LearningRate() float64 { return a.lr }

// Steps returns how many updates have been applied.
func (a *Adagrad) Steps() int { return a.steps }

// Grad returns the live gradient buffer. Writes into it are seen by Step.
func (a *Adagrad) Grad() []float64 { return a.grad }

// GradNorm returns ‖g‖₂ of the current buffer.
func (a *Adagrad) GradNorm() float64 { return floats.Norm(a.grad, 2) }

// Accumulator returns a copy of the squared-gradient accumulators.
func (a *Adagrad) Accumulator() []float64 {
	out := make([]float64, len(a.acc))
	copy(out, a.acc)

	return out
}

// ClearGrad zeroes the gradient buffer.
func (a *Adagrad) ClearGrad() {
	for i := range a.grad {
		a.grad[i] = 0
	}
}

// Step applies one Adagrad update to params in place using the buffered gradient.
// On error nothing is modified.
//
// Errors: ErrParamCount, ErrNonFinite.
// Complexity: O(len(params)).
func (a *Adagrad) Step(params []float64) error {
	if len(params) != len(a.grad) {
		return fmt.Errorf("Adagrad.Step: %w", ErrParamCount)
	}
	if floats.HasNaN(a.grad) {
		return fmt.Errorf("Adagrad.Step: %w", ErrNonFinite)
	}
	for _, g := range a.grad {
		if math.IsInf(g, 0) {
			return fmt.Errorf("Adagrad.Step: %w", ErrNonFinite)
		}
	}
	var g float64
	for i := range params {
		g = a.grad[i]
		a.acc[i] += g * g
		params[i] -= a.lr * g / (math.Sqrt(a.acc[i]) + a.eps)
	}
	a.steps++

	return nil
}
