// SPDX-License-Identifier: MIT
// Package vqsd: the training loop.
//
// One iteration is build → forward → backward → step → clear-grad:
//   - U = circuit unitary for the current parameters;
//   - loss, ρ̃ = Loss(U, ρ, σ);
//   - ∇loss by central differences into the optimizer's gradient buffer;
//   - Adagrad step, parameters written back to the circuit;
//   - gradient buffer cleared.
//
// The loop runs exactly Config.Iterations times; loss values never change
// control flow.

package vqsd

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/qlath/circuit"
	"github.com/katalvlaran/qlath/matrix"
	"github.com/katalvlaran/qlath/optimizer"
)

const opTrain = "Train"

// Trainer runs VQSD with a fixed configuration. It holds no per-run state
// and may be reused; a single Train call is not concurrent.
type Trainer struct {
	cfg Config
}

// NewTrainer builds a Trainer from NewConfig(opts...).
func NewTrainer(opts ...Option) *Trainer {
	return &Trainer{cfg: NewConfig(opts...)}
}

// Config returns a copy of the effective configuration.
func (t *Trainer) Config() Config { return t.cfg }

// Result is the outcome of a training run.
type Result struct {
	// RhoTilde is U·ρ·U† from the forward pass of the last iteration (before
	// its optimizer step). Nil when Iterations == 0.
	RhoTilde *matrix.Dense

	// Losses holds the loss of every iteration in order.
	Losses []float64

	// Parameters are the circuit parameters after the final step.
	Parameters []float64
}

// Spectrum returns the real diagonal of ρ̃, the estimated eigenvalues in the
// order the circuit produced them.
func (r *Result) Spectrum() []float64 {
	if r == nil || r.RhoTilde == nil {
		return nil
	}

	return r.RhoTilde.RealDiag()
}

// SortedSpectrum returns Spectrum sorted in decreasing order.
func (r *Result) SortedSpectrum() []float64 {
	s := r.Spectrum()
	sort.Sort(sort.Reverse(sort.Float64Slice(s)))

	return s
}

// FinalLoss returns the last recorded loss, or NaN when no iteration ran.
func (r *Result) FinalLoss() float64 {
	if r == nil || len(r.Losses) == 0 {
		return math.NaN()
	}

	return r.Losses[len(r.Losses)-1]
}

// Train diagonalizes rho against sigma.
//
// Implementation:
//   - Stage 1: validate rho and sigma: non-nil, square, side 2^NumQubits.
//   - Stage 2: circuit with one UniversalTwoQubits(0, 1) block seeded with
//     Config.Seed; Adagrad with Config.LearningRate.
//   - Stage 3: Iterations × (forward, gradient, step, clear-grad), reporting
//     every ReportEvery-th iteration.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNotPowerOfTwo,
//     matrix.ErrDimensionMismatch (wrapped with "Train").
//   - Any circuit or optimizer error surfaced during the loop.
func (t *Trainer) Train(rho, sigma matrix.Matrix) (*Result, error) {
	cfg := t.cfg
	if err := t.validate(rho, sigma); err != nil {
		return nil, vqsdErrorf(opTrain, err)
	}

	c, err := circuit.New(cfg.NumQubits, circuit.WithSeed(cfg.Seed), circuit.WithDType(cfg.DType))
	if err != nil {
		return nil, vqsdErrorf(opTrain, err)
	}
	if err = c.UniversalTwoQubits(0, 1); err != nil {
		return nil, vqsdErrorf(opTrain, err)
	}
	opt, err := optimizer.NewAdagrad(cfg.LearningRate, c.NumParameters())
	if err != nil {
		return nil, vqsdErrorf(opTrain, err)
	}

	cfg.Logger.Info().
		Int("qubits", cfg.NumQubits).
		Int("iterations", cfg.Iterations).
		Float64("lr", cfg.LearningRate).
		Int64("seed", cfg.Seed).
		Msg("vqsd: training started")

	// lossAt is the objective seen by the finite-difference gradient.
	// The first evaluation error is kept and reported after the sweep.
	var evalErr error
	lossAt := func(p []float64) float64 {
		u, e := c.UnitaryFor(p)
		if e != nil {
			if evalErr == nil {
				evalErr = e
			}
			return math.NaN()
		}
		l, _, e := Loss(u, rho, sigma)
		if e != nil {
			if evalErr == nil {
				evalErr = e
			}
			return math.NaN()
		}
		return l
	}

	res := &Result{Losses: make([]float64, 0, cfg.Iterations)}
	var (
		u        *matrix.Dense
		loss     float64
		rhoTilde *matrix.Dense
		params   []float64
	)
	for itr := 0; itr < cfg.Iterations; itr++ {
		// forward
		params = c.Parameters()
		if u, err = c.UnitaryFor(params); err != nil {
			return nil, vqsdErrorf(opTrain, err)
		}
		if loss, rhoTilde, err = Loss(u, rho, sigma); err != nil {
			return nil, vqsdErrorf(opTrain, err)
		}

		// backward
		if err = optimizer.Gradient(opt.Grad(), lossAt, params); err != nil {
			return nil, vqsdErrorf(opTrain, err)
		}
		if evalErr != nil {
			return nil, vqsdErrorf(opTrain, evalErr)
		}

		// step + clear
		if err = opt.Step(params); err != nil {
			return nil, vqsdErrorf(opTrain, err)
		}
		if err = c.SetParameters(params); err != nil {
			return nil, vqsdErrorf(opTrain, err)
		}

		res.Losses = append(res.Losses, loss)
		res.RhoTilde = rhoTilde
		if itr%cfg.ReportEvery == 0 {
			t.report(itr, loss, opt.GradNorm())
		}
		opt.ClearGrad()
	}
	res.Parameters = c.Parameters()

	cfg.Logger.Info().
		Float64("final_loss", res.FinalLoss()).
		Floats64("spectrum", res.Spectrum()).
		Msg("vqsd: training finished")

	return res, nil
}

// validate checks both operands are 2^NumQubits square operators of equal shape.
func (t *Trainer) validate(rho, sigma matrix.Matrix) error {
	if err := matrix.ValidateQubitShape(rho); err != nil {
		return err
	}
	if err := matrix.ValidateQubitShape(sigma); err != nil {
		return err
	}
	if err := matrix.ValidateSameShape(rho, sigma); err != nil {
		return err
	}
	if rho.Rows() != 1<<t.cfg.NumQubits {
		return matrix.ErrDimensionMismatch
	}

	return nil
}

// report writes the progress line and a structured debug event.
func (t *Trainer) report(itr int, loss, gradNorm float64) {
	if t.cfg.Progress != nil {
		fmt.Fprintf(t.cfg.Progress, "iter: %d loss: %.4f\n", itr, loss)
	}
	t.cfg.Logger.Debug().
		Int("iter", itr).
		Float64("loss", loss).
		Float64("grad_norm", gradNorm).
		Msg("vqsd: iteration")
}
