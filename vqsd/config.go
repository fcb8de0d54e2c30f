// SPDX-License-Identifier: MIT
// Package vqsd: trainer configuration.
//
// Contract:
//   - Config is a plain value; NewConfig starts from the documented defaults
//     and applies options in order (last wins).
//   - Option constructors validate and panic on meaningless values.

package vqsd

import (
	"io"
	"math"
	"os"

	"github.com/katalvlaran/qlath/circuit"
	"github.com/rs/zerolog"
)

const (
	// DefaultNumQubits is the register width (the universal block needs two).
	DefaultNumQubits = 2

	// DefaultIterations is the number of optimization steps.
	DefaultIterations = 50

	// DefaultLearningRate is the Adagrad learning rate.
	DefaultLearningRate = 0.2

	// DefaultSeed seeds the circuit parameter initialization.
	DefaultSeed int64 = 14

	// DefaultReportEvery is the progress-line period in iterations.
	DefaultReportEvery = 10
)

// DefaultSpectrum is the example target spectrum.
var DefaultSpectrum = []float64{0.5, 0.3, 0.1, 0.1}

// Config holds every knob of a training run.
type Config struct {
	NumQubits    int
	Iterations   int
	LearningRate float64
	Seed         int64
	ReportEvery  int
	DType        circuit.DType

	// Logger receives one debug event per reported iteration and an info
	// event per run. Defaults to zerolog.Nop().
	Logger zerolog.Logger

	// Progress receives the "iter: <i> loss: <v>" lines. Defaults to os.Stdout;
	// nil disables them.
	Progress io.Writer
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig returns the defaults with opts applied.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		NumQubits:    DefaultNumQubits,
		Iterations:   DefaultIterations,
		LearningRate: DefaultLearningRate,
		Seed:         DefaultSeed,
		ReportEvery:  DefaultReportEvery,
		DType:        circuit.DefaultDType,
		Logger:       zerolog.Nop(),
		Progress:     os.Stdout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithNumQubits sets the register width. Panics unless 2 <= n <= circuit.MaxQubits.
func WithNumQubits(n int) Option {
	if n < 2 || n > circuit.MaxQubits {
		panic("vqsd: WithNumQubits: n must be in [2, circuit.MaxQubits]")
	}

	return func(c *Config) { c.NumQubits = n }
}

// WithIterations sets the step count. Panics on n < 0.
func WithIterations(n int) Option {
	if n < 0 {
		panic("vqsd: WithIterations: n must be >= 0")
	}

	return func(c *Config) { c.Iterations = n }
}

// WithLearningRate sets the Adagrad learning rate. Panics unless finite and > 0.
func WithLearningRate(lr float64) Option {
	if lr <= 0 || math.IsNaN(lr) || math.IsInf(lr, 0) {
		panic("vqsd: WithLearningRate: lr must be finite and > 0")
	}

	return func(c *Config) { c.LearningRate = lr }
}

// WithSeed sets the circuit initialization seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithReportEvery sets the progress period. Panics on n <= 0.
func WithReportEvery(n int) Option {
	if n <= 0 {
		panic("vqsd: WithReportEvery: n must be > 0")
	}

	return func(c *Config) { c.ReportEvery = n }
}

// WithDType sets the circuit precision. Panics on unknown values.
func WithDType(d circuit.DType) Option {
	if d != circuit.Complex128 && d != circuit.Complex64 {
		panic("vqsd: WithDType: unknown dtype")
	}

	return func(c *Config) { c.DType = d }
}

// WithLogger attaches a structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithProgress redirects the progress lines; nil silences them.
func WithProgress(w io.Writer) Option {
	return func(c *Config) { c.Progress = w }
}
