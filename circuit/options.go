// SPDX-License-Identifier: MIT
// Package circuit: functional options.
//
// Contract:
//   - Option constructors validate and panic on meaningless input.
//   - Determinism is explicit: seed with WithSeed or share a source with
//     WithRand; otherwise the circuit seeds itself from the wall clock.

package circuit

import (
	"math/rand"
	"time"
)

// DType selects the working precision of circuit unitaries.
type DType int

const (
	// Complex128 keeps full double precision (default).
	Complex128 DType = iota
	// Complex64 rounds real and imaginary parts to float32.
	Complex64
)

// String implements fmt.Stringer.
func (d DType) String() string {
	switch d {
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

const (
	// DefaultDType is the working precision when WithDType is not given.
	DefaultDType = Complex128

	// MaxQubits bounds register size (the unitary is 2^n × 2^n dense).
	MaxQubits = 12
)

// Option configures New.
type Option func(*config)

type config struct {
	rng   *rand.Rand
	dtype DType
}

// WithSeed gives the circuit a private deterministic RNG for parameter init.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("circuit: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithDType selects the working precision. Panics on unknown values.
func WithDType(d DType) Option {
	if d != Complex128 && d != Complex64 {
		panic("circuit: WithDType: unknown dtype")
	}

	return func(c *config) { c.dtype = d }
}

func gatherConfig(opts ...Option) config {
	c := config{dtype: DefaultDType}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c
}
