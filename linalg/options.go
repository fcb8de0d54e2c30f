// SPDX-License-Identifier: MIT

// Package linalg: functional options.
//
// Two independent option families live here:
//   - Option tunes the predicates (tolerance).
//   - SamplerOption configures the random source of a Sampler.
//
// Option constructors validate eagerly and panic on meaningless input;
// predicates and generators themselves never panic.
package linalg

import (
	"math"
	"math/rand"
	"time"
)

const (
	// DefaultHermitianEps is the IsHermitian tolerance on ‖M − M†‖.
	DefaultHermitianEps = 1e-6

	// DefaultProjectorEps is the IsProjector tolerance on ‖M·M − M‖.
	DefaultProjectorEps = 1e-6

	// DefaultUnitaryEps is the IsUnitary tolerance on ‖M·M† − I‖.
	DefaultUnitaryEps = 1e-5

	// DefaultDensityEps is the IsDensityOperator tolerance on the Hermitian
	// residual, the trace defect and negative eigenvalues.
	DefaultDensityEps = 1e-6

	// MaxQubits bounds generator sizes (a dense 2^16 × 2^16 complex operator
	// already needs 64 GiB).
	MaxQubits = 16

	// FullRank asks HaarDensityOperator for rank 2^n.
	FullRank = -1
)

const (
	panicEpsilonInvalid = "linalg: WithEpsilon: eps must be finite and > 0"
	panicRandNil        = "linalg: WithRand(nil)"
)

// Option customizes a predicate call.
type Option func(*predicateOptions)

type predicateOptions struct {
	eps    float64
	epsSet bool
}

// WithEpsilon overrides the predicate tolerance. Panics unless eps is finite
// and strictly positive (a zero bound with a strict "<" could never hold).
func WithEpsilon(eps float64) Option {
	if eps <= 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *predicateOptions) {
		o.eps = eps
		o.epsSet = true
	}
}

// resolveEps applies opts and falls back to def when no tolerance was given.
func resolveEps(def float64, opts []Option) float64 {
	o := predicateOptions{eps: def}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.epsSet {
		return def
	}

	return o.eps
}

// SamplerOption configures NewSampler.
type SamplerOption func(*samplerConfig)

type samplerConfig struct {
	rng *rand.Rand
}

// WithSeed gives the sampler a private deterministic source.
func WithSeed(seed int64) SamplerOption {
	return func(c *samplerConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
// The sampler then shares the RNG stream with every other user of r.
func WithRand(r *rand.Rand) SamplerOption {
	if r == nil {
		panic(panicRandNil)
	}

	return func(c *samplerConfig) { c.rng = r }
}

func gatherSamplerConfig(opts ...SamplerOption) samplerConfig {
	var c samplerConfig
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
