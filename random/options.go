// SPDX-License-Identifier: MIT
// Package: random
//
// options.go - functional options and resolved config.
//
// Contract:
//   - Options mutate a config passed by value to generators.
//   - Option constructors panic on programmer errors (nil RNG), never at
//     generation time.

package random

import "math/rand"

// Option customizes a generator call.
type Option func(*config)

// config aggregates all knobs used by generators.
type config struct {
	// RNG for all draws; nil means "not configured" and is rejected.
	rng *rand.Rand
	// scale multiplies every Gaussian draw.
	scale float64
}

const defaultScale = 1.0

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("random: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScale multiplies Gaussian entries by s (> 0). Panics on s <= 0.
// Ignored by Unitary.
func WithScale(s float64) Option {
	if s <= 0 {
		panic("random: WithScale(s<=0)")
	}
	return func(c *config) {
		c.scale = s
	}
}

// newConfig applies opts over the defaults; last option wins.
func newConfig(opts ...Option) config {
	cfg := config{scale: defaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
