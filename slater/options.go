// SPDX-License-Identifier: MIT

package slater

import "github.com/katalvlaran/wick/cmatrix"

// Option customizes OneRDM and StateVector.
type Option func(*config)

type config struct {
	// rotations per spin sector; nil means identity.
	alpha, beta cmatrix.Matrix
	// spinSummed folds the two spin blocks of the 1-RDM into one.
	spinSummed bool
}

// WithOrbitalRotation applies the same norb×norb rotation to both spins.
// Panics on nil.
func WithOrbitalRotation(u cmatrix.Matrix) Option {
	if u == nil {
		panic("slater: WithOrbitalRotation(nil)")
	}
	return func(c *config) {
		c.alpha, c.beta = u, u
	}
}

// WithOrbitalRotations sets separate alpha and beta rotations. Panics on nil.
func WithOrbitalRotations(alpha, beta cmatrix.Matrix) Option {
	if alpha == nil || beta == nil {
		panic("slater: WithOrbitalRotations(nil)")
	}
	return func(c *config) {
		c.alpha, c.beta = alpha, beta
	}
}

// WithSpinSummed makes OneRDM return the norb×norb matrix γ_αα + γ_ββ.
// StateVector ignores it.
func WithSpinSummed() Option {
	return func(c *config) {
		c.spinSummed = true
	}
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
