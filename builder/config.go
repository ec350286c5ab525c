// SPDX-License-Identifier: MIT
// Package: graphinv/builder
//
// config.go — builderConfig and functional options.
//
// Deterministic defaults: rng = nil (no randomness unless seeded).

package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors.
// It is passed by value; constructors cannot mutate the caller's copy.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// BuilderOption customises builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts in order over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG so stochastic fixtures are reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
