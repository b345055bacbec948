// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// options.go — functional options for the gen package.
//
// Contract (strict):
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through genConfig.

package gen

import (
	"math/rand" // RNG source for stochastic factories
)

// Option customizes generator behavior by mutating a genConfig instance
// before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// WithRand provides an explicit RNG for stochastic factories. The source is
// caller-owned and consumed sequentially, so one seeded RNG threaded through
// several Build calls reproduces a whole fixture suite.
// Panics on nil; prefer WithSeed for one-off reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("gen: WithRand(nil)")
	}

	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
