// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • genConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newGenConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng = nil (pure/deterministic unless seeded; stochastic factories
//     reject a missing RNG with ErrNeedRandSource instead of self-seeding).

package gen

import "math/rand"

// genConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type genConfig struct {
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand
}

// newGenConfig constructs a config with deterministic defaults and applies
// all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
