// SPDX-License-Identifier: MIT
// Package: changepoint/corpus
//
// options.go — functional options for Build.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Build itself MUST NOT panic.
//   • Determinism is explicit: seeding happens only via WithSeed.
//   • No hidden globals; everything flows through buildConfig.

package corpus

import (
	"github.com/katalvlaran/changepoint/encode"
	"github.com/katalvlaran/changepoint/trajectory"
)

// DefaultSeed is the base seed used when WithSeed is not supplied. A fixed
// default keeps zero-option builds reproducible; vary it deliberately.
const DefaultSeed int64 = 1

// buildConfig aggregates all Build knobs resolved from options.
type buildConfig struct {
	seed    int64               // base seed for per-sample sub-seeds
	workers int                 // concurrent sample builders
	bounds  Bounds              // parameter distributions
	enc     encode.Options      // feature encoding
	sim     []trajectory.Option // forwarded to trajectory.Simulate
}

// Option customizes one Build call.
type Option func(*buildConfig)

// newBuildConfig resolves deterministic defaults, then applies options in
// order (later overrides earlier).
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		seed:    DefaultSeed,
		workers: 1,
		bounds:  DefaultBounds(),
		enc:     encode.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed fixes the base seed. Identical seeds reproduce identical corpora
// bit for bit, regardless of worker count.
func WithSeed(seed int64) Option {
	return func(c *buildConfig) {
		c.seed = seed
	}
}

// WithWorkers sets the number of concurrent sample builders.
// Panics if n < 1. Worker count never affects corpus content, only wall time.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("corpus: WithWorkers(n<1)")
	}
	return func(c *buildConfig) {
		c.workers = n
	}
}

// WithBounds overrides the parameter distributions. Validation is deferred
// to Build (sentinel ErrBadBounds), keeping option constructors total for
// struct-typed input.
func WithBounds(b Bounds) Option {
	return func(c *buildConfig) {
		c.bounds = b
	}
}

// WithEncoding overrides the feature-encoding options. Panics on nil.
func WithEncoding(o *encode.Options) Option {
	if o == nil {
		panic("corpus: WithEncoding(nil)")
	}
	return func(c *buildConfig) {
		c.enc = *o
	}
}

// WithSimOptions forwards options (τ sampler, retry cap) to every
// trajectory.Simulate call made by Build.
func WithSimOptions(opts ...trajectory.Option) Option {
	return func(c *buildConfig) {
		c.sim = opts
	}
}
