// SPDX-License-Identifier: MIT
// Package: changepoint/trajectory
//
// options.go — functional options for Simulate.
//
// Contract (strict):
//   • Options are functional (type Option func(*simConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Simulate itself MUST NOT panic.
//   • No hidden globals; everything flows through simConfig.

package trajectory

// DefaultRetryCap bounds the TauResample rejection loop. At the corpus
// defaults (Mu ≈ 0.2, window ≥ 5) the acceptance probability per draw
// exceeds 0.6, so the cap is effectively unreachable for sane parameters.
const DefaultRetryCap = 1024

// simConfig aggregates the Simulate knobs resolved from options.
// Passed by value; immutable once resolved.
type simConfig struct {
	sampler  TauSampler // how τ is drawn
	retryCap int        // max rejection draws (TauResample only)
}

// Option customizes one Simulate call.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*simConfig)

// newSimConfig resolves deterministic defaults, then applies options in
// order (later overrides earlier).
func newSimConfig(opts ...Option) simConfig {
	cfg := simConfig{
		sampler:  TauInverseCDF,
		retryCap: DefaultRetryCap,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTauSampler selects the changepoint sampling mode.
// Panics on an unknown mode to surface programmer error early.
func WithTauSampler(mode TauSampler) Option {
	if mode != TauInverseCDF && mode != TauResample {
		panic("trajectory: WithTauSampler(unknown mode)")
	}
	return func(c *simConfig) {
		c.sampler = mode
	}
}

// WithRetryCap overrides the TauResample retry budget.
// Panics if cap < 1; a capless loop would reintroduce the unbounded stall.
func WithRetryCap(n int) Option {
	if n < 1 {
		panic("trajectory: WithRetryCap(n<1)")
	}
	return func(c *simConfig) {
		c.retryCap = n
	}
}
