// SPDX-License-Identifier: MIT
// Package: changepoint/trajectory
//
// simulate.go — two-regime sample path generation.
//
// Contract:
//   - Params validated before any draw (sentinel errors, RNG untouched).
//   - τ strictly inside (Beg, End) for both samplers.
//   - Result arrivals globally ascending, all in [Beg, End).
//
// Determinism:
//   - Fixed (Params, sampler, seed) ⇒ bit-identical Trajectory. The τ draw
//     consumes one uniform in TauInverseCDF mode and one exponential draw
//     per attempt in TauResample mode; regime arrivals then follow the
//     poisson draw-count contract on the same stream.

package trajectory

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/changepoint/poisson"
)

// methodSimulate tags wrapped errors with their public entry-point.
const methodSimulate = "Simulate"

// Simulate draws one Trajectory for the given parameters.
//
// The changepoint is sampled first (see TauSampler), then the low regime is
// generated at intensity A on [Beg, τ) and the high regime at intensity B on
// [τ, End). The two halves concatenate into a globally ascending sequence
// because every low arrival is below τ and every high arrival at or above it.
func Simulate(p Params, rng *rand.Rand, opts ...Option) (Trajectory, error) {
	if err := p.Validate(); err != nil {
		return Trajectory{}, fmt.Errorf("%s: %w", methodSimulate, err)
	}
	if rng == nil {
		return Trajectory{}, fmt.Errorf("%s: %w", methodSimulate, ErrNilRand)
	}
	cfg := newSimConfig(opts...)

	tau, err := sampleTau(p, rng, cfg)
	if err != nil {
		return Trajectory{}, fmt.Errorf("%s: %w", methodSimulate, err)
	}

	low, err := poisson.Arrivals(p.A, p.Beg, tau, rng)
	if err != nil {
		// Unreachable for validated Params; kept for contract completeness.
		return Trajectory{}, fmt.Errorf("%s: low regime: %w", methodSimulate, err)
	}
	high, err := poisson.Arrivals(p.B, tau, p.End, rng)
	if err != nil {
		return Trajectory{}, fmt.Errorf("%s: high regime: %w", methodSimulate, err)
	}

	return Trajectory{Arrivals: append(low, high...), Tau: tau}, nil
}

// sampleTau draws the changepoint from the exponential distribution with
// rate p.Mu anchored at p.Beg, truncated to the strict interior (Beg, End).
func sampleTau(p Params, rng *rand.Rand, cfg simConfig) (float64, error) {
	switch cfg.sampler {
	case TauResample:
		// Reject-and-redraw: accept the first draw strictly below End.
		// The τ == End boundary has probability zero but would break the
		// strict-interior invariant, so it is rejected too.
		for i := 0; i < cfg.retryCap; i++ {
			tau := p.Beg + rng.ExpFloat64()/p.Mu
			if tau < p.End {
				return tau, nil
			}
		}
		return 0, fmt.Errorf("sampleTau: %d draws ≥ End=%g: %w",
			cfg.retryCap, p.End, ErrRejectionStall)

	default: // TauInverseCDF
		// F(t) = 1-e^(-Mu·(t-Beg)) conditioned on t < End rescales the
		// uniform draw into (0, mass) with mass = 1-e^(-Mu·W); inverting F
		// then lands τ in the open interval. u < 1 strictly keeps τ < End;
		// the measure-zero u == 0 draw is nudged to keep τ > Beg.
		u := rng.Float64()
		if u == 0 {
			u = minUniform
		}
		mass := -math.Expm1(-p.Mu * (p.End - p.Beg)) // numerically stable 1-e^(-Mu·W)
		return p.Beg - math.Log1p(-u*mass)/p.Mu, nil
	}
}

// minUniform replaces an exact-zero uniform draw in the inverse-CDF path so
// that τ stays strictly above Beg. Half-ULP of 1, the smallest grid step of
// rand.Float64.
const minUniform = 0x1p-53
