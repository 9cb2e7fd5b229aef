// SPDX-License-Identifier: MIT
// Package: changepoint/trajectory
//
// types.go — parameter set, trajectory value, and τ sampler modes.

package trajectory

import "fmt"

// Params describes one two-regime Poisson process over an observation window.
//
// Invariants (enforced by Validate, re-checked by Simulate):
//   - A  > 0 — low-regime intensity, active on [Beg, τ)
//   - B  > 0 — high-regime intensity, active on [τ, End)
//   - Mu > 0 — rate of the exponential changepoint distribution
//   - End > Beg strictly; Beg may be any non-negative origin
type Params struct {
	A   float64 // low-regime intensity
	B   float64 // high-regime intensity
	Mu  float64 // changepoint exponential rate
	Beg float64 // window start (inclusive)
	End float64 // window end (exclusive)
}

// Validate reports the first violated Params invariant as a sentinel error,
// or nil when the parameter set is admissible. Zero random draws are
// involved; Validate is pure.
func (p Params) Validate() error {
	if p.A <= 0 {
		return fmt.Errorf("Params: A=%g: %w", p.A, ErrNonPositiveIntensity)
	}
	if p.B <= 0 {
		return fmt.Errorf("Params: B=%g: %w", p.B, ErrNonPositiveIntensity)
	}
	if p.Mu <= 0 {
		return fmt.Errorf("Params: Mu=%g: %w", p.Mu, ErrNonPositiveRate)
	}
	if p.End <= p.Beg {
		return fmt.Errorf("Params: End=%g ≤ Beg=%g: %w", p.End, p.Beg, ErrBadWindow)
	}
	return nil
}

// Trajectory is one simulated sample path: the globally ascending arrival
// times over [Beg, End) and the true changepoint that generated them.
// Arrivals before Tau were drawn at intensity A, the rest at intensity B.
type Trajectory struct {
	Arrivals []float64 // ascending, all in [Beg, End); may be empty
	Tau      float64   // strict interior: Beg < Tau < End
}

// TauSampler selects how the truncated-exponential changepoint is drawn.
//
//   - TauInverseCDF — direct inverse-CDF sample of the exponential
//     distribution conditioned on (Beg, End). One uniform draw, no loop,
//     no stall risk. Default.
//   - TauResample   — reject-and-redraw from the unconditioned exponential
//     until τ < End, bounded by the retry cap. Reproduces the classic
//     scheme draw-for-draw; can fail with ErrRejectionStall.
type TauSampler int

const (
	// TauInverseCDF mode: analytic truncation, exactly one uniform draw.
	TauInverseCDF TauSampler = iota

	// TauResample mode: rejection sampling with a hard retry cap.
	TauResample
)
