// SPDX-License-Identifier: MIT
// Package: changepoint/corpus
//
// bounds.go — per-sample parameter distributions.
//
// Contract:
//   - Bounds.Validate is pure and precedes every draw in Build.
//   - draw consumes exactly 5 values from the RNG (3 uniforms for A/B/Mu,
//     2 exponentials for Beg and the window span) in a fixed order.

package corpus

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/changepoint/trajectory"
)

// Default distribution constants. MinSpan guarantees End > Beg by
// construction with a floor on the window length.
const (
	defaultLowMin    = 3.0
	defaultLowMax    = 7.0
	defaultHighMin   = 8.0
	defaultHighMax   = 12.0
	defaultRateMin   = 1.0 / 6.0
	defaultRateMax   = 1.0 / 4.0
	defaultStartMean = 5.0
	defaultMinSpan   = 5.0
	defaultSpanMean  = 5.0
)

// Bounds parameterizes the per-sample distributions of Params fields.
//
//	A   ~ Uniform(LowMin, LowMax)
//	B   ~ Uniform(HighMin, HighMax)
//	Mu  ~ Uniform(RateMin, RateMax)
//	Beg ~ Exponential(mean StartMean)
//	End = Beg + MinSpan + Exponential(mean SpanMean)
type Bounds struct {
	LowMin, LowMax   float64 // low intensity range
	HighMin, HighMax float64 // high intensity range
	RateMin, RateMax float64 // changepoint rate range
	StartMean        float64 // mean of the window-start exponential
	MinSpan          float64 // hard floor on window length
	SpanMean         float64 // mean of the extra-span exponential
}

// DefaultBounds returns the canonical distribution constants.
func DefaultBounds() Bounds {
	return Bounds{
		LowMin: defaultLowMin, LowMax: defaultLowMax,
		HighMin: defaultHighMin, HighMax: defaultHighMax,
		RateMin: defaultRateMin, RateMax: defaultRateMax,
		StartMean: defaultStartMean,
		MinSpan:   defaultMinSpan,
		SpanMean:  defaultSpanMean,
	}
}

// Validate reports the first inadmissible field combination, wrapped around
// ErrBadBounds, or nil. Every drawn Params must satisfy trajectory.Params
// invariants, which requires positive intensity/rate ranges and a positive
// window span.
func (b Bounds) Validate() error {
	switch {
	case b.LowMin <= 0 || b.LowMax < b.LowMin:
		return fmt.Errorf("low intensity range [%g,%g]: %w", b.LowMin, b.LowMax, ErrBadBounds)
	case b.HighMin <= 0 || b.HighMax < b.HighMin:
		return fmt.Errorf("high intensity range [%g,%g]: %w", b.HighMin, b.HighMax, ErrBadBounds)
	case b.RateMin <= 0 || b.RateMax < b.RateMin:
		return fmt.Errorf("rate range [%g,%g]: %w", b.RateMin, b.RateMax, ErrBadBounds)
	case b.StartMean < 0:
		return fmt.Errorf("start mean %g: %w", b.StartMean, ErrBadBounds)
	case b.MinSpan <= 0 && b.SpanMean <= 0:
		return fmt.Errorf("window span floor %g, mean %g: %w", b.MinSpan, b.SpanMean, ErrBadBounds)
	case b.MinSpan < 0 || b.SpanMean < 0:
		return fmt.Errorf("negative span component (%g, %g): %w", b.MinSpan, b.SpanMean, ErrBadBounds)
	}
	return nil
}

// draw samples one admissible Params from the configured distributions.
// Draw order is fixed (A, B, Mu, Beg, span) so the stream layout is part of
// the determinism contract.
func (b Bounds) draw(rng *rand.Rand) trajectory.Params {
	p := trajectory.Params{
		A:  uniform(rng, b.LowMin, b.LowMax),
		B:  uniform(rng, b.HighMin, b.HighMax),
		Mu: uniform(rng, b.RateMin, b.RateMax),
	}
	p.Beg = exponential(rng, b.StartMean)
	p.End = p.Beg + b.MinSpan + exponential(rng, b.SpanMean)
	return p
}

// uniform draws from U(min, max); a degenerate interval is the constant.
func uniform(rng *rand.Rand, min, max float64) float64 {
	if max == min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// exponential draws from Exp(mean); mean 0 degrades to the constant 0 while
// still consuming one draw, preserving stream alignment across Bounds.
func exponential(rng *rand.Rand, mean float64) float64 {
	return rng.ExpFloat64() * mean
}
