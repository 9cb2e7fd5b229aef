// SPDX-License-Identifier: MIT
// Package: changepoint/encode
//
// encode.go — truncate/edge-pad windowing and feature assembly.
//
// Contract:
//   - Window always returns exactly k values for k ≥ 1.
//   - Features returns exactly opts.MaxArrivals+ParamSlots values or an error.
//   - Pure functions: no RNG, no mutation of the input slice.

package encode

import (
	"fmt"

	"github.com/katalvlaran/changepoint/trajectory"
)

// methodFeatures tags wrapped errors with their public entry-point.
const methodFeatures = "Features"

// Window resizes arrivals to exactly k values: inputs longer than k are
// truncated to their first k elements, shorter inputs are edge-padded by
// repeating their final element, and an empty input yields k copies of
// fallback. The input slice is never aliased; the result is fresh.
//
// Complexity: O(k) time, O(k) space.
func Window(arrivals []float64, k int, fallback float64) []float64 {
	out := make([]float64, k)
	n := copy(out, arrivals)
	if n == 0 {
		// Nothing to repeat: every slot takes the fallback.
		for i := range out {
			out[i] = fallback
		}
		return out
	}
	// Edge-pad: slots past the last real arrival repeat it.
	last := out[n-1]
	for i := n; i < k; i++ {
		out[i] = last
	}
	return out
}

// Features encodes an arrival sequence and its generating parameters into a
// fixed-size vector of opts.MaxArrivals+ParamSlots values: the truncated or
// edge-padded arrival window followed by (A, B, Mu, Beg, End).
//
// A nil opts uses DefaultOptions. Empty input follows opts.OnEmpty: the
// default pads the window with p.Beg, RejectEmpty returns ErrEmptyTrajectory.
func Features(arrivals []float64, p trajectory.Params, opts *Options) ([]float64, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.MaxArrivals < 1 {
		return nil, fmt.Errorf("%s: k=%d: %w", methodFeatures, cfg.MaxArrivals, ErrBadWidth)
	}
	if len(arrivals) == 0 && cfg.OnEmpty == RejectEmpty {
		return nil, fmt.Errorf("%s: %w", methodFeatures, ErrEmptyTrajectory)
	}

	out := make([]float64, 0, cfg.MaxArrivals+ParamSlots)
	out = append(out, Window(arrivals, cfg.MaxArrivals, p.Beg)...)
	out = append(out, p.A, p.B, p.Mu, p.Beg, p.End)
	return out, nil
}
