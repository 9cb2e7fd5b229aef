// SPDX-License-Identifier: MIT
// Package: changepoint/estimate
//
// estimator.go — the single contract every τ estimator satisfies.

package estimate

import "github.com/katalvlaran/changepoint/encode"

// Estimator maps one encoded feature vector to a changepoint estimate τ̂.
//
// The vector layout is the encode package's: K arrival slots followed by the
// ParamSlots scalar tail (A, B, Mu, Beg, End). Implementations must reject
// incompatible widths with ErrDimension rather than guess, and must not
// mutate the input slice.
type Estimator interface {
	Predict(features []float64) (float64, error)
}

// splitFeatures separates a feature vector into its arrival window and
// parameter tail. Returns ok=false when the vector cannot carry the tail.
func splitFeatures(features []float64) (arrivals []float64, a, b, mu, beg, end float64, ok bool) {
	k := len(features) - encode.ParamSlots
	if k < 1 {
		return nil, 0, 0, 0, 0, 0, false
	}
	tail := features[k:]
	return features[:k], tail[0], tail[1], tail[2], tail[3], tail[4], true
}
