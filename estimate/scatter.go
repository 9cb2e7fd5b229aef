// SPDX-License-Identifier: MIT
// Package: changepoint/estimate
//
// scatter.go — training-free classical baseline.
//
// The detector scans every admissible split of the inter-arrival gap
// sequence and keeps the split maximizing between-class scatter
//
//	sb = n₁·n₂/(n₁+n₂) · (mean₁ − mean₂)²
//
// computed in O(n) via cumulative sums of gaps and squared gaps. A Student
// t-test on the two gap populations gates the result; an inconclusive test
// (or too few arrivals) falls back to the window midpoint.
//
// Pure computation, no training, safe for concurrent use.

package estimate

import (
	"fmt"

	"github.com/dgryski/go-onlinestats"
)

// DefaultMinSegment is the minimum number of gaps required on each side of
// a candidate split. Below it the regime means are too noisy to compare.
const DefaultMinSegment = 3

// segmentStats carries the descriptive statistics of one gap segment in the
// shape onlinestats.TTest consumes.
type segmentStats struct {
	mean     float64
	variance float64
	n        int
}

func (s segmentStats) Mean() float64 { return s.mean }
func (s segmentStats) Var() float64  { return s.variance }
func (s segmentStats) Len() int      { return s.n }

// Scatter is the classical gap-scatter changepoint estimator.
//
// Fields:
//   - MinSegment — minimum gaps per side of a split (0 ⇒ DefaultMinSegment).
//   - Conf       — t-test confidence level (zero value ⇒ onlinestats.Conf80,
//     matching the library default).
type Scatter struct {
	MinSegment int
	Conf       onlinestats.Confidence
}

// NewScatter returns a Scatter with a 95% confidence gate.
func NewScatter() *Scatter {
	return &Scatter{MinSegment: DefaultMinSegment, Conf: onlinestats.Conf95}
}

// Predict estimates τ̂ from one feature vector.
//
// The arrival window is recovered from the vector, trailing edge-padding is
// collapsed, and the gap sequence between consecutive arrivals is scanned
// for its scatter-maximizing split. The estimate is the midpoint of the gap
// straddling the best split, clamped to the open window; when the t-test
// cannot separate the two sides, the window midpoint (Beg+End)/2 is
// returned as the distribution-free default.
func (s *Scatter) Predict(features []float64) (float64, error) {
	arrivals, _, _, _, beg, end, ok := splitFeatures(features)
	if !ok {
		return 0, fmt.Errorf("Scatter.Predict: width %d: %w", len(features), ErrDimension)
	}
	minSeg := s.MinSegment
	if minSeg <= 0 {
		minSeg = DefaultMinSegment
	}
	fallback := (beg + end) / 2

	// Collapse trailing edge-padding: repeated equal values at the tail are
	// encoder artifacts (genuine duplicates have probability zero under a
	// continuous arrival distribution).
	m := len(arrivals)
	for m > 1 && arrivals[m-1] == arrivals[m-2] {
		m--
	}
	// Need minSeg gaps per side: at least 2·minSeg+1 arrivals.
	if m < 2*minSeg+1 {
		return fallback, nil
	}

	// Cumulative sums over the m-1 inter-arrival gaps.
	gaps := make([]float64, m-1)
	cumsum := make([]float64, m-1)
	cumsumsq := make([]float64, m-1)
	var sum, sumsq float64
	for i := 0; i < m-1; i++ {
		gaps[i] = arrivals[i+1] - arrivals[i]
		sum += gaps[i]
		sumsq += gaps[i] * gaps[i]
		cumsum[i] = sum
		cumsumsq[i] = sumsq
	}

	// Maximize between-class scatter over admissible splits l, where gaps
	// [0..l] form the low segment and (l..] the high one.
	total := len(gaps)
	var best float64
	bestIdx := -1
	var before, after segmentStats
	for l := minSeg - 1; l < total-minSeg; l++ {
		n1 := float64(l + 1)
		n2 := float64(total - l - 1)
		mean1 := cumsum[l] / n1
		mean2 := (sum - cumsum[l]) / n2

		sb := (n1 * n2 / (n1 + n2)) * (mean1 - mean2) * (mean1 - mean2)
		if sb > best {
			best = sb
			bestIdx = l
			before = segmentStats{
				mean:     mean1,
				variance: (cumsumsq[l] - cumsum[l]*cumsum[l]/n1) / (n1 - 1),
				n:        l + 1,
			}
			after = segmentStats{
				mean:     mean2,
				variance: ((sumsq - cumsumsq[l]) - (sum-cumsum[l])*(sum-cumsum[l])/n2) / (n2 - 1),
				n:        total - l - 1,
			}
		}
	}
	if bestIdx < 0 {
		return fallback, nil
	}

	// Gate with the Student t-test: a zero difference means the two gap
	// populations are indistinguishable at the configured confidence.
	if onlinestats.TTest(before, after, s.Conf) == 0 {
		return fallback, nil
	}

	// The regime switch sits inside gap bestIdx+1, the first gap of the
	// high segment; its midpoint is the point estimate.
	tau := (arrivals[bestIdx+1] + arrivals[bestIdx+2]) / 2
	if tau <= beg || tau >= end {
		return fallback, nil
	}
	return tau, nil
}
