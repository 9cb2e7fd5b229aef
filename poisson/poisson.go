// SPDX-License-Identifier: MIT
// Package: changepoint/poisson
//
// poisson.go — homogeneous Poisson arrival sampling on [orig, horiz).
//
// Contract:
//   - lmbda > 0 (else ErrNonPositiveRate), horiz ≥ orig (else ErrBadInterval),
//     rng non-nil (else ErrNilRand). Validation precedes every draw.
//   - Output ascending, every value in [orig, horiz).
//   - Exactly k+1 uniform draws are consumed to emit k arrivals.
//
// Determinism:
//   - Same (lmbda, orig, horiz, seed) ⇒ bit-identical output.

package poisson

import (
	"fmt"
	"math"
	"math/rand"
)

// methodArrivals tags wrapped errors with their public entry-point.
const methodArrivals = "Arrivals"

// Arrivals returns the ascending arrival times of a homogeneous Poisson
// process with intensity lmbda that fall strictly within [orig, horiz).
//
// Starting at t = orig, the generator repeatedly draws an exponential
// inter-arrival increment -ln(u)/lmbda with u uniform on (0,1], advances t,
// and appends it. The first draw that reaches t ≥ horiz terminates the loop
// and is discarded, so the result never touches the horizon.
//
// An empty window (horiz == orig) returns an empty slice; so does a first
// increment that overshoots. The returned slice is always non-nil on success.
func Arrivals(lmbda, orig, horiz float64, rng *rand.Rand) ([]float64, error) {
	// Validate before consuming any randomness (draw-count contract).
	if lmbda <= 0 {
		return nil, fmt.Errorf("%s: lmbda=%g: %w", methodArrivals, lmbda, ErrNonPositiveRate)
	}
	if horiz < orig {
		return nil, fmt.Errorf("%s: horiz=%g < orig=%g: %w", methodArrivals, horiz, orig, ErrBadInterval)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodArrivals, ErrNilRand)
	}

	// Pre-size for the expected count; append covers the tail.
	expected := int(lmbda * (horiz - orig))
	out := make([]float64, 0, expected)

	t := orig
	for {
		// u ∈ (0,1]: Float64 yields [0,1), so 1-Float64 avoids ln(0).
		u := 1 - rng.Float64()
		t += -math.Log(u) / lmbda
		if t >= horiz {
			// Terminating draw lies outside the window; discard it.
			return out, nil
		}
		out = append(out, t)
	}
}
