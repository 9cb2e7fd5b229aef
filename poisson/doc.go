// Package poisson samples arrival times of a homogeneous Poisson process.
//
// The package exposes a single entry-point, Arrivals, which returns the
// ascending arrival times of a rate-λ process restricted to the half-open
// interval [orig, horiz). Inter-arrival increments are drawn by inverse-CDF
// sampling of the exponential distribution: for u uniform on (0,1], the
// increment is -ln(u)/λ.
//
// Guarantees:
//
//   - Every returned value lies in [orig, horiz); the sequence is
//     non-decreasing (strictly increasing almost surely).
//   - Deterministic for a fixed *rand.Rand seed: producing k arrivals
//     consumes exactly k+1 uniform draws (the final draw overshoots the
//     horizon and is discarded). Callers composing several Arrivals calls
//     on one RNG can therefore reason about stream alignment.
//   - Validation happens before any draw; invalid inputs return sentinel
//     errors (ErrNonPositiveRate, ErrBadInterval, ErrNilRand) and never
//     consume randomness.
//   - An empty window (horiz == orig) yields an empty, non-nil error-free
//     result; so does a first increment that already overshoots.
//
// Complexity: O(k) time for k arrivals, O(k) space; expected k = λ·(horiz-orig).
package poisson
