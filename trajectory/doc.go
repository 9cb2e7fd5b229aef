// Package trajectory simulates two-regime Poisson sample paths around an
// unknown changepoint τ.
//
// A trajectory is generated in three steps:
//
//  1. Draw τ from an exponential distribution with rate Mu anchored at Beg,
//     truncated to the open interval (Beg, End). Two samplers are available:
//     TauInverseCDF (default) draws directly from the truncated distribution
//     via its inverse CDF, so it can never loop; TauResample reproduces the
//     classic reject-and-redraw scheme under a hard retry cap and fails with
//     ErrRejectionStall when the cap is exhausted.
//  2. Sample low-regime arrivals with intensity A on [Beg, τ).
//  3. Sample high-regime arrivals with intensity B on [τ, End).
//
// The concatenation low ++ high is globally ascending by construction: both
// halves are individually ascending and every low arrival is < τ ≤ every
// high arrival. No merge or sort happens, ever.
//
// Guarantees:
//
//   - Beg < τ < End strictly, for both samplers.
//   - Every arrival lies in [Beg, End); the sequence is non-decreasing.
//   - Parameters are validated before any randomness is consumed; invalid
//     input returns a sentinel error and leaves the RNG untouched.
//   - Deterministic for a fixed seed, sampler, and parameter set.
//
// Option constructors (WithTauSampler, WithRetryCap) panic on meaningless
// values; Simulate itself never panics.
package trajectory
