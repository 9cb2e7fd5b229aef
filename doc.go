// Package changepoint is a simulation-and-estimation toolkit for the
// two-regime Poisson changepoint problem: arrivals occur at a low
// intensity a up to an unknown time τ, then at a high intensity b, and
// the task is to estimate τ from a single censored window of arrival
// timestamps.
//
// 🚀 What does changepoint provide?
//
//	A deterministic, seed-driven pipeline from raw stochastic simulation
//	to aggregated estimation error:
//		• poisson/    — homogeneous Poisson arrival sampling on [orig, horiz)
//		• trajectory/ — two-regime sample paths around a truncated-exponential τ
//		• encode/     — fixed-length feature vectors (truncate / edge-pad)
//		• corpus/     — labeled (features, τ) datasets, parallel & reproducible
//		• estimate/   — τ estimators: ridge regression, scatter baseline, feed-forward net
//		• evaluate/   — held-out replay and bias/σ error aggregation
//
// ✨ Why choose changepoint?
//
//   - Determinism first – every stochastic call takes an explicit *rand.Rand;
//     same seed, same corpus, bit for bit, at any worker count
//   - Strict contracts – sentinel errors, validation before sampling,
//     no panics at runtime
//   - Pluggable estimators – anything with Predict([]float64) (float64, error)
//     slots into the evaluation harness
//
// Data flows corpus-first: corpus.Build drives trajectory.Simulate and
// encode.Features N times, estimators train on the result, and evaluate.Run
// replays the identical simulation path on a fresh seed stream to measure
// bias and spread of τ̂ − τ.
//
// Dive into examples/ for end-to-end walk-throughs.
package changepoint
