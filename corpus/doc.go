// Package corpus builds labeled datasets for changepoint estimation.
//
// One sample is one independent run of the full simulation pipeline: draw a
// fresh parameter set from the configured Bounds, simulate a two-regime
// trajectory, encode it into a fixed-size feature vector, and keep the true
// changepoint τ as the label. Build repeats this n times and returns an
// immutable Corpus of (features, τ) pairs.
//
// Reproducibility is the central design constraint. Every sample derives its
// own RNG from the base seed and the sample index through a splitmix64-style
// mix, so:
//
//   - the same seed yields a bit-identical corpus at ANY worker count;
//   - samples share no mutable state, making the build embarrassingly
//     parallel without locks;
//   - regenerating sample i in isolation reproduces it exactly.
//
// Default parameter distributions (all independent per sample):
//
//	A  ~ Uniform(3, 7)       low-regime intensity
//	B  ~ Uniform(8, 12)      high-regime intensity
//	Mu ~ Uniform(1/6, 1/4)   changepoint rate
//	Beg ~ Exponential(mean 5)
//	End = Beg + 5 + Exponential(mean 5)   (window length ≥ 5 by construction)
//
// A built Corpus is read-only; accessors return copies or read-only views as
// documented. Save/Load provide optional gob caching — a convenience, not a
// stable wire contract.
package corpus
