// Package evaluate measures changepoint estimators against freshly
// simulated ground truth.
//
// The harness replays the exact corpus pipeline — parameter draw, trajectory
// simulation, feature encoding — under a seed stream the estimator has never
// seen, asks the estimator for τ̂ on each sample, and aggregates the signed
// errors eᵢ = τᵢ − τ̂ᵢ:
//
//	Bias      — mean(e), the systematic offset
//	Sigma     — std(e), the spread around the offset
//	MAE       — mean(|e|)
//	RMSE      — √(mean(e²))
//	MedianAbs — median(|e|), robust to heavy-tailed misses
//
// Two entry-points: Against replays a pre-built held-out corpus, Run builds
// one internally from its options (seed discipline is the caller's duty —
// never reuse the training seed). Aggregation is streaming for the moments
// and a single sort for the median, so memory stays O(n) in the error
// vector only.
package evaluate
