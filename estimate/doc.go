// Package estimate provides changepoint estimators over encoded feature
// vectors.
//
// Every estimator satisfies the one-method Estimator contract: map a feature
// vector of width K+5 (arrival window plus the A, B, Mu, Beg, End tail) to
// an estimate τ̂ of the changepoint. The evaluation harness depends on
// nothing else, so externally trained models plug in the same way as the
// three built-ins:
//
//   - Ridge   — regularized linear least squares fit to a corpus; the
//     cheapest trainable baseline and a hard floor for fancier models.
//   - Scatter — a training-free classical detector: it maximizes the
//     between-class scatter of inter-arrival gaps over all admissible split
//     points and gates the result with a Student t-test, falling back to
//     the window midpoint when no split is convincing.
//   - Network — a small feed-forward regressor (LeakyReLU hidden layers,
//     sigmoid output on the normalized changepoint position) trained by
//     per-sample gradient steps.
//
// Ridge and Network are immutable after fitting/training as far as Predict
// is concerned, but Network reuses internal forward-pass state and is NOT
// safe for concurrent Predict calls; Ridge and Scatter are.
package estimate
