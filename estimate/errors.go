// SPDX-License-Identifier: MIT
// Package: changepoint/estimate
//
// errors.go — sentinel errors for the estimate package.

package estimate

import "errors"

// ErrEmptyCorpus indicates a nil or zero-length training corpus.
// Usage: if errors.Is(err, ErrEmptyCorpus) { /* build a corpus first */ }.
var ErrEmptyCorpus = errors.New("estimate: corpus is empty")

// ErrDimension indicates a feature vector whose width does not match what
// the estimator was fitted on (or is too short to carry the parameter tail).
// Usage: if errors.Is(err, ErrDimension) { /* re-encode with matching K */ }.
var ErrDimension = errors.New("estimate: feature width mismatch")

// ErrSingular indicates that the ridge normal equations could not be solved;
// with a positive regularization weight this points at a degenerate corpus.
// Usage: if errors.Is(err, ErrSingular) { /* raise lambda or enrich data */ }.
var ErrSingular = errors.New("estimate: normal equations singular")

// ErrBadLambda indicates a negative ridge regularization weight.
// Usage: if errors.Is(err, ErrBadLambda) { /* use λ ≥ 0 */ }.
var ErrBadLambda = errors.New("estimate: lambda must be ≥ 0")

// ErrNotTrained indicates Predict was called on a Network that has not been
// trained. Untrained predictions would be sigmoid noise, never surfaced.
// Usage: if errors.Is(err, ErrNotTrained) { /* call Train first */ }.
var ErrNotTrained = errors.New("estimate: network is not trained")

// ErrNilRand indicates that Train was given no random source for shuffling.
// Usage: if errors.Is(err, ErrNilRand) { /* pass a seeded *rand.Rand */ }.
var ErrNilRand = errors.New("estimate: rng is required")

// ErrBadEpochs indicates a non-positive epoch count passed to Train.
// Usage: if errors.Is(err, ErrBadEpochs) { /* use epochs ≥ 1 */ }.
var ErrBadEpochs = errors.New("estimate: epochs must be ≥ 1")
