// SPDX-License-Identifier: MIT
// Package: changepoint/evaluate
//
// errors.go — sentinel errors for the evaluate package.

package evaluate

import "errors"

// ErrNilEstimator indicates that no estimator was supplied.
// Usage: if errors.Is(err, ErrNilEstimator) { /* pass an Estimator */ }.
var ErrNilEstimator = errors.New("evaluate: estimator is required")

// ErrEmptyCorpus indicates a nil or zero-length evaluation corpus.
// Usage: if errors.Is(err, ErrEmptyCorpus) { /* build samples first */ }.
var ErrEmptyCorpus = errors.New("evaluate: corpus is empty")
