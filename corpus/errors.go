// SPDX-License-Identifier: MIT
// Package: changepoint/corpus
//
// errors.go — sentinel errors for the corpus package.

package corpus

import "errors"

// ErrBadCount indicates a non-positive sample count n.
// Usage: if errors.Is(err, ErrBadCount) { /* fix n */ }.
var ErrBadCount = errors.New("corpus: sample count must be ≥ 1")

// ErrBadBounds indicates an inadmissible Bounds configuration (inverted or
// non-positive ranges). Raised by Build before any sampling.
// Usage: if errors.Is(err, ErrBadBounds) { /* fix Bounds */ }.
var ErrBadBounds = errors.New("corpus: invalid parameter bounds")

// ErrCorrupt indicates that Load could not reconstruct a coherent corpus
// from the byte stream (decode failure or inconsistent dimensions).
// Usage: if errors.Is(err, ErrCorrupt) { /* rebuild the cache */ }.
var ErrCorrupt = errors.New("corpus: corrupt or incompatible stream")
