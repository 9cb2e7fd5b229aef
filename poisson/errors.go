// SPDX-License-Identifier: MIT
// Package: changepoint/poisson
//
// errors.go — sentinel errors for the poisson package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` at the call site.
//   • Validation always precedes sampling: a returned error guarantees
//     that zero random draws were consumed.

package poisson

import "errors"

// ErrNonPositiveRate indicates that the requested intensity λ is zero or
// negative. A homogeneous Poisson process is only defined for λ > 0.
// Usage: if errors.Is(err, ErrNonPositiveRate) { /* fix λ */ }.
var ErrNonPositiveRate = errors.New("poisson: rate must be > 0")

// ErrBadInterval indicates horiz < orig, i.e. the sampling window
// [orig, horiz) is inverted. An empty window (horiz == orig) is valid and
// yields an empty sequence.
// Usage: if errors.Is(err, ErrBadInterval) { /* swap or fix bounds */ }.
var ErrBadInterval = errors.New("poisson: horizon precedes origin")

// ErrNilRand indicates that no random source was supplied. Arrivals never
// falls back to a global RNG; determinism requires an explicit *rand.Rand.
// Usage: if errors.Is(err, ErrNilRand) { /* pass rand.New(rand.NewSource(seed)) */ }.
var ErrNilRand = errors.New("poisson: rng is required")
