// SPDX-License-Identifier: MIT
// Package: changepoint/trajectory
//
// errors.go — sentinel errors for the trajectory package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Validation errors fire before any sampling; ErrRejectionStall is the
//     single runtime failure and only exists in TauResample mode.

package trajectory

import "errors"

// ErrNonPositiveIntensity indicates that a regime intensity (A or B) is zero
// or negative. Both regimes require a strictly positive rate.
// Usage: if errors.Is(err, ErrNonPositiveIntensity) { /* fix A/B */ }.
var ErrNonPositiveIntensity = errors.New("trajectory: intensity must be > 0")

// ErrNonPositiveRate indicates that the changepoint rate Mu is zero or
// negative; the τ distribution is only defined for Mu > 0.
// Usage: if errors.Is(err, ErrNonPositiveRate) { /* fix Mu */ }.
var ErrNonPositiveRate = errors.New("trajectory: changepoint rate must be > 0")

// ErrBadWindow indicates End ≤ Beg: the observation window must have strictly
// positive length for τ to lie strictly inside it.
// Usage: if errors.Is(err, ErrBadWindow) { /* fix Beg/End */ }.
var ErrBadWindow = errors.New("trajectory: window end must exceed start")

// ErrNilRand indicates that no random source was supplied. Simulate never
// falls back to a global RNG.
// Usage: if errors.Is(err, ErrNilRand) { /* pass a seeded *rand.Rand */ }.
var ErrNilRand = errors.New("trajectory: rng is required")

// ErrRejectionStall indicates that the TauResample sampler exhausted its
// retry cap without drawing τ < End. Pathological for reasonable parameters
// (acceptance probability 1-e^(-Mu·(End-Beg))), but surfaced loudly instead
// of looping forever. TauInverseCDF cannot return this error.
// Usage: if errors.Is(err, ErrRejectionStall) { /* raise cap or switch sampler */ }.
var ErrRejectionStall = errors.New("trajectory: changepoint rejection loop stalled")
