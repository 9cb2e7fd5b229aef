// SPDX-License-Identifier: MIT
// Package: changepoint/encode
//
// errors.go — sentinel errors for the encode package.

package encode

import "errors"

// ErrBadWidth indicates a non-positive arrival-window width K.
// Usage: if errors.Is(err, ErrBadWidth) { /* fix Options.MaxArrivals */ }.
var ErrBadWidth = errors.New("encode: window width must be ≥ 1")

// ErrEmptyTrajectory indicates a zero-arrival input under the RejectEmpty
// policy. Under PadWindowStart (the default) empty input is not an error.
// Usage: if errors.Is(err, ErrEmptyTrajectory) { /* resample or switch policy */ }.
var ErrEmptyTrajectory = errors.New("encode: no arrivals to encode")
