// SPDX-License-Identifier: MIT
// Package: changepoint/encode
//
// types.go — options and the empty-sequence policy.

package encode

// DefaultMaxArrivals is the default arrival-window width K. Feature vectors
// are then K+5 values wide (window plus the five scalar parameters).
const DefaultMaxArrivals = 128

// ParamSlots is the number of trailing scalar-parameter slots appended to
// the arrival window: (A, B, Mu, Beg, End).
const ParamSlots = 5

// EmptyPolicy controls how a zero-arrival sequence is encoded.
//
//   - PadWindowStart — fill the whole arrival window with Beg. A trajectory
//     with no arrivals on a low-rate window is rare but legitimate; the
//     window start is the one value guaranteed to lie inside [Beg, End).
//   - RejectEmpty    — refuse with ErrEmptyTrajectory. For callers that
//     prefer resampling over imputed inputs.
type EmptyPolicy int

const (
	// PadWindowStart mode: empty sequences encode as K copies of Beg. Default.
	PadWindowStart EmptyPolicy = iota

	// RejectEmpty mode: empty sequences are an error.
	RejectEmpty
)

// Options configures Features.
//
// Fields:
//   - MaxArrivals — arrival-window width K; must be ≥ 1.
//   - OnEmpty     — policy for zero-arrival input (see EmptyPolicy).
//
// The zero value is NOT usable; obtain a baseline via DefaultOptions and
// override fields explicitly.
type Options struct {
	MaxArrivals int
	OnEmpty     EmptyPolicy
}

// DefaultOptions returns the canonical configuration: a 128-slot window and
// the PadWindowStart empty policy.
func DefaultOptions() Options {
	return Options{
		MaxArrivals: DefaultMaxArrivals,
		OnEmpty:     PadWindowStart,
	}
}
