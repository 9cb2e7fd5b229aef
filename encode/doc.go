// Package encode turns variable-length arrival sequences into fixed-size
// feature vectors.
//
// A trajectory carries anywhere from zero to thousands of arrivals; function
// approximators want a fixed input width. Features maps a sequence plus its
// generating parameters into exactly MaxArrivals+5 values:
//
//	[ t₁ … t_K | A B Mu Beg End ]
//
// where the first K slots are the arrival window and the last five the
// scalar parameters in that fixed order.
//
// The window is produced by a deliberately lossy fixed-capacity rule:
//
//   - more than K arrivals  → keep the first K, drop the tail (the dropped
//     suffix is an accepted approximation boundary, not a defect);
//   - fewer than K arrivals → edge-pad, repeating the final arrival until
//     the window is full;
//   - zero arrivals         → policy-controlled. PadWindowStart (default)
//     fills the window with the window start Beg; RejectEmpty returns
//     ErrEmptyTrajectory instead. There is no silent third behavior.
//
// Encoding is pure and deterministic; a sequence already of length K passes
// through unchanged (idempotence).
package encode
