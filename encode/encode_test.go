package encode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/changepoint/encode"
	"github.com/katalvlaran/changepoint/trajectory"
)

// testParams gives the scalar tail (5, 10, 0.2, 0, 20) used across cases.
func testParams() trajectory.Params {
	return trajectory.Params{A: 5, B: 10, Mu: 0.2, Beg: 0, End: 20}
}

// TestWindow_EdgePadding pins the canonical scenario: [1,2,3] at k=5 becomes
// [1,2,3,3,3] — padding repeats the last real arrival.
func TestWindow_EdgePadding(t *testing.T) {
	got := encode.Window([]float64{1, 2, 3}, 5, -1)
	assert.Equal(t, []float64{1, 2, 3, 3, 3}, got)
}

// TestWindow_Truncation pins the mirror scenario: a length-10 input at k=5
// keeps exactly its first five elements.
func TestWindow_Truncation(t *testing.T) {
	in := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := encode.Window(in, 5, -1)
	assert.Equal(t, in[:5], got)
}

// TestWindow_Idempotence verifies that a length-k input passes through
// unchanged — re-encoding an already-encoded window is a no-op.
func TestWindow_Idempotence(t *testing.T) {
	in := []float64{0.5, 1.5, 2.5, 3.5}
	got := encode.Window(in, 4, -1)
	assert.Equal(t, in, got)
	assert.Equal(t, got, encode.Window(got, 4, -1), "second pass must be identity")
}

// TestWindow_EmptyFallback verifies that zero arrivals fill with fallback.
func TestWindow_EmptyFallback(t *testing.T) {
	got := encode.Window(nil, 3, 7.25)
	assert.Equal(t, []float64{7.25, 7.25, 7.25}, got)
}

// TestWindow_NoAliasing verifies the result never shares backing storage
// with the input.
func TestWindow_NoAliasing(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5}
	got := encode.Window(in, 3, 0)
	got[0] = -99
	assert.Equal(t, 1.0, in[0], "input must stay untouched")
}

// TestFeatures_LengthInvariant checks the exact-output-length property for
// input counts 0, <K, =K, >K.
func TestFeatures_LengthInvariant(t *testing.T) {
	opts := encode.Options{MaxArrivals: 8, OnEmpty: encode.PadWindowStart}
	for _, n := range []int{0, 3, 8, 20} {
		in := make([]float64, n)
		for i := range in {
			in[i] = float64(i)
		}
		got, err := encode.Features(in, testParams(), &opts)
		require.NoError(t, err, "n=%d", n)
		assert.Len(t, got, opts.MaxArrivals+encode.ParamSlots, "n=%d", n)
	}
}

// TestFeatures_ParamTailOrder pins the scalar tail layout (A,B,Mu,Beg,End).
func TestFeatures_ParamTailOrder(t *testing.T) {
	opts := encode.Options{MaxArrivals: 2, OnEmpty: encode.PadWindowStart}

	got, err := encode.Features([]float64{1, 2}, testParams(), &opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 5, 10, 0.2, 0, 20}, got)
}

// TestFeatures_EmptyPolicies covers both resolutions of the zero-arrival
// case: Beg-padding by default, sentinel error under RejectEmpty.
func TestFeatures_EmptyPolicies(t *testing.T) {
	p := testParams()
	p.Beg = 4.5
	p.End = 11

	got, err := encode.Features(nil, p, nil)
	require.NoError(t, err, "default policy accepts empty input")
	for i := 0; i < encode.DefaultMaxArrivals; i++ {
		assert.Equal(t, p.Beg, got[i], "slot %d must hold Beg", i)
	}

	strict := encode.DefaultOptions()
	strict.OnEmpty = encode.RejectEmpty
	_, err = encode.Features(nil, p, &strict)
	assert.ErrorIs(t, err, encode.ErrEmptyTrajectory)
}

// TestFeatures_BadWidth verifies the K ≥ 1 guard.
func TestFeatures_BadWidth(t *testing.T) {
	opts := encode.Options{MaxArrivals: 0}
	_, err := encode.Features([]float64{1}, testParams(), &opts)
	assert.ErrorIs(t, err, encode.ErrBadWidth)
}

// TestFeatures_DefaultOptions verifies nil opts resolves to the 128+5 shape.
func TestFeatures_DefaultOptions(t *testing.T) {
	got, err := encode.Features([]float64{1, 2, 3}, testParams(), nil)
	require.NoError(t, err)
	assert.Len(t, got, encode.DefaultMaxArrivals+encode.ParamSlots)
}
