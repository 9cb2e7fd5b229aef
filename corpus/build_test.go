package corpus_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/changepoint/corpus"
	"github.com/katalvlaran/changepoint/encode"
)

// smallEnc keeps test corpora light: an 8-slot window instead of 128.
func smallEnc() *encode.Options {
	o := encode.DefaultOptions()
	o.MaxArrivals = 8
	return &o
}

// TestBuild_ValidationErrors covers the pre-sampling guards.
func TestBuild_ValidationErrors(t *testing.T) {
	_, err := corpus.Build(0)
	assert.ErrorIs(t, err, corpus.ErrBadCount)

	bad := corpus.DefaultBounds()
	bad.LowMin = -2
	_, err = corpus.Build(5, corpus.WithBounds(bad))
	assert.ErrorIs(t, err, corpus.ErrBadBounds)

	_, err = corpus.Build(5, corpus.WithEncoding(&encode.Options{MaxArrivals: 0}))
	assert.ErrorIs(t, err, encode.ErrBadWidth)
}

// TestBuild_ShapeAndLabels verifies the corpus dimensions and that every
// label lies strictly inside its sample's window (the last two feature
// slots hold Beg and End).
func TestBuild_ShapeAndLabels(t *testing.T) {
	const n = 64

	c, err := corpus.Build(n, corpus.WithSeed(11), corpus.WithEncoding(smallEnc()))
	require.NoError(t, err)

	assert.Equal(t, n, c.Len())
	assert.Equal(t, 8+encode.ParamSlots, c.Dim())
	for i := 0; i < n; i++ {
		f := c.Features(i)
		require.Len(t, f, c.Dim(), "sample %d", i)
		beg, end := f[c.Dim()-2], f[c.Dim()-1]
		assert.Greater(t, c.Label(i), beg, "sample %d: τ at/below Beg", i)
		assert.Less(t, c.Label(i), end, "sample %d: τ at/above End", i)
	}
}

// TestBuild_DefaultBoundsRanges spot-checks that drawn parameters respect
// the documented distributions (uniform ranges and the window-span floor).
func TestBuild_DefaultBoundsRanges(t *testing.T) {
	c, err := corpus.Build(128, corpus.WithSeed(5), corpus.WithEncoding(smallEnc()))
	require.NoError(t, err)

	d := c.Dim()
	for i := 0; i < c.Len(); i++ {
		f := c.Features(i)
		a, b, mu, beg, end := f[d-5], f[d-4], f[d-3], f[d-2], f[d-1]
		assert.True(t, a >= 3 && a <= 7, "sample %d: A=%g", i, a)
		assert.True(t, b >= 8 && b <= 12, "sample %d: B=%g", i, b)
		assert.True(t, mu >= 1.0/6.0 && mu <= 0.25, "sample %d: Mu=%g", i, mu)
		assert.GreaterOrEqual(t, beg, 0.0, "sample %d: Beg=%g", i, beg)
		assert.GreaterOrEqual(t, end-beg, 5.0, "sample %d: span=%g", i, end-beg)
	}
}

// TestBuild_SeedReproducibility verifies bit-identical corpora for equal
// seeds and divergence for different seeds.
func TestBuild_SeedReproducibility(t *testing.T) {
	first, err := corpus.Build(32, corpus.WithSeed(7), corpus.WithEncoding(smallEnc()))
	require.NoError(t, err)
	second, err := corpus.Build(32, corpus.WithSeed(7), corpus.WithEncoding(smallEnc()))
	require.NoError(t, err)
	other, err := corpus.Build(32, corpus.WithSeed(8), corpus.WithEncoding(smallEnc()))
	require.NoError(t, err)

	for i := 0; i < first.Len(); i++ {
		assert.Equal(t, first.At(i), second.At(i), "sample %d must reproduce", i)
	}
	assert.NotEqual(t, first.At(0), other.At(0), "different seed should diverge")
}

// TestBuild_WorkerInvariance is the core concurrency property: worker count
// changes scheduling, never content.
func TestBuild_WorkerInvariance(t *testing.T) {
	serial, err := corpus.Build(100, corpus.WithSeed(3), corpus.WithEncoding(smallEnc()))
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 7} {
		parallel, err := corpus.Build(100, corpus.WithSeed(3),
			corpus.WithEncoding(smallEnc()), corpus.WithWorkers(workers))
		require.NoError(t, err, "workers=%d", workers)
		for i := 0; i < serial.Len(); i++ {
			require.Equal(t, serial.At(i), parallel.At(i),
				"workers=%d sample %d differs", workers, i)
		}
	}
}

// TestBuild_OptionPanics pins the fail-fast contract of option constructors.
func TestBuild_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { corpus.WithWorkers(0) })
	assert.Panics(t, func() { corpus.WithEncoding(nil) })
}

// TestSaveLoad_RoundTrip verifies the gob cache: a loaded corpus equals its
// source sample for sample.
func TestSaveLoad_RoundTrip(t *testing.T) {
	src, err := corpus.Build(16, corpus.WithSeed(21), corpus.WithEncoding(smallEnc()))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, src.Save(&buf))

	got, err := corpus.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.Len(), got.Len())
	assert.Equal(t, src.Dim(), got.Dim())
	for i := 0; i < src.Len(); i++ {
		assert.Equal(t, src.At(i), got.At(i), "sample %d", i)
	}
}

// TestLoad_Corrupt verifies that garbage input wraps ErrCorrupt.
func TestLoad_Corrupt(t *testing.T) {
	_, err := corpus.Load(bytes.NewBufferString("not a gob stream"))
	assert.ErrorIs(t, err, corpus.ErrCorrupt)
}
