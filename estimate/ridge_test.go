package estimate_test

import (
	"bytes"
	"encoding/gob"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/changepoint/corpus"
	"github.com/katalvlaran/changepoint/encode"
	"github.com/katalvlaran/changepoint/estimate"
)

// craftCorpus builds an exact corpus through the gob loading path, which is
// the one public way to materialize hand-written samples.
func craftCorpus(t *testing.T, dim int, samples []corpus.Sample) *corpus.Corpus {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(struct {
		Dim     int
		Samples []corpus.Sample
	}{Dim: dim, Samples: samples}))

	c, err := corpus.Load(&buf)
	require.NoError(t, err)
	return c
}

// linearSamples generates dim-6 samples whose label is an exact linear
// function of the features, with mild jitter on every slot to keep the
// design matrix well-conditioned.
func linearSamples(n int) []corpus.Sample {
	rng := rand.New(rand.NewSource(9))
	out := make([]corpus.Sample, n)
	for i := range out {
		x := float64(i) / 10
		f := []float64{
			x,
			5 + rng.Float64(),   // A
			10 + rng.Float64(),  // B
			0.2 + rng.Float64(), // Mu
			rng.Float64(),       // Beg
			20 + rng.Float64(),  // End
		}
		out[i] = corpus.Sample{Features: f, Tau: 2 + 3*x + 0.5*f[4]}
	}
	return out
}

// TestFitRidge_RecoversLinearRule verifies near-exact recovery of a linear
// labeling rule at negligible regularization.
func TestFitRidge_RecoversLinearRule(t *testing.T) {
	c := craftCorpus(t, 6, linearSamples(80))

	r, err := estimate.FitRidge(c, 1e-8)
	require.NoError(t, err)

	for i := 0; i < c.Len(); i += 7 {
		got, err := r.Predict(c.Features(i))
		require.NoError(t, err)
		assert.InDelta(t, c.Label(i), got, 1e-3, "sample %d", i)
	}
}

// TestFitRidge_Validation covers empty corpus and negative lambda.
func TestFitRidge_Validation(t *testing.T) {
	_, err := estimate.FitRidge(nil, 1)
	assert.ErrorIs(t, err, estimate.ErrEmptyCorpus)

	c := craftCorpus(t, 6, linearSamples(10))
	_, err = estimate.FitRidge(c, -0.5)
	assert.ErrorIs(t, err, estimate.ErrBadLambda)
}

// TestRidge_PredictDimension verifies the width guard.
func TestRidge_PredictDimension(t *testing.T) {
	c := craftCorpus(t, 6, linearSamples(20))
	r, err := estimate.FitRidge(c, estimate.DefaultLambda)
	require.NoError(t, err)

	_, err = r.Predict([]float64{1, 2, 3})
	assert.ErrorIs(t, err, estimate.ErrDimension)
}

// TestRidge_OnSimulatedCorpus is an end-to-end smoke test on the real
// pipeline: fitting succeeds on edge-padded windows (the default lambda
// absorbs their collinearity) and predictions are finite numbers.
func TestRidge_OnSimulatedCorpus(t *testing.T) {
	enc := encode.DefaultOptions()
	enc.MaxArrivals = 16

	c, err := corpus.Build(200, corpus.WithSeed(13), corpus.WithEncoding(&enc))
	require.NoError(t, err)

	r, err := estimate.FitRidge(c, estimate.DefaultLambda)
	require.NoError(t, err)

	for i := 0; i < c.Len(); i += 25 {
		got, err := r.Predict(c.Features(i))
		require.NoError(t, err)
		assert.False(t, got != got, "sample %d: NaN prediction", i)
	}
}
