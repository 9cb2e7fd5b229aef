// SPDX-License-Identifier: MIT
// Package: changepoint/estimate
//
// network.go — feed-forward regressor on the normalized changepoint position.
//
// The network never sees raw timestamps: arrival slots are mapped to their
// relative position (t-Beg)/(End-Beg) inside the window, intensities and
// the window geometry are squashed to O(1) ranges, and the label is the
// relative changepoint position (τ-Beg)/(End-Beg) ∈ (0,1) matched by a
// sigmoid output unit. Predict denormalizes back to absolute time.
//
// Training is plain per-sample gradient descent: forward pass, squared-error
// gradient at the output, backward pass, weight update. Sample order is
// reshuffled every epoch from the caller's RNG, so training is reproducible
// per seed.

package estimate

import (
	"fmt"
	"math/rand"

	"github.com/openfluke/loom/nn"

	"github.com/katalvlaran/changepoint/corpus"
	"github.com/katalvlaran/changepoint/encode"
)

// Default network geometry: one hidden layer wide enough for the default
// 133-value feature vector.
const (
	DefaultHidden       = 64
	DefaultHiddenLayers = 1
)

// intensityScale squashes regime intensities (≤ ~12 under default bounds)
// into O(1) inputs; window offsets use x/(1+x) instead, which needs no
// range assumption.
const intensityScale = 0.1

// Network is a feed-forward changepoint regressor.
//
// NOT safe for concurrent Predict: forward passes share one step state.
// Clone the corpus pipeline per goroutine instead.
type Network struct {
	net     *nn.Network
	state   *nn.StepState
	dim     int // expected feature width
	layers  int // total layer count, cached for the step loop
	trained bool
}

// NewNetwork constructs an untrained regressor for feature width dim with
// the given hidden width and hidden layer count. Panics on impossible
// geometry — dim must exceed the parameter tail, sizes must be positive
// (programmer error); runtime misuse returns errors from Train and Predict.
func NewNetwork(dim, hidden, hiddenLayers int) *Network {
	if dim <= encode.ParamSlots || hidden < 1 || hiddenLayers < 1 {
		panic("estimate: NewNetwork(bad geometry)")
	}
	depth := hiddenLayers + 2 // input projection + hidden + output unit

	net := nn.NewNetwork(dim, 1, 1, depth)
	net.BatchSize = 1
	net.SetLayer(0, 0, 0, nn.InitDenseLayer(dim, hidden, nn.ActivationLeakyReLU))
	for i := 1; i <= hiddenLayers; i++ {
		net.SetLayer(0, 0, i, nn.InitDenseLayer(hidden, hidden, nn.ActivationLeakyReLU))
	}
	net.SetLayer(0, 0, depth-1, nn.InitDenseLayer(hidden, 1, nn.ActivationSigmoid))

	return &Network{
		net:    net,
		state:  net.InitStepState(dim),
		dim:    dim,
		layers: net.TotalLayers(),
	}
}

// Train runs per-sample gradient descent over the corpus for the given
// number of epochs at learning rate lr, reshuffling sample order from rng
// each epoch.
func (m *Network) Train(c *corpus.Corpus, epochs int, lr float32, rng *rand.Rand) error {
	if c == nil || c.Len() == 0 {
		return fmt.Errorf("Network.Train: %w", ErrEmptyCorpus)
	}
	if c.Dim() != m.dim {
		return fmt.Errorf("Network.Train: corpus width %d, network width %d: %w",
			c.Dim(), m.dim, ErrDimension)
	}
	if epochs < 1 {
		return fmt.Errorf("Network.Train: epochs=%d: %w", epochs, ErrBadEpochs)
	}
	if rng == nil {
		return fmt.Errorf("Network.Train: %w", ErrNilRand)
	}

	for epoch := 0; epoch < epochs; epoch++ {
		for _, i := range rng.Perm(c.Len()) {
			in, beg, span := normalize(c.Features(i), m.dim)
			target := float32((c.Label(i) - beg) / span)

			out := m.forward(in)
			// d/dŷ of ½(ŷ-y)² at the sigmoid output.
			m.net.StepBackward(m.state, []float32{out - target})
			m.net.ApplyGradients(lr)
		}
	}
	m.trained = true
	return nil
}

// Predict returns τ̂ for one feature vector by denormalizing the network's
// relative-position output into [Beg, End].
func (m *Network) Predict(features []float64) (float64, error) {
	if !m.trained {
		return 0, fmt.Errorf("Network.Predict: %w", ErrNotTrained)
	}
	if len(features) != m.dim {
		return 0, fmt.Errorf("Network.Predict: got width %d, want %d: %w",
			len(features), m.dim, ErrDimension)
	}
	in, beg, span := normalize(features, m.dim)
	return beg + float64(m.forward(in))*span, nil
}

// forward runs one full stepped forward pass and returns the scalar output.
func (m *Network) forward(in []float32) float32 {
	m.state.SetInput(in)
	for s := 0; s < m.layers; s++ {
		m.net.StepForward(m.state)
	}
	return m.state.GetOutput()[0]
}

// normalize maps a raw feature vector into network inputs and returns the
// window anchor (beg) and span used to denormalize outputs. Arrival slots
// become relative window positions; the scalar tail is squashed to O(1).
func normalize(features []float64, dim int) (in []float32, beg, span float64) {
	arrivals, a, b, mu, begV, end, _ := splitFeatures(features[:dim])
	beg, span = begV, end-begV

	in = make([]float32, dim)
	for i, t := range arrivals {
		in[i] = float32((t - beg) / span)
	}
	k := len(arrivals)
	in[k+0] = float32(a * intensityScale)
	in[k+1] = float32(b * intensityScale)
	in[k+2] = float32(mu)
	in[k+3] = float32(beg / (1 + beg))
	in[k+4] = float32(span / (1 + span))
	return in, beg, span
}
