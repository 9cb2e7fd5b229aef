// SPDX-License-Identifier: MIT
// Package: changepoint/corpus
//
// corpus.go — the immutable labeled dataset and its gob caching.

package corpus

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/katalvlaran/changepoint/encode"
)

// Sample is one labeled observation: a fixed-width feature vector and the
// true changepoint that generated it.
type Sample struct {
	Features []float64 // length Corpus.Dim()
	Tau      float64   // label
}

// Corpus is an ordered, immutable collection of samples. Order is the build
// order (sample index), which matters only for reproducible iteration, never
// for training semantics.
type Corpus struct {
	samples []Sample
	dim     int // feature-vector width, K+ParamSlots
}

// Len returns the number of samples.
func (c *Corpus) Len() int { return len(c.samples) }

// Dim returns the feature-vector width shared by all samples.
func (c *Corpus) Dim() int { return c.dim }

// At returns sample i. The Features slice is shared, not copied; treat it as
// read-only, like every accessor on an immutable corpus.
func (c *Corpus) At(i int) Sample { return c.samples[i] }

// Features returns the feature vector of sample i (read-only view).
func (c *Corpus) Features(i int) []float64 { return c.samples[i].Features }

// Label returns the true changepoint of sample i.
func (c *Corpus) Label(i int) float64 { return c.samples[i].Tau }

// corpusWire is the gob envelope. Kept separate from Corpus so the exported
// surface stays immutable while the codec sees plain exported fields.
type corpusWire struct {
	Dim     int
	Samples []Sample
}

// Save writes the corpus to w as a gob stream. The format is a cache
// convenience for a single library version, not a stable wire contract.
func (c *Corpus) Save(w io.Writer) error {
	env := corpusWire{Dim: c.dim, Samples: c.samples}
	if err := gob.NewEncoder(w).Encode(env); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

// Load reads a corpus previously written by Save. Dimension coherence is
// re-checked sample by sample; any mismatch or decode failure wraps
// ErrCorrupt.
func Load(r io.Reader) (*Corpus, error) {
	var env corpusWire
	if err := gob.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("Load: decode: %v: %w", err, ErrCorrupt)
	}
	if env.Dim <= encode.ParamSlots {
		return nil, fmt.Errorf("Load: dim=%d: %w", env.Dim, ErrCorrupt)
	}
	for i, s := range env.Samples {
		if len(s.Features) != env.Dim {
			return nil, fmt.Errorf("Load: sample %d has %d features, want %d: %w",
				i, len(s.Features), env.Dim, ErrCorrupt)
		}
	}
	return &Corpus{samples: env.Samples, dim: env.Dim}, nil
}
