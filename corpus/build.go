// SPDX-License-Identifier: MIT
// Package: changepoint/corpus
//
// build.go — parallel, reproducible corpus construction.
//
// Contract:
//   - Validation (n, Bounds) precedes every draw; sentinel errors only.
//   - Sample i depends exclusively on (base seed, i): per-sample RNGs are
//     derived by subSeed, so content is invariant under the worker count
//     and any scheduling order.
//   - The first per-sample failure aborts the build and is returned with
//     the sample index attached.

package corpus

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/changepoint/encode"
	"github.com/katalvlaran/changepoint/trajectory"
)

// methodBuild tags wrapped errors with their public entry-point.
const methodBuild = "Build"

// Build generates a corpus of n independent samples. Each sample draws fresh
// parameters from the configured Bounds, simulates one trajectory, and
// encodes it; the true τ becomes the label.
//
// See the package documentation for the reproducibility contract and the
// default distributions. Typical use:
//
//	c, err := corpus.Build(10_000, corpus.WithSeed(42), corpus.WithWorkers(8))
func Build(n int, opts ...Option) (*Corpus, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodBuild, n, ErrBadCount)
	}
	cfg := newBuildConfig(opts...)
	if err := cfg.bounds.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	if cfg.enc.MaxArrivals < 1 {
		return nil, fmt.Errorf("%s: k=%d: %w", methodBuild, cfg.enc.MaxArrivals, encode.ErrBadWidth)
	}

	samples := make([]Sample, n)
	workers := cfg.workers
	if workers > n {
		workers = n
	}

	// Static index striding: worker w owns samples w, w+workers, …
	// No channels, no locks — each index is written exactly once.
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += workers {
				s, err := buildOne(i, cfg)
				if err != nil {
					errs[w] = fmt.Errorf("%s: sample %d: %w", methodBuild, i, err)
					return
				}
				samples[i] = s
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &Corpus{samples: samples, dim: cfg.enc.MaxArrivals + encode.ParamSlots}, nil
}

// buildOne runs the simulate→encode pipeline for sample index i on its own
// derived RNG.
func buildOne(i int, cfg buildConfig) (Sample, error) {
	rng := rand.New(rand.NewSource(subSeed(cfg.seed, i)))

	p := cfg.bounds.draw(rng)
	traj, err := trajectory.Simulate(p, rng, cfg.sim...)
	if err != nil {
		return Sample{}, err
	}
	feats, err := encode.Features(traj.Arrivals, p, &cfg.enc)
	if err != nil {
		return Sample{}, err
	}
	return Sample{Features: feats, Tau: traj.Tau}, nil
}

// splitmix64 increment and finalization constants.
const (
	smGamma = 0x9E3779B97F4A7C15
	smMixA  = 0xBF58476D1CE4E5B9
	smMixB  = 0x94D049BB133111EB
)

// subSeed derives a well-spread per-sample seed from the base seed and the
// sample index (splitmix64 finalizer). Adjacent indices map to statistically
// unrelated streams, which is what keeps worker-count changes invisible.
func subSeed(base int64, idx int) int64 {
	z := uint64(base) + uint64(idx+1)*smGamma
	z = (z ^ (z >> 30)) * smMixA
	z = (z ^ (z >> 27)) * smMixB
	return int64(z ^ (z >> 31))
}
