// SPDX-License-Identifier: MIT
// Package: changepoint/estimate
//
// ridge.go — regularized linear least squares on the raw feature vector.
//
// Contract:
//   - FitRidge solves (XᵀX + λI)w = Xᵀy over the corpus with an intercept
//     column; the intercept is not penalized.
//   - Predict is a pure dot product: O(d) time, no allocation, safe for
//     concurrent use.
//
// Determinism: fitting is deterministic (no RNG involved).

package estimate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/changepoint/corpus"
)

// DefaultLambda is a mild regularization weight that keeps the normal
// equations well-conditioned on edge-padded (hence collinear) windows.
const DefaultLambda = 1e-3

// methodFitRidge tags wrapped errors with their public entry-point.
const methodFitRidge = "FitRidge"

// Ridge is a linear changepoint estimator: τ̂ = w₀ + w·features.
// Immutable after fitting; safe for concurrent Predict.
type Ridge struct {
	weights *mat.VecDense // length dim+1, slot 0 is the intercept
	dim     int           // expected feature width
}

// FitRidge fits a ridge-regularized linear model to the corpus.
//
// The system has dim+1 unknowns (intercept + one weight per feature slot);
// λ is added to every diagonal entry except the intercept's. λ = 0 degrades
// to ordinary least squares and may surface ErrSingular on collinear
// features — edge-padded windows make that likely, so prefer λ > 0.
func FitRidge(c *corpus.Corpus, lambda float64) (*Ridge, error) {
	if c == nil || c.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", methodFitRidge, ErrEmptyCorpus)
	}
	if lambda < 0 {
		return nil, fmt.Errorf("%s: lambda=%g: %w", methodFitRidge, lambda, ErrBadLambda)
	}

	n, d := c.Len(), c.Dim()
	cols := d + 1 // intercept column first

	x := mat.NewDense(n, cols, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
		for j, v := range c.Features(i) {
			x.Set(i, j+1, v)
		}
		y.SetVec(i, c.Label(i))
	}

	// Normal equations with ridge shift on the non-intercept diagonal.
	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	for j := 1; j < cols; j++ {
		xtx.Set(j, j, xtx.At(j, j)+lambda)
	}
	var xty mat.VecDense
	xty.MulVec(x.T(), y)

	var w mat.VecDense
	if err := w.SolveVec(&xtx, &xty); err != nil {
		return nil, fmt.Errorf("%s: solve: %v: %w", methodFitRidge, err, ErrSingular)
	}
	return &Ridge{weights: &w, dim: d}, nil
}

// Predict returns τ̂ = w₀ + Σ wⱼ·featuresⱼ.
func (r *Ridge) Predict(features []float64) (float64, error) {
	if len(features) != r.dim {
		return 0, fmt.Errorf("Ridge.Predict: got width %d, want %d: %w",
			len(features), r.dim, ErrDimension)
	}
	out := r.weights.AtVec(0)
	for j, v := range features {
		out += r.weights.AtVec(j+1) * v
	}
	return out, nil
}
