// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid builds the adaptive hierarchical field-point grid (C7): a
// coarse background grid refined near boundaries and at high-curvature
// corners, with an optional further gradient-adaptive pass, each point
// carrying validity flags so the field evaluator (C8) never samples inside
// an excavation or too close to an element.
package grid

import "github.com/cpmech/gosl/chk"

// Config carries the grid-generation parameters of spec.md §4.5.
type Config struct {
	CoarseNx, CoarseNy        int     // background grid resolution
	MediumDistance            float64 // band width, from the boundary, of the near-boundary refinement
	FineDistance              float64 // radius, around a high-curvature vertex, of the corner refinement
	HighCurvatureAngleDeg     float64 // |180 - interior angle| beyond which a vertex triggers corner refinement
	MinimumDistanceToElement  float64 // points closer than this to any element are marked invalid
	EnableGradientRefinement bool
	GradientThreshold         float64 // relative jump that triggers a gradient-adaptive split
}

// DefaultConfig returns the documented defaults: a 50x50 background grid,
// near-boundary refinement at twice the background density, corner
// refinement at four times the density, and no gradient pass.
func DefaultConfig() Config {
	return Config{
		CoarseNx:                 50,
		CoarseNy:                 50,
		MediumDistance:           0,
		FineDistance:             0,
		HighCurvatureAngleDeg:    30,
		MinimumDistanceToElement: 0,
		EnableGradientRefinement: false,
		GradientThreshold:        0.25,
	}
}

// Validate checks cfg for the obviously-unusable combinations.
func (c Config) Validate() error {
	if c.CoarseNx < 1 || c.CoarseNy < 1 {
		return chk.Err("grid: CoarseNx and CoarseNy must be at least 1, got (%d, %d)", c.CoarseNx, c.CoarseNy)
	}
	if c.MediumDistance < 0 || c.FineDistance < 0 || c.MinimumDistanceToElement < 0 {
		return chk.Err("grid: distances must be non-negative")
	}
	return nil
}
