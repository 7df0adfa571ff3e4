// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bem is the orchestrator (C9): it wires the discretiser, kernel
// integrator, matrix assembler, linear solver and field evaluator into a
// single Solve/SolveAsync call, maintaining the three named caches of
// spec.md §4.7 (elements, matrix+factorisation, result field) and
// propagating cancellation between phases.
package bem

import (
	"github.com/rockmech/bemcore/geom"
	"github.com/rockmech/bemcore/grid"
	"github.com/rockmech/bemcore/material"
	"github.com/rockmech/bemcore/mesh"
	"github.com/rockmech/bemcore/solve"
)

// Config is the full set of inputs to a Solve call: the problem's
// boundaries and material, the discretisation and half-space settings, and
// the solver and grid sub-configurations.
type Config struct {
	Boundaries      []geom.Boundary
	Material        material.Material
	PlaneStrainType material.PlaneStrainType

	Discretiser mesh.DiscretiserConfig
	GroundY     float64 // Y coordinate of the ground surface, used only when HalfSpace is true
	HalfSpace   bool

	Solver solve.Config
	Grid   grid.Config

	// InSitu, if non-nil, is applied to every non-ground-surface element
	// as the stress-relief excavation boundary condition of
	// mesh.ApplyInSituExcavation before assembly.
	InSitu *InSituStress

	EnableElementCache bool
	EnableMatrixCache  bool
	EnableFieldCache   bool
}

// InSituStress is a uniform pre-excavation stress state, in the global
// frame, tension positive.
type InSituStress struct {
	Sxx, Syy, Sxy float64
}

// DefaultConfig returns a Config with every sub-configuration at its
// documented default and caching enabled throughout.
func DefaultConfig() Config {
	return Config{
		Discretiser: mesh.DiscretiserConfig{
			TargetElementCount:  100,
			ElementOrder:        mesh.Constant,
			UseAdaptiveSizing:   true,
			MaxRefinementFactor: 3,
		},
		Solver:             solve.DefaultConfig(),
		Grid:               grid.DefaultConfig(),
		EnableElementCache: true,
		EnableMatrixCache:  true,
		EnableFieldCache:   true,
	}
}
