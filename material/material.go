// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material implements the isotropic elastic material model and its
// plane-strain derived constants, following the same Init-once /
// derive-once pattern as the teacher's msolid.SmallElasticity.
package material

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Material is an isotropic elastic rock/soil material.
type Material struct {
	Name string
	E    float64 // Young's modulus, E > 0
	Nu   float64 // Poisson's ratio, nu in (-1, 0.5)
	Rho  float64 // density, rho >= 0
}

// Validate checks the physical range of the material's constants.
func (m Material) Validate() error {
	if !(m.E > 0) || math.IsNaN(m.E) || math.IsInf(m.E, 0) {
		return chk.Err("material %q: E must be finite and > 0, got %v", m.Name, m.E)
	}
	if math.IsNaN(m.Nu) || math.IsInf(m.Nu, 0) || m.Nu <= -1 || m.Nu >= 0.5 {
		return chk.Err("material %q: nu must lie in (-1, 0.5), got %v", m.Name, m.Nu)
	}
	if m.Rho < 0 {
		return chk.Err("material %q: rho must be >= 0, got %v", m.Name, m.Rho)
	}
	return nil
}

// GetPrms returns the material's parameters as a fun.Prms list, mirroring
// msolid.SmallElasticity.GetPrms so the same structure can be threaded
// through the application's configuration layer.
func (m Material) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "E", V: m.E},
		&fun.Prm{N: "nu", V: m.Nu},
		&fun.Prm{N: "rho", V: m.Rho},
	}
}

// PlaneStrainType selects the 2D idealisation used to derive kernel
// constants from (E, nu).
type PlaneStrainType int

const (
	PlaneStrain PlaneStrainType = iota
	PlaneStress
)

// Derived holds the plane-strain/plane-stress constants used throughout
// the kernel integrator (C4) and field evaluator (C8): the shear modulus
// G, Kolosov's constant kappa and the stress/displacement kernel
// coefficients c_s, c_d. Computed once per (Material, PlaneStrainType) and
// reused, exactly as msolid.SmallElasticity.Init derives (L, G, K) once and
// caches them on the struct instead of recomputing per call.
type Derived struct {
	E, Nu float64
	G     float64 // shear modulus = E / (2(1+nu))
	Kappa float64 // Kolosov's constant
	Cs    float64 // stress kernel coefficient = 1/(8 pi (1-nu))
	Cd    float64 // displacement kernel coefficient = (1+nu)/(4 pi E (1-nu))
	Type  PlaneStrainType
}

// Derive computes the Derived constants for m under the given plane-strain
// assumption. m must already have passed Validate.
func Derive(m Material, t PlaneStrainType) Derived {
	nu := m.Nu
	nuEff := nu
	if t == PlaneStress {
		// standard plane-stress -> plane-strain nu substitution so the same
		// closed-form kernel formulae (derived for plane strain) apply.
		nuEff = nu / (1 + nu)
	}
	return Derived{
		E:     m.E,
		Nu:    nuEff,
		G:     m.E / (2 * (1 + nu)),
		Kappa: 3 - 4*nuEff,
		Cs:    1 / (8 * math.Pi * (1 - nuEff)),
		Cd:    (1 + nuEff) / (4 * math.Pi * m.E * (1 - nuEff)),
		Type:  t,
	}
}
