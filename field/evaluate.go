// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field evaluates stresses and displacements at arbitrary points
// from a solved set of element displacement discontinuities (C8), and
// derives principal stresses, invariants and strength-criterion factors
// from those results.
package field

import (
	"github.com/rockmech/bemcore/assembly"
	"github.com/rockmech/bemcore/geom"
	"github.com/rockmech/bemcore/kernel"
	"github.com/rockmech/bemcore/material"
	"github.com/rockmech/bemcore/mesh"
)

// Result is the full stress/displacement state at a single point.
type Result struct {
	Point            geom.Point2D
	Sxx, Syy, Sxy    float64 // in-plane stress components
	Szz              float64 // out-of-plane (plane-strain) stress
	Ux, Uy           float64
}

// EvaluateAt superposes the Kelvin-kernel contribution of every element's
// solved displacement discontinuity (normal and shear) at p, per
// spec.md §4.6. The same weight (1/p, p = number of collocation nodes on
// the source element) used at assembly time distributes each element's
// closed-form integral across its nodes.
func EvaluateAt(p geom.Point2D, elements []mesh.Element, dofs []assembly.Dof, solution []float64, mat material.Derived, groundY float64, halfSpace bool) Result {
	var sxx, syy, sxy, ux, uy float64
	for k := 0; k < len(dofs); k += 2 {
		normalDof := dofs[k]
		e := elements[normalDof.ElementIndex]
		numNodes := e.Order.NumCollocationNodes()
		weight := 1.0 / float64(numNodes)

		dn := solution[k]
		ds := solution[k+1]

		c := kernel.Integrate(p, e, mat, groundY, halfSpace)
		sxx += (dn*c.SigXXn + ds*c.SigXXs) * weight
		syy += (dn*c.SigYYn + ds*c.SigYYs) * weight
		sxy += (dn*c.SigXYn + ds*c.SigXYs) * weight
		ux += (dn*c.Uxn + ds*c.Uxs) * weight
		uy += (dn*c.Uyn + ds*c.Uys) * weight
	}
	szz := mat.Nu * (sxx + syy)
	return Result{Point: p, Sxx: sxx, Syy: syy, Sxy: sxy, Szz: szz, Ux: ux, Uy: uy}
}
