// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/rockmech/bemcore/geom"
	"github.com/rockmech/bemcore/material"
	"github.com/rockmech/bemcore/mesh"
)

func axisElement(halfLength float64) mesh.Element {
	return mesh.Element{
		A: geom.NewPoint2D(-halfLength, 0), B: geom.NewPoint2D(halfLength, 0),
		Order: mesh.Constant, BC: mesh.BCTraction,
	}
}

func rockMaterial() material.Derived {
	return material.Derive(material.Material{Name: "rock", E: 20000, Nu: 0.25, Rho: 2700}, material.PlaneStrain)
}

func TestIntegrateReturnsFiniteCoefficients(tst *testing.T) {
	chk.PrintTitle("IntegrateReturnsFiniteCoefficients")
	e := axisElement(1)
	mat := rockMaterial()
	c := Integrate(geom.NewPoint2D(5, 3), e, mat, 0, false)
	values := []float64{c.Uxn, c.Uyn, c.Uxs, c.Uys, c.SigXXn, c.SigYYn, c.SigXYn, c.SigXXs, c.SigYYs, c.SigXYs}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			tst.Fatalf("expected finite coefficients, got %v in %v", v, values)
		}
	}
}

func TestIntegrateDecaysWithDistance(tst *testing.T) {
	chk.PrintTitle("IntegrateDecaysWithDistance")
	e := axisElement(1)
	mat := rockMaterial()
	near := Integrate(geom.NewPoint2D(0, 2), e, mat, 0, false)
	far := Integrate(geom.NewPoint2D(0, 20), e, mat, 0, false)
	if math.Abs(far.SigYYn) >= math.Abs(near.SigYYn) {
		tst.Fatalf("expected stress influence to decay with distance: near=%v far=%v", near.SigYYn, far.SigYYn)
	}
}

func TestIntegratePanicsAtElementEndpoint(tst *testing.T) {
	chk.PrintTitle("IntegratePanicsAtElementEndpoint")
	defer func() {
		if r := recover(); r == nil {
			tst.Fatal("expected a panic when the observation point coincides with an element endpoint")
		}
	}()
	e := axisElement(1)
	mat := rockMaterial()
	Integrate(e.A, e, mat, 0, false)
}

func TestIntegrateHalfSpaceAddsImage(tst *testing.T) {
	chk.PrintTitle("IntegrateHalfSpaceAddsImage")
	e := axisElement(1)
	mat := rockMaterial()
	p := geom.NewPoint2D(0, 5)
	fullSpace := Integrate(p, e, mat, 0, false)
	halfSpace := Integrate(p, e, mat, 0, true)
	if fullSpace == halfSpace {
		tst.Fatal("expected the half-space image contribution to change the coefficients")
	}
}

// TestIntegrateHalfSpaceGroundSurfaceTractionVanishesFarField is spec.md
// §8 property 6: with the mirror-image contribution included, the
// traction on the ground surface far from a buried excavation element
// must be at most 1e-6 times a representative near-field stress scale --
// the source and its image are equidistant from any point on the mirror
// line itself, so their contributions very nearly cancel there.
func TestIntegrateHalfSpaceGroundSurfaceTractionVanishesFarField(tst *testing.T) {
	chk.PrintTitle("IntegrateHalfSpaceGroundSurfaceTractionVanishesFarField")
	mat := rockMaterial()
	const groundY = 0.0
	e := mesh.Element{A: geom.NewPoint2D(-1, -10), B: geom.NewPoint2D(1, -10), Order: mesh.Constant, BC: mesh.BCTraction}

	near := geom.NewPoint2D(0, -5)
	cNear := Integrate(near, e, mat, groundY, true)
	refScale := math.Abs(cNear.SigYYn) + math.Abs(cNear.SigYYs) + math.Abs(cNear.SigXYn) + math.Abs(cNear.SigXYs)
	if refScale == 0 {
		tst.Fatal("expected a non-zero near-field reference scale")
	}

	far := geom.NewPoint2D(20000, groundY)
	cFar := Integrate(far, e, mat, groundY, true)
	surfaceTraction := math.Abs(cFar.SigYYn) + math.Abs(cFar.SigYYs) + math.Abs(cFar.SigXYn) + math.Abs(cFar.SigXYs)

	if surfaceTraction > 1e-6*refScale {
		tst.Fatalf("expected ground-surface traction far from the excavation (%v) to be <= 1e-6 of the near-field scale (%v)", surfaceTraction, refScale)
	}
}
