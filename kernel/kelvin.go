// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel implements the closed-form analytical integration of the
// 2D Kelvin fundamental solution over a straight boundary element (C4).
//
// This replaces the Gaussian-quadrature approach of the original
// implementation: quadrature on the logarithmically-singular Kelvin kernel
// is what drove that implementation's influence matrices to condition
// numbers above 1e18. Every coefficient here is evaluated by closed-form
// antiderivatives of ln(r) and atan2(y, x) over the element's local
// x'-axis, so self-influence (observation at the element's own midpoint)
// is simply a regular evaluation, not a limiting process requiring special
// casing.
package kernel

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/rockmech/bemcore/geom"
	"github.com/rockmech/bemcore/material"
	"github.com/rockmech/bemcore/mesh"
)

// Coeffs holds the ten influence coefficients of spec.md §3, in the global
// frame: displacements and stresses at an observation point produced by a
// unit traction on a source element, resolved into the parts coming from
// the normal ("n") and shear ("s") traction components.
type Coeffs struct {
	Uxn, Uyn       float64
	Uxs, Uys       float64
	SigXXn, SigYYn, SigXYn float64
	SigXXs, SigYYs, SigXYs float64
}

// finite panics if v is NaN or +/-Inf; kernel outputs must always be
// finite (spec.md §4.2 invariants) and any violation is a programming bug.
func finite(name string, v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		chk.Panic("kernel: non-finite %s = %v", name, v)
	}
	return v
}

// localBuildingBlocks are the closed-form antiderivatives evaluated at a
// source-local observation point (xm, ym) for an element of half-length d,
// per spec.md §4.2 step 3. dTheta/dLogR/s/t follow the spec's naming
// (Delta-theta, Delta-ell, S, T); atan2 is used in place of a literal
// atan(x/y) so the y=0 case resolves by its well-defined analytical limit
// instead of dividing by zero.
type localBuildingBlocks struct {
	x1, x2     float64 // x_left, x_right
	r1sq, r2sq float64
	dTheta     float64 // Delta-theta
	dLogR      float64 // Delta-ell = ln(r1) - ln(r2)
	sx, tx     float64 // 1/length, 1/length^2 building blocks
	s, t       float64 // spec's dimensionless S and T
	f          float64 // length-dimensioned antiderivative of ln(r) (Crouch & Starfield potential)
	fx, fy     float64 // df/dx, df/dy (dimensionless)
	fxx, fxy, fyy float64 // second derivatives (1/length)
}

func computeBuildingBlocks(xm, ym, d float64) localBuildingBlocks {
	x1 := xm - d
	x2 := xm + d
	r1sq := x1*x1 + ym*ym
	r2sq := x2*x2 + ym*ym
	if r1sq <= 0 || r2sq <= 0 {
		chk.Panic("kernel: observation point coincides with an element endpoint (r=0); caller must keep observation points off element endpoints")
	}
	theta1 := math.Atan2(ym, x1)
	theta2 := math.Atan2(ym, x2)
	dTheta := theta1 - theta2
	lnR1 := 0.5 * math.Log(r1sq)
	lnR2 := 0.5 * math.Log(r2sq)
	dLogR := lnR1 - lnR2
	sx := x1/r1sq - x2/r2sq
	tx := 1/r1sq - 1/r2sq
	s := 2 * ym * sx
	t := 2 * ym * ym * tx
	f := ym*dTheta - x1*lnR1 + x2*lnR2
	return localBuildingBlocks{
		x1: x1, x2: x2, r1sq: r1sq, r2sq: r2sq,
		dTheta: dTheta, dLogR: dLogR, sx: sx, tx: tx, s: s, t: t,
		f: f, fx: dLogR, fy: -dTheta, fxx: sx, fxy: ym * tx, fyy: -sx,
	}
}

// integrateLocal forms the ten influence coefficients in the element's
// local frame (x' along A->B, y' the outward normal) from the closed-form
// building blocks, using the material's derived plane-strain constants.
func integrateLocal(xm, ym, d float64, mat material.Derived) Coeffs {
	b := computeBuildingBlocks(xm, ym, d)
	kp1, km1 := (mat.Kappa+1)/2, (mat.Kappa-1)/2

	uxn := mat.Cd * (kp1*b.f - ym*b.fx)
	uyn := mat.Cd * (km1*b.f + ym*b.fy)
	uxs := mat.Cd * (km1*b.f + xm*b.fy)
	uys := mat.Cd * (kp1*b.f - xm*b.fx)

	sxxN := mat.Cs * (b.dTheta - b.s)
	syyN := mat.Cs * (b.dTheta + b.s)
	sxyN := mat.Cs * b.t
	sxxS := mat.Cs * b.t
	syyS := mat.Cs * -b.t
	sxyS := mat.Cs * (b.dTheta - b.s)

	return Coeffs{
		Uxn: finite("Uxn", uxn), Uyn: finite("Uyn", uyn),
		Uxs: finite("Uxs", uxs), Uys: finite("Uys", uys),
		SigXXn: finite("SigXXn", sxxN), SigYYn: finite("SigYYn", syyN), SigXYn: finite("SigXYn", sxyN),
		SigXXs: finite("SigXXs", sxxS), SigYYs: finite("SigYYs", syyS), SigXYs: finite("SigXYs", sxyS),
	}
}

// toLocal transforms a global observation point into element e's local
// frame (origin at the midpoint, x' along A->B).
func toLocal(p geom.Point2D, e mesh.Element) (xm, ym float64) {
	m := e.Midpoint()
	cosB, sinB := e.DirectionCosines()
	dx := p.X - m.X
	dy := p.Y - m.Y
	xm = dx*cosB + dy*sinB
	ym = -dx*sinB + dy*cosB
	return
}

// rotateToGlobal rotates a local-frame Coeffs into the global frame using
// element e's direction cosines, applying the standard 2D vector/tensor
// transformation to each of the four (displacement, stress) pairs.
func rotateToGlobal(c Coeffs, cosB, sinB float64) Coeffs {
	rotVec := func(vx, vy float64) (gx, gy float64) {
		gx = vx*cosB - vy*sinB
		gy = vx*sinB + vy*cosB
		return
	}
	rotTensor := func(sxx, syy, sxy float64) (gxx, gyy, gxy float64) {
		c2, s2 := cosB*cosB, sinB*sinB
		cs := cosB * sinB
		gxx = sxx*c2 + syy*s2 - 2*sxy*cs
		gyy = sxx*s2 + syy*c2 + 2*sxy*cs
		gxy = (sxx-syy)*cs + sxy*(c2-s2)
		return
	}
	uxn, uyn := rotVec(c.Uxn, c.Uyn)
	uxs, uys := rotVec(c.Uxs, c.Uys)
	sxxN, syyN, sxyN := rotTensor(c.SigXXn, c.SigYYn, c.SigXYn)
	sxxS, syyS, sxyS := rotTensor(c.SigXXs, c.SigYYs, c.SigXYs)
	return Coeffs{
		Uxn: uxn, Uyn: uyn, Uxs: uxs, Uys: uys,
		SigXXn: sxxN, SigYYn: syyN, SigXYn: sxyN,
		SigXXs: sxxS, SigYYs: syyS, SigXYs: sxyS,
	}
}

func add(a, b Coeffs) Coeffs {
	return Coeffs{
		Uxn: a.Uxn + b.Uxn, Uyn: a.Uyn + b.Uyn,
		Uxs: a.Uxs + b.Uxs, Uys: a.Uys + b.Uys,
		SigXXn: a.SigXXn + b.SigXXn, SigYYn: a.SigYYn + b.SigYYn, SigXYn: a.SigXYn + b.SigXYn,
		SigXXs: a.SigXXs + b.SigXXs, SigYYs: a.SigYYs + b.SigYYs, SigXYs: a.SigXYs + b.SigXYs,
	}
}

// mirror reflects an element across the horizontal line y = groundY.
func mirror(e mesh.Element, groundY float64) mesh.Element {
	reflect := func(p geom.Point2D) geom.Point2D {
		return geom.NewPoint2D(p.X, 2*groundY-p.Y)
	}
	m := e
	m.A = reflect(e.B) // reflecting also reverses A->B direction; swap so the
	m.B = reflect(e.A) // local frame's outward normal still faces the excavation
	return m
}

// Integrate computes the ten influence coefficients, in the global frame,
// at observation point p due to a unit traction on source element e, per
// the procedure of spec.md §4.2. When halfSpace is true the mirror image
// of e across y=groundY is added so that the resulting traction vanishes
// on the free surface y=groundY far from any excavation (spec.md §8
// property 6); the image construction is a documented Open Question (see
// DESIGN.md) pending independent verification against Crouch & Starfield
// (1983), per spec.md §9.
func Integrate(p geom.Point2D, e mesh.Element, mat material.Derived, groundY float64, halfSpace bool) Coeffs {
	d := e.HalfLength()
	if !(d > 0) {
		chk.Panic("kernel: source element has non-positive half-length %v", d)
	}
	cosB, sinB := e.DirectionCosines()
	xm, ym := toLocal(p, e)
	direct := rotateToGlobal(integrateLocal(xm, ym, d, mat), cosB, sinB)
	if !halfSpace {
		return direct
	}
	img := mirror(e, groundY)
	imgCosB, imgSinB := img.DirectionCosines()
	ixm, iym := toLocal(p, img)
	imageLocal := integrateLocal(ixm, iym, img.HalfLength(), mat)
	// Image method: the reflected source carries an opposing normal traction
	// so that the pair enforces a traction-free condition on y=groundY.
	imageLocal.Uxn, imageLocal.Uyn, imageLocal.SigXXn, imageLocal.SigYYn, imageLocal.SigXYn =
		-imageLocal.Uxn, -imageLocal.Uyn, -imageLocal.SigXXn, -imageLocal.SigYYn, -imageLocal.SigXYn
	image := rotateToGlobal(imageLocal, imgCosB, imgSinB)
	return add(direct, image)
}
