// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements boundary elements and the discretiser that turns
// a set of closed boundaries into an ordered element list (C3).
package mesh

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/rockmech/bemcore/geom"
)

// Order is the element's shape-function order.
type Order int

const (
	Constant Order = 1
	Linear   Order = 2
	Quadratic Order = 3
)

// BCType is the boundary-condition type carried by an element, per
// spec.md §3. Any value outside 1..4 is a programming error.
type BCType int

const (
	BCTraction             BCType = 1 // traction given
	BCDisplacement         BCType = 2 // displacement given
	BCNormalDispShearStress BCType = 3 // normal displacement + shear stress
	BCNormalStressShearDisp BCType = 4 // normal stress + shear displacement
)

// Valid reports whether t is one of the four defined BC types.
func (t BCType) Valid() bool {
	return t >= BCTraction && t <= BCNormalStressShearDisp
}

// Element is a straight boundary element.
type Element struct {
	A, B       geom.Point2D // endpoints
	Order      Order
	BC         BCType
	BCNormal   float64 // BC magnitude in the normal direction, element-local frame
	BCShear    float64 // BC magnitude in the shear direction, element-local frame
	BoundaryID int     // index of the source polygon
	IsGroundSurface bool
}

// Midpoint returns (A+B)/2.
func (e Element) Midpoint() geom.Point2D { return e.A.Mid(e.B) }

// HalfLength returns |B-A|/2.
func (e Element) HalfLength() float64 { return e.A.Dist(e.B) / 2 }

// DirectionCosines returns (cos beta, sin beta) = (B-A)/|B-A|.
func (e Element) DirectionCosines() (cosBeta, sinBeta float64) {
	v := e.B.Sub(e.A).Normalized()
	return v.X, v.Y
}

// Validate checks the element invariants of spec.md §3: positive
// half-length, unit direction cosines, finite BC magnitudes, and a known
// BC type. Violations here are programming bugs (class 3 of spec.md §7),
// not input-validation errors, because elements are produced internally
// by the discretiser.
func (e Element) Validate() {
	L := e.HalfLength()
	if !(L > 0) {
		chk.Panic("element has non-positive half-length: %v", L)
	}
	cosB, sinB := e.DirectionCosines()
	if math.Abs(cosB*cosB+sinB*sinB-1) > 1e-4 {
		chk.Panic("element direction cosines not normalized: cos=%v sin=%v", cosB, sinB)
	}
	if math.IsNaN(e.BCNormal) || math.IsInf(e.BCNormal, 0) || math.IsNaN(e.BCShear) || math.IsInf(e.BCShear, 0) {
		chk.Panic("element BC magnitudes must be finite: normal=%v shear=%v", e.BCNormal, e.BCShear)
	}
	if !e.BC.Valid() {
		chk.Panic("unknown boundary-condition type: %d", e.BC)
	}
}

// NumCollocationNodes returns the number of collocation nodes on an element
// of this order: 1 for Constant, 2 for Linear, 3 for Quadratic.
func (o Order) NumCollocationNodes() int {
	switch o {
	case Constant:
		return 1
	case Linear:
		return 2
	case Quadratic:
		return 3
	}
	chk.Panic("unknown element order: %d", o)
	return 0
}

// CollocationNodes returns the local x'-coordinates (measured from the
// element midpoint, along the chord) of this element's collocation nodes,
// per spec.md §4.3.
func (o Order) CollocationNodes(halfLength float64) []float64 {
	switch o {
	case Constant:
		return []float64{0}
	case Linear:
		d := halfLength * math.Sqrt(0.5)
		return []float64{-d, d}
	case Quadratic:
		d := halfLength * math.Sqrt(3) / 2
		return []float64{-d, 0, d}
	}
	chk.Panic("unknown element order: %d", o)
	return nil
}
