// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPointDistance(tst *testing.T) {
	chk.PrintTitle("PointDistance")
	p := NewPoint2D(0, 0)
	q := NewPoint2D(3, 4)
	chk.Scalar(tst, "dist", 1e-15, p.Dist(q), 5.0)
	chk.Scalar(tst, "distSq", 1e-15, p.DistSq(q), 25.0)
	m := p.Mid(q)
	chk.Scalar(tst, "mid.X", 1e-15, m.X, 1.5)
	chk.Scalar(tst, "mid.Y", 1e-15, m.Y, 2.0)
}

func TestVectorNormalized(tst *testing.T) {
	chk.PrintTitle("VectorNormalized")
	v := Vector2D{X: 3, Y: 4}
	n := v.Normalized()
	chk.Scalar(tst, "length", 1e-15, n.Length(), 1.0)
	perp := n.Perp()
	chk.Scalar(tst, "perp.dot(n)", 1e-15, perp.Dot(n), 0.0)
}

func TestVectorNormalizedPanicsOnZero(tst *testing.T) {
	chk.PrintTitle("VectorNormalizedPanicsOnZero")
	defer func() {
		if r := recover(); r == nil {
			tst.Fatal("expected panic on zero-length vector")
		}
	}()
	Vector2D{}.Normalized()
}

func TestRectUnionAndContains(tst *testing.T) {
	chk.PrintTitle("RectUnionAndContains")
	r := NewEmptyRect().ExpandPoint(NewPoint2D(0, 0)).ExpandPoint(NewPoint2D(2, 2))
	s := Rect2D{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3}
	u := r.Union(s)
	chk.Scalar(tst, "union.MaxX", 1e-15, u.MaxX, 3.0)
	if !u.Contains(NewPoint2D(2.5, 2.5)) {
		tst.Fatal("expected union to contain (2.5, 2.5)")
	}
	if !r.Intersects(s) {
		tst.Fatal("expected r and s to intersect")
	}
}

func TestBoundaryValidate(tst *testing.T) {
	chk.PrintTitle("BoundaryValidate")
	tri := Boundary{Vertices: []Point2D{NewPoint2D(0, 0), NewPoint2D(1, 0), NewPoint2D(0, 1)}}
	if err := tri.Validate(); err != nil {
		tst.Fatalf("expected a valid triangle, got: %v", err)
	}
	degenerate := Boundary{Vertices: []Point2D{NewPoint2D(0, 0), NewPoint2D(0, 0), NewPoint2D(0, 1)}}
	if err := degenerate.Validate(); err == nil {
		tst.Fatal("expected coincident-vertex error")
	}
	tooFew := Boundary{Vertices: []Point2D{NewPoint2D(0, 0), NewPoint2D(1, 0)}}
	if err := tooFew.Validate(); err == nil {
		tst.Fatal("expected too-few-vertices error")
	}
}

func TestBoundaryContainsPointSquare(tst *testing.T) {
	chk.PrintTitle("BoundaryContainsPointSquare")
	square := Boundary{Vertices: []Point2D{
		NewPoint2D(0, 0), NewPoint2D(10, 0), NewPoint2D(10, 10), NewPoint2D(0, 10),
	}}
	if !square.ContainsPoint(NewPoint2D(5, 5)) {
		tst.Fatal("expected (5,5) inside the square")
	}
	if square.ContainsPoint(NewPoint2D(15, 5)) {
		tst.Fatal("expected (15,5) outside the square")
	}
	chk.Scalar(tst, "perimeter", 1e-12, square.Perimeter(), 40.0)
}

func TestBoundaryInteriorAngle(tst *testing.T) {
	chk.PrintTitle("BoundaryInteriorAngle")
	square := Boundary{Vertices: []Point2D{
		NewPoint2D(0, 0), NewPoint2D(10, 0), NewPoint2D(10, 10), NewPoint2D(0, 10),
	}}
	for i := 0; i < 4; i++ {
		angle := square.InteriorAngleAt(i)
		chk.Scalar(tst, "square corner angle", 1e-9, angle, 90.0)
	}
}

func TestBoundaryBoundsIsFinite(tst *testing.T) {
	chk.PrintTitle("BoundaryBoundsIsFinite")
	square := Boundary{Vertices: []Point2D{
		NewPoint2D(-1, -2), NewPoint2D(3, -2), NewPoint2D(3, 4), NewPoint2D(-1, 4),
	}}
	b := square.Bounds()
	if math.IsInf(b.MinX, 0) || math.IsInf(b.MaxY, 0) {
		tst.Fatal("expected finite bounds")
	}
	chk.Scalar(tst, "width", 1e-15, b.Width(), 4.0)
	chk.Scalar(tst, "height", 1e-15, b.Height(), 6.0)
}
