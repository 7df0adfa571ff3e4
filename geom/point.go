// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the 2D geometric primitives the boundary-element
// core is built on: points, free vectors, axis-aligned rectangles and
// closed polygonal boundaries.
package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Point2D is an immutable pair of finite coordinates.
type Point2D struct {
	X, Y float64
}

// NewPoint2D returns a Point2D, panicking if either coordinate is not finite.
func NewPoint2D(x, y float64) Point2D {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		chk.Panic("Point2D coordinates must be finite: got (%v, %v)", x, y)
	}
	return Point2D{X: x, Y: y}
}

// Sub returns p - q as a free vector.
func (p Point2D) Sub(q Point2D) Vector2D {
	return Vector2D{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + v.
func (p Point2D) Add(v Vector2D) Point2D {
	return Point2D{X: p.X + v.X, Y: p.Y + v.Y}
}

// Mid returns the midpoint of p and q.
func (p Point2D) Mid(q Point2D) Point2D {
	return Point2D{X: 0.5 * (p.X + q.X), Y: 0.5 * (p.Y + q.Y)}
}

// DistSq returns the squared distance between p and q.
func (p Point2D) DistSq(q Point2D) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Dist returns the distance between p and q.
func (p Point2D) Dist(q Point2D) float64 {
	return math.Sqrt(p.DistSq(q))
}

// Vector2D is a free vector in the plane.
type Vector2D struct {
	X, Y float64
}

// Length returns the Euclidean norm of v.
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Scale returns v scaled by s.
func (v Vector2D) Scale(s float64) Vector2D {
	return Vector2D{X: v.X * s, Y: v.Y * s}
}

// Normalized returns v/|v|; panics on a zero-length vector since that is
// always a programming error at the call sites that use it (element
// direction cosines, never a raw user vector).
func (v Vector2D) Normalized() Vector2D {
	l := v.Length()
	if l == 0 {
		chk.Panic("cannot normalize a zero-length vector")
	}
	return Vector2D{X: v.X / l, Y: v.Y / l}
}

// Dot returns the dot product of v and w.
func (v Vector2D) Dot(w Vector2D) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Perp returns the vector rotated +90 degrees, i.e. (-y, x).
func (v Vector2D) Perp() Vector2D {
	return Vector2D{X: -v.Y, Y: v.X}
}
