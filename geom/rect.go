// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Rect2D is an axis-aligned rectangle given by its min and max corners.
type Rect2D struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewEmptyRect returns a degenerate rectangle suitable as a Union seed.
func NewEmptyRect() Rect2D {
	return Rect2D{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// Width returns MaxX - MinX.
func (r Rect2D) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect2D) Height() float64 { return r.MaxY - r.MinY }

// Inflate returns r grown by d on every side.
func (r Rect2D) Inflate(d float64) Rect2D {
	return Rect2D{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect2D) Union(s Rect2D) Rect2D {
	return Rect2D{
		MinX: math.Min(r.MinX, s.MinX),
		MinY: math.Min(r.MinY, s.MinY),
		MaxX: math.Max(r.MaxX, s.MaxX),
		MaxY: math.Max(r.MaxY, s.MaxY),
	}
}

// Intersects reports whether r and s overlap (touching edges count).
func (r Rect2D) Intersects(s Rect2D) bool {
	return r.MinX <= s.MaxX && r.MaxX >= s.MinX && r.MinY <= s.MaxY && r.MaxY >= s.MinY
}

// Contains reports whether p lies within r (inclusive of the boundary).
func (r Rect2D) Contains(p Point2D) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// ExpandPoint grows r, if necessary, to include p.
func (r Rect2D) ExpandPoint(p Point2D) Rect2D {
	return Rect2D{
		MinX: math.Min(r.MinX, p.X),
		MinY: math.Min(r.MinY, p.Y),
		MaxX: math.Max(r.MaxX, p.X),
		MaxY: math.Max(r.MaxY, p.Y),
	}
}
