// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// CoincidenceTolerance is the distance below which two vertices are
// considered coincident.
const CoincidenceTolerance = 1e-9

// Boundary is an ordered, logically-closed polygon: the segment from the
// last vertex back to the first is part of the boundary. The core receives
// boundaries by value and never mutates them.
type Boundary struct {
	Vertices        []Point2D
	IsGroundSurface bool
}

// NumSegments returns the number of segments in the closed polygon, equal
// to the number of vertices.
func (b Boundary) NumSegments() int { return len(b.Vertices) }

// Segment returns the i-th segment (vertex i -> vertex i+1, wrapping).
func (b Boundary) Segment(i int) (a, c Point2D) {
	n := len(b.Vertices)
	return b.Vertices[i%n], b.Vertices[(i+1)%n]
}

// Perimeter returns the total length of the closed polygon.
func (b Boundary) Perimeter() float64 {
	total := 0.0
	n := len(b.Vertices)
	for i := 0; i < n; i++ {
		a, c := b.Segment(i)
		total += a.Dist(c)
	}
	return total
}

// Bounds returns the axis-aligned bounding rectangle of the boundary.
func (b Boundary) Bounds() Rect2D {
	r := NewEmptyRect()
	for _, v := range b.Vertices {
		r = r.ExpandPoint(v)
	}
	return r
}

// Validate checks the invariants spec.md §3 requires of a closed boundary:
// at least 3 vertices, no two consecutive vertices coincident, and a
// strictly positive perimeter.
func (b Boundary) Validate() error {
	if len(b.Vertices) < 3 {
		return chk.Err("boundary must have at least 3 vertices, got %d", len(b.Vertices))
	}
	n := len(b.Vertices)
	for i := 0; i < n; i++ {
		a, c := b.Segment(i)
		if a.Dist(c) < CoincidenceTolerance {
			return chk.Err("boundary has coincident consecutive vertices at segment %d", i)
		}
	}
	if b.Perimeter() <= 0 {
		return chk.Err("boundary has non-positive perimeter")
	}
	return nil
}

// ContainsPoint reports whether p is strictly inside the polygon using a
// horizontal ray-cast to +infinity in X, counting crossings; odd means
// inside. Points exactly on an edge are not guaranteed to classify either
// way, matching the usual ray-casting caveat.
func (b Boundary) ContainsPoint(p Point2D) bool {
	inside := false
	n := len(b.Vertices)
	for i := 0; i < n; i++ {
		a, c := b.Segment(i)
		if (a.Y > p.Y) != (c.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)/(c.Y-a.Y)*(c.X-a.X)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// InteriorAngleAt returns the interior angle, in degrees, of the polygon at
// vertex index i, using the incoming segment (i-1 -> i) and the outgoing
// segment (i -> i+1). It is computed as 180 minus the unsigned turning
// angle, so the result always lies in [0, 180]: at a reflex vertex it
// returns 360 minus the interior angle. |180 - result| is the same either way.
func (b Boundary) InteriorAngleAt(i int) float64 {
	n := len(b.Vertices)
	prev := b.Vertices[(i-1+n)%n]
	cur := b.Vertices[i%n]
	next := b.Vertices[(i+1)%n]
	in := cur.Sub(prev)
	out := next.Sub(cur)
	cosTheta := in.Dot(out) / (in.Length() * out.Length())
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}
	turn := math.Acos(cosTheta) * 180 / math.Pi
	return 180 - turn
}
