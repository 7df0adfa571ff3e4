// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/rockmech/bemcore/geom"
)

// DiscretiserConfig carries the inputs of spec.md §4.1.
type DiscretiserConfig struct {
	TargetElementCount int
	ElementOrder       Order
	UseAdaptiveSizing  bool
	MaxRefinementFactor float64 // R, default 3
}

// Stats reports deterministic, per-run discretisation counts for
// SolveStats, the way the teacher's Summary records per-phase counts.
type Stats struct {
	ElementCount     int
	MinRefineFactor  float64
	MaxRefineFactor  float64
}

// Discretize turns a set of closed boundaries into an ordered list of
// straight boundary elements, per the algorithm of spec.md §4.1. The
// result is deterministic: equal inputs produce an equal element sequence.
func Discretize(boundaries []geom.Boundary, cfg DiscretiserConfig) ([]Element, Stats, error) {
	if cfg.TargetElementCount < 1 {
		return nil, Stats{}, chk.Err("target element count must be >= 1, got %d", cfg.TargetElementCount)
	}
	for i, b := range boundaries {
		if err := b.Validate(); err != nil {
			return nil, Stats{}, chk.Err("boundary %d invalid: %v", i, err)
		}
	}
	R := cfg.MaxRefinementFactor
	if R < 1 {
		R = 3
	}

	perimeter := 0.0
	for _, b := range boundaries {
		perimeter += b.Perimeter()
	}
	if perimeter <= 0 {
		return nil, Stats{}, chk.Err("total perimeter must be positive")
	}
	h := perimeter / float64(cfg.TargetElementCount)

	var elements []Element
	stats := Stats{MinRefineFactor: math.Inf(1), MaxRefineFactor: math.Inf(-1)}

	for boundaryID, b := range boundaries {
		n := b.NumSegments()
		for segIdx := 0; segIdx < n; segIdx++ {
			a, c := b.Segment(segIdx)
			length := a.Dist(c)
			n0 := int(math.Floor(length/h + 0.5))
			if n0 < 1 {
				n0 = 1
			}
			f := 1.0
			if cfg.UseAdaptiveSizing {
				theta := b.InteriorAngleAt(segIdx)
				f = 1 + (math.Abs(180-theta)/180)*(R-1)
			}
			if f < stats.MinRefineFactor {
				stats.MinRefineFactor = f
			}
			if f > stats.MaxRefineFactor {
				stats.MaxRefineFactor = f
			}
			count := int(math.Floor(float64(n0)*f + 0.5))
			if count < 1 {
				count = 1
			}
			elements = append(elements, subdivide(a, c, count, cfg.ElementOrder, boundaryID, b.IsGroundSurface)...)
		}
	}
	stats.ElementCount = len(elements)
	if !cfg.UseAdaptiveSizing {
		stats.MinRefineFactor, stats.MaxRefineFactor = 1, 1
	}
	return elements, stats, nil
}

// subdivide splits the segment a->c into count equal-length straight
// elements, each with the default BC (type 1, zero traction).
func subdivide(a, c geom.Point2D, count int, order Order, boundaryID int, isGround bool) []Element {
	out := make([]Element, 0, count)
	dx := (c.X - a.X) / float64(count)
	dy := (c.Y - a.Y) / float64(count)
	for i := 0; i < count; i++ {
		p0 := geom.NewPoint2D(a.X+float64(i)*dx, a.Y+float64(i)*dy)
		p1 := geom.NewPoint2D(a.X+float64(i+1)*dx, a.Y+float64(i+1)*dy)
		out = append(out, Element{
			A: p0, B: p1,
			Order:           order,
			BC:              BCTraction,
			BCNormal:        0,
			BCShear:         0,
			BoundaryID:      boundaryID,
			IsGroundSurface: isGround,
		})
	}
	return out
}
