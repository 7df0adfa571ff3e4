// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/rockmech/bemcore/geom"
	"github.com/rockmech/bemcore/mesh"
)

// Level names which refinement pass produced a FieldPoint.
type Level int

const (
	LevelCoarse Level = iota
	LevelNearBoundary
	LevelCorner
	LevelGradient
)

func (l Level) String() string {
	switch l {
	case LevelCoarse:
		return "coarse"
	case LevelNearBoundary:
		return "near-boundary"
	case LevelCorner:
		return "corner"
	case LevelGradient:
		return "gradient"
	}
	return "unknown"
}

// FieldPoint is a candidate point for field evaluation, together with the
// validity flags of spec.md §4.5. A point with Valid == false is carried
// through the grid (so its origin is traceable) but must not be passed to
// the field evaluator.
type FieldPoint struct {
	Point             geom.Point2D
	Level             Level
	InsideExcavation  bool
	TooCloseToElement bool
}

// Valid reports whether p may be evaluated: neither inside an excavation
// nor too close to an element.
func (p FieldPoint) Valid() bool {
	return !p.InsideExcavation && !p.TooCloseToElement
}

// cellKey discretises a point onto a grid of the given cell size, for
// deduplication across refinement passes.
type cellKey struct{ i, j int }

func keyFor(p geom.Point2D, cell float64) cellKey {
	return cellKey{i: int(math.Floor(p.X / cell)), j: int(math.Floor(p.Y / cell))}
}

// Build generates the hierarchical field-point grid over the union of
// boundaries' bounding box, per spec.md §4.5: a uniform coarse background,
// a near-boundary band at roughly twice the background density, and
// clusters at roughly four times the density around vertices whose
// interior angle deviates from 180 degrees by more than
// cfg.HighCurvatureAngleDeg. Excavation and too-close-to-element validity
// is stamped on every point, coarse grid included.
func Build(boundaries []geom.Boundary, elements []mesh.Element, cfg Config) ([]FieldPoint, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bounds := geom.NewEmptyRect()
	for _, b := range boundaries {
		bounds = bounds.Union(b.Bounds())
	}
	margin := math.Max(bounds.Width(), bounds.Height()) * 0.1
	bounds = bounds.Inflate(margin)

	dx := bounds.Width() / float64(cfg.CoarseNx)
	dy := bounds.Height() / float64(cfg.CoarseNy)
	cellSize := math.Min(dx, dy)
	if cellSize <= 0 {
		cellSize = 1
	}

	seen := make(map[cellKey]bool)
	var points []FieldPoint

	add := func(p geom.Point2D, level Level) {
		k := keyFor(p, cellSize/4) // quarter-cell dedup tolerance so finer levels can coexist near coarse nodes
		if seen[k] {
			return
		}
		seen[k] = true
		points = append(points, FieldPoint{
			Point:             p,
			Level:             level,
			InsideExcavation:  insideAnyExcavation(p, boundaries),
			TooCloseToElement: tooCloseToAnyElement(p, elements, cfg.MinimumDistanceToElement),
		})
	}

	xs := utl.LinSpace(bounds.MinX, bounds.MinX+bounds.Width(), cfg.CoarseNx+1)
	ys := utl.LinSpace(bounds.MinY, bounds.MinY+bounds.Height(), cfg.CoarseNy+1)
	for _, x := range xs {
		for _, y := range ys {
			add(geom.NewPoint2D(x, y), LevelCoarse)
		}
	}

	mediumDistance := cfg.MediumDistance
	if mediumDistance == 0 {
		mediumDistance = cellSize
	}
	nearSpacing := cellSize / 2 // twice the background density
	for _, b := range boundaries {
		for i := 0; i < b.NumSegments(); i++ {
			a, c := b.Segment(i)
			segLen := a.Dist(c)
			n := int(math.Max(1, math.Round(segLen/nearSpacing)))
			ux, uy := (c.X-a.X)/segLen, (c.Y-a.Y)/segLen
			nx, ny := -uy, ux
			for k := 0; k <= n; k++ {
				t := float64(k) / float64(n)
				bx, by := a.X+t*(c.X-a.X), a.Y+t*(c.Y-a.Y)
				for _, s := range []float64{-1, 1} {
					px := bx + s*mediumDistance*nx
					py := by + s*mediumDistance*ny
					add(geom.NewPoint2D(px, py), LevelNearBoundary)
				}
			}
		}
	}

	fineDistance := cfg.FineDistance
	if fineDistance == 0 {
		fineDistance = cellSize / 2
	}
	cornerSpacing := cellSize / 4 // four times the background density
	for _, b := range boundaries {
		for i := 0; i < b.NumSegments(); i++ {
			angle := b.InteriorAngleAt(i)
			if math.Abs(180-angle) <= cfg.HighCurvatureAngleDeg {
				continue
			}
			v := b.Vertices[i%len(b.Vertices)]
			for gx := -fineDistance; gx <= fineDistance+1e-12; gx += cornerSpacing {
				for gy := -fineDistance; gy <= fineDistance+1e-12; gy += cornerSpacing {
					if gx*gx+gy*gy > fineDistance*fineDistance {
						continue
					}
					add(geom.NewPoint2D(v.X+gx, v.Y+gy), LevelCorner)
				}
			}
		}
	}

	return points, nil
}

func insideAnyExcavation(p geom.Point2D, boundaries []geom.Boundary) bool {
	for _, b := range boundaries {
		if !b.IsGroundSurface && b.ContainsPoint(p) {
			return true
		}
	}
	return false
}

func tooCloseToAnyElement(p geom.Point2D, elements []mesh.Element, minDist float64) bool {
	if minDist <= 0 {
		return false
	}
	minSq := minDist * minDist
	for _, e := range elements {
		if distSqPointSegment(p, e.A, e.B) < minSq {
			return true
		}
	}
	return false
}

// distSqPointSegment returns the squared distance from p to the segment a-b.
func distSqPointSegment(p, a, b geom.Point2D) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return p.DistSq(a)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := geom.NewPoint2D(a.X+t*abx, a.Y+t*aby)
	return p.DistSq(proj)
}

// RefineByGradient runs the optional second, gradient-adaptive pass of
// spec.md §4.5: it calls valueAt once for each valid input point (the
// inserted midpoints are not evaluated), then inserts a midpoint between
// any two valid points, of any level, at most 3*cfg.MediumDistance apart
// whose relative difference exceeds cfg.GradientThreshold. With
// cfg.MediumDistance == 0 no pair qualifies and no point is added.
func RefineByGradient(points []FieldPoint, valueAt func(geom.Point2D) float64, cfg Config, elements []mesh.Element, boundaries []geom.Boundary) []FieldPoint {
	if !cfg.EnableGradientRefinement {
		return points
	}
	values := make([]float64, len(points))
	for i, p := range points {
		if p.Valid() {
			values[i] = valueAt(p.Point)
		}
	}
	var extra []FieldPoint
	for i := 0; i < len(points); i++ {
		if !points[i].Valid() {
			continue
		}
		for j := i + 1; j < len(points); j++ {
			if !points[j].Valid() {
				continue
			}
			d := points[i].Point.Dist(points[j].Point)
			if d == 0 || d > cfg.MediumDistance*3 {
				continue
			}
			denom := math.Max(math.Abs(values[i]), math.Abs(values[j]))
			if denom == 0 {
				continue
			}
			rel := math.Abs(values[i]-values[j]) / denom
			if rel > cfg.GradientThreshold {
				mid := points[i].Point.Mid(points[j].Point)
				extra = append(extra, FieldPoint{
					Point:             mid,
					Level:             LevelGradient,
					InsideExcavation:  insideAnyExcavation(mid, boundaries),
					TooCloseToElement: tooCloseToAnyElement(mid, elements, cfg.MinimumDistanceToElement),
				})
			}
		}
	}
	return append(points, extra...)
}
