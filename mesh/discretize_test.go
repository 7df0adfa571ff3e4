// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/rockmech/bemcore/geom"
)

func squareBoundary(side float64) geom.Boundary {
	return geom.Boundary{Vertices: []geom.Point2D{
		geom.NewPoint2D(0, 0), geom.NewPoint2D(side, 0),
		geom.NewPoint2D(side, side), geom.NewPoint2D(0, side),
	}}
}

func TestDiscretizeUniformSquare(tst *testing.T) {
	chk.PrintTitle("DiscretizeUniformSquare")
	boundaries := []geom.Boundary{squareBoundary(10)}
	cfg := DiscretiserConfig{TargetElementCount: 100, ElementOrder: Constant, UseAdaptiveSizing: false}
	elements, stats, err := Discretize(boundaries, cfg)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if stats.ElementCount != 100 {
		tst.Fatalf("expected 100 elements for a uniform square, got %d", stats.ElementCount)
	}
	if len(elements) != 100 {
		tst.Fatalf("expected 100 elements in the returned slice, got %d", len(elements))
	}
	for _, e := range elements {
		e.Validate()
	}
}

func TestDiscretizeAdaptiveRefinesCorners(tst *testing.T) {
	chk.PrintTitle("DiscretizeAdaptiveRefinesCorners")
	boundaries := []geom.Boundary{squareBoundary(10)}
	cfg := DiscretiserConfig{TargetElementCount: 100, ElementOrder: Constant, UseAdaptiveSizing: true, MaxRefinementFactor: 3}
	_, stats, err := Discretize(boundaries, cfg)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if stats.MinRefineFactor != stats.MaxRefineFactor {
		tst.Fatalf("expected a uniform square's refine factor to be constant at every corner, got min=%v max=%v", stats.MinRefineFactor, stats.MaxRefineFactor)
	}
	if stats.ElementCount <= 100 {
		tst.Fatalf("expected adaptive sizing at 90-degree corners to give more than the 100 uniform elements, got %d", stats.ElementCount)
	}
}

func TestDiscretizeRejectsDegenerateBoundary(tst *testing.T) {
	chk.PrintTitle("DiscretizeRejectsDegenerateBoundary")
	bad := geom.Boundary{Vertices: []geom.Point2D{geom.NewPoint2D(0, 0), geom.NewPoint2D(0, 0)}}
	_, _, err := Discretize([]geom.Boundary{bad}, DiscretiserConfig{TargetElementCount: 10})
	if err == nil {
		tst.Fatal("expected an error for a degenerate boundary")
	}
}

func TestElementCollocationNodes(tst *testing.T) {
	chk.PrintTitle("ElementCollocationNodes")
	if Constant.NumCollocationNodes() != 1 {
		tst.Fatal("expected 1 collocation node for a constant element")
	}
	if Linear.NumCollocationNodes() != 2 {
		tst.Fatal("expected 2 collocation nodes for a linear element")
	}
	if Quadratic.NumCollocationNodes() != 3 {
		tst.Fatal("expected 3 collocation nodes for a quadratic element")
	}
	nodes := Quadratic.CollocationNodes(1.0)
	chk.Scalar(tst, "middle node", 1e-15, nodes[1], 0.0)
}

func TestApplyInSituExcavationSkipsGroundSurface(tst *testing.T) {
	chk.PrintTitle("ApplyInSituExcavationSkipsGroundSurface")
	elements := []Element{
		{A: geom.NewPoint2D(0, 0), B: geom.NewPoint2D(1, 0), Order: Constant, IsGroundSurface: true},
		{A: geom.NewPoint2D(0, 0), B: geom.NewPoint2D(1, 0), Order: Constant, IsGroundSurface: false},
	}
	ApplyInSituExcavation(elements, -10, -20, 0)
	chk.Scalar(tst, "ground surface BCNormal unchanged", 1e-15, elements[0].BCNormal, 0.0)
	if elements[1].BCNormal == 0 && elements[1].BCShear == 0 {
		tst.Fatal("expected a non-zero excavation boundary condition on the non-ground element")
	}
}
