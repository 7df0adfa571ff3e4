// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/rockmech/bemcore/geom"
	"github.com/rockmech/bemcore/material"
	"github.com/rockmech/bemcore/mesh"
)

func squareElements(side float64, n int) []mesh.Element {
	boundary := geom.Boundary{Vertices: []geom.Point2D{
		geom.NewPoint2D(0, 0), geom.NewPoint2D(side, 0),
		geom.NewPoint2D(side, side), geom.NewPoint2D(0, side),
	}}
	elements, _, err := mesh.Discretize([]geom.Boundary{boundary}, mesh.DiscretiserConfig{TargetElementCount: n, ElementOrder: mesh.Constant})
	if err != nil {
		panic(err)
	}
	return elements
}

func rockMaterial() material.Derived {
	return material.Derive(material.Material{Name: "rock", E: 20000, Nu: 0.25, Rho: 2700}, material.PlaneStrain)
}

func TestBuildProducesSquareMatrix(tst *testing.T) {
	chk.PrintTitle("BuildProducesSquareMatrix")
	elements := squareElements(10, 20)
	m, err := Build(elements, rockMaterial(), 0, false)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	order := m.Order()
	if order != 2*len(elements) {
		tst.Fatalf("expected order 2*N for constant elements, got %d (N=%d)", order, len(elements))
	}
	if len(m.B) != order {
		tst.Fatalf("expected len(B) == order, got %d vs %d", len(m.B), order)
	}
	for _, row := range m.A {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				tst.Fatal("expected every matrix entry to be finite")
			}
		}
	}
}

func TestBuildRejectsEmptyElementList(tst *testing.T) {
	chk.PrintTitle("BuildRejectsEmptyElementList")
	_, err := Build(nil, rockMaterial(), 0, false)
	if err == nil {
		tst.Fatal("expected an error for an empty element list")
	}
}

func TestCacheReusesMatrixOnUnchangedGeometry(tst *testing.T) {
	chk.PrintTitle("CacheReusesMatrixOnUnchangedGeometry")
	elements := squareElements(10, 12)
	mat := rockMaterial()
	cache := NewCache()
	m1, stats1, err := cache.BuildCached(elements, mat, 0, false, true)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if stats1.CacheHit {
		tst.Fatal("expected a cache miss on first build")
	}
	m2, stats2, err := cache.BuildCached(elements, mat, 0, false, true)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !stats2.CacheHit {
		tst.Fatal("expected a cache hit on the second build with unchanged inputs")
	}
	if m1 != m2 {
		tst.Fatal("expected the same matrix handle on a cache hit")
	}
}

func TestCacheMissesOnChangedMaterial(tst *testing.T) {
	chk.PrintTitle("CacheMissesOnChangedMaterial")
	elements := squareElements(10, 12)
	cache := NewCache()
	mat1 := rockMaterial()
	mat2 := material.Derive(material.Material{Name: "rock2", E: 40000, Nu: 0.2}, material.PlaneStrain)
	_, _, err := cache.BuildCached(elements, mat1, 0, false, true)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	_, stats, err := cache.BuildCached(elements, mat2, 0, false, true)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if stats.CacheHit {
		tst.Fatal("expected a cache miss when the material changes")
	}
}
