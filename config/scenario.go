// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads the JSON scenario file the demo CLI runs, following
// the same struct-tag-driven, io.ReadFile + json.Unmarshal pattern the
// teacher's inp.ReadMat uses for its own input files.
package config

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/rockmech/bemcore/bem"
	"github.com/rockmech/bemcore/geom"
	"github.com/rockmech/bemcore/material"
	"github.com/rockmech/bemcore/mesh"
)

// Vertex is a single JSON-friendly boundary vertex.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundaryInput is a closed polygon plus the ground-surface flag.
type BoundaryInput struct {
	Vertices        []Vertex `json:"vertices"`
	IsGroundSurface bool     `json:"isGroundSurface"`
}

// MaterialInput mirrors material.Material with JSON tags.
type MaterialInput struct {
	Name string  `json:"name"`
	E    float64 `json:"E"`
	Nu   float64 `json:"nu"`
	Rho  float64 `json:"rho"`
}

// Scenario is the full JSON-decodable problem description for the demo CLI.
type Scenario struct {
	Boundaries []BoundaryInput `json:"boundaries"`
	Material   MaterialInput   `json:"material"`
	PlaneStress bool           `json:"planeStress"`

	TargetElementCount int     `json:"targetElementCount"`
	ElementOrder       int     `json:"elementOrder"` // 1=constant, 2=linear, 3=quadratic
	AdaptiveSizing     bool    `json:"adaptiveSizing"`
	MaxRefinementFactor float64 `json:"maxRefinementFactor"`

	GroundY   float64 `json:"groundY"`
	HalfSpace bool    `json:"halfSpace"`

	CoarseNx int `json:"coarseNx"`
	CoarseNy int `json:"coarseNy"`

	InSituSxx float64 `json:"inSituSxx"`
	InSituSyy float64 `json:"inSituSyy"`
	InSituSxy float64 `json:"inSituSxy"`
}

// Read loads and decodes a Scenario from path.
func Read(path string) (*Scenario, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read scenario file %q: %v", path, err)
	}
	var s Scenario
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, chk.Err("cannot parse scenario file %q: %v", path, err)
	}
	return &s, nil
}

// ToBemConfig converts the JSON scenario into a bem.Config, filling in
// defaults for numeric discretisation and grid settings left at zero.
// AdaptiveSizing is copied as given, so omitting it turns adaptive sizing
// off.
func (s *Scenario) ToBemConfig() (bem.Config, error) {
	cfg := bem.DefaultConfig()

	var boundaries []geom.Boundary
	for _, b := range s.Boundaries {
		var vertices []geom.Point2D
		for _, v := range b.Vertices {
			vertices = append(vertices, geom.NewPoint2D(v.X, v.Y))
		}
		boundaries = append(boundaries, geom.Boundary{Vertices: vertices, IsGroundSurface: b.IsGroundSurface})
	}
	cfg.Boundaries = boundaries

	cfg.Material = material.Material{Name: s.Material.Name, E: s.Material.E, Nu: s.Material.Nu, Rho: s.Material.Rho}
	if err := cfg.Material.Validate(); err != nil {
		return bem.Config{}, err
	}
	if s.PlaneStress {
		cfg.PlaneStrainType = material.PlaneStress
	}

	if s.TargetElementCount > 0 {
		cfg.Discretiser.TargetElementCount = s.TargetElementCount
	}
	if s.ElementOrder > 0 {
		cfg.Discretiser.ElementOrder = mesh.Order(s.ElementOrder)
	}
	cfg.Discretiser.UseAdaptiveSizing = s.AdaptiveSizing
	if s.MaxRefinementFactor > 0 {
		cfg.Discretiser.MaxRefinementFactor = s.MaxRefinementFactor
	}

	cfg.GroundY = s.GroundY
	cfg.HalfSpace = s.HalfSpace

	if s.CoarseNx > 0 {
		cfg.Grid.CoarseNx = s.CoarseNx
	}
	if s.CoarseNy > 0 {
		cfg.Grid.CoarseNy = s.CoarseNy
	}

	if s.InSituSxx != 0 || s.InSituSyy != 0 || s.InSituSxy != 0 {
		cfg.InSitu = &bem.InSituStress{Sxx: s.InSituSxx, Syy: s.InSituSyy, Sxy: s.InSituSxy}
	}

	return cfg, nil
}
