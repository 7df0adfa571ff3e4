// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bemdemo runs a single boundary-element scenario, read from the
// JSON scenario file given as its first argument or built in, and prints
// the solve statistics and the largest sigma1 over the valid field points.
package main

import (
	"context"
	"flag"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/rockmech/bemcore/bem"
	"github.com/rockmech/bemcore/config"
	"github.com/rockmech/bemcore/geom"
	"github.com/rockmech/bemcore/material"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nbemdemo -- 2D elastic boundary-element core\n\n")

	flag.Parse()
	var cfg bem.Config
	if len(flag.Args()) > 0 {
		scn, err := config.Read(flag.Arg(0))
		if err != nil {
			chk.Panic("%v", err)
		}
		cfg, err = scn.ToBemConfig()
		if err != nil {
			chk.Panic("%v", err)
		}
		io.Pf("> scenario file read: %v\n", flag.Arg(0))
	} else {
		cfg = circularTunnelScenario()
		io.Pf("> no scenario file given; running the built-in circular-tunnel scenario\n")
	}

	orch := bem.NewOrchestrator()
	result, stats, err := orch.Solve(context.Background(), cfg)
	if err != nil {
		chk.Panic("solve failed: %v", err)
	}

	io.Pf("> elements           = %d\n", stats.Mesh.ElementCount)
	io.Pf("> matrix order       = %d (cache hit = %v)\n", stats.Matrix.Order, stats.Matrix.CacheHit)
	io.Pf("> solver mode        = %v, iterations = %d, residual = %.3e\n", stats.Solve.Mode, stats.Solve.Iterations, stats.Solve.FinalResidual)
	io.Pf("> grid points        = %d\n", stats.GridSize)
	if stats.ConditionWarning {
		io.Pfyel("> condition estimate = %.3e (ill-conditioned)\n", stats.ConditionEstimate)
	} else {
		io.Pf("> condition estimate = %.3e\n", stats.ConditionEstimate)
	}

	maxSigma1 := math.Inf(-1)
	var at geom.Point2D
	nValid := 0
	for _, p := range result.Points {
		if !p.Valid {
			continue
		}
		nValid++
		if p.Sigma1 > maxSigma1 {
			maxSigma1 = p.Sigma1
			at = p.Point
		}
	}
	io.Pf("> valid field points = %d\n", nValid)
	io.PfGreen("> max sigma1 = %.4f at (%.3f, %.3f)\n\n", maxSigma1, at.X, at.Y)
}

// circularTunnelScenario builds a circular tunnel of radius 5 in an
// otherwise unbounded elastic rock mass under a uniform far-field stress,
// the classic Kirsch-problem sanity check of spec.md §8's scenario S2.
func circularTunnelScenario() bem.Config {
	const radius = 5.0
	const nVerts = 64
	vertices := make([]geom.Point2D, nVerts)
	for i := 0; i < nVerts; i++ {
		theta := 2 * math.Pi * float64(i) / float64(nVerts)
		vertices[i] = geom.NewPoint2D(radius*math.Cos(theta), radius*math.Sin(theta))
	}

	cfg := bem.DefaultConfig()
	cfg.Boundaries = []geom.Boundary{{Vertices: vertices, IsGroundSurface: false}}
	cfg.Material = material.Material{Name: "rock", E: 20000, Nu: 0.25, Rho: 2700}
	cfg.Discretiser.TargetElementCount = 128
	cfg.InSitu = &bem.InSituStress{Sxx: -10, Syy: -20, Sxy: 0}
	return cfg
}
