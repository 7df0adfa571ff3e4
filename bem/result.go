// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"github.com/rockmech/bemcore/assembly"
	"github.com/rockmech/bemcore/field"
	"github.com/rockmech/bemcore/geom"
	"github.com/rockmech/bemcore/grid"
	"github.com/rockmech/bemcore/mesh"
	"github.com/rockmech/bemcore/solve"
)

// PointResult is the full derived state at one grid point: the raw field
// evaluation plus its principal stresses and invariants. Points for which
// Valid is false carry a zero-value Result and should not be interpreted.
type PointResult struct {
	Point  geom.Point2D
	Level  grid.Level
	Valid  bool

	field.Result
	Sigma1, Sigma2, Sigma3 float64
	PrincipalAngleDeg      float64
	Invariants             field.Invariants
}

// ResultField is the full output of a Solve call.
type ResultField struct {
	Points []PointResult
}

// SolveStats aggregates per-phase diagnostics across the whole pipeline,
// mirroring the per-phase Summary the teacher's fem.Solver accumulates.
type SolveStats struct {
	Mesh     mesh.Stats
	Matrix   assembly.Stats
	Solve    solve.Stats
	GridSize int

	ConditionEstimate float64
	ConditionWarning  bool
}
