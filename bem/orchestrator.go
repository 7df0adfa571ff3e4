// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"context"
	"hash/maphash"
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/rockmech/bemcore/assembly"
	"github.com/rockmech/bemcore/field"
	"github.com/rockmech/bemcore/grid"
	"github.com/rockmech/bemcore/internal/workpool"
	"github.com/rockmech/bemcore/material"
	"github.com/rockmech/bemcore/mesh"
	"github.com/rockmech/bemcore/solve"
)

// Orchestrator owns the three named caches of spec.md §4.7 (elements,
// matrix+factorisation, result field) and the single solver service they
// feed, mirroring how the teacher's fem.Solver owns one *la.LinSol and
// reuses it across the domain's time steps.
type Orchestrator struct {
	elements *elementCache
	matrices *assembly.Cache
	solver   *solve.Service

	fieldCache map[uint64]*ResultField
}

// NewOrchestrator returns a ready-to-use Orchestrator.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		elements:   newElementCache(),
		matrices:   assembly.NewCache(),
		fieldCache: make(map[uint64]*ResultField),
	}
}

// Solve runs the full pipeline: discretise, assemble, solve, grid, evaluate.
// It checks ctx between phases and returns a *Error with code Cancelled if
// ctx is done before the pipeline completes.
func (o *Orchestrator) Solve(ctx context.Context, cfg Config) (*ResultField, SolveStats, error) {
	var stats SolveStats

	if err := cfg.Material.Validate(); err != nil {
		return nil, stats, &Error{Code: InvalidMaterial, Cause: err}
	}
	if len(cfg.Boundaries) == 0 {
		return nil, stats, &Error{Code: InvalidBoundary, Cause: chk.Err("at least one boundary is required")}
	}
	for i, b := range cfg.Boundaries {
		if err := b.Validate(); err != nil {
			return nil, stats, &Error{Code: InvalidBoundary, Cause: chk.Err("boundary %d: %v", i, err)}
		}
	}

	if err := ctxErr(ctx); err != nil {
		return nil, stats, err
	}

	cached, meshStats, err := o.elements.get(cfg.Boundaries, cfg.Discretiser, cfg.EnableElementCache)
	if err != nil {
		return nil, stats, &Error{Code: InvalidBoundary, Cause: err}
	}
	stats.Mesh = meshStats

	// the cache owns cached's backing array; clone before mutating BCs so an
	// in-situ stress applied for one Solve call never leaks into another.
	elements := make([]mesh.Element, len(cached))
	copy(elements, cached)
	if cfg.InSitu != nil {
		mesh.ApplyInSituExcavation(elements, cfg.InSitu.Sxx, cfg.InSitu.Syy, cfg.InSitu.Sxy)
	}

	for i, e := range elements {
		if !e.BC.Valid() {
			return nil, stats, &Error{Code: InvalidBoundaryConditionType, Cause: chk.Err("element %d: invalid BC type %d", i, e.BC)}
		}
	}

	if err := ctxErr(ctx); err != nil {
		return nil, stats, err
	}

	derived := material.Derive(cfg.Material, cfg.PlaneStrainType)
	if o.solver == nil {
		o.solver = solve.NewService(cfg.Solver)
	}

	matrix, asmStats, err := o.matrices.BuildCached(elements, derived, cfg.GroundY, cfg.HalfSpace, cfg.EnableMatrixCache)
	if err != nil {
		return nil, stats, &Error{Code: InvalidBoundary, Cause: err}
	}
	stats.Matrix = asmStats

	if err := ctxErr(ctx); err != nil {
		return nil, stats, err
	}

	// matrixID identifies the assembled system by content, not by the
	// *Matrix handle's address: a pointer can be reused by an unrelated
	// later allocation once the matrix cache evicts it, which would make
	// the solver mistake a stale factorisation for a current one.
	geomKey := assembly.ComputeKey(elements, cfg.GroundY, cfg.HalfSpace, derived)
	matrixID := geomKey.Lo ^ geomKey.Hi
	solution, solveStats, err := o.solver.Solve(matrix.A, matrix.B, matrixID, hashVector(matrix.B), nil)
	if err != nil {
		switch e := err.(type) {
		case *solve.ErrSingular:
			return nil, stats, &Error{Code: MatrixSingular, Cause: e}
		case *solve.ErrDidNotConverge:
			return nil, stats, &Error{Code: IterativeSolverDidNotConverge, Cause: e, LastResidual: e.LastResidual}
		default:
			return nil, stats, &Error{Code: MatrixSingular, Cause: err}
		}
	}
	stats.Solve = solveStats

	stats.ConditionEstimate = solve.ConditionEstimate(matrix.A, o.solver.LastInverse())
	stats.ConditionWarning = !math.IsNaN(stats.ConditionEstimate) && stats.ConditionEstimate > 1e10

	if err := ctxErr(ctx); err != nil {
		return nil, stats, err
	}

	points, err := grid.Build(cfg.Boundaries, elements, cfg.Grid)
	if err != nil {
		return nil, stats, &Error{Code: InvalidBoundary, Cause: err}
	}
	stats.GridSize = len(points)

	key := fieldKey(matrixID, hashVector(solution), cfg.Grid)
	if cfg.EnableFieldCache {
		if rf, ok := o.fieldCache[key]; ok {
			return rf, stats, nil
		}
	}

	if err := ctxErr(ctx); err != nil {
		return nil, stats, err
	}

	rf := &ResultField{Points: make([]PointResult, len(points))}
	workpool.Run(len(points), func(i int) {
		gp := points[i]
		pr := PointResult{Point: gp.Point, Level: gp.Level, Valid: gp.Valid()}
		if pr.Valid {
			res := field.EvaluateAt(gp.Point, elements, matrix.Dofs, solution, derived, cfg.GroundY, cfg.HalfSpace)
			if cfg.InSitu != nil {
				res.Sxx += cfg.InSitu.Sxx
				res.Syy += cfg.InSitu.Syy
				res.Sxy += cfg.InSitu.Sxy
				res.Szz = derived.Nu * (res.Sxx + res.Syy)
			}
			_, _, angle := field.Principal2D(res.Sxx, res.Syy, res.Sxy)
			p1, p2, p3 := field.Principal3D(res.Sxx, res.Syy, res.Sxy, res.Szz)
			pr.Result = res
			pr.Sigma1, pr.Sigma2, pr.Sigma3 = p1, p2, p3
			pr.PrincipalAngleDeg = angle
			pr.Invariants = field.ComputeInvariants(p1, p2, p3)
		}
		rf.Points[i] = pr
	})

	if cfg.EnableFieldCache {
		o.fieldCache[key] = rf
	}
	return rf, stats, nil
}

// AsyncResult is delivered on the channel returned by SolveAsync.
type AsyncResult struct {
	Field *ResultField
	Stats SolveStats
	Err   error
}

// SolveAsync runs Solve on a new goroutine, delivering its outcome on the
// returned channel, which is always sent to exactly once then closed.
func (o *Orchestrator) SolveAsync(ctx context.Context, cfg Config) <-chan AsyncResult {
	out := make(chan AsyncResult, 1)
	go func() {
		defer close(out)
		rf, stats, err := o.Solve(ctx, cfg)
		out <- AsyncResult{Field: rf, Stats: stats, Err: err}
	}()
	return out
}

// InvalidateAll clears every cache this orchestrator owns.
func (o *Orchestrator) InvalidateAll() {
	o.elements.invalidate()
	o.matrices.Invalidate()
	o.fieldCache = make(map[uint64]*ResultField)
	if o.solver != nil {
		o.solver.InvalidateSolutions()
	}
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return &Error{Code: Cancelled, Cause: ctx.Err()}
	default:
		return nil
	}
}

var vectorSeed = maphash.MakeSeed()

func hashVector(v []float64) uint64 {
	var h maphash.Hash
	h.SetSeed(vectorSeed)
	for _, x := range v {
		var buf [8]byte
		bits := math.Float64bits(x)
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits >> (8 * i))
		}
		h.Write(buf[:])
	}
	return h.Sum64()
}

func fieldKey(matrixID uint64, solutionHash uint64, cfg grid.Config) uint64 {
	var h maphash.Hash
	h.SetSeed(vectorSeed)
	var buf [8]byte
	write := func(v uint64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	write(matrixID)
	write(solutionHash)
	write(uint64(cfg.CoarseNx))
	write(uint64(cfg.CoarseNy))
	return h.Sum64()
}
