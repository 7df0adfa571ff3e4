// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import "github.com/cpmech/gosl/io"

// ErrorCode classifies a Solve failure, per spec.md §6/§7.
type ErrorCode int

const (
	InvalidBoundary ErrorCode = iota
	InvalidMaterial
	InvalidBoundaryConditionType
	MatrixSingular
	IterativeSolverDidNotConverge
	Cancelled
)

func (c ErrorCode) String() string {
	switch c {
	case InvalidBoundary:
		return "invalid_boundary"
	case InvalidMaterial:
		return "invalid_material"
	case InvalidBoundaryConditionType:
		return "invalid_boundary_condition_type"
	case MatrixSingular:
		return "matrix_singular"
	case IterativeSolverDidNotConverge:
		return "iterative_solver_did_not_converge"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Error is a Solve failure carrying the classification of spec.md §7 plus
// the causing error, and, for IterativeSolverDidNotConverge, the last
// residual reached.
type Error struct {
	Code         ErrorCode
	Cause        error
	LastResidual float64
}

func (e *Error) Error() string {
	if e.Code == IterativeSolverDidNotConverge {
		return io.Sf("%s: last residual %.3e: %v", e.Code, e.LastResidual, e.Cause)
	}
	return io.Sf("%s: %v", e.Code, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }
