// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve implements the linear solver service (C6): direct vs.
// iterative strategy selection by problem size, and a solution cache with
// warm-start support, mirroring the teacher's la.LinSol indirection that
// picks "umfpack" or "mumps" by process/problem size in fem.go.
package solve

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Mode names which strategy solved the system.
type Mode int

const (
	Direct Mode = iota
	Iterative
)

func (m Mode) String() string {
	if m == Direct {
		return "direct"
	}
	return "iterative"
}

// Config carries the solver inputs of spec.md §4.4.
type Config struct {
	Tolerance             float64 // default 1e-6
	MaxIterations         int
	DirectSolverThreshold int // default 1000 rows
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{Tolerance: 1e-6, MaxIterations: 1000, DirectSolverThreshold: 1000}
}

// Stats reports the outcome of a single solve.
type Stats struct {
	Mode           Mode
	Iterations     int
	FinalResidual  float64
	SolveTimeSec   float64
	CacheHit       bool
}

// ErrSingular is returned when the direct solver finds A singular to
// working precision (spec.md §6, §7 class 2: recoverable).
type ErrSingular struct{ Cause error }

func (e *ErrSingular) Error() string { return "matrix singular to working precision: " + e.Cause.Error() }

// ErrDidNotConverge is returned when the iterative solver exceeds its
// iteration cap without reaching the configured tolerance.
type ErrDidNotConverge struct {
	Iterations   int
	LastResidual float64
}

func (e *ErrDidNotConverge) Error() string {
	return io.Sf("iterative solver did not converge in %d iterations, last residual %.3e", e.Iterations, e.LastResidual)
}

// Service solves dense linear systems, selecting a direct or iterative
// strategy by order(A) against cfg.DirectSolverThreshold, and caches both
// the direct factorisation (matrix inverse) and, for the iterative path,
// the preconditioner and the last solution to use as the next warm start.
type Service struct {
	cfg Config

	factKey   uint64
	inverse   [][]float64 // cached dense inverse for the direct path

	precondKey uint64
	precond    []float64 // cached diagonal (Jacobi-style) preconditioner for the iterative path

	solCache map[solKey][]float64
	lastSol  []float64
}

// solKey identifies a cached solution by (matrix identity, hash of b).
type solKey struct{ matrixID, bHash uint64 }

// NewService returns a solver service with the given configuration.
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg, solCache: make(map[solKey][]float64)}
}

// Solve solves A x = b, selecting direct or iterative strategy by size,
// reusing cached factorisation/preconditioner state when matrixID is
// unchanged from the previous call, and reusing a cached solution when bHash
// matches a previous call against the same matrix.
func (s *Service) Solve(A [][]float64, b []float64, matrixID uint64, bHash uint64, warmStart []float64) ([]float64, Stats, error) {
	n := len(A)
	if n == 0 || len(b) != n {
		chk.Panic("solve: inconsistent system size: order=%d len(b)=%d", n, len(b))
	}

	if sol, ok := s.solCache[solKey{matrixID, bHash}]; ok {
		return sol, Stats{CacheHit: true}, nil
	}

	if n < s.cfg.DirectSolverThreshold {
		sol, stats, err := s.solveDirect(A, b, matrixID)
		if err == nil {
			s.cacheSolution(matrixID, bHash, sol)
		}
		return sol, stats, err
	}
	s.inverse = nil
	start := warmStart
	if start == nil {
		start = s.lastSol
	}
	sol, stats, err := s.solveIterative(A, b, matrixID, start)
	if err == nil {
		s.cacheSolution(matrixID, bHash, sol)
		s.lastSol = sol
	}
	return sol, stats, err
}

func (s *Service) cacheSolution(matrixID uint64, bHash uint64, sol []float64) {
	s.factKey = matrixID
	s.solCache[solKey{matrixID, bHash}] = sol
}

// InvalidateSolutions clears the cached solutions without discarding the
// factorisation/preconditioner, per spec.md §7 class 2: a recoverable
// numerical failure invalidates the solution cache but the matrix stays
// structurally valid.
func (s *Service) InvalidateSolutions() {
	s.solCache = make(map[solKey][]float64)
}

// LastInverse returns the dense inverse cached by the most recent direct
// solve, or nil if the last solve used the iterative path (or none has run
// yet). Callers use it with ConditionEstimate.
func (s *Service) LastInverse() [][]float64 { return s.inverse }

// ConditionEstimate returns a cheap estimate of cond(A) = ||A|| * ||A^-1||:
// the largest-magnitude entry of A times the largest-magnitude entry of the
// cached inverse. It runs no power iteration and is not an upper bound on
// cond(A). It returns NaN when no inverse is available.
func ConditionEstimate(A [][]float64, inverse [][]float64) float64 {
	if inverse == nil {
		return math.NaN()
	}
	return la.MatLargest(A, 1) * la.MatLargest(inverse, 1)
}
