// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"time"

	"github.com/cpmech/gosl/la"
)

// solveDirect factors A by partial-pivot Gauss-Jordan inversion (the same
// la.MatInv routine the teacher's shp/algos.go uses to invert element
// Jacobians) and caches the inverse so subsequent right-hand sides against
// the same matrix reuse the factorisation, per spec.md §4.4.
func (s *Service) solveDirect(A [][]float64, b []float64, matrixID uint64) ([]float64, Stats, error) {
	start := time.Now()
	if s.inverse == nil || s.factKey != matrixID {
		n := len(A)
		ai := la.MatAlloc(n, n)
		_, err := la.MatInv(ai, A, 1e-13)
		if err != nil {
			return nil, Stats{}, &ErrSingular{Cause: err}
		}
		s.inverse = ai
		s.factKey = matrixID
	}
	x := make([]float64, len(b))
	la.MatVecMul(x, 1, s.inverse, b)
	return x, Stats{Mode: Direct, SolveTimeSec: time.Since(start).Seconds()}, nil
}
