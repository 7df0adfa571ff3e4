// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math"
	"sort"
)

// Principal2D returns the in-plane principal stresses sigma1 >= sigma3 and
// the angle (degrees, measured from the X axis) of the sigma1 direction,
// from the in-plane stress state (sxx, syy, sxy). Tension is positive,
// matching the convention used throughout this package.
func Principal2D(sxx, syy, sxy float64) (sigma1, sigma3, angleDeg float64) {
	avg := (sxx + syy) / 2
	radius := math.Hypot((sxx-syy)/2, sxy)
	sigma1 = avg + radius
	sigma3 = avg - radius
	angleDeg = 0.5 * math.Atan2(2*sxy, sxx-syy) * 180 / math.Pi
	return
}

// Principal3D returns the three principal stresses of the plane-strain
// state (sxx, syy, sxy, szz), ordered sigma1 >= sigma2 >= sigma3. Because
// the out-of-plane shear components vanish under plane strain, szz is
// already a principal value; the other two come from the in-plane block.
func Principal3D(sxx, syy, sxy, szz float64) (sigma1, sigma2, sigma3 float64) {
	s1, s3, _ := Principal2D(sxx, syy, sxy)
	vals := []float64{s1, szz, s3}
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	return vals[0], vals[1], vals[2]
}
