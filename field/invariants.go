// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "math"

// Invariants holds the stress invariants spec.md §4.6 asks for, computed
// from the three principal stresses.
type Invariants struct {
	I1        float64 // first invariant, trace of the stress tensor
	J2        float64 // second deviatoric invariant
	LodeAngle float64 // radians, in [-pi/6, pi/6]
}

// ComputeInvariants derives I1, J2 and the Lode angle from the ordered
// principal stresses sigma1 >= sigma2 >= sigma3.
func ComputeInvariants(sigma1, sigma2, sigma3 float64) Invariants {
	i1 := sigma1 + sigma2 + sigma3
	mean := i1 / 3
	s1, s2, s3 := sigma1-mean, sigma2-mean, sigma3-mean
	j2 := 0.5 * (s1*s1 + s2*s2 + s3*s3)
	j3 := s1 * s2 * s3

	var lode float64
	if j2 > 0 {
		arg := (3 * math.Sqrt(3) / 2) * j3 / math.Pow(j2, 1.5)
		if arg > 1 {
			arg = 1
		} else if arg < -1 {
			arg = -1
		}
		lode = math.Asin(arg) / 3
	}
	return Invariants{I1: i1, J2: j2, LodeAngle: lode}
}
