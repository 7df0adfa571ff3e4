// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// ApplyInSituExcavation sets every non-ground-surface element's boundary
// condition to the traction-free-surface excavation condition: the
// element carries BCTraction with BCNormal/BCShear equal to the negative
// of the in-situ stress resolved onto its own normal and tangent. Solving
// the resulting system and adding the uniform in-situ stress back onto the
// BEM-induced field recovers the total stress state around an excavation
// made instantaneously in a pre-stressed rock mass, the standard
// "stress-relief" boundary-element idealisation. Ground-surface elements
// are left untouched (typically already traction-free).
func ApplyInSituExcavation(elements []Element, sigmaXX0, sigmaYY0, sigmaXY0 float64) {
	for i := range elements {
		e := &elements[i]
		if e.IsGroundSurface {
			continue
		}
		cosB, sinB := e.DirectionCosines()
		nx, ny := -sinB, cosB
		tx, ty := cosB, sinB
		tractionX := sigmaXX0*nx + sigmaXY0*ny
		tractionY := sigmaXY0*nx + sigmaYY0*ny
		e.BC = BCTraction
		e.BCNormal = -(tractionX*nx + tractionY*ny)
		e.BCShear = -(tractionX*tx + tractionY*ty)
	}
}
