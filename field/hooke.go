// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"github.com/cpmech/gosl/tsr"

	"github.com/rockmech/bemcore/material"
)

// HookeStressToStrain converts a plane-strain stress state to its strain
// state via the isotropic compliance, in the Mandel basis tsr.Im uses
// throughout the teacher's msolid constitutive models (e.g.
// msolid.SmallElasticity.CalcD builds the same isotropic tensor from
// tsr.Im/tsr.Psd). The shear component carries tsr.SQ2 in and out of the
// Mandel representation.
func HookeStressToStrain(sxx, syy, szz, sxy float64, mat material.Derived) (exx, eyy, ezz, exy float64) {
	sigma := [4]float64{sxx, syy, szz, sxy * tsr.SQ2}
	tr := sigma[0] + sigma[1] + sigma[2]
	var eps [4]float64
	for i := 0; i < 4; i++ {
		eps[i] = (1+mat.Nu)/mat.E*sigma[i] - mat.Nu/mat.E*tr*tsr.Im[i]
	}
	return eps[0], eps[1], eps[2], eps[3] / tsr.SQ2
}

// HookeStrainToStress converts a strain state back to stress via the
// isotropic stiffness, the inverse of HookeStressToStrain.
func HookeStrainToStress(exx, eyy, ezz, exy float64, mat material.Derived) (sxx, syy, szz, sxy float64) {
	eps := [4]float64{exx, eyy, ezz, exy * tsr.SQ2}
	trEps := eps[0] + eps[1] + eps[2]
	lambda := mat.E * mat.Nu / ((1 + mat.Nu) * (1 - 2*mat.Nu))
	var sigma [4]float64
	for i := 0; i < 4; i++ {
		sigma[i] = lambda*trEps*tsr.Im[i] + 2*mat.G*eps[i]
	}
	return sigma[0], sigma[1], sigma[2], sigma[3] / tsr.SQ2
}
