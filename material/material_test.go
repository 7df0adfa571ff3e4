// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestMaterialValidate(tst *testing.T) {
	chk.PrintTitle("MaterialValidate")
	good := Material{Name: "granite", E: 50000, Nu: 0.25, Rho: 2700}
	if err := good.Validate(); err != nil {
		tst.Fatalf("expected valid material, got: %v", err)
	}
	bad := Material{Name: "bad", E: -1, Nu: 0.25}
	if err := bad.Validate(); err == nil {
		tst.Fatal("expected error for non-positive E")
	}
	bad2 := Material{Name: "bad2", E: 1000, Nu: 0.5}
	if err := bad2.Validate(); err == nil {
		tst.Fatal("expected error for nu at the (-1,0.5) boundary")
	}
}

func TestDerivePlaneStrain(tst *testing.T) {
	chk.PrintTitle("DerivePlaneStrain")
	m := Material{Name: "rock", E: 20000, Nu: 0.25, Rho: 2700}
	d := Derive(m, PlaneStrain)
	chk.Scalar(tst, "G", 1e-9, d.G, 20000/(2*1.25))
	chk.Scalar(tst, "kappa", 1e-12, d.Kappa, 3-4*0.25)
	if d.Cs <= 0 || math.IsNaN(d.Cs) {
		tst.Fatalf("expected positive finite Cs, got %v", d.Cs)
	}
	if d.Cd <= 0 || math.IsNaN(d.Cd) {
		tst.Fatalf("expected positive finite Cd, got %v", d.Cd)
	}
}

func TestDerivePlaneStressNuSubstitution(tst *testing.T) {
	chk.PrintTitle("DerivePlaneStressNuSubstitution")
	m := Material{Name: "rock", E: 20000, Nu: 0.3}
	d := Derive(m, PlaneStress)
	wantNuEff := 0.3 / 1.3
	chk.Scalar(tst, "nuEff", 1e-12, d.Nu, wantNuEff)
	chk.Scalar(tst, "kappa", 1e-12, d.Kappa, 3-4*wantNuEff)
}

func TestGetPrms(tst *testing.T) {
	chk.PrintTitle("GetPrms")
	m := Material{Name: "rock", E: 20000, Nu: 0.25, Rho: 2700}
	prms := m.GetPrms()
	if len(prms) != 3 {
		tst.Fatalf("expected 3 parameters, got %d", len(prms))
	}
	chk.Scalar(tst, "E prm", 1e-12, prms[0].V, 20000)
}
