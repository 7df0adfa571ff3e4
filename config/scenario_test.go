// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestScenarioUnmarshalAndConvert(tst *testing.T) {
	chk.PrintTitle("ScenarioUnmarshalAndConvert")
	raw := `{
		"boundaries": [{"vertices": [{"x":0,"y":0},{"x":10,"y":0},{"x":10,"y":10},{"x":0,"y":10}]}],
		"material": {"name":"rock","E":20000,"nu":0.25,"rho":2700},
		"targetElementCount": 40,
		"elementOrder": 1,
		"coarseNx": 5,
		"coarseNy": 7,
		"inSituSxx": -10,
		"inSituSyy": -20
	}`
	var s Scenario
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(s.Boundaries) != 1 || len(s.Boundaries[0].Vertices) != 4 {
		tst.Fatalf("expected one 4-vertex boundary, got %+v", s.Boundaries)
	}
	if s.CoarseNx != 5 || s.CoarseNy != 7 {
		tst.Fatalf("expected independently-tagged CoarseNx/CoarseNy, got %d/%d", s.CoarseNx, s.CoarseNy)
	}

	cfg, err := s.ToBemConfig()
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Boundaries) != 1 {
		tst.Fatalf("expected one boundary in the converted config, got %d", len(cfg.Boundaries))
	}
	if cfg.Material.E != 20000 {
		tst.Fatalf("expected E=20000, got %v", cfg.Material.E)
	}
	if cfg.InSitu == nil {
		tst.Fatal("expected a non-nil InSitu when inSituSxx/inSituSyy are set")
	}
	chk.Scalar(tst, "InSitu.Sxx", 1e-12, cfg.InSitu.Sxx, -10.0)
}

func TestScenarioToBemConfigRejectsInvalidMaterial(tst *testing.T) {
	chk.PrintTitle("ScenarioToBemConfigRejectsInvalidMaterial")
	s := Scenario{Material: MaterialInput{Name: "bad", E: -1, Nu: 0.25}}
	_, err := s.ToBemConfig()
	if err == nil {
		tst.Fatal("expected an error for a negative Young's modulus")
	}
}
