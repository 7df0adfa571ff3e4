// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "math"

// StrengthCriterion returns a factor of safety against shear failure given
// the major and minor principal stresses, sigma1 >= sigma3, in the
// tension-positive convention used throughout this package. Implementers
// convert internally to the compression-positive convention their
// closed-form criterion is stated in.
type StrengthCriterion interface {
	Factor(sigma1, sigma3 float64) float64
}

// MohrCoulomb is the linear Mohr-Coulomb criterion, parameterised by
// cohesion and friction angle.
type MohrCoulomb struct {
	Cohesion        float64
	FrictionAngleDeg float64
}

// Factor returns sigma1_failure / sigma1_compressive, the conventional
// Mohr-Coulomb factor of safety. A value below 1 indicates failure.
func (m MohrCoulomb) Factor(sigma1, sigma3 float64) float64 {
	major, minor := -sigma3, -sigma1 // compression-positive major/minor
	phi := m.FrictionAngleDeg * math.Pi / 180
	nphi := math.Tan(math.Pi/4 + phi/2)
	nphi2 := nphi * nphi
	failureStress := minor*nphi2 + 2*m.Cohesion*nphi
	if major <= 0 {
		return math.Inf(1)
	}
	return failureStress / major
}

// HoekBrown is the original (1980) Hoek-Brown criterion for intact rock.
type HoekBrown struct {
	UCS float64 // uniaxial compressive strength of intact rock, sigma_ci
	M   float64 // material constant m
	S   float64 // material constant s (1 for intact rock)
}

// Factor returns sigma1_failure / sigma1_compressive.
func (h HoekBrown) Factor(sigma1, sigma3 float64) float64 {
	major, minor := -sigma3, -sigma1
	if h.UCS <= 0 {
		return math.NaN()
	}
	arg := h.M*minor/h.UCS + h.S
	if arg < 0 {
		arg = 0
	}
	failureStress := minor + h.UCS*math.Sqrt(arg)
	if major <= 0 {
		return math.Inf(1)
	}
	return failureStress / major
}

// GeneralizedHoekBrown is the generalized Hoek-Brown criterion, used for
// jointed rock masses via the Geological Strength Index reduction of mb, s
// and a from the intact-rock m.
type GeneralizedHoekBrown struct {
	UCS float64
	Mb  float64
	S   float64
	A   float64
}

// Factor returns sigma1_failure / sigma1_compressive.
func (g GeneralizedHoekBrown) Factor(sigma1, sigma3 float64) float64 {
	major, minor := -sigma3, -sigma1
	if g.UCS <= 0 {
		return math.NaN()
	}
	arg := g.Mb*minor/g.UCS + g.S
	if arg < 0 {
		arg = 0
	}
	failureStress := minor + g.UCS*math.Pow(arg, g.A)
	if major <= 0 {
		return math.Inf(1)
	}
	return failureStress / major
}
