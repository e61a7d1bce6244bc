// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package soil implements the hydraulic properties of soil texture classes: moisture content,
// matric potential, hydraulic conductivity and the Green-Ampt closure terms
//  References:
//   [1] Morel-Seytoux HJ, Meyer PD, Nachabe M, Touma J, van Genuchten MTh and Lenhard RJ (1996)
//       Parameter equivalence for the Brooks-Corey and van Genuchten soil characteristics.
//       Water Resources Research, 32(5), 1251-1258
//   [2] La Follette P, Ogden FL and Jan A (2023) Layered Green and Ampt infiltration with
//       redistribution. Water Resources Research, 59(7)
package soil

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/lgar/mdl/conduct"
	"github.com/cpmech/lgar/mdl/retention"
)

// constants
const (
	SeMin     = 1e-10 // smallest effective saturation used to compute potentials
	HminDef   = 0.01  // default minimum potential [cm]
	NintDef   = 120   // default number of intervals in the numerical Geff
	ThetaTol  = 1e-9  // tolerance to consider θ == θe
	PsiWpDef  = 15495 // default wilting point potential [cm] (≈ 1.5 MPa)
	FcRatio   = 0.75  // relative moisture at which AET equals PET (field capacity)
	PsiMaxDef = 1e7   // largest potential reported for dry soil [cm]
)

// Params holds the properties of one soil texture class (SoilParameterSet)
type Params struct {

	// input
	Name      string  // texture name; e.g. "loam"
	ThetaR    float64 // residual moisture content θr
	ThetaE    float64 // saturated (effective) moisture content θe
	ThetaWp   float64 // moisture content at wilting point θwp
	ThetaInit float64 // initial moisture content θinit
	Ksat      float64 // saturated hydraulic conductivity [cm/h]
	Hmin      float64 // minimum potential [cm]
	Alpha     float64 // van Genuchten α [1/cm]; zero for Brooks-Corey soils
	N         float64 // van Genuchten n; zero for Brooks-Corey soils

	// derived
	M      float64 // van Genuchten m (or equivalent)
	Lambda float64 // Brooks-Corey λ (or equivalent)
	PsiB   float64 // bubbling pressure ψb [cm] (or equivalent)

	// models
	Reten retention.Model // retention curve
	Cond  conduct.Model   // relative conductivity
}

// New returns a new set of soil parameters
//  retName  -- retention model name; e.g. "vg" or "bc"
//  condName -- conductivity model name; e.g. "mualem" or "burdine". "" => pair with retention model
//  prms     -- named parameters: theta_r, theta_e, theta_wp, ksat, h_min and the retention parameters
func New(name, retName, condName string, prms dbf.Params) (o *Params, err error) {
	o = new(Params)
	o.Name = name
	o.Hmin = HminDef
	var rprms dbf.Params
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "theta_r":
			o.ThetaR = p.V
		case "theta_e":
			o.ThetaE = p.V
		case "theta_wp":
			o.ThetaWp = p.V
		case "ksat":
			o.Ksat = p.V
		case "h_min":
			o.Hmin = p.V
		case "alpha":
			o.Alpha = p.V
			rprms = append(rprms, p)
		case "n":
			o.N = p.V
			rprms = append(rprms, p)
		default:
			rprms = append(rprms, p)
		}
	}
	if o.ThetaR < 0 || o.ThetaR >= o.ThetaE || o.ThetaE > 1 {
		return nil, chk.Err("soil %q: moisture contents must satisfy 0 ≤ θr < θe ≤ 1. θr=%g θe=%g is invalid", name, o.ThetaR, o.ThetaE)
	}
	if o.Ksat <= 0 {
		return nil, chk.Err("soil %q: Ksat must be positive. %g is invalid", name, o.Ksat)
	}
	if o.Hmin < 0 {
		return nil, chk.Err("soil %q: h_min must not be negative. %g is invalid", name, o.Hmin)
	}
	if o.ThetaWp != 0 && (o.ThetaWp < o.ThetaR || o.ThetaWp > o.ThetaE) {
		return nil, chk.Err("soil %q: θwp=%g must be within [θr, θe]", name, o.ThetaWp)
	}

	// retention model
	o.Reten, err = retention.New(retName)
	if err != nil {
		return nil, err
	}
	err = o.Reten.Init(rprms)
	if err != nil {
		return nil, chk.Err("soil %q: %v", name, err)
	}
	o.M, o.Lambda = o.Reten.Shape()
	o.PsiB = o.Reten.AirEntry()
	if o.PsiB == 0 {
		o.PsiB = bubblingFromVg(o.Alpha, o.M)
	}

	// conductivity model
	if condName == "" {
		condName = "mualem"
		if retName == "bc" {
			condName = "burdine"
		}
	}
	o.Cond, err = conduct.New(condName)
	if err != nil {
		return nil, err
	}
	var cprms dbf.Params
	switch condName {
	case "burdine":
		cprms = append(cprms, &dbf.P{N: "lambda", V: o.Lambda})
	default:
		cprms = append(cprms, &dbf.P{N: "m", V: o.M})
	}
	err = o.Cond.Init(cprms)
	if err != nil {
		return nil, chk.Err("soil %q: %v", name, err)
	}
	return
}

// Prepare sets the initial and wilting point moisture contents from potentials
//  θwp is only computed if it was not given as a parameter
func (o *Params) Prepare(initialPsi, wiltingPointPsi float64) {
	o.ThetaInit = o.MoistureFromPotential(initialPsi)
	if o.ThetaWp == 0 {
		o.ThetaWp = o.MoistureFromPotential(wiltingPointPsi)
	}
}

// Se returns the effective saturation
func (o *Params) Se(θ float64) float64 {
	se := (θ - o.ThetaR) / (o.ThetaE - o.ThetaR)
	if se < 0 {
		return 0
	}
	if se > 1 {
		return 1
	}
	return se
}

// MoistureFromPotential computes θ(ψ) clamped to [θr, θe]
func (o *Params) MoistureFromPotential(psi float64) float64 {
	return o.Clamp(o.ThetaR + (o.ThetaE-o.ThetaR)*o.Reten.Se(psi))
}

// PotentialFromMoisture computes ψ(θ) bounded to [h_min, PsiMaxDef]
//  θ ≥ θe gives the air-entry potential of the retention model
func (o *Params) PotentialFromMoisture(θ float64) float64 {
	se := o.Se(θ)
	var psi float64
	if se >= 1 {
		psi = o.Reten.AirEntry()
	} else {
		psi = o.Reten.Psi(math.Max(se, SeMin))
	}
	return math.Min(math.Max(psi, o.Hmin), PsiMaxDef)
}

// HydraulicConductivity computes K(θ) = Ksat kr(Se) ff
func (o *Params) HydraulicConductivity(θ, frozenFactor float64) float64 {
	return o.Ksat * o.Cond.Kr(o.Se(θ)) * frozenFactor
}

// Clamp bounds θ to [θr, θe]
func (o *Params) Clamp(θ float64) float64 {
	if θ < o.ThetaR {
		return o.ThetaR
	}
	if θ > o.ThetaE {
		return o.ThetaE
	}
	return θ
}

// IsSaturated returns whether θ ≥ θe within tolerance
func (o *Params) IsSaturated(θ float64) bool {
	return θ >= o.ThetaE-ThetaTol
}

// bubblingFromVg computes the Brooks-Corey ψb equivalent to van Genuchten parameters (see [1])
func bubblingFromVg(α, m float64) float64 {
	if α <= 0 || m <= 0 {
		return 0
	}
	p := 1.0 + 2.0/m
	return (p + 3.0) * (147.8 + 8.1*p + 0.092*p*p) / (2.0 * α * p * (p - 1.0) * (55.6 + 7.4*p + p*p))
}
