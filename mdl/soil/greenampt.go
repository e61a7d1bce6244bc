// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Geff computes the effective capillary drive G [cm] across a front wetting the soil from θi to θf
//  closedForm == false:
//    G = ∫ kr(ψ) dψ  from ψf to ψi   (trapezoidal rule on nint log-spaced intervals)
//    ψf = h_min when θf is saturated
//  closedForm == true (Brooks-Corey form):
//    G = Hc (Se_f^(3+1/λ) - Se_i^(3+1/λ)) / (1 - Se_i^(3+1/λ))   with   Hc = ψb (2+3λ)/(1+3λ)
//  Returns 0 if θi ≥ θf
func (o *Params) Geff(θi, θf float64, closedForm bool, nint int) float64 {
	if θi >= θf {
		return 0
	}
	if closedForm {
		hc := o.PsiB * (2.0 + 3.0*o.Lambda) / (1.0 + 3.0*o.Lambda)
		e := 3.0 + 1.0/o.Lambda
		sei := math.Pow(o.Se(θi), e)
		sef := math.Pow(o.Se(θf), e)
		g := hc * (sef - sei) / (1.0 - sei)
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return hc
		}
		return g
	}
	if nint < 1 {
		nint = NintDef
	}
	ψi := o.PotentialFromMoisture(θi)
	ψf := o.Hmin
	if !o.IsSaturated(θf) {
		ψf = o.PotentialFromMoisture(θf)
	}
	ψf = math.Max(ψf, HminDef)
	if ψi <= ψf {
		return 0
	}
	X := utl.LinSpace(math.Log(ψf), math.Log(ψi), nint+1)
	g := 0.0
	ψa := ψf
	ka := o.Cond.Kr(o.Reten.Se(ψa))
	for k := 1; k <= nint; k++ {
		ψb := math.Exp(X[k])
		kb := o.Cond.Kr(o.Reten.Se(ψb))
		g += 0.5 * (ka + kb) * (ψb - ψa)
		ψa, ka = ψb, kb
	}
	if math.IsNaN(g) || math.IsInf(g, 0) || g < 0 {
		return 0
	}
	return g
}

// InfiltrationCapacity computes the Green-Ampt infiltration capacity [cm/h]
//  fp = Ksat ff (1 + (G + hp) / Z)
//  θbelow -- moisture content ahead of (below) the surface front
//  depth  -- depth Z of the surface front
//  ponded -- ponded depth hp
//  Returns 0 if the denominator vanishes or the result is not finite
func (o *Params) InfiltrationCapacity(θbelow, depth, ponded, frozenFactor float64, closedForm bool, nint int) float64 {
	if depth <= 0 {
		return 0
	}
	g := o.Geff(θbelow, o.ThetaE, closedForm, nint)
	fp := o.Ksat * frozenFactor * (1.0 + (g+ponded)/depth)
	if math.IsNaN(fp) || math.IsInf(fp, 0) || fp < 0 {
		return 0
	}
	return fp
}

// DryDepth computes the depth of a new surface front over one substep dt [h] (La Follette et al.)
//  τ = dt Ksat ff / (θe - θ)
//  Zdry = ½ (τ + √(τ² + 4 τ G))
//  The result is limited to maxDepth. Returns 0 if θ ≥ θe
func (o *Params) DryDepth(θ, dt, frozenFactor, maxDepth float64, closedForm bool, nint int) float64 {
	Δθ := o.ThetaE - θ
	if Δθ <= 0 {
		return 0
	}
	g := o.Geff(θ, o.ThetaE, closedForm, nint)
	τ := dt * o.Ksat * frozenFactor / Δθ
	z := 0.5 * (τ + math.Sqrt(τ*τ+4.0*τ*g))
	if math.IsNaN(z) || z < 0 {
		return 0
	}
	return math.Min(z, maxDepth)
}
