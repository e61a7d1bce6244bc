// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import "math"

// InsertSurficialFront creates a new front at the surface of the top layer and returns the
// amount of water that entered the soil [cm]; the remainder stays on the surface
//  water -- water available at the surface during this substep [cm]
//  The front reaches the dry depth Zd = ½(τ + √(τ² + 4τG)), τ = dt Ksat / (θe - θ), and
//  its moisture is θ + water/Zd, limited to θe
func (o *Column) InsertSurficialFront(water, dt float64) (infiltrated float64, err error) {
	if !(water > 0) {
		return
	}
	lay := o.Layers[0]
	sp := lay.Soil
	top := lay.Fronts[0]
	θ := top.Theta
	Δθ := sp.ThetaE - θ
	if Δθ <= DthetaMin {
		return
	}
	zdry := sp.DryDepth(θ, dt, o.FrozenFactor(0), top.Depth-lay.Top, o.Glb.UseClosedFormG, o.Glb.Nint)
	if math.IsNaN(zdry) || math.IsInf(zdry, 0) {
		return 0, &NonFiniteFluxError{Timestep: -1, Substep: -1, Layer: 0, Front: 0, Quantity: "dry depth", Value: zdry}
	}
	if zdry <= 0 {
		return
	}
	θnew := sp.ThetaE
	infiltrated = zdry * Δθ
	if infiltrated > water {
		θnew = θ + water/zdry
		infiltrated = water
	}
	f := newFront(lay, lay.Top+zdry, θnew, false)
	f.K = sp.HydraulicConductivity(f.Theta, o.FrozenFactor(0))
	lay.insert(0, f)
	return
}

// InfiltrationCapacity computes the Green-Ampt capacity of the surface front [cm/h]
//  ponded -- ponded depth [cm]
func (o *Column) InfiltrationCapacity(ponded float64) (fp float64, err error) {
	lay := o.Layers[0]
	sp := lay.Soil
	top := lay.Fronts[0]
	θbelow := top.Theta
	if !top.ToBottom {
		θbelow = lay.Fronts[1].Theta
	}
	fp = sp.InfiltrationCapacity(θbelow, top.Depth, ponded, o.FrozenFactor(0), o.Glb.UseClosedFormG, o.Glb.Nint)
	if math.IsNaN(fp) || math.IsInf(fp, 0) || fp < 0 {
		return 0, &NonFiniteFluxError{Timestep: -1, Substep: -1, Layer: 0, Front: 0, Quantity: "infiltration capacity", Value: fp}
	}
	return
}
