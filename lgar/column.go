// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lgar implements the Layered Green-Ampt with Redistribution (LGAR) method: a layered soil
// column is partitioned by wetting fronts (depth/moisture pairs) that are created by rain, move
// according to Green-Ampt velocities, merge, cross layer boundaries and leave the domain
//  References:
//   [1] La Follette P, Ogden FL and Jan A (2023) Layered Green and Ampt infiltration with
//       redistribution. Water Resources Research, 59(7)
//   [2] Ogden FL, Lai W, Steinke RC, Zhu J, Talbot CA and Wilson JL (2015) A new general 1-D
//       vadose zone flow solution method. Water Resources Research, 51(6), 4282-4300
package lgar

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/lgar/mdl/soil"
)

// Column holds the layers of a soil column (the layer stack)
type Column struct {
	Glb    *Global        // global parameters
	Soils  []*soil.Params // soil types
	Layers []*Layer       // layers from top to bottom
	frozen []float64      // frozen factor of each layer
}

// NewColumn returns a new column with one front per layer at the initial potential
func NewColumn(glb *Global, soils []*soil.Params) (o *Column, err error) {
	if glb == nil {
		return nil, NewConfigurationError("global", "global parameters are missing")
	}
	err = glb.Init(len(soils))
	if err != nil {
		return
	}
	o = &Column{Glb: glb, Soils: soils}
	nl := glb.NumLayers()
	o.Layers = make([]*Layer, nl)
	o.frozen = make([]float64, nl)
	top := 0.0
	for i := 0; i < nl; i++ {
		sp := soils[glb.LayerSoilType[i]]
		if sp == nil || sp.Reten == nil || sp.Cond == nil {
			return nil, NewConfigurationError("soil", "soil type %d of layer %d is not initialised", glb.LayerSoilType[i], i)
		}
		lay := &Layer{Index: i, Top: top, Bottom: glb.CumDepth[i], SoilType: glb.LayerSoilType[i], Soil: sp}
		lay.ThetaWp = sp.ThetaWp
		if lay.ThetaWp == 0 {
			lay.ThetaWp = sp.MoistureFromPotential(glb.WiltingPointPsi)
		}
		θ := sp.MoistureFromPotential(glb.InitialPsi)
		lay.Fronts = make([]*Front, 0, 8)
		lay.Fronts = append(lay.Fronts, newFront(lay, lay.Bottom, θ, true))
		o.Layers[i] = lay
		o.frozen[i] = 1
		if glb.FrozenFactor != nil {
			o.frozen[i] = glb.FrozenFactor[i]
		}
		top = lay.Bottom
	}
	o.UpdatePsi()
	return
}

// NumLayers returns the number of layers
func (o *Column) NumLayers() int {
	return len(o.Layers)
}

// FrozenFactor returns the factor multiplying the conductivity of layer l
//  returns 1 if the frozen soil coupling is disabled
func (o *Column) FrozenFactor(l int) float64 {
	if !o.Glb.SftCoupled {
		return 1
	}
	return o.frozen[l]
}

// SetFrozenFactor sets the factor multiplying the conductivity of layer l; ff ∈ (0,1]
func (o *Column) SetFrozenFactor(l int, ff float64) (err error) {
	if l < 0 || l >= len(o.Layers) {
		return chk.Err("cannot set frozen factor of layer %d: column has %d layers", l, len(o.Layers))
	}
	if !(ff > 0 && ff <= 1) {
		return chk.Err("frozen factor must be in (0,1]. %g is invalid", ff)
	}
	o.frozen[l] = ff
	return
}

// IsSaturated returns whether the topmost front is saturated
func (o *Column) IsSaturated() bool {
	return o.Layers[0].Fronts[0].IsSaturated()
}

// NumWettingFronts returns the number of fronts in the column
func (o *Column) NumWettingFronts() (n int) {
	for _, lay := range o.Layers {
		n += len(lay.Fronts)
	}
	return
}

// MassBalance returns the water stored in the column [cm]
func (o *Column) MassBalance() (V float64) {
	for _, lay := range o.Layers {
		V += lay.Volume()
	}
	return
}

// Fronts returns all fronts ordered from the surface down
func (o *Column) Fronts() (fronts []*Front) {
	fronts = make([]*Front, 0, o.NumWettingFronts())
	for _, lay := range o.Layers {
		fronts = append(fronts, lay.Fronts...)
	}
	return
}

// Profile returns the depths and moisture contents of all fronts
func (o *Column) Profile() (depths, thetas []float64) {
	fronts := o.Fronts()
	depths = make([]float64, len(fronts))
	thetas = make([]float64, len(fronts))
	for i, f := range fronts {
		depths[i] = f.Depth
		thetas[i] = f.Theta
	}
	return
}

// SetFronts replaces the fronts of layer l
//  depths must be strictly increasing and the last one must be the bottom of the layer
func (o *Column) SetFronts(l int, depths, thetas []float64) (err error) {
	if l < 0 || l >= len(o.Layers) {
		return chk.Err("cannot set fronts of layer %d: column has %d layers", l, len(o.Layers))
	}
	lay := o.Layers[l]
	n := len(depths)
	if n < 1 || len(thetas) != n {
		return chk.Err("layer %d: %d depths and %d moisture contents are invalid", l, n, len(thetas))
	}
	prev := lay.Top
	for j, d := range depths {
		if !(d > prev) {
			return chk.Err("layer %d: depths must be strictly increasing from %g. d[%d]=%g is invalid", l, lay.Top, j, d)
		}
		prev = d
	}
	if math.Abs(depths[n-1]-lay.Bottom) > DepthTol {
		return chk.Err("layer %d: last depth must be the bottom of the layer %g. %g is invalid", l, lay.Bottom, depths[n-1])
	}
	lay.Fronts = lay.Fronts[:0]
	for j := 0; j < n; j++ {
		d := depths[j]
		if j == n-1 {
			d = lay.Bottom
		}
		f := newFront(lay, d, thetas[j], j == n-1)
		f.K = lay.Soil.HydraulicConductivity(f.Theta, o.FrozenFactor(l))
		lay.Fronts = append(lay.Fronts, f)
	}
	return
}

// UpdatePsi recomputes the potential and conductivity of all fronts from their moisture content
func (o *Column) UpdatePsi() {
	for l, lay := range o.Layers {
		ff := o.FrozenFactor(l)
		for j, f := range lay.Fronts {
			f.Layer = l
			f.ToBottom = j == len(lay.Fronts)-1
			f.ToPotential()
			f.K = lay.Soil.HydraulicConductivity(f.Theta, ff)
		}
	}
}

// CreateSurficialFront decides whether a new front must be created at the surface
//  true only if it did not rain in the previous substep, it rains now and there is no ponded water
func (o *Column) CreateSurficialFront(prevPrecip, precip, ponded float64) bool {
	return prevPrecip <= 0 && precip > 0 && ponded <= 0
}

// CalcWettingFrontFreeDrainage finds the front that supplies the free drainage demand
//  The fronts are visited from the surface down; among the fronts with ψ < psiStart, the one with
//  the largest ψ is selected (the shallower one on ties). A deeper layer is only visited if the
//  bottom front of the layer above is wetter than psiStart. seed is returned if no front qualifies.
func (o *Column) CalcWettingFrontFreeDrainage(psiStart float64, seed *Front) (front *Front) {
	front = seed
	best := math.Inf(-1)
	lim := psiStart * (1.0 - PsiRelTol)
	for _, lay := range o.Layers {
		for _, f := range lay.Fronts {
			if f.Psi < lim && f.Psi > best {
				best = f.Psi
				front = f
			}
		}
		if !(lay.Last().Psi < lim) {
			break
		}
	}
	return
}

// Print prints the fronts
func (o *Column) Print() {
	io.Pf("%5s%5s%16s%16s%16s%16s%8s\n", "layer", "j", "depth", "θ", "ψ", "dZ/dt", "bottom")
	for _, lay := range o.Layers {
		for j, f := range lay.Fronts {
			io.Pf("%5d%5d%16.8f%16.10f%16.6f%16.8f%8v\n", lay.Index, j, f.Depth, f.Theta, f.Psi, f.DzDt, f.ToBottom)
		}
	}
}
