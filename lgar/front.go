// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import "github.com/cpmech/lgar/mdl/soil"

// Front holds the data of one wetting front (WettingFront)
//  A front marks a step change in moisture content: θ holds from the front above (or the top of
//  the layer) down to Depth. The deepest front of a layer sits at the bottom of the layer.
type Front struct {
	Depth    float64      // depth measured from the surface [cm]
	Theta    float64      // moisture content θ
	Psi      float64      // matric potential ψ [cm]
	K        float64      // hydraulic conductivity K(θ) [cm/h]
	DzDt     float64      // velocity of the front [cm/h]
	Layer    int          // index of the owning layer
	SoilType int          // index of the soil type of the owning layer
	ToBottom bool         // deepest front of its layer
	soil     *soil.Params // soil of the owning layer
}

// newFront returns a new front in layer lay with moisture computed from ψ
func newFront(lay *Layer, depth, θ float64, toBottom bool) (o *Front) {
	o = &Front{Depth: depth, Layer: lay.Index, SoilType: lay.SoilType, ToBottom: toBottom, soil: lay.Soil}
	o.SetMoisture(θ)
	o.ToPotential()
	return
}

// SetDepth sets the depth of the front
func (o *Front) SetDepth(depth float64) {
	o.Depth = depth
}

// SetMoisture sets θ clamped to [θr, θe]
func (o *Front) SetMoisture(θ float64) {
	o.Theta = o.soil.Clamp(θ)
}

// IsSaturated returns whether θ ≥ θe within tolerance
func (o *Front) IsSaturated() bool {
	return o.soil.IsSaturated(o.Theta)
}

// ToPotential updates and returns ψ(θ)
func (o *Front) ToPotential() float64 {
	o.Psi = o.soil.PotentialFromMoisture(o.Theta)
	return o.Psi
}

// ToMoisture updates and returns θ(ψ)
func (o *Front) ToMoisture() float64 {
	o.Theta = o.soil.MoistureFromPotential(o.Psi)
	return o.Theta
}

// moveTo re-parents the front into layer lay
func (o *Front) moveTo(lay *Layer) {
	o.Layer = lay.Index
	o.SoilType = lay.SoilType
	o.soil = lay.Soil
}
