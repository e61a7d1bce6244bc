// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import "math"

// WettingFrontsCrossLayerBoundary moves the fronts that passed the bottom of their layer into the
// layer below and returns the water that could not be stored in any layer below [cm]
//  The deepest front past the bottom becomes the new bottom front of its layer. The water it
//  carried below the boundary, E = (θj - θb)(dj - bottom), enters the next layer at the same
//  potential: θ' = θ(ψj) in the new soil
func (o *Column) WettingFrontsCrossLayerBoundary() (flux float64) {
	nl := len(o.Layers)
	for l := 0; l < nl-1; l++ {
		lay := o.Layers[l]
		for len(lay.Fronts) > 1 {
			n := len(lay.Fronts)
			f, bot := lay.Fronts[n-2], lay.Fronts[n-1]
			if f.Depth <= lay.Bottom {
				break
			}
			ψ := lay.Soil.PotentialFromMoisture(f.Theta)
			if f.Theta <= bot.Theta {
				before := lay.Volume()
				lay.remove(n - 2)
				rest := lay.addToLast(before - lay.Volume())
				flux += o.deposit(l+1, rest, bot.Psi)
				continue
			}
			E := (f.Theta - bot.Theta) * (f.Depth - lay.Bottom)
			f.SetDepth(lay.Bottom)
			f.ToBottom = true
			lay.remove(n - 1)
			flux += o.deposit(l+1, E, ψ)
		}
	}
	return
}

// deposit stores E [cm] at the top of layer l with potential ψ and returns what could not be stored
func (o *Column) deposit(l int, E, ψ float64) (surplus float64) {
	if E <= 0 {
		return 0
	}
	if l >= len(o.Layers) {
		return E
	}
	lay := o.Layers[l]
	sp := lay.Soil
	k := lay.Fronts[0]
	θnew := sp.MoistureFromPotential(ψ)

	// new front at the top of the layer
	if θnew-k.Theta > DthetaMin {
		d := lay.Top + E/(θnew-k.Theta)
		f := newFront(lay, d, θnew, false)
		f.K = sp.HydraulicConductivity(f.Theta, o.FrozenFactor(l))
		lay.insert(0, f)
		return 0
	}

	// add to the bottom front
	if len(lay.Fronts) == 1 {
		surplus = lay.addToLast(E)
		return o.deposit(l+1, surplus, ψ)
	}

	// add to the top front
	below := lay.Fronts[1].Theta
	A := lay.area(0) + E
	span := k.Depth - lay.Top
	θ := below + A/span
	if θ > sp.ThetaE {
		θ = sp.ThetaE
		if sp.ThetaE-below > DthetaMin {
			k.SetDepth(lay.Top + A/(sp.ThetaE-below))
		}
	}
	k.Theta = math.Max(θ, sp.ThetaR)
	surplus = A - lay.area(0)
	return o.deposit(l+1, surplus, ψ)
}

// WettingFrontCrossDomainBoundary removes the fronts of the deepest layer that passed the bottom
// of the column and returns the water that left the domain [cm]
//  The flux is the water above the bottom front held by the removed front: (θj - θb)(dj - dj-1)
func (o *Column) WettingFrontCrossDomainBoundary() (flux float64) {
	lay := o.Layers[len(o.Layers)-1]
	for len(lay.Fronts) > 1 {
		n := len(lay.Fronts)
		f, bot := lay.Fronts[n-2], lay.Fronts[n-1]
		if f.Depth <= lay.Bottom {
			break
		}
		before := lay.Volume()
		lay.remove(n - 2)
		if f.Theta < bot.Theta {
			flux += lay.addToLast(before - lay.Volume())
			continue
		}
		flux += before - lay.Volume()
	}
	return
}

// FreeDrainage drains the bottom of the column under a unit gradient and returns the water that
// left the domain [cm]
//  The demand K(θ) dt is set by the deepest front of the deepest layer and is taken from the
//  supplying front (see CalcWettingFrontFreeDrainage); its moisture does not fall below θr.
//  supply == nil means the deepest front
func (o *Column) FreeDrainage(dt float64, supply *Front) (flux float64) {
	nl := len(o.Layers)
	deepest := o.Layers[nl-1].Last()
	demand := o.Layers[nl-1].Soil.HydraulicConductivity(deepest.Theta, o.FrozenFactor(nl-1)) * dt
	if !(demand > 0) {
		return 0
	}
	if supply == nil {
		supply = deepest
	}
	for _, lay := range o.Layers {
		for j, f := range lay.Fronts {
			if f != supply {
				continue
			}
			span := f.Depth - lay.upper(j)
			if span <= 0 {
				return 0
			}
			before := lay.Volume()
			f.SetMoisture(f.Theta - demand/span)
			return before - lay.Volume()
		}
	}
	return 0
}
