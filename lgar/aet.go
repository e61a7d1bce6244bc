// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import (
	"math"

	"github.com/cpmech/lgar/mdl/soil"
)

// CalcAET extracts the actual evapotranspiration from the top layer and returns it [cm]
//  demand = PET / (1 + (ψtop/ψ50)³)
//  ψ50 is the potential at θ50 = θwp + ½(θfc - θwp) with θfc = θr + 0.75 (θe - θr)
//  Water is taken from the fronts of the top layer, shallow to deep, never below θwp
func (o *Column) CalcAET(pet float64) (aet float64) {
	if !(pet > 0) {
		return 0
	}
	lay := o.Layers[0]
	sp := lay.Soil
	θwp := sp.MoistureFromPotential(o.Glb.WiltingPointPsi)
	θfc := sp.ThetaR + soil.FcRatio*(sp.ThetaE-sp.ThetaR)
	θ50 := θwp + 0.5*(θfc-θwp)
	ψ50 := sp.PotentialFromMoisture(θ50)
	ψtop := lay.Fronts[0].ToPotential()
	demand := pet / (1.0 + math.Pow(ψtop/ψ50, 3))
	if math.IsNaN(demand) || demand < 0 {
		return 0
	}
	demand = math.Min(demand, pet)

	floor0 := math.Max(lay.ThetaWp, sp.ThetaR)
	n := len(lay.Fronts)
	for j := 0; j < n && aet < demand; j++ {
		f := lay.Fronts[j]
		span := f.Depth - lay.upper(j)
		floor := floor0
		if j < n-1 {
			floor = math.Max(floor, lay.Fronts[j+1].Theta)
		}
		if span <= 0 || f.Theta <= floor {
			continue
		}
		take := math.Min((f.Theta-floor)*span, demand-aet)
		f.Theta -= take / span
		aet += take
	}
	return
}
