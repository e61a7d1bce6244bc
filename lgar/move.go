// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import "math"

// dzdt computes the velocity of non-bottom front j of layer l [cm/h]
//  dZ/dt = Keff / (θj - θj+1) (1 + (G + hp) / Z)
//  Keff is the harmonic mean of the conductivities of the layers above (at their bottom fronts)
//  and K(θj) over the span of the front in its own layer; hp only acts on the surface front
func (o *Column) dzdt(l, j int, ponded float64) (v float64, err error) {
	lay := o.Layers[l]
	f, next := lay.Fronts[j], lay.Fronts[j+1]
	Δθ := f.Theta - next.Theta
	Z := f.Depth
	if Δθ <= DthetaMin || Z <= 0 {
		return 0, nil
	}

	// effective conductivity
	sum := 0.0
	for i := 0; i < l; i++ {
		above := o.Layers[i]
		K := above.Soil.HydraulicConductivity(above.Last().Theta, o.FrozenFactor(i))
		if K <= 0 {
			return 0, nil
		}
		sum += above.Thickness() / K
	}
	Kf := lay.Soil.HydraulicConductivity(f.Theta, o.FrozenFactor(l))
	if Kf <= 0 {
		return 0, nil
	}
	sum += (f.Depth - lay.Top) / Kf
	Keff := Kf
	if sum > 0 {
		Keff = Z / sum
	}

	// capillary drive and ponding
	G := lay.Soil.Geff(next.Theta, f.Theta, o.Glb.UseClosedFormG, o.Glb.Nint)
	hp := 0.0
	if l == 0 && j == 0 {
		hp = ponded
	}
	v = Keff / Δθ * (1.0 + (G+hp)/Z)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, &NonFiniteFluxError{Timestep: -1, Substep: -1, Layer: l, Front: j, Quantity: "dZ/dt", Value: v}
	}
	return
}

// CalcDzDt computes the velocities of all fronts; bottom fronts do not move
//  ponded -- ponded depth acting on the surface front [cm]
func (o *Column) CalcDzDt(ponded float64) (err error) {
	for l, lay := range o.Layers {
		for j, f := range lay.Fronts {
			if j == len(lay.Fronts)-1 {
				f.DzDt = 0
				continue
			}
			f.DzDt, err = o.dzdt(l, j, ponded)
			if err != nil {
				return
			}
		}
	}
	return
}

// MoveWettingFronts advances all fronts over one substep and returns the water that could not
// be stored (it must go back to the surface) [cm]
//  infiltration -- water entering the surface of the top layer during this substep [cm]
//  ponded       -- ponded depth acting on the surface front [cm]
//  The infiltration is added to the surface front of the top layer or, if the top layer has a
//  single front, to its bottom front. Each non-bottom front keeps its stacked area
//  (θj - θj+1)(dj - top) while moving down; thus, moisture decreases as the front deepens.
//  A front that would exceed θe keeps θe and deepens.
func (o *Column) MoveWettingFronts(infiltration, ponded, dt float64) (rejected float64, err error) {
	err = o.CalcDzDt(ponded)
	if err != nil {
		return
	}
	for l, lay := range o.Layers {
		n := len(lay.Fronts)
		sp := lay.Soil

		// areas and new depths
		A := make([]float64, n-1)
		for j := 0; j < n-1; j++ {
			A[j] = lay.area(j)
			f := lay.Fronts[j]
			f.SetDepth(f.Depth + f.DzDt*dt)
		}

		// infiltration
		if l == 0 && infiltration > 0 {
			if n > 1 {
				A[0] += infiltration
			} else {
				f := lay.Fronts[0]
				h := lay.Thickness()
				θ := math.Min(f.Theta+infiltration/h, sp.ThetaE)
				rejected += infiltration - (θ-f.Theta)*h
				f.Theta = θ
			}
		}

		// moisture contents from the bottom up
		for j := n - 2; j >= 0; j-- {
			f := lay.Fronts[j]
			θbelow := lay.Fronts[j+1].Theta
			span := f.Depth - lay.Top
			if span <= 0 {
				rejected += A[j]
				f.Theta = θbelow
				continue
			}
			θ := θbelow + A[j]/span
			if θ > sp.ThetaE {
				θ = sp.ThetaE
				if sp.ThetaE-θbelow > DthetaMin {
					f.SetDepth(lay.Top + A[j]/(sp.ThetaE-θbelow))
				}
			}
			if θ < sp.ThetaR {
				θ = sp.ThetaR
				if θbelow-sp.ThetaR > DthetaMin {
					f.SetDepth(lay.Top + A[j]/(sp.ThetaR-θbelow))
				}
			}
			f.Theta = θ
			rejected += A[j] - lay.area(j)
		}
	}
	return
}
