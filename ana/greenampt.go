// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// GreenAmpt computes the cumulative infiltration (F) into a deep homogeneous soil under a constant
// ponded depth (h0) according to the classical Green-Ampt solution
//
//    S    = (G + h0)・Δθ
//    f(F) = Ksat・(1 + S / F)                 infiltration capacity
//    t(F) = (F - S・ln(1 + F / S)) / Ksat      implicit solution for F(t)
//    Z(F) = F / Δθ                            depth of the wetting front
//
type GreenAmpt struct {
	Ksat   float64 // saturated hydraulic conductivity [cm/h]
	G      float64 // capillary drive [cm]
	H0     float64 // ponded depth [cm]
	Dtheta float64 // moisture deficit θe - θi
	S      float64 // sorptive term (G + h0)・Δθ
	Tol    float64 // tolerance for the Newton iterations
	MaxIt  int     // maximum number of Newton iterations
}

// Init initialises this structure
func (o *GreenAmpt) Init(Ksat, G, h0, Δθ float64) {
	if Ksat <= 0 || Δθ <= 0 || G+h0 <= 0 {
		chk.Panic("GreenAmpt: Ksat, Δθ and G+h0 must be positive. Ksat=%g Δθ=%g G+h0=%g are invalid", Ksat, Δθ, G+h0)
	}
	o.Ksat = Ksat
	o.G = G
	o.H0 = h0
	o.Dtheta = Δθ
	o.S = (G + h0) * Δθ
	o.Tol = 1e-12
	o.MaxIt = 50
}

// Time returns the time needed to infiltrate F
func (o GreenAmpt) Time(F float64) float64 {
	return (F - o.S*math.Log1p(F/o.S)) / o.Ksat
}

// Rate returns the infiltration capacity after F has been infiltrated
func (o GreenAmpt) Rate(F float64) float64 {
	if F <= 0 {
		return math.Inf(1)
	}
	return o.Ksat * (1.0 + o.S/F)
}

// Depth returns the depth of the wetting front after F has been infiltrated
func (o GreenAmpt) Depth(F float64) float64 {
	return F / o.Dtheta
}

// Calc computes the cumulative infiltration F(t) with Newton's method
//  the initial guess is the early time (sorptivity) approximation F ≈ √(2 S Ksat t) + Ksat t
func (o GreenAmpt) Calc(t float64) (F float64) {
	if t <= 0 {
		return 0
	}
	F = math.Sqrt(2.0*o.S*o.Ksat*t) + o.Ksat*t
	for it := 0; it < o.MaxIt; it++ {
		r := o.Ksat*t - F + o.S*math.Log1p(F/o.S)
		drdF := -F / (o.S + F)
		δF := -r / drdF
		F += δF
		if F <= 0 {
			F = o.Tol
		}
		if math.Abs(δF) < o.Tol*(1.0+F) {
			return
		}
	}
	chk.Panic("GreenAmpt: Newton iterations did not converge after %d iterations. t=%g F=%g", o.MaxIt, t, F)
	return
}

// Plot plots F(t) and f(t)
func (o GreenAmpt) Plot(dirout, fnkey string, tmax float64, np int) {

	T := utl.LinSpace(0, tmax, np)
	F := make([]float64, np)
	R := make([]float64, np)
	for i, t := range T {
		F[i] = o.Calc(t)
		R[i] = math.Min(o.Rate(F[i]), 10*o.Ksat)
	}

	plt.Subplot(2, 1, 1)
	plt.Plot(T, F, &plt.A{C: "k", Ls: "-"})
	plt.Gll("$t\\,[h]$", "$F\\,[cm]$", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(T, R, &plt.A{C: "r", Ls: "-"})
	plt.Plot([]float64{0, tmax}, []float64{o.Ksat, o.Ksat}, &plt.A{C: "grey", Ls: "--"})
	plt.Gll("$t\\,[h]$", "$f\\,[cm/h]$", nil)

	plt.Save(dirout, fnkey)
}
