// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// VanGen implements van Genuchten's model
//  Se(ψ) = [1 + (α ψ)ⁿ]⁻ᵐ
type VanGen struct {

	// parameters
	α, m, n float64 // parameters
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Init initialises model
//  m == 0 (not given) => m = 1 - 1/n (Mualem restriction)
func (o *VanGen) Init(prms dbf.Params) (err error) {
	o.m = 0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "alpha", "alp":
			o.α = p.V
		case "m":
			o.m = p.V
		case "n":
			o.n = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.α <= 0 {
		return chk.Err("vg: alpha must be positive. %g is invalid\n", o.α)
	}
	if o.n <= 1 {
		return chk.Err("vg: n must be greater than 1. %g is invalid\n", o.n)
	}
	if o.m == 0 {
		o.m = 1.0 - 1.0/o.n
	}
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "alpha", V: 0.0193},
		&dbf.P{N: "n", V: 1.41},
	}
}

// Se computes Se directly from ψ
func (o VanGen) Se(psi float64) float64 {
	if psi <= 0 {
		return 1
	}
	c := math.Pow(o.α*psi, o.n)
	return math.Pow(1+c, -o.m)
}

// Psi computes ψ directly from Se
func (o VanGen) Psi(se float64) float64 {
	se = clampSe(se)
	if se >= 1 {
		return 0
	}
	if se <= 0 {
		return math.Inf(1)
	}
	return math.Pow(math.Pow(se, -1.0/o.m)-1.0, 1.0/o.n) / o.α
}

// AirEntry returns zero; the curve has no air-entry value
func (o VanGen) AirEntry() float64 {
	return 0
}

// Shape returns m and the equivalent Brooks-Corey λ = m n
func (o VanGen) Shape() (m, λ float64) {
	return o.m, o.m * o.n
}
