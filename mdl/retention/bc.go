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

// BrooksCorey implements Books and Corey' model
//  Se(ψ) = (ψb / ψ)^λ  if ψ > ψb
//  Se(ψ) = 1           otherwise
type BrooksCorey struct {

	// parameters
	λ    float64 // slope coefficient (pore size distribution index)
	psib float64 // bubbling (air-entry) pressure head
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lambda", "lam":
			o.λ = p.V
		case "psib":
			o.psib = p.V
		default:
			return chk.Err("bc: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.λ <= 0 {
		return chk.Err("bc: lambda must be positive. %g is invalid\n", o.λ)
	}
	if o.psib <= 0 {
		return chk.Err("bc: psib must be positive. %g is invalid\n", o.psib)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "lambda", V: 0.3},
		&dbf.P{N: "psib", V: 20.0},
	}
}

// Se computes Se directly from ψ
func (o BrooksCorey) Se(psi float64) float64 {
	if psi <= o.psib {
		return 1
	}
	return math.Pow(o.psib/psi, o.λ)
}

// Psi computes ψ directly from Se
func (o BrooksCorey) Psi(se float64) float64 {
	se = clampSe(se)
	if se >= 1 {
		return o.psib
	}
	if se <= 0 {
		return math.Inf(1)
	}
	return o.psib * math.Pow(se, -1.0/o.λ)
}

// AirEntry returns ψb
func (o BrooksCorey) AirEntry() float64 {
	return o.psib
}

// Shape returns the equivalent van Genuchten m = λ/(λ+1) and λ
func (o BrooksCorey) Shape() (m, λ float64) {
	return o.λ / (o.λ + 1.0), o.λ
}
