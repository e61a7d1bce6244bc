// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements soil-water retention curves relating matric potential ψ (suction
// head in cm, positive) and effective saturation Se = (θ - θr) / (θe - θr)
//  References:
//   [1] van Genuchten MTh (1980) A closed-form equation for predicting the hydraulic conductivity
//       of unsaturated soils. Soil Science Society of America Journal, 44(5), 892-898
//   [2] Brooks RH and Corey AT (1964) Hydraulic properties of porous media. Hydrology Papers 3,
//       Colorado State University, Fort Collins
package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements a retention curve
//  Se(ψ) and Psi(Se) must be inverse of each other for 0 < Se < 1
type Model interface {
	Init(prms dbf.Params) error      // initialises retention model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Se(psi float64) float64          // computes Se = f(ψ)
	Psi(se float64) float64          // computes ψ = f⁻¹(Se)
	AirEntry() float64               // ψ at which Se reaches 1
	Shape() (m, λ float64)           // van Genuchten m and Brooks-Corey λ (equivalent if not native)
}

// New returns new retention model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// clampSe bounds Se to [0,1]
func clampSe(se float64) float64 {
	if se < 0 {
		return 0
	}
	if se > 1 {
		return 1
	}
	return se
}
