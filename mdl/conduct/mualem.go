// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Mualem implements Mualem's model with the van Genuchten closed form
//  kr = Seˡ [1 - (1 - Se^(1/m))ᵐ]²
type Mualem struct {
	m float64 // van Genuchten m
	l float64 // pore connectivity
}

// add model to factory
func init() {
	allocators["mualem"] = func() Model { return new(Mualem) }
}

// Init initialises this structure
func (o *Mualem) Init(prms dbf.Params) (err error) {
	o.l = 0.5
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "m":
			o.m = p.V
		case "l":
			o.l = p.V
		default:
			return chk.Err("mualem: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.m <= 0 || o.m >= 1 {
		return chk.Err("mualem: m must be in (0,1). %g is invalid\n", o.m)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Mualem) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "m", V: 0.29},
		&dbf.P{N: "l", V: 0.5},
	}
}

// Kr returns kr
func (o Mualem) Kr(se float64) float64 {
	if se <= 0 {
		return 0
	}
	if se >= 1 {
		return 1
	}
	c := 1.0 - math.Pow(1.0-math.Pow(se, 1.0/o.m), o.m)
	return math.Pow(se, o.l) * c * c
}
