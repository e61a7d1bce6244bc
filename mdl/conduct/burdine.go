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

// Burdine implements Burdine's model with the Brooks-Corey closed form
//  kr = Se^((2 + 3λ)/λ)
type Burdine struct {
	λ float64 // pore size distribution index
}

// add model to factory
func init() {
	allocators["burdine"] = func() Model { return new(Burdine) }
}

// Init initialises this structure
func (o *Burdine) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lambda", "lam":
			o.λ = p.V
		default:
			return chk.Err("burdine: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.λ <= 0 {
		return chk.Err("burdine: lambda must be positive. %g is invalid\n", o.λ)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Burdine) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "lambda", V: 0.3},
	}
}

// Kr returns kr
func (o Burdine) Kr(se float64) float64 {
	if se <= 0 {
		return 0
	}
	if se >= 1 {
		return 1
	}
	return math.Pow(se, (2.0+3.0*o.λ)/o.λ)
}
