// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// CheckInverse checks that Psi(Se(ψ)) == ψ and that Se decreases with ψ
//  only stations with 0 < Se < 1 are checked against the inverse
func CheckInverse(tst *testing.T, mdl Model, psi0, psif float64, npts int, tol float64, verbose bool) {
	Psi := utl.LinSpace(psi0, psif, npts)
	prev := 2.0
	for _, psi := range Psi {
		se := mdl.Se(psi)
		if verbose {
			io.Pforan("ψ = %12.6f  Se = %12.8f\n", psi, se)
		}
		if se > prev {
			tst.Errorf("Se must not increase with ψ. Se(%g) = %g > %g\n", psi, se, prev)
			return
		}
		prev = se
		if se <= 0 || se >= 1 {
			continue
		}
		chk.Float64(tst, io.Sf("ψ(Se(%g))", psi), tol*(1+psi), mdl.Psi(se), psi)
	}
}
