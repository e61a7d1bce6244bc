// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots retention model
//  useLog -- use log10(ψ) on the x-axis; psi0 must be positive
//  args   -- line arguments; e.g. &plt.A{C: "b", Ls: "-", L: "vg"}
func Plot(mdl Model, psi0, psif float64, npts int, useLog bool, args *plt.A) (Psi, Se []float64) {
	Psi = utl.LinSpace(psi0, psif, npts)
	Se = make([]float64, npts)
	X := make([]float64, npts)
	for i, psi := range Psi {
		Se[i] = mdl.Se(psi)
		if useLog {
			X[i] = math.Log10(psi)
		} else {
			X[i] = psi
		}
	}
	plt.Plot(X, Se, args)
	return
}

// PlotEnd ends plot and show figure, if show==true
func PlotEnd(show bool) {
	plt.AxisYrange(0, 1)
	plt.Gll("$\\psi$", "$S_e$", nil)
	if show {
		plt.Show()
	}
}
