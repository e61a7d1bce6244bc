// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots kr(Se) and saves figure in dirout
func Plot(o Model, dirout, fnkey string, np int, withText bool) {
	X := utl.LinSpace(0, 1, np)
	Y := make([]float64, np)
	for i := 0; i < np; i++ {
		Y[i] = o.Kr(X[i])
	}
	plt.Plot(X, Y, &plt.A{C: "b", Ls: "-", NoClip: true})
	if withText {
		l := np - 1
		plt.Text(X[0], Y[0], io.Sf("(%g, %g)", X[0], Y[0]), &plt.A{Ha: "left", C: "red", Fsz: 8})
		plt.Text(X[l], Y[l], io.Sf("(%g, %g)", X[l], Y[l]), &plt.A{Ha: "right", C: "red", Fsz: 8})
	}
	plt.Gll("$S_e$", "$k_r$", nil)
	plt.Save(dirout, fnkey)
}
