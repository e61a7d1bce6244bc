// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Result holds the fluxes and state of one timestep; all amounts in [cm]
type Result struct {
	Time      float64   // time at the end of the timestep [h]
	Precip    float64   // precipitation
	Pet       float64   // potential evapotranspiration
	Aet       float64   // actual evapotranspiration
	Runoff    float64   // surface runoff
	Infil     float64   // infiltration
	Perc      float64   // percolation leaving the bottom of the column
	Giuh      float64   // runoff routed by the unit hydrograph
	Ponded    float64   // ponded depth at the end of the timestep
	StartVol  float64   // water in the column at the start of the timestep
	EndVol    float64   // water in the column at the end of the timestep
	Residual  float64   // mass balance residual
	NumFronts int       // number of fronts at the end of the timestep
	Depths    []float64 // depths of all fronts at the end of the timestep
	Thetas    []float64 // moisture contents of all fronts at the end of the timestep
	startPond float64   // ponded depth at the start of the timestep
}

// Summary holds the totals of a whole run; all amounts in [cm]
type Summary struct {
	Nsteps    int     // number of completed timesteps
	Precip    float64 // total precipitation
	Pet       float64 // total potential evapotranspiration
	Aet       float64 // total actual evapotranspiration
	Runoff    float64 // total surface runoff
	Infil     float64 // total infiltration
	Perc      float64 // total percolation
	Giuh      float64 // total routed runoff
	GiuhQueue float64 // runoff still queued in the unit hydrograph
	StartVol  float64 // water in the column at the start
	EndVol    float64 // water in the column at the end
	StartPond float64 // ponded depth at the start
	EndPond   float64 // ponded depth at the end
	Residual  float64 // global mass balance residual
	MaxAbsRes float64 // largest absolute residual of a timestep
	Nwarnings int     // number of mass balance warnings
}

// calcResidual computes the mass balance residual of one timestep
//  residual = (V1 + h1) - (V0 + h0) - (P - R - AET - perc)
func (o *Result) calcResidual() {
	o.Residual = (o.EndVol + o.Ponded) - (o.StartVol + o.startPond) - (o.Precip - o.Runoff - o.Aet - o.Perc)
}

// NewSummary computes the totals of all results
func NewSummary(results []*Result, giuhQueue float64, nwarnings int) (o *Summary) {
	o = new(Summary)
	o.Nsteps = len(results)
	o.GiuhQueue = giuhQueue
	o.Nwarnings = nwarnings
	if o.Nsteps == 0 {
		return
	}
	for _, r := range results {
		o.Precip += r.Precip
		o.Pet += r.Pet
		o.Aet += r.Aet
		o.Runoff += r.Runoff
		o.Infil += r.Infil
		o.Perc += r.Perc
		o.Giuh += r.Giuh
		o.MaxAbsRes = math.Max(o.MaxAbsRes, math.Abs(r.Residual))
	}
	first, last := results[0], results[o.Nsteps-1]
	o.StartVol, o.StartPond = first.StartVol, first.startPond
	o.EndVol, o.EndPond = last.EndVol, last.Ponded
	o.Residual = (o.EndVol + o.EndPond) - (o.StartVol + o.StartPond) - (o.Precip - o.Runoff - o.Aet - o.Perc)
	return
}

// String returns the summary as a table
func (o Summary) String() string {
	l := io.Sf("%-28s = %d\n", "completed timesteps", o.Nsteps)
	l += io.Sf("%-28s = %g\n", "initial water in soil [cm]", o.StartVol)
	l += io.Sf("%-28s = %g\n", "final water in soil [cm]", o.EndVol)
	l += io.Sf("%-28s = %g\n", "initial ponded depth [cm]", o.StartPond)
	l += io.Sf("%-28s = %g\n", "final ponded depth [cm]", o.EndPond)
	l += io.Sf("%-28s = %g\n", "precipitation [cm]", o.Precip)
	l += io.Sf("%-28s = %g\n", "PET [cm]", o.Pet)
	l += io.Sf("%-28s = %g\n", "AET [cm]", o.Aet)
	l += io.Sf("%-28s = %g\n", "runoff [cm]", o.Runoff)
	l += io.Sf("%-28s = %g\n", "infiltration [cm]", o.Infil)
	l += io.Sf("%-28s = %g\n", "percolation [cm]", o.Perc)
	l += io.Sf("%-28s = %g\n", "routed runoff [cm]", o.Giuh)
	l += io.Sf("%-28s = %g\n", "queued runoff [cm]", o.GiuhQueue)
	l += io.Sf("%-28s = %g\n", "mass balance residual [cm]", o.Residual)
	l += io.Sf("%-28s = %g\n", "max timestep residual [cm]", o.MaxAbsRes)
	l += io.Sf("%-28s = %d", "mass balance warnings", o.Nwarnings)
	return l
}
