// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the simulation loop of LGAR: timesteps at the forcing resolution, each one
// split into substeps in which the fronts of the column are created, moved, merged, crossed and
// drained, with runoff routing and mass balance checks
package sim

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/lgar/inp"
	"github.com/cpmech/lgar/lgar"
)

// Main holds all data for a simulation of one soil column
type Main struct {
	Sim        *inp.Simulation          // simulation data
	Col        *lgar.Column             // soil column
	Giuh       *Giuh                    // runoff router
	Results    []*Result                // results of all completed timesteps
	Summary    *Summary                 // totals of the run; computed on exit
	Warnings   []*lgar.MassBalanceError // mass balance violations
	Ponded     float64                  // ponded depth [cm]
	PrevPrecip float64                  // precipitation of the previous substep [cm]
	ShowMsg    bool                     // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath  -- simulation (.sim or .toml) filename including full path
//   alias        -- word to be appended to simulation key; e.g. when running multiple simulations
//   createDirOut -- create directory for output results
//   verbose      -- show messages
func NewMain(simfilepath, alias string, createDirOut, verbose bool) (o *Main, err error) {
	sim, err := inp.ReadSim(simfilepath, alias, createDirOut)
	if err != nil {
		return
	}
	if verbose {
		io.Pf("> Simulation file read\n")
	}
	return NewMainSim(sim, verbose)
}

// NewMainSim returns a new Main structure for simulation data already read
func NewMainSim(sim *inp.Simulation, verbose bool) (o *Main, err error) {
	if sim == nil || sim.Global == nil {
		return nil, chk.Err("simulation data must be prepared before allocating Main")
	}
	o = new(Main)
	o.Sim = sim
	o.ShowMsg = verbose
	o.Col, err = lgar.NewColumn(sim.Global, sim.SoilParams)
	if err != nil {
		return nil, err
	}
	o.Giuh = NewGiuh(sim.Global.GiuhOrdinates)
	if o.ShowMsg {
		io.Pf("> Column with %d layers and %d fronts allocated\n", o.Col.NumLayers(), o.Col.NumWettingFronts())
	}
	return
}

// Run runs all remaining timesteps
//  The context is checked before each timestep. On cancellation or failure, the results of the
//  completed timesteps are kept in o.Results
func (o *Main) Run(ctx context.Context) (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Running %d timesteps with %d substeps each\n", o.Sim.Nsteps, o.Sim.Nsub)
	}

	// time loop
	for ts := len(o.Results); ts < o.Sim.Nsteps; ts++ {
		err = ctx.Err()
		if err != nil {
			return
		}
		err = o.SolveTimestep(ts)
		if err != nil {
			return
		}
	}
	return
}

// Reset restores the initial state of the column, the runoff router and the accumulators so
// that the simulation can be run again from the start
func (o *Main) Reset() (err error) {
	col, err := lgar.NewColumn(o.Sim.Global, o.Sim.SoilParams)
	if err != nil {
		return
	}
	o.Col = col
	o.Giuh.Reset()
	o.Results = nil
	o.Summary = nil
	o.Warnings = nil
	o.Ponded = 0
	o.PrevPrecip = 0
	return
}

// SolveTimestep runs the substeps of timestep ts and appends its result
func (o *Main) SolveTimestep(ts int) (err error) {

	// forcing
	if ts < 0 || ts >= o.Sim.Forcing.Len() {
		return chk.Err("timestep %d has no forcing data; %d records are available", ts, o.Sim.Forcing.Len())
	}
	dt := o.Sim.Dt
	precip := o.Sim.Forcing.Precip[ts] * dt
	pet := o.Sim.Forcing.Pet[ts] * dt

	// substeps
	res := &Result{
		Time:      float64(ts+1) * o.Sim.DtForcing,
		StartVol:  o.Col.MassBalance(),
		startPond: o.Ponded,
	}
	for ss := 0; ss < o.Sim.Nsub; ss++ {
		err = o.substep(res, precip, pet, dt)
		if err != nil {
			return fluxError(err, ts, ss)
		}
	}

	// state at the end of the timestep
	res.EndVol = o.Col.MassBalance()
	res.Ponded = o.Ponded
	res.NumFronts = o.Col.NumWettingFronts()
	res.Depths, res.Thetas = o.Col.Profile()
	res.calcResidual()
	o.Results = append(o.Results, res)
	if o.ShowMsg {
		io.Pf("> timestep %4d: t = %8.3f h  P = %.6f  AET = %.6f  R = %.6f  I = %.6f  perc = %.6f  nfronts = %d\n",
			ts, res.Time, res.Precip, res.Aet, res.Runoff, res.Infil, res.Perc, res.NumFronts)
	}

	// mass balance
	if math.Abs(res.Residual) > o.Sim.Data.MassBalTol {
		mberr := &lgar.MassBalanceError{Timestep: ts, Residual: res.Residual, Tolerance: o.Sim.Data.MassBalTol}
		o.Warnings = append(o.Warnings, mberr)
		if o.ShowMsg {
			io.PfRed("> warning: %v\n", mberr)
		}
		if o.Sim.Data.MassBalFatal {
			return mberr
		}
	}
	return
}

// substep advances the column over one substep and accumulates the fluxes into res
//  precip and pet are amounts over the substep [cm]
func (o *Main) substep(res *Result, precip, pet, dt float64) (err error) {
	col := o.Col
	glb := o.Sim.Global

	// evapotranspiration
	create := col.CreateSurficialFront(o.PrevPrecip, precip, o.Ponded)
	aet := col.CalcAET(pet)

	// water at the surface
	h := o.Ponded + precip
	var infil, perc float64
	if create && !col.IsSaturated() {

		// new front at the surface; the others wait for the next substep
		infil, err = col.InsertSurficialFront(h, dt)
		if err != nil {
			return
		}
		h -= infil

	} else {

		// uptake limited by the infiltration capacity
		I := 0.0
		if h > 0 {
			var fp float64
			fp, err = col.InfiltrationCapacity(h)
			if err != nil {
				return
			}
			I = math.Min(h, fp*dt)
		}

		// move fronts
		var rejected float64
		rejected, err = col.MoveWettingFronts(I, h, dt)
		if err != nil {
			return
		}
		infil = I - rejected
		h -= infil
	}

	// round-off in the rejected water may leave a tiny negative depth
	if h < 0 {
		infil += h
		h = 0
	}

	// merge and cross layer boundaries twice since crossings create new merge candidates
	for round := 0; round < 2; round++ {
		col.MergeWettingFronts()
		perc += col.WettingFrontsCrossLayerBoundary()
	}
	perc += col.WettingFrontCrossDomainBoundary()

	// free drainage at the bottom of the column
	supply := col.CalcWettingFrontFreeDrainage(glb.InitialPsi, col.Layers[0].Fronts[0])
	perc += col.FreeDrainage(dt, supply)
	col.FixDryOverWetFronts()
	col.UpdatePsi()
	err = col.CalcDzDt(h)
	if err != nil {
		return
	}

	// runoff
	runoff := 0.0
	if h > glb.PondedDepthMax {
		runoff = h - glb.PondedDepthMax
		h = glb.PondedDepthMax
	}
	routed := o.Giuh.Route(runoff)

	// state and accumulators
	o.Ponded = h
	o.PrevPrecip = precip
	res.Precip += precip
	res.Pet += pet
	res.Aet += aet
	res.Runoff += runoff
	res.Infil += infil
	res.Perc += perc
	res.Giuh += routed
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// fluxError sets the timestep and substep of non-finite flux errors
func fluxError(err error, ts, ss int) error {
	var ferr *lgar.NonFiniteFluxError
	if errors.As(err, &ferr) {
		ferr.Timestep = ts
		ferr.Substep = ss
	}
	return err
}

// onexit computes the summary and prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// summary
	o.Summary = NewSummary(o.Results, o.Giuh.Stored(), len(o.Warnings))

	// show final message
	if o.ShowMsg {
		io.Pf("\n%v\n", o.Summary)
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
