// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of LGAR simulations: result tables and plotting
package out

import (
	"bytes"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/lgar/sim"
)

// keys of the columns in result tables
var ResKeys = []string{"time", "precip", "pet", "aet", "runoff", "infil", "perc", "giuh", "ponded", "vol", "residual", "nfronts"}

// Series maps column keys to values; e.g. "runoff" => runoff of each timestep
type Series map[string][]float64

// WriteResults writes the tables of results to m.Sim.DirOut
//  <key>.res    -- fluxes and state of each timestep
//  <key>.fronts -- depths and moisture contents of fronts at the end of each timestep
//  Returns the paths of the written files
func WriteResults(m *sim.Main) (files []string, err error) {
	if m == nil || m.Sim == nil {
		return nil, chk.Err("cannot write results: simulation is missing")
	}
	dirout, key := m.Sim.DirOut, m.Sim.Key
	fnres, fnfronts := key+".res", key+".fronts"
	io.WriteFileSD(dirout, fnres, ResultsTable(m.Results).String())
	io.WriteFileSD(dirout, fnfronts, FrontsTable(m.Results).String())
	files = []string{filepath.Join(dirout, fnres), filepath.Join(dirout, fnfronts)}
	return
}

// ResultsTable returns a buffer with one line per timestep; amounts in [cm] and time in [h]
func ResultsTable(results []*sim.Result) (buf *bytes.Buffer) {
	buf = new(bytes.Buffer)
	for _, key := range ResKeys {
		io.Ff(buf, "%23s", key)
	}
	io.Ff(buf, "\n")
	for _, r := range results {
		io.Ff(buf, "%23.15e%23.15e%23.15e%23.15e%23.15e%23.15e%23.15e%23.15e%23.15e%23.15e%23.15e%23d\n",
			r.Time, r.Precip, r.Pet, r.Aet, r.Runoff, r.Infil, r.Perc, r.Giuh, r.Ponded, r.EndVol, r.Residual, r.NumFronts)
	}
	return
}

// FrontsTable returns a buffer with one line per front and timestep
func FrontsTable(results []*sim.Result) (buf *bytes.Buffer) {
	buf = new(bytes.Buffer)
	io.Ff(buf, "%23s%23s%23s%23s\n", "time", "front", "depth", "theta")
	for _, r := range results {
		for i := range r.Depths {
			io.Ff(buf, "%23.15e%23d%23.15e%23.15e\n", r.Time, i, r.Depths[i], r.Thetas[i])
		}
	}
	return
}

// LoadResults reads a table of results written by WriteResults
func LoadResults(dirout, key string) (res Series, err error) {
	fn := filepath.Join(dirout, key+".res")
	_, res, err = io.ReadTable(fn)
	if err != nil {
		return nil, chk.Err("cannot read results file %q:\n%v", fn, err)
	}
	for _, k := range ResKeys {
		if _, ok := res[k]; !ok {
			return nil, chk.Err("results file %q has no column %q", fn, k)
		}
	}
	return
}

// FromResults returns the series of results in memory
func FromResults(results []*sim.Result) (res Series) {
	res = make(Series)
	for _, k := range ResKeys {
		res[k] = make([]float64, len(results))
	}
	for i, r := range results {
		res["time"][i] = r.Time
		res["precip"][i] = r.Precip
		res["pet"][i] = r.Pet
		res["aet"][i] = r.Aet
		res["runoff"][i] = r.Runoff
		res["infil"][i] = r.Infil
		res["perc"][i] = r.Perc
		res["giuh"][i] = r.Giuh
		res["ponded"][i] = r.Ponded
		res["vol"][i] = r.EndVol
		res["residual"][i] = r.Residual
		res["nfronts"][i] = float64(r.NumFronts)
	}
	return
}

// Cumulative returns the running sum of the values
func Cumulative(vals []float64) (cum []float64) {
	cum = make([]float64, len(vals))
	sum := 0.0
	for i, v := range vals {
		sum += v
		cum[i] = sum
	}
	return
}
