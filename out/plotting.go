// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/lgar/lgar"
	"github.com/cpmech/lgar/sim"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Style *plt.A    // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Id     string       // unique identifier
	Title  string       // title of subplot
	Xscale float64      // x-axis scale
	Yscale float64      // y-axis scale
	Yrange []float64    // y range
	Xlbl   string       // x-axis label (formatted; e.g. "$t\;[h]$")
	Ylbl   string       // y-axis label (formatted; e.g. "$R\;[cm]$")
	Data   []*PltEntity // data and styles to be plotted
}

// Plotter holds subplots to be drawn
type Plotter struct {
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
}

// Splot activates a new subplot window
func (o *Plotter) Splot(id, splotTitle string) {
	s := &SplotDat{Id: id, Title: splotTitle}
	o.Splots = append(o.Splots, s)
	o.Csplot = s
}

// SplotConfig configures labels and scales of axes
//  xkey and ykey are result keys; e.g. "time" or "runoff"
func (o *Plotter) SplotConfig(xkey, xunit, ykey, yunit string, xscale, yscale float64) {
	if o.Csplot != nil {
		o.Csplot.Xlbl = GetTexLabel(xkey, xunit)
		o.Csplot.Ylbl = GetTexLabel(ykey, yunit)
		o.Csplot.Xscale = xscale
		o.Csplot.Yscale = yscale
	}
}

// Plot adds a series to the current subplot
//  alias -- label such as "runoff"
//  args  -- formatting codes; e.g. &plt.A{C:"b", L:"label"}; nil => default
func (o *Plotter) Plot(x, y []float64, alias string, args *plt.A) {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	if o.Csplot == nil {
		o.Splot(io.Sf("%d", len(o.Splots)), "")
	}
	o.Csplot.Data = append(o.Csplot.Data, &PltEntity{Alias: alias, X: x, Y: y, Style: args})
}

// Draw saves figure with all subplots
//  dirout -- directory to save figure
//  fnkey  -- file name key; e.g. "mysim". Use "" to show figure instead
//  nr     -- number of rows. Use -1 to compute best value
//  nc     -- number of columns. Use -1 to compute best value
//  extra  -- is called just after Subplot command and before any plotting
func (o *Plotter) Draw(dirout, fnkey string, nr, nc int, extra func(id string)) {
	nplots := len(o.Splots)
	if nplots == 0 {
		return
	}
	if nr < 0 || nc < 0 {
		nr, nc = utl.BestSquare(nplots)
	}
	for k, spl := range o.Splots {
		plt.Subplot(nr, nc, k+1)
		if extra != nil {
			extra(spl.Id)
		}
		if spl.Title != "" {
			plt.Title(spl.Title, nil)
		}
		for _, d := range spl.Data {
			args := d.Style
			if args == nil {
				args = new(plt.A)
			}
			if args.L == "" {
				args.L = d.Alias
			}
			args.NoClip = true
			plt.Plot(scale(d.X, spl.Xscale), scale(d.Y, spl.Yscale), args)
		}
		plt.Gll(spl.Xlbl, spl.Ylbl, nil)
		if len(spl.Yrange) == 2 {
			plt.AxisYrange(spl.Yrange[0], spl.Yrange[1])
		}
	}
	if fnkey == "" {
		plt.Show()
		return
	}
	plt.Save(dirout, fnkey)
}

// PlotResults draws the standard figures of a simulation: forcing and fluxes, cumulative fluxes,
// storage and the final profile of moisture contents
func PlotResults(m *sim.Main, dirout, fnkey string) {
	res := FromResults(m.Results)
	t := res["time"]
	var p Plotter

	p.Splot("fluxes", "fluxes per timestep")
	p.Plot(t, res["precip"], "precipitation", &plt.A{C: "b", Ls: "-"})
	p.Plot(t, res["aet"], "AET", &plt.A{C: "g", Ls: "-"})
	p.Plot(t, res["runoff"], "runoff", &plt.A{C: "r", Ls: "-"})
	p.Plot(t, res["giuh"], "routed runoff", &plt.A{C: "m", Ls: "--"})
	p.Plot(t, res["perc"], "percolation", &plt.A{C: "k", Ls: "-"})
	p.SplotConfig("time", "[h]", "flux", "[cm]", 1, 1)

	p.Splot("cumulative", "cumulative fluxes")
	p.Plot(t, Cumulative(res["precip"]), "precipitation", &plt.A{C: "b", Ls: "-"})
	p.Plot(t, Cumulative(res["infil"]), "infiltration", &plt.A{C: "c", Ls: "-"})
	p.Plot(t, Cumulative(res["runoff"]), "runoff", &plt.A{C: "r", Ls: "-"})
	p.Plot(t, Cumulative(res["perc"]), "percolation", &plt.A{C: "k", Ls: "-"})
	p.SplotConfig("time", "[h]", "cumulative", "[cm]", 1, 1)

	p.Splot("storage", "storage")
	p.Plot(t, res["vol"], "soil", &plt.A{C: "b", Ls: "-"})
	p.Plot(t, res["ponded"], "ponded", &plt.A{C: "r", Ls: "-"})
	p.SplotConfig("time", "[h]", "storage", "[cm]", 1, 1)

	θ, z := Profile(m.Col)
	p.Splot("profile", io.Sf("fronts at t = %g h", m.Sim.Tf))
	p.Plot(θ, z, "θ", &plt.A{C: "b", Ls: "-"})
	p.SplotConfig("theta", "", "depth", "[cm]", 1, -1)

	plt.Reset(false, nil)
	p.Draw(dirout, fnkey, 2, 2, nil)
}

// Profile returns a stair-step profile of moisture contents versus depth through all fronts
func Profile(col *lgar.Column) (θ, z []float64) {
	for _, lay := range col.Layers {
		top := lay.Top
		for _, f := range lay.Fronts {
			θ = append(θ, f.Theta, f.Theta)
			z = append(z, top, f.Depth)
			top = f.Depth
		}
	}
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// scale returns a scaled copy of x; zero or one scale returns x
func scale(x []float64, s float64) []float64 {
	if s == 0 || s == 1 {
		return x
	}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = s * v
	}
	return y
}
