// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/lgar/mdl/soil"
)

func verbose() {
	chk.Verbose = true
}

// soils returns a loam (0) and a sand (1)
func soils(tst *testing.T) []*soil.Params {
	loam, err := soil.New("loam", "vg", "", []*dbf.P{
		&dbf.P{N: "theta_r", V: 0.078},
		&dbf.P{N: "theta_e", V: 0.43},
		&dbf.P{N: "alpha", V: 0.036},
		&dbf.P{N: "n", V: 1.56},
		&dbf.P{N: "ksat", V: 1.04},
	})
	if err != nil {
		tst.Fatalf("soil.New failed:\n%v", err)
	}
	sand, err := soil.New("sand", "vg", "", []*dbf.P{
		&dbf.P{N: "theta_r", V: 0.045},
		&dbf.P{N: "theta_e", V: 0.43},
		&dbf.P{N: "alpha", V: 0.145},
		&dbf.P{N: "n", V: 2.68},
		&dbf.P{N: "ksat", V: 29.7},
	})
	if err != nil {
		tst.Fatalf("soil.New failed:\n%v", err)
	}
	return []*soil.Params{loam, sand}
}

// column returns a new column with the given layers
func column(tst *testing.T, thickness []float64, soilType []int) *Column {
	glb := &Global{
		LayerThickness: thickness,
		LayerSoilType:  soilType,
		InitialPsi:     2000,
		PondedDepthMax: 1.1,
		GiuhOrdinates:  []float64{0.06, 0.51, 0.28, 0.12, 0.03},
		Dt:             1.0 / 60.0,
	}
	col, err := NewColumn(glb, soils(tst))
	if err != nil {
		tst.Fatalf("NewColumn failed:\n%v", err)
	}
	return col
}

// checkColumn checks ordering and moisture bounds
func checkColumn(tst *testing.T, col *Column) {
	for _, lay := range col.Layers {
		prev := lay.Top
		for j, f := range lay.Fronts {
			if !(f.Depth > prev) {
				tst.Errorf("layer %d: fronts must be strictly ordered. d[%d]=%g ≤ %g\n", lay.Index, j, f.Depth, prev)
			}
			if f.Theta < lay.Soil.ThetaR || f.Theta > lay.Soil.ThetaE {
				tst.Errorf("layer %d: θ[%d]=%g is out of [%g, %g]\n", lay.Index, j, f.Theta, lay.Soil.ThetaR, lay.Soil.ThetaE)
			}
			prev = f.Depth
		}
		if lay.Last().Depth != lay.Bottom {
			tst.Errorf("layer %d: last front must be at the bottom\n", lay.Index)
		}
	}
}

func Test_column01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("column01. initial state")

	col := column(tst, []float64{10, 15, 25}, []int{0, 1, 0})
	if chk.Verbose {
		col.Print()
	}
	chk.Int(tst, "number of fronts", col.NumWettingFronts(), 3)
	chk.Array(tst, "cumulative depths", 1e-15, col.Glb.CumDepth, []float64{10, 25, 50})
	chk.Float64(tst, "soil depth", 1e-15, col.Glb.SoilDepth, 50)

	V := 0.0
	for _, lay := range col.Layers {
		f := lay.Fronts[0]
		chk.Float64(tst, "θinit", 1e-15, f.Theta, lay.Soil.MoistureFromPotential(2000))
		chk.Float64(tst, "ψinit", 1e-6, f.Psi, 2000)
		if !f.ToBottom {
			tst.Errorf("initial front must be at the bottom of its layer\n")
		}
		V += f.Theta * lay.Thickness()
	}
	chk.Float64(tst, "volume", 1e-14, col.MassBalance(), V)
	checkColumn(tst, col)

	if col.IsSaturated() {
		tst.Errorf("initial column must not be saturated\n")
	}
	if col.CreateSurficialFront(0.1, 0.1, 0) || col.CreateSurficialFront(0, 0, 0) || col.CreateSurficialFront(0, 0.1, 0.2) {
		tst.Errorf("CreateSurficialFront must only return true for a new storm\n")
	}
	if !col.CreateSurficialFront(0, 0.1, 0) {
		tst.Errorf("CreateSurficialFront must return true for a new storm\n")
	}

	// frozen factor
	chk.Float64(tst, "ff (uncoupled)", 1e-15, col.FrozenFactor(1), 1)
	if err := col.SetFrozenFactor(1, 0); err == nil {
		tst.Errorf("zero frozen factor must fail\n")
	}
	if err := col.SetFrozenFactor(5, 0.5); err == nil {
		tst.Errorf("frozen factor of missing layer must fail\n")
	}
	col.Glb.SftCoupled = true
	if err := col.SetFrozenFactor(1, 0.5); err != nil {
		tst.Errorf("SetFrozenFactor failed:\n%v", err)
	}
	chk.Float64(tst, "ff (coupled)", 1e-15, col.FrozenFactor(1), 0.5)
}

func Test_column02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("column02. configuration errors")

	sps := soils(tst)
	bad := []*Global{
		{LayerThickness: []float64{}, LayerSoilType: []int{}, Dt: 1},
		{LayerThickness: []float64{10, 0}, LayerSoilType: []int{0, 0}, Dt: 1},
		{LayerThickness: []float64{10, -5}, LayerSoilType: []int{0, 0}, Dt: 1},
		{LayerThickness: []float64{10, 5}, LayerSoilType: []int{0}, Dt: 1},
		{LayerThickness: []float64{10, 5}, LayerSoilType: []int{0, 2}, Dt: 1},
		{LayerThickness: []float64{10}, LayerSoilType: []int{0}, Dt: 0},
		{LayerThickness: []float64{10}, LayerSoilType: []int{0}, Dt: 1, GiuhOrdinates: []float64{0.5, 0.4}},
		{LayerThickness: []float64{10}, LayerSoilType: []int{0}, Dt: 1, GiuhOrdinates: []float64{1.5, -0.5}},
		{LayerThickness: []float64{10}, LayerSoilType: []int{0}, Dt: 1, PondedDepthMax: -1},
		{LayerThickness: []float64{10}, LayerSoilType: []int{0}, Dt: 1, FrozenFactor: []float64{1.5}},
	}
	for i, glb := range bad {
		_, err := NewColumn(glb, sps)
		if err == nil {
			tst.Errorf("set %d of global parameters must fail\n", i)
			continue
		}
		var cerr *ConfigurationError
		if !errors.As(err, &cerr) || !errors.Is(err, ErrConfiguration) {
			tst.Errorf("error must be a ConfigurationError. %v is invalid\n", err)
		}
		if chk.Verbose {
			tst.Logf("%v\n", err)
		}
	}
}

func Test_column03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("column03. set fronts and free drainage front")

	col := column(tst, []float64{50}, []int{0})
	θi := col.Layers[0].Fronts[0].Theta

	if err := col.SetFronts(0, []float64{10, 5, 50}, []float64{0.4, 0.3, θi}); err == nil {
		tst.Errorf("unordered depths must fail\n")
	}
	if err := col.SetFronts(0, []float64{10, 20}, []float64{0.4, θi}); err == nil {
		tst.Errorf("last depth must be at the bottom\n")
	}
	if err := col.SetFronts(0, []float64{5, 10, 50}, []float64{0.40, 0.30, θi}); err != nil {
		tst.Errorf("SetFronts failed:\n%v", err)
		return
	}
	checkColumn(tst, col)
	chk.Int(tst, "number of fronts", col.NumWettingFronts(), 3)
	depths, thetas := col.Profile()
	chk.Array(tst, "depths", 1e-15, depths, []float64{5, 10, 50})
	chk.Array(tst, "thetas", 1e-15, thetas, []float64{0.40, 0.30, θi})

	lay := col.Layers[0]
	seed := lay.Fronts[0]
	f := col.CalcWettingFrontFreeDrainage(2000, seed)
	if f != lay.Fronts[1] {
		tst.Errorf("front supplying free drainage must be the second one\n")
	}
	f = col.CalcWettingFrontFreeDrainage(10, seed)
	if f != seed {
		tst.Errorf("seed must be returned if no front is wetter than psi_start\n")
	}
}
