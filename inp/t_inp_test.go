// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/lgar/lgar"
)

func verbose() {
	chk.Verbose = true
}

func Test_units01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("units01")

	for _, c := range []struct {
		v, h float64
		u    string
	}{
		{3600, 1, "[s]"},
		{1800, 0.5, "[sec]"},
		{7200, 2, ""},
		{30, 0.5, "[min]"},
		{90, 1.5, "[minute]"},
		{2, 2, "[h]"},
		{3, 3, "[hr]"},
		{1, 24, "[d]"},
		{0.5, 12, "[day]"},
	} {
		h, err := ToHours(c.v, c.u)
		if err != nil {
			tst.Errorf("ToHours failed:\n%v", err)
			return
		}
		chk.Float64(tst, io.Sf("%g%s", c.v, c.u), 1e-15, h, c.h)
	}

	_, err := ToHours(1, "[week]")
	if err == nil {
		tst.Errorf("unknown unit should have failed\n")
	}
}

func Test_soil01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("soil01")

	db, err := ReadSoil("data/soils.soil")
	if err != nil {
		tst.Errorf("ReadSoil failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", db)
	chk.Int(tst, "number of soils", len(db.Types), 3)
	chk.Int(tst, "number of loam prms", len(db.Get("LOAM").Prms), 5)
	if db.Get("clay") != nil {
		tst.Errorf("clay should not exist\n")
	}
	if db.Types[0].Retention != "vg" || db.Types[2].Retention != "bc" {
		tst.Errorf("retention names are incorrect\n")
	}

	sps, err := db.Params(2000, 0)
	if err != nil {
		tst.Errorf("Params failed:\n%v", err)
		return
	}
	chk.Int(tst, "number of params", len(sps), 3)
	chk.Float64(tst, "loam θr", 1e-15, sps[0].ThetaR, 0.078)
	chk.Float64(tst, "sand Ksat", 1e-15, sps[1].Ksat, 29.7)
	chk.Float64(tst, "loamysand ψb", 1e-15, sps[2].PsiB, 8.69)
	for _, sp := range sps {
		chk.Float64(tst, sp.Name+" θinit", 1e-12, sp.ThetaInit, sp.MoistureFromPotential(2000))
	}
}

func Test_forcing01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("forcing01")

	f, err := ReadForcing("data/forcing01.dat")
	if err != nil {
		tst.Errorf("ReadForcing failed:\n%v", err)
		return
	}
	chk.Int(tst, "number of records", f.Len(), 6)
	chk.Array(tst, "precip [cm/h]", 1e-15, f.Precip, []float64{0, 1, 0.5, 0, 0, 0})
	chk.Array(tst, "PET [cm/h]", 1e-15, f.Pet, []float64{0, 0, 0.01, 0.02, 0.02, 0.01})

	for _, fn := range []string{"data/badforcing.dat", "data/negforcing.dat"} {
		_, err = ReadForcing(fn)
		if !errors.Is(err, lgar.ErrConfiguration) {
			tst.Errorf("%s: configuration error expected. got %v\n", fn, err)
		}
	}
	_, err = ReadForcing("data/doesnotexist.dat")
	if err == nil {
		tst.Errorf("missing file should have failed\n")
	}
	_, err = NewForcing([]float64{1, 2}, []float64{0})
	if !errors.Is(err, lgar.ErrConfiguration) {
		tst.Errorf("inconsistent lengths should have failed. got %v\n", err)
	}
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim, err := ReadSim("data/col01.sim", "", false)
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	io.Pforan("desc = %v\n", sim.Data.Desc)
	if sim.Key != "col01" {
		tst.Errorf("key is incorrect: %q\n", sim.Key)
	}
	if sim.DirOut != "/tmp/lgar/col01" {
		tst.Errorf("dirout is incorrect: %q\n", sim.DirOut)
	}
	chk.Float64(tst, "Dt", 1e-15, sim.Dt, 1.0/12.0)
	chk.Float64(tst, "Tf", 1e-15, sim.Tf, 6)
	chk.Float64(tst, "DtForcing", 1e-15, sim.DtForcing, 1)
	chk.Int(tst, "Nsub", sim.Nsub, 12)
	chk.Int(tst, "Nsteps", sim.Nsteps, 6)
	chk.Float64(tst, "MassBalTol", 1e-17, sim.Data.MassBalTol, lgar.MassBalTolDef)

	glb := sim.Global
	chk.Array(tst, "CumDepth", 1e-15, glb.CumDepth, []float64{44, 200})
	chk.Float64(tst, "SoilDepth", 1e-15, glb.SoilDepth, 200)
	chk.Int(tst, "soil type 0", glb.LayerSoilType[0], 0)
	chk.Int(tst, "soil type 1", glb.LayerSoilType[1], 1)
	chk.Float64(tst, "Dt (global)", 1e-15, glb.Dt, sim.Dt)
	chk.Float64(tst, "WiltingPointPsi", 1e-15, glb.WiltingPointPsi, 15495)
	chk.Int(tst, "Nint", glb.Nint, 120)
	chk.Int(tst, "len(SoilParams)", len(sim.SoilParams), 3)

	sim, err = ReadSim("data/col01.sim", "alt", false)
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	if sim.Key != "col01-alt" {
		tst.Errorf("key with alias is incorrect: %q\n", sim.Key)
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02")

	sim, err := ReadSim("data/col02.toml", "", false)
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Dt", 1e-15, sim.Dt, 1.0/6.0)
	chk.Float64(tst, "Tf", 1e-15, sim.Tf, 6)
	chk.Int(tst, "Nsub", sim.Nsub, 6)
	chk.Int(tst, "Nsteps", sim.Nsteps, 6)
	chk.Float64(tst, "MassBalTol", 1e-17, sim.Data.MassBalTol, 1e-5)
	if !sim.Data.MassBalFatal || !sim.Global.SftCoupled || !sim.Global.UseClosedFormG {
		tst.Errorf("flags are incorrect\n")
	}
	chk.Array(tst, "LayerSoilType", 1e-17, []float64{
		float64(sim.Global.LayerSoilType[0]),
		float64(sim.Global.LayerSoilType[1]),
		float64(sim.Global.LayerSoilType[2]),
	}, []float64{2, 0, 1})
	chk.Array(tst, "FrozenFactor", 1e-15, sim.Global.FrozenFactor, []float64{0.5, 1, 1})
	chk.Float64(tst, "WiltingPointPsi", 1e-15, sim.Global.WiltingPointPsi, 15000)
	chk.Array(tst, "GIUH", 1e-15, sim.Global.GiuhOrdinates, []float64{0.25, 0.5, 0.25})
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03")

	for fn, field := range map[string]string{
		"data/badsoiltype.sim": "layer_soil_type",
		"data/badtimestep.sim": "timestep",
		"data/longrun.sim":     "forcingfile",
	} {
		_, err := ReadSim(fn, "", false)
		var cerr *lgar.ConfigurationError
		if !errors.As(err, &cerr) {
			tst.Errorf("%s: configuration error expected. got %v\n", fn, err)
			continue
		}
		io.Pforan("%s: %v\n", fn, err)
		if cerr.Field != field {
			tst.Errorf("%s: field should be %q. got %q\n", fn, field, cerr.Field)
		}
	}

	_, err := ReadSim("data/doesnotexist.sim", "", false)
	if err == nil {
		tst.Errorf("missing file should have failed\n")
	}
}
