// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

// loam returns van Genuchten parameters of a loam
func loam(tst *testing.T) *Params {
	o, err := New("loam", "vg", "", []*dbf.P{
		&dbf.P{N: "theta_r", V: 0.078},
		&dbf.P{N: "theta_e", V: 0.43},
		&dbf.P{N: "alpha", V: 0.036},
		&dbf.P{N: "n", V: 1.56},
		&dbf.P{N: "ksat", V: 1.04},
	})
	if err != nil {
		tst.Fatalf("New failed:\n%v", err)
	}
	o.Prepare(2000, PsiWpDef)
	return o
}

// sandBC returns Brooks-Corey parameters
func sandBC(tst *testing.T) *Params {
	o, err := New("sand", "bc", "", []*dbf.P{
		&dbf.P{N: "theta_r", V: 0.02},
		&dbf.P{N: "theta_e", V: 0.417},
		&dbf.P{N: "lambda", V: 0.3},
		&dbf.P{N: "psib", V: 20},
		&dbf.P{N: "ksat", V: 23.56},
	})
	if err != nil {
		tst.Fatalf("New failed:\n%v", err)
	}
	o.Prepare(2000, PsiWpDef)
	return o
}

func Test_soil01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("soil01. moisture <=> potential")

	o := loam(tst)
	chk.Float64(tst, "m", 1e-15, o.M, 1.0-1.0/1.56)
	if o.PsiB <= 0 {
		tst.Errorf("equivalent bubbling pressure must be positive. %g is invalid\n", o.PsiB)
	}

	for i := 1; i < 20; i++ {
		θ := o.ThetaR + float64(i)*(o.ThetaE-o.ThetaR)/20.0
		ψ := o.PotentialFromMoisture(θ)
		io.Pforan("θ=%.6f  ψ=%14.6f\n", θ, ψ)
		chk.Float64(tst, "θ(ψ(θ))", 1e-10, o.MoistureFromPotential(ψ), θ)
	}

	chk.Float64(tst, "θ(0)", 1e-15, o.MoistureFromPotential(0), o.ThetaE)
	chk.Float64(tst, "θ(-1)", 1e-15, o.MoistureFromPotential(-1), o.ThetaE)
	chk.Float64(tst, "ψ(θe)", 1e-15, o.PotentialFromMoisture(o.ThetaE), o.Hmin)
	chk.Float64(tst, "ψ(θr)", 1e-15, o.PotentialFromMoisture(o.ThetaR), PsiMaxDef)
	if θ := o.MoistureFromPotential(1e12); θ < o.ThetaR || θ > o.ThetaR+1e-6 {
		tst.Errorf("θ(1e12) must be close to θr. %g is invalid\n", θ)
	}
	if o.ThetaInit <= o.ThetaR || o.ThetaInit >= o.ThetaE {
		tst.Errorf("θinit must be within (θr, θe). %g is invalid\n", o.ThetaInit)
	}
	if o.ThetaWp <= o.ThetaR || o.ThetaWp >= o.ThetaInit {
		tst.Errorf("θwp must be within (θr, θinit). %g is invalid\n", o.ThetaWp)
	}

	b := sandBC(tst)
	chk.Float64(tst, "bc: ψ(θe)", 1e-15, b.PotentialFromMoisture(b.ThetaE), 20)
	chk.Float64(tst, "bc: θ(10)", 1e-15, b.MoistureFromPotential(10), b.ThetaE)
	chk.Float64(tst, "bc: θ(40)", 1e-15, b.MoistureFromPotential(40), 0.02+0.397*math.Pow(0.5, 0.3))
}

func Test_soil02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("soil02. hydraulic conductivity and validation")

	o := loam(tst)
	chk.Float64(tst, "K(θe)", 1e-15, o.HydraulicConductivity(o.ThetaE, 1), o.Ksat)
	chk.Float64(tst, "K(θe,ff)", 1e-15, o.HydraulicConductivity(o.ThetaE, 0.5), 0.5*o.Ksat)
	chk.Float64(tst, "K(θr)", 1e-15, o.HydraulicConductivity(o.ThetaR, 1), 0)
	prev := 0.0
	for i := 1; i <= 20; i++ {
		K := o.HydraulicConductivity(o.ThetaR+float64(i)*(o.ThetaE-o.ThetaR)/20.0, 1)
		if K < prev {
			tst.Errorf("K must increase with θ\n")
			return
		}
		prev = K
	}

	chk.Float64(tst, "clamp low", 1e-15, o.Clamp(0), o.ThetaR)
	chk.Float64(tst, "clamp high", 1e-15, o.Clamp(1), o.ThetaE)
	if !o.IsSaturated(o.ThetaE - 1e-12) {
		tst.Errorf("θe - 1e-12 must be saturated\n")
	}
	if o.IsSaturated(o.ThetaE - 1e-6) {
		tst.Errorf("θe - 1e-6 must not be saturated\n")
	}

	bad := []dbf.Params{
		{&dbf.P{N: "theta_r", V: 0.4}, &dbf.P{N: "theta_e", V: 0.3}, &dbf.P{N: "alpha", V: 0.01}, &dbf.P{N: "n", V: 1.5}, &dbf.P{N: "ksat", V: 1}},
		{&dbf.P{N: "theta_r", V: 0.1}, &dbf.P{N: "theta_e", V: 0.3}, &dbf.P{N: "alpha", V: 0.01}, &dbf.P{N: "n", V: 1.5}, &dbf.P{N: "ksat", V: 0}},
		{&dbf.P{N: "theta_r", V: 0.1}, &dbf.P{N: "theta_e", V: 0.3}, &dbf.P{N: "alpha", V: 0.01}, &dbf.P{N: "n", V: 0.5}, &dbf.P{N: "ksat", V: 1}},
		{&dbf.P{N: "theta_r", V: 0.1}, &dbf.P{N: "theta_e", V: 0.3}, &dbf.P{N: "alpha", V: 0.01}, &dbf.P{N: "n", V: 1.5}, &dbf.P{N: "ksat", V: 1}, &dbf.P{N: "theta_wp", V: 0.5}},
	}
	for i, prms := range bad {
		if _, err := New("bad", "vg", "", prms); err == nil {
			tst.Errorf("set %d of parameters must fail\n", i)
		}
	}
	if _, err := New("bad", "unknown", "", bad[0]); err == nil {
		tst.Errorf("unknown retention model must fail\n")
	}
}

func Test_soil03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("soil03. capillary drive and infiltration capacity")

	// closed form with dry soil gives Hc
	b := sandBC(tst)
	hc := 20.0 * (2.0 + 3.0*0.3) / (1.0 + 3.0*0.3)
	chk.Float64(tst, "Geff closed", 1e-13, b.Geff(b.ThetaR, b.ThetaE, true, 0), hc)

	// numerical integral of Brooks-Corey + Burdine approaches Hc
	gnum := b.Geff(b.ThetaR, b.ThetaE, false, 1000)
	io.Pforan("Hc = %v  Gnum = %v\n", hc, gnum)
	chk.Float64(tst, "Geff numerical", 0.05, gnum, hc)

	// no drive if wetter ahead of the front
	chk.Float64(tst, "Geff(θe,θe)", 1e-15, b.Geff(b.ThetaE, b.ThetaE, false, 0), 0)
	chk.Float64(tst, "Geff(0.3,0.2)", 1e-15, b.Geff(0.3, 0.2, true, 0), 0)

	// drive decreases as the soil ahead gets wetter
	o := loam(tst)
	prev := math.Inf(1)
	for i := 0; i < 10; i++ {
		θ := o.ThetaR + float64(i)*(o.ThetaE-o.ThetaR)/10.0
		g := o.Geff(θ, o.ThetaE, false, 0)
		io.Pf("θ=%.4f  G=%.6f\n", θ, g)
		if g <= 0 || g > prev {
			tst.Errorf("Geff must be positive and decrease with θ. G(%g)=%g is invalid\n", θ, g)
			return
		}
		prev = g
	}

	// capacity
	chk.Float64(tst, "fp(Z=0)", 1e-15, b.InfiltrationCapacity(b.ThetaR, 0, 1, 1, true, 0), 0)
	chk.Float64(tst, "fp(Z=-1)", 1e-15, b.InfiltrationCapacity(b.ThetaR, -1, 1, 1, true, 0), 0)
	Z, hp := 5.0, 0.3
	chk.Float64(tst, "fp", 1e-13, b.InfiltrationCapacity(b.ThetaR, Z, hp, 1, true, 0), b.Ksat*(1+(hc+hp)/Z))
	chk.Float64(tst, "fp frozen", 1e-13, b.InfiltrationCapacity(b.ThetaR, Z, hp, 0.25, true, 0), 0.25*b.Ksat*(1+(hc+hp)/Z))

	// dry depth solves Z² - τ Z - τ G = 0
	dt := 1.0 / 60.0
	z := b.DryDepth(b.ThetaR, dt, 1, 100, true, 0)
	τ := dt * b.Ksat / (b.ThetaE - b.ThetaR)
	chk.Float64(tst, "dry depth", 1e-12, z*z-τ*z-τ*hc, 0)
	chk.Float64(tst, "dry depth capped", 1e-15, b.DryDepth(b.ThetaR, 10, 1, 2, true, 0), 2)
	chk.Float64(tst, "dry depth saturated", 1e-15, b.DryDepth(b.ThetaE, dt, 1, 2, true, 0), 0)
}
