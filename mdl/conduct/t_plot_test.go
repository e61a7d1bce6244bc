// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

func verbose() {
	chk.Verbose = true
}

func Test_mualem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mualem01")

	mdl, err := New("mualem")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	chk.Float64(tst, "kr(0)", 1e-15, mdl.Kr(0), 0)
	chk.Float64(tst, "kr(1)", 1e-15, mdl.Kr(1), 1)

	se, m := 0.5, 0.29
	c := 1.0 - math.Pow(1.0-math.Pow(se, 1.0/m), m)
	chk.Float64(tst, "kr(0.5)", 1e-15, mdl.Kr(se), math.Sqrt(se)*c*c)

	prev := 0.0
	for i := 1; i <= 20; i++ {
		kr := mdl.Kr(float64(i) / 20.0)
		if kr < prev {
			tst.Errorf("kr must increase with Se\n")
			return
		}
		prev = kr
	}

	if chk.Verbose {
		plt.Reset(false, nil)
		Plot(mdl, "/tmp/lgar", "conduct_mualem01", 101, true)
	}
}

func Test_burdine01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("burdine01")

	mdl := new(Burdine)
	err := mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "kr(0.5)", 1e-15, mdl.Kr(0.5), math.Pow(0.5, 2.9/0.3))
	chk.Float64(tst, "kr(1.5)", 1e-15, mdl.Kr(1.5), 1)

	prm := mdl.GetPrms(true)
	prm.Find("lambda").V = -1
	if err = mdl.Init(prm); err == nil {
		tst.Errorf("negative lambda must fail\n")
	}
}
