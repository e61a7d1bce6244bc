// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import (
	"math"

	"github.com/cpmech/lgar/mdl/soil"
)

// constants
const (
	DepthTol      = 1e-6 // fronts closer than this [cm] are merged
	MergeThetaTol = 1e-9 // fronts with moisture contents closer than this are merged
	DthetaMin     = 1e-9 // moisture jumps below this do not move
	GiuhSumTol    = 1e-6 // tolerance on the sum of the GIUH ordinates
	MassBalTolDef = 1e-6 // default mass balance tolerance [cm]
	PsiRelTol     = 1e-6 // relative tolerance to consider a potential below the initial one
)

// Global holds the global parameters of one simulation (GlobalParameters)
//  Global is read-only after Init
type Global struct {

	// input
	LayerThickness  []float64 // thickness of each layer [cm]
	LayerSoilType   []int     // zero-based soil type index of each layer
	InitialPsi      float64   // initial matric potential [cm]
	PondedDepthMax  float64   // maximum ponded depth [cm]
	WiltingPointPsi float64   // wilting point potential [cm]
	GiuhOrdinates   []float64 // unit hydrograph ordinates (sum to one)
	Dt              float64   // substep length [h]
	SftCoupled      bool      // frozen soil coupling enabled
	UseClosedFormG  bool      // use the closed-form capillary drive
	Nint            int       // number of intervals of the numerical capillary drive
	FrozenFactor    []float64 // initial frozen factor of each layer; nil => 1

	// derived
	CumDepth  []float64 // depth of the bottom of each layer [cm]
	SoilDepth float64   // total depth of the column [cm]
}

// Init validates the parameters and computes the derived ones
//  nsoils -- number of available soil types
func (o *Global) Init(nsoils int) (err error) {
	nl := len(o.LayerThickness)
	if nl < 1 {
		return NewConfigurationError("layer_thickness_cm", "at least one layer is required")
	}
	if len(o.LayerSoilType) != nl {
		return NewConfigurationError("layer_soil_type", "%d soil types given for %d layers", len(o.LayerSoilType), nl)
	}
	o.CumDepth = make([]float64, nl)
	z := 0.0
	for i, h := range o.LayerThickness {
		if !(h > 0) || math.IsInf(h, 0) {
			return NewConfigurationError("layer_thickness_cm", "thickness of layer %d must be positive. %g is invalid", i, h)
		}
		z += h
		o.CumDepth[i] = z
	}
	o.SoilDepth = z
	for i, s := range o.LayerSoilType {
		if s < 0 || s >= nsoils {
			return NewConfigurationError("layer_soil_type", "soil type of layer %d is out of range. %d is invalid (%d soils available)", i, s, nsoils)
		}
	}
	if o.InitialPsi < 0 || math.IsNaN(o.InitialPsi) {
		return NewConfigurationError("initial_psi_cm", "initial potential must not be negative. %g is invalid", o.InitialPsi)
	}
	if o.PondedDepthMax < 0 || math.IsNaN(o.PondedDepthMax) {
		return NewConfigurationError("ponded_depth_max_cm", "maximum ponded depth must not be negative. %g is invalid", o.PondedDepthMax)
	}
	if o.WiltingPointPsi == 0 {
		o.WiltingPointPsi = soil.PsiWpDef
	}
	if o.WiltingPointPsi < 0 {
		return NewConfigurationError("wilting_point_psi_cm", "wilting point potential must be positive. %g is invalid", o.WiltingPointPsi)
	}
	if !(o.Dt > 0) {
		return NewConfigurationError("timestep", "substep length must be positive. %g is invalid", o.Dt)
	}
	if len(o.GiuhOrdinates) > 0 {
		sum := 0.0
		for i, c := range o.GiuhOrdinates {
			if c < 0 || math.IsNaN(c) {
				return NewConfigurationError("giuh_ordinates", "ordinate %d must not be negative. %g is invalid", i, c)
			}
			sum += c
		}
		if math.Abs(sum-1) > GiuhSumTol {
			return NewConfigurationError("giuh_ordinates", "ordinates must sum to 1. sum = %g is invalid", sum)
		}
	}
	if o.Nint == 0 {
		o.Nint = soil.NintDef
	}
	if o.Nint < 1 {
		return NewConfigurationError("nint", "number of intervals must be positive. %d is invalid", o.Nint)
	}
	if o.FrozenFactor != nil {
		if len(o.FrozenFactor) != nl {
			return NewConfigurationError("frozen_factor", "%d factors given for %d layers", len(o.FrozenFactor), nl)
		}
		for i, f := range o.FrozenFactor {
			if !(f > 0 && f <= 1) {
				return NewConfigurationError("frozen_factor", "factor of layer %d must be in (0,1]. %g is invalid", i, f)
			}
		}
	}
	return
}

// NumLayers returns the number of layers
func (o *Global) NumLayers() int {
	return len(o.LayerThickness)
}
