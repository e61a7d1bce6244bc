// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/lgar/lgar"
)

// column keys of forcing tables
const (
	PrecipKey = "precip_mm_per_h" // precipitation rate [mm/h]
	PetKey    = "PET_mm_per_h"    // potential evapotranspiration rate [mm/h]
)

// Forcing holds precipitation and PET rates, one record per timestep
type Forcing struct {
	Precip []float64 // precipitation rate [cm/h]
	Pet    []float64 // potential evapotranspiration rate [cm/h]
}

// ReadForcing reads a whitespace separated table with a header containing precip_mm_per_h and
// PET_mm_per_h; the rates are converted to cm/h
func ReadForcing(fn string) (o *Forcing, err error) {
	_, res, err := io.ReadTable(fn)
	if err != nil {
		return nil, chk.Err("ReadForcing: cannot read forcing file %q:\n%v", fn, err)
	}
	P, ok := res[PrecipKey]
	if !ok {
		return nil, lgar.NewConfigurationError("forcingfile", "column %q is missing in %q", PrecipKey, fn)
	}
	E, ok := res[PetKey]
	if !ok {
		return nil, lgar.NewConfigurationError("forcingfile", "column %q is missing in %q", PetKey, fn)
	}
	return NewForcing(P, E)
}

// NewForcing returns a new forcing from rates given in mm/h
func NewForcing(precipMmPerH, petMmPerH []float64) (o *Forcing, err error) {
	if len(precipMmPerH) != len(petMmPerH) {
		return nil, lgar.NewConfigurationError("forcingfile", "%d precipitation and %d PET records are inconsistent", len(precipMmPerH), len(petMmPerH))
	}
	o = &Forcing{Precip: make([]float64, len(precipMmPerH)), Pet: make([]float64, len(petMmPerH))}
	for i := range precipMmPerH {
		p, e := precipMmPerH[i], petMmPerH[i]
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, lgar.NewConfigurationError("forcingfile", "precipitation of record %d must be finite and not negative. %g is invalid", i, p)
		}
		if e < 0 || math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, lgar.NewConfigurationError("forcingfile", "PET of record %d must be finite and not negative. %g is invalid", i, e)
		}
		o.Precip[i] = p * MmToCm
		o.Pet[i] = e * MmToCm
	}
	return
}

// Len returns the number of records
func (o *Forcing) Len() int {
	return len(o.Precip)
}
