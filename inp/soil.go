// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/lgar/lgar"
	"github.com/cpmech/lgar/mdl/soil"
)

// SoilType holds the data of one soil texture class
type SoilType struct {
	Name      string     `json:"name"`      // name of texture; e.g. "loam"
	Retention string     `json:"retention"` // retention model; e.g. "vg" or "bc"
	Conduct   string     `json:"conduct"`   // conductivity model; e.g. "mualem"; "" => paired with retention
	Prms      dbf.Params `json:"prms"`      // parameters; e.g. theta_r, theta_e, alpha, n, ksat
}

// SoilDb implements a database of soil types
type SoilDb struct {
	Types []*SoilType `json:"soils"` // soil types; the first one is soil type 1 in .sim files
}

// ReadSoil reads all soil types from a .soil JSON file
func ReadSoil(fn string) (o *SoilDb, err error) {

	// read file
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("ReadSoil: cannot read soil file %q:\n%v", fn, err)
	}

	// decode
	o = new(SoilDb)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSoil: cannot unmarshal soil file %q:\n%v", fn, err)
	}
	if len(o.Types) == 0 {
		return nil, lgar.NewConfigurationError("soils", "soil file %q has no soil types", fn)
	}
	for i, t := range o.Types {
		if t.Retention == "" {
			t.Retention = "vg"
		}
		if t.Name == "" {
			t.Name = io.Sf("soil%d", i+1)
		}
	}
	return
}

// Get returns the soil type with the given name (case insensitive) or nil
func (o SoilDb) Get(name string) *SoilType {
	for _, t := range o.Types {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return nil
}

// Params allocates and initialises the parameters of all soil types
//  initialPsi and wiltingPointPsi set θinit and θwp (if not given)
func (o SoilDb) Params(initialPsi, wiltingPointPsi float64) (sps []*soil.Params, err error) {
	sps = make([]*soil.Params, len(o.Types))
	for i, t := range o.Types {
		sps[i], err = soil.New(t.Name, t.Retention, t.Conduct, t.Prms)
		if err != nil {
			return nil, lgar.NewConfigurationError("soils", "soil type %d: %v", i+1, err)
		}
		sps[i].Prepare(initialPsi, wiltingPointPsi)
	}
	return
}

// String returns a table with the soil types
func (o SoilDb) String() string {
	l := io.Sf("%4s %-16s%-8s%-8s", "type", "name", "reten", "conduct")
	for i, t := range o.Types {
		l += io.Sf("\n%4d %-16s%-8s%-8s", i+1, t.Name, t.Retention, t.Conduct)
		for _, p := range t.Prms {
			l += io.Sf(" %s=%g", p.N, p.V)
		}
	}
	return l
}
