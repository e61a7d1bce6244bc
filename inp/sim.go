// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) JSON or TOML files, (.soil) JSON files
// and forcing tables
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/lgar/lgar"
	"github.com/cpmech/lgar/mdl/soil"
)

// Data holds the simulation data as given in the .sim file
type Data struct {

	// global information
	Desc        string `json:"desc" toml:"desc"`               // description of simulation
	SoilFile    string `json:"soilfile" toml:"soilfile"`       // soil types file path
	ForcingFile string `json:"forcingfile" toml:"forcingfile"` // forcing table file path
	DirOut      string `json:"dirout" toml:"dirout"`           // directory for output; e.g. /tmp/lgar

	// column
	LayerThickness  []float64 `json:"layer_thickness_cm" toml:"layer_thickness_cm"`     // thickness of each layer [cm]
	LayerSoilType   []int     `json:"layer_soil_type" toml:"layer_soil_type"`           // one-based soil type of each layer
	InitialPsi      float64   `json:"initial_psi_cm" toml:"initial_psi_cm"`             // initial matric potential [cm]
	PondedDepthMax  float64   `json:"ponded_depth_max_cm" toml:"ponded_depth_max_cm"`   // maximum ponded depth [cm]
	WiltingPointPsi float64   `json:"wilting_point_psi_cm" toml:"wilting_point_psi_cm"` // wilting point potential [cm]; 0 => default
	GiuhOrdinates   []float64 `json:"giuh_ordinates" toml:"giuh_ordinates"`             // unit hydrograph ordinates

	// time control
	Timestep          float64 `json:"timestep" toml:"timestep"`                               // substep length
	TimestepUnit      string  `json:"timestep_unit" toml:"timestep_unit"`                     // unit of substep length; e.g. "[min]"
	Endtime           float64 `json:"endtime" toml:"endtime"`                                 // final time
	EndtimeUnit       string  `json:"endtime_unit" toml:"endtime_unit"`                       // unit of final time
	ForcingResolution float64 `json:"forcing_resolution" toml:"forcing_resolution"`           // forcing (timestep) interval
	ForcingResUnit    string  `json:"forcing_resolution_unit" toml:"forcing_resolution_unit"` // unit of forcing interval

	// options
	SftCoupled     bool      `json:"sft_coupled" toml:"sft_coupled"`                 // frozen soil coupling
	UseClosedFormG bool      `json:"use_closed_form_G" toml:"use_closed_form_G"`     // closed-form capillary drive
	FrozenFactor   []float64 `json:"frozen_factor" toml:"frozen_factor"`             // frozen factor of each layer
	Nint           int       `json:"nint" toml:"nint"`                               // intervals of the numerical capillary drive; 0 => default
	MassBalTol     float64   `json:"mass_balance_tol_cm" toml:"mass_balance_tol_cm"` // tolerance on the mass balance residual [cm]; 0 => default
	MassBalFatal   bool      `json:"mass_balance_fatal" toml:"mass_balance_fatal"`   // stop on mass balance violations
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data Data // data from .sim file

	// derived
	Key        string         // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	DirOut     string         // directory to save results
	Dt         float64        // substep length [h]
	Tf         float64        // final time [h]
	DtForcing  float64        // forcing interval (timestep) [h]
	Nsub       int            // number of substeps per timestep
	Nsteps     int            // number of timesteps
	Soils      *SoilDb        // soil types
	Forcing    *Forcing       // precipitation and PET
	Global     *lgar.Global   // global parameters for the column
	SoilParams []*soil.Params // soil parameters indexed by zero-based soil type
}

// ReadSim reads all simulation data from a .sim JSON file or a .toml file
//  The soil and forcing files are read relative to the directory of the simulation file
func ReadSim(simfilepath, alias string, createDirOut bool) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	switch strings.ToLower(filepath.Ext(simfilepath)) {
	case ".toml":
		_, err = toml.Decode(string(b), &o.Data)
	default:
		err = json.Unmarshal(b, &o.Data)
	}
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/lgar/" + fnkey
	}
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// soils
	if o.Data.SoilFile == "" {
		return nil, lgar.NewConfigurationError("soilfile", "soil file must be given")
	}
	soils, err := ReadSoil(joinPath(dir, o.Data.SoilFile))
	if err != nil {
		return nil, err
	}

	// forcing
	if o.Data.ForcingFile == "" {
		return nil, lgar.NewConfigurationError("forcingfile", "forcing file must be given")
	}
	forcing, err := ReadForcing(joinPath(dir, o.Data.ForcingFile))
	if err != nil {
		return nil, err
	}

	// time control, global parameters and soils
	err = o.Init(soils, forcing)
	if err != nil {
		return nil, err
	}
	return
}

// NewSimulation returns a new simulation from data given in code
//  key -- simulation key; "" => "lgar"
func NewSimulation(key string, data Data, soils *SoilDb, forcing *Forcing) (o *Simulation, err error) {
	o = &Simulation{Data: data, Key: key}
	if o.Key == "" {
		o.Key = "lgar"
	}
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/lgar/" + o.Key
	}
	err = o.Init(soils, forcing)
	if err != nil {
		return nil, err
	}
	return
}

// Init sets the soil types and forcing, converts the time control data and prepares the parameters
func (o *Simulation) Init(soils *SoilDb, forcing *Forcing) (err error) {
	o.Soils, o.Forcing = soils, forcing
	if o.Forcing == nil {
		return lgar.NewConfigurationError("forcingfile", "forcing is missing")
	}
	err = o.setTimes()
	if err != nil {
		return
	}
	return o.Prepare()
}

// Prepare validates the data and computes the global parameters and soil parameters
//  The soil types of layers are converted from one-based to zero-based indices
func (o *Simulation) Prepare() (err error) {
	if o.Soils == nil {
		return lgar.NewConfigurationError("soilfile", "soil types are missing")
	}
	nsoils := len(o.Soils.Types)
	types := make([]int, len(o.Data.LayerSoilType))
	for i, t := range o.Data.LayerSoilType {
		if t < 1 || t > nsoils {
			return lgar.NewConfigurationError("layer_soil_type", "soil type of layer %d must be in [1, %d]. %d is invalid", i, nsoils, t)
		}
		types[i] = t - 1
	}
	o.Global = &lgar.Global{
		LayerThickness:  o.Data.LayerThickness,
		LayerSoilType:   types,
		InitialPsi:      o.Data.InitialPsi,
		PondedDepthMax:  o.Data.PondedDepthMax,
		WiltingPointPsi: o.Data.WiltingPointPsi,
		GiuhOrdinates:   o.Data.GiuhOrdinates,
		Dt:              o.Dt,
		SftCoupled:      o.Data.SftCoupled,
		UseClosedFormG:  o.Data.UseClosedFormG,
		Nint:            o.Data.Nint,
		FrozenFactor:    o.Data.FrozenFactor,
	}
	err = o.Global.Init(nsoils)
	if err != nil {
		return
	}
	if o.Data.MassBalTol < 0 {
		return lgar.NewConfigurationError("mass_balance_tol_cm", "tolerance must not be negative. %g is invalid", o.Data.MassBalTol)
	}
	if o.Data.MassBalTol == 0 {
		o.Data.MassBalTol = lgar.MassBalTolDef
	}
	o.SoilParams, err = o.Soils.Params(o.Global.InitialPsi, o.Global.WiltingPointPsi)
	if err != nil {
		return
	}
	if o.Forcing.Len() < o.Nsteps {
		return lgar.NewConfigurationError("forcingfile", "forcing has %d records but %d timesteps are required", o.Forcing.Len(), o.Nsteps)
	}
	return
}

// setTimes converts the time control data to hours
func (o *Simulation) setTimes() (err error) {
	o.Dt, err = ToHours(o.Data.Timestep, o.Data.TimestepUnit)
	if err != nil {
		return lgar.NewConfigurationError("timestep_unit", "%v", err)
	}
	if !(o.Dt > 0) {
		return lgar.NewConfigurationError("timestep", "timestep must be positive. %g is invalid", o.Data.Timestep)
	}
	o.Tf, err = ToHours(o.Data.Endtime, o.Data.EndtimeUnit)
	if err != nil {
		return lgar.NewConfigurationError("endtime_unit", "%v", err)
	}
	if !(o.Tf > 0) {
		return lgar.NewConfigurationError("endtime", "endtime must be positive. %g is invalid", o.Data.Endtime)
	}
	o.DtForcing, err = ToHours(o.Data.ForcingResolution, o.Data.ForcingResUnit)
	if err != nil {
		return lgar.NewConfigurationError("forcing_resolution_unit", "%v", err)
	}
	if o.DtForcing == 0 {
		o.DtForcing = 1
	}
	if o.DtForcing < o.Dt {
		return lgar.NewConfigurationError("forcing_resolution", "forcing resolution (%g h) must not be smaller than the timestep (%g h)", o.DtForcing, o.Dt)
	}
	o.Nsub = int(math.Round(o.DtForcing / o.Dt))
	if math.Abs(float64(o.Nsub)*o.Dt-o.DtForcing) > 1e-9*o.DtForcing {
		return lgar.NewConfigurationError("timestep", "forcing resolution (%g h) must be a multiple of the timestep (%g h)", o.DtForcing, o.Dt)
	}
	o.Nsteps = int(math.Round(o.Tf / o.DtForcing))
	if o.Nsteps < 1 {
		return lgar.NewConfigurationError("endtime", "endtime (%g h) is shorter than the forcing resolution (%g h)", o.Tf, o.DtForcing)
	}
	return
}

// joinPath joins dir and fn unless fn is absolute
func joinPath(dir, fn string) string {
	fn = os.ExpandEnv(fn)
	if filepath.IsAbs(fn) {
		return fn
	}
	return filepath.Join(dir, fn)
}
