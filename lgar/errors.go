// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// errors for simulation operations
var (
	// ErrConfiguration indicates invalid soil parameters, layers or GIUH ordinates
	ErrConfiguration = errors.New("lgar: invalid configuration")

	// ErrNonFiniteFlux indicates an infiltration capacity or front velocity that is not finite or is negative
	ErrNonFiniteFlux = errors.New("lgar: non-finite flux")

	// ErrMassBalance indicates a mass balance residual above tolerance
	ErrMassBalance = errors.New("lgar: mass balance violation")
)

// ConfigurationError reports an invalid input value
type ConfigurationError struct {
	Field   string // offending key
	Message string // what is wrong with it
}

func (e *ConfigurationError) Error() string {
	return io.Sf("lgar: invalid configuration: %s: %s", e.Field, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// NewConfigurationError returns a new ConfigurationError
func NewConfigurationError(field, msg string, args ...interface{}) error {
	return &ConfigurationError{Field: field, Message: io.Sf(msg, args...)}
}

// NonFiniteFluxError reports a flux that cannot be integrated
//  Timestep and Substep are set by the simulation loop; -1 means unknown
type NonFiniteFluxError struct {
	Timestep int
	Substep  int
	Layer    int
	Front    int
	Quantity string
	Value    float64
}

func (e *NonFiniteFluxError) Error() string {
	return io.Sf("lgar: non-finite flux: %s = %g at timestep %d, substep %d, layer %d, front %d",
		e.Quantity, e.Value, e.Timestep, e.Substep, e.Layer, e.Front)
}

func (e *NonFiniteFluxError) Unwrap() error {
	return ErrNonFiniteFlux
}

// MassBalanceError reports a residual above tolerance when mass balance violations are fatal
type MassBalanceError struct {
	Timestep  int
	Residual  float64
	Tolerance float64
}

func (e *MassBalanceError) Error() string {
	return io.Sf("lgar: mass balance violation at timestep %d: residual = %g cm exceeds %g cm",
		e.Timestep, e.Residual, e.Tolerance)
}

func (e *MassBalanceError) Unwrap() error {
	return ErrMassBalance
}
