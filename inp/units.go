// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/chk"

// constants
const (
	MmToCm = 0.1 // converts mm to cm
)

// ToHours converts a time value to hours
//  unit -- "[s]", "[sec]" or "" (seconds), "[min]", "[minute]", "[h]", "[hr]", "[d]" or "[day]"
func ToHours(value float64, unit string) (hours float64, err error) {
	switch unit {
	case "[s]", "[sec]", "":
		return value / 3600.0, nil
	case "[min]", "[minute]":
		return value / 60.0, nil
	case "[h]", "[hr]":
		return value, nil
	case "[d]", "[day]":
		return value * 24.0, nil
	}
	return 0, chk.Err("time unit %q is invalid; options are [s], [sec], [min], [minute], [h], [hr], [d] and [day]", unit)
}
