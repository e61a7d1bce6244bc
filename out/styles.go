// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// GetTexLabel returns a TeX label for a result key and unit; e.g. "runoff", "[cm]" => "$R\;[cm]$"
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "time":
		l += "t"
	case "precip":
		l += "P"
	case "pet":
		l += "PET"
	case "aet":
		l += "AET"
	case "runoff":
		l += "R"
	case "infil":
		l += "I"
	case "perc":
		l += "q_{perc}"
	case "giuh":
		l += "Q_{giuh}"
	case "ponded":
		l += "h_p"
	case "vol":
		l += "V"
	case "residual":
		l += "\\varepsilon_V"
	case "theta":
		l += "\\theta"
	case "depth":
		l += "z"
	case "psi":
		l += "\\psi"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
