// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/lgar/mdl/soil"
)

// Layer holds the wetting fronts of one soil layer
//  Fronts are ordered by depth; the last one is at the bottom of the layer
type Layer struct {
	Index    int          // index of this layer in the column
	Top      float64      // depth of the top of the layer [cm]
	Bottom   float64      // depth of the bottom of the layer [cm]
	SoilType int          // zero-based soil type index
	Soil     *soil.Params // soil of this layer
	ThetaWp  float64      // moisture content at wilting point
	Fronts   []*Front     // wetting fronts
}

// Thickness returns the thickness of the layer
func (o *Layer) Thickness() float64 {
	return o.Bottom - o.Top
}

// Last returns the deepest front
func (o *Layer) Last() *Front {
	return o.Fronts[len(o.Fronts)-1]
}

// Volume computes the water stored in the layer [cm]
//  V = Σ (θj - θj+1)(dj - top) + θlast (dlast - top)
func (o *Layer) Volume() (V float64) {
	n := len(o.Fronts)
	for j := 0; j < n-1; j++ {
		V += (o.Fronts[j].Theta - o.Fronts[j+1].Theta) * (o.Fronts[j].Depth - o.Top)
	}
	last := o.Fronts[n-1]
	V += last.Theta * (last.Depth - o.Top)
	return
}

// area returns the stacked area (θj - θj+1)(dj - top) of non-bottom front j
func (o *Layer) area(j int) float64 {
	return (o.Fronts[j].Theta - o.Fronts[j+1].Theta) * (o.Fronts[j].Depth - o.Top)
}

// upper returns the depth of the front above j or the top of the layer
func (o *Layer) upper(j int) float64 {
	if j == 0 {
		return o.Top
	}
	return o.Fronts[j-1].Depth
}

// insert inserts front f at position j
func (o *Layer) insert(j int, f *Front) {
	if j < 0 || j > len(o.Fronts) {
		chk.Panic("cannot insert front at position %d of layer %d with %d fronts", j, o.Index, len(o.Fronts))
	}
	f.moveTo(o)
	o.Fronts = append(o.Fronts, nil)
	copy(o.Fronts[j+1:], o.Fronts[j:])
	o.Fronts[j] = f
}

// remove removes the front at position j
func (o *Layer) remove(j int) {
	if j < 0 || j >= len(o.Fronts) {
		chk.Panic("cannot remove front %d of layer %d with %d fronts", j, o.Index, len(o.Fronts))
	}
	copy(o.Fronts[j:], o.Fronts[j+1:])
	o.Fronts[len(o.Fronts)-1] = nil
	o.Fronts = o.Fronts[:len(o.Fronts)-1]
}

// addToLast adds V [cm] over the span of the bottom front and returns what could not be added
func (o *Layer) addToLast(V float64) (rest float64) {
	n := len(o.Fronts)
	f := o.Fronts[n-1]
	span := f.Depth - o.upper(n-1)
	if span <= 0 {
		return V
	}
	θ := o.Soil.Clamp(f.Theta + V/span)
	rest = V - (θ-f.Theta)*span
	f.Theta = θ
	return
}

// blend absorbs front j into front j+1 keeping the water stored over both spans
//  θ = (θj (dj - dj-1) + θj+1 (dj+1 - dj)) / (dj+1 - dj-1)
func (o *Layer) blend(j int) {
	a, b := o.Fronts[j], o.Fronts[j+1]
	d0 := o.upper(j)
	span := b.Depth - d0
	if span > 0 {
		b.SetMoisture((a.Theta*(a.Depth-d0) + b.Theta*(b.Depth-a.Depth)) / span)
	}
	o.remove(j)
}
