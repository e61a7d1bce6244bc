// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgar

import "math"

// MergeWettingFronts merges adjacent fronts of every layer, shallow to deep
//  A front that overtook the next one is combined with it, keeping its moisture content, at the
//  depth that preserves both stacked areas. Fronts that are too close or with (nearly) the same
//  moisture content are blended. The result is a fixpoint: merging again changes nothing.
//  Returns the number of merges
func (o *Column) MergeWettingFronts() (nmerges int) {
	for _, lay := range o.Layers {
		j := 0
		for j < len(lay.Fronts)-1 {
			if o.mergePair(lay, j) {
				nmerges++
				if j > 0 {
					j--
				}
				continue
			}
			j++
		}
	}
	return
}

// mergePair merges front j into front j+1 if needed
func (o *Column) mergePair(lay *Layer, j int) bool {
	f, next := lay.Fronts[j], lay.Fronts[j+1]
	sep := next.Depth - f.Depth

	// bottom front: fronts past the bottom are handled by the boundary crossings
	if j+1 == len(lay.Fronts)-1 {
		if math.Abs(f.Theta-next.Theta) < MergeThetaTol || (sep >= 0 && sep < DepthTol) {
			lay.blend(j)
			return true
		}
		return false
	}

	// overtaken
	if sep <= 0 {
		after := lay.Fronts[j+2]
		d := lay.Top + (lay.area(j)+lay.area(j+1))/(f.Theta-after.Theta)
		if f.Theta-after.Theta > DthetaMin && d > lay.upper(j) {
			next.Theta = f.Theta
			next.SetDepth(d)
			lay.remove(j)
			return true
		}
		lay.blend(j)
		return true
	}

	// close or equal
	if sep < DepthTol || math.Abs(f.Theta-next.Theta) < MergeThetaTol {
		lay.blend(j)
		return true
	}
	return false
}

// FixDryOverWetFronts blends every front that is drier than the front beneath it in the same layer
//  Returns the number of fixes
func (o *Column) FixDryOverWetFronts() (nfixes int) {
	for _, lay := range o.Layers {
		j := 0
		for j < len(lay.Fronts)-1 {
			f, next := lay.Fronts[j], lay.Fronts[j+1]
			if f.Theta < next.Theta-MergeThetaTol {
				lay.blend(j)
				nfixes++
				if j > 0 {
					j--
				}
				continue
			}
			j++
		}
	}
	return
}
