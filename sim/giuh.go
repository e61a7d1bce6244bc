// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

// Giuh routes surface runoff with a geomorphological instantaneous unit hydrograph
//  Each call spreads the runoff over the ordinates and releases the first queued value
type Giuh struct {
	Ordinates []float64 // unit hydrograph ordinates (sum to one)
	queue     []float64 // runoff waiting to be released [cm]
}

// NewGiuh returns a new router; no ordinates means no routing
func NewGiuh(ordinates []float64) (o *Giuh) {
	o = new(Giuh)
	o.Ordinates = ordinates
	o.queue = make([]float64, len(ordinates)+1)
	return
}

// Route adds runoff [cm] to the queue and returns the routed runoff released now [cm]
func (o *Giuh) Route(runoff float64) (routed float64) {
	n := len(o.Ordinates)
	if n == 0 {
		return runoff
	}
	for i, c := range o.Ordinates {
		o.queue[i] += c * runoff
	}
	routed = o.queue[0]
	copy(o.queue, o.queue[1:])
	o.queue[n] = 0
	return
}

// Stored returns the runoff still queued [cm]
func (o *Giuh) Stored() (V float64) {
	for _, q := range o.queue {
		V += q
	}
	return
}

// Reset empties the queue
func (o *Giuh) Reset() {
	for i := range o.queue {
		o.queue[i] = 0
	}
}
