// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tpstat

import "math"

// Costs is an offline/online cost pair.
type Costs struct {
	Offline, Online float64
}

// Derived holds the costs of one key under both attributions of
// function-dependent preprocessing, together with the baseline's
// costs and the ratios against them.
//
// FD counts function-dependent preprocessing as offline work; FI
// counts it as online work, leaving only function-independent
// preprocessing offline.
type Derived struct {
	FD, FI         Costs
	BaseFD, BaseFI Costs

	// RatioFD and RatioFI are FD/BaseFD and FI/BaseFI, per phase.
	// A ratio against a zero baseline is NaN.
	RatioFD, RatioFI Costs
}

// ComputeDerived splits the metrics of a key into costs and ratios
// according to v's roles.
func ComputeDerived(v *Variant, m *Metrics) Derived {
	get := func(r Role) float64 { return m.Get(v.Labels[r]) }

	var d Derived
	d.FD = Costs{get(PrepFI) + get(PrepFD), get(Online)}
	d.FI = Costs{get(PrepFI), get(PrepFD) + get(Online)}
	d.BaseFD = Costs{get(BasePrep) + get(BaseFD), get(BaseOnline)}
	d.BaseFI = Costs{get(BasePrep), get(BaseFD) + get(BaseOnline)}
	d.RatioFD = ratios(d.FD, d.BaseFD)
	d.RatioFI = ratios(d.FI, d.BaseFI)
	return d
}

func ratios(c, base Costs) Costs {
	ratio := func(a, b float64) float64 {
		if r, ok := Ratio(a, b); ok {
			return r
		}
		return math.NaN()
	}
	return Costs{ratio(c.Offline, base.Offline), ratio(c.Online, base.Online)}
}

// Ratio returns a/b. ok is false if b is zero.
func Ratio(a, b float64) (r float64, ok bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}
