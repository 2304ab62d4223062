// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tpstat

import (
	"fmt"
	"sort"

	"github.com/tpmpc/tpbench/trialfmt"
)

// A Role is the part a timer plays in the cost decomposition.
type Role int

const (
	// PrepFI is function-independent preprocessing.
	PrepFI Role = iota
	// PrepFD is function-dependent preprocessing.
	PrepFD
	// Online is the online phase.
	Online
	// BasePrep is the baseline protocol's preprocessing.
	BasePrep
	// BaseFD is the baseline's function-dependent preprocessing,
	// for baselines that time it separately.
	BaseFD
	// BaseOnline is the baseline protocol's online phase.
	BaseOnline

	numRoles
)

func (r Role) isBaseline() bool {
	return r >= BasePrep
}

// A Variant describes one report: where its logs live, which timer
// labels the harness wrote for each role, and how ratios against its
// baseline are printed.
type Variant struct {
	Name     string
	Baseline string // display name of the baseline protocol

	// Prefix is the trial directory prefix, see trialfmt.Layout.
	Prefix string

	// Labels maps each role to its log label. An empty label means
	// the harness does not time that role for this report.
	Labels [numRoles]string

	// RatioPrec is the number of decimals printed for ratios.
	RatioPrec int
}

// Variants lists the known reports by name.
var Variants = map[string]*Variant{
	"atlas": {
		Name:     "atlas",
		Baseline: "ATLAS",
		Prefix:   trialfmt.PrefixComparison,
		Labels: [numRoles]string{
			PrepFI:     "fi_prep",
			PrepFD:     "fd_prep",
			Online:     "online",
			BasePrep:   "atlas_prep",
			BaseOnline: "atlas_online",
		},
		RatioPrec: 1,
	},
	"dn07": {
		Name:     "dn07",
		Baseline: "DN07",
		Prefix:   trialfmt.PrefixExperiment,
		Labels: [numRoles]string{
			PrepFI:     "fi_prep",
			PrepFD:     "fd_prep",
			Online:     "online",
			BasePrep:   "dn07_prep",
			BaseFD:     "dn07_fd",
			BaseOnline: "dn07_online",
		},
		RatioPrec: 2,
	},
}

// LookupVariant returns the named variant.
func LookupVariant(name string) (*Variant, error) {
	if v, ok := Variants[name]; ok {
		return v, nil
	}
	var names []string
	for n := range Variants {
		names = append(names, n)
	}
	sort.Strings(names)
	return nil, fmt.Errorf("unknown variant %q (known: %v)", name, names)
}

// Vocabulary returns the log labels of v in role order.
func (v *Variant) Vocabulary() []string {
	var labels []string
	for _, l := range v.Labels {
		if l != "" {
			labels = append(labels, l)
		}
	}
	return labels
}

// placeholder returns the metrics reported for a key with no logs:
// zero for every cost and one for every baseline timer, so ratios
// against the baseline stay defined.
func (v *Variant) placeholder() map[string]float64 {
	vals := make(map[string]float64)
	for r, l := range v.Labels {
		if l == "" {
			continue
		}
		if Role(r).isBaseline() {
			vals[l] = 1
		} else {
			vals[l] = 0
		}
	}
	return vals
}
