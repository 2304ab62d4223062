// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tpstat

import (
	"errors"
	"fmt"

	"github.com/tpmpc/tpbench/trialfmt"
)

// DefaultParties are the party counts the harness is run with.
var DefaultParties = []int{13, 21, 29, 37, 45}

// A Grid is the set of keys a table covers.
type Grid struct {
	// Dims lists circuit depths in output order.
	Dims []int

	// Sizes lists, for each depth, the circuit sizes in output
	// order.
	Sizes map[int][]int

	// Parties lists the party counts, one table column pair each.
	Parties []int
}

// DefaultGrid returns the grid with depths 10^1 through 10^dMax and,
// for depth 10^e, sizes 10^max(e+1, 3) through 10^sMax.
func DefaultGrid(dMax, sMax int, parties []int) (Grid, error) {
	if dMax < 1 || dMax >= sMax {
		return Grid{}, fmt.Errorf("bad grid: need 1 <= dmax < smax, have dmax=%d smax=%d", dMax, sMax)
	}
	if len(parties) == 0 {
		return Grid{}, errors.New("bad grid: no party counts")
	}
	g := Grid{Sizes: make(map[int][]int), Parties: parties}
	for e := 1; e <= dMax; e++ {
		d := pow10(e)
		g.Dims = append(g.Dims, d)
		lo := e + 1
		if lo < 3 {
			lo = 3
		}
		for i := lo; i <= sMax; i++ {
			g.Sizes[d] = append(g.Sizes[d], pow10(i))
		}
	}
	return g, nil
}

func pow10(e int) int {
	v := 1
	for ; e > 0; e-- {
		v *= 10
	}
	return v
}

// Validate checks that every size and depth of g can be labeled.
func (g Grid) Validate() error {
	for _, d := range g.Dims {
		if _, err := FormatPower(d); err != nil {
			return err
		}
		for _, s := range g.Sizes[d] {
			if _, err := FormatPower(s); err != nil {
				return err
			}
		}
	}
	return nil
}

// ErrMagnitude is returned for a size or depth with no table label.
var ErrMagnitude = errors.New("no label for magnitude")

// FormatPower returns the table label of a size or depth: the
// decimal value below 1000, otherwise one of 1k, 10k, 100k and 1M.
func FormatPower(v int) (string, error) {
	switch {
	case v < 1000:
		return fmt.Sprint(v), nil
	case v == 1000:
		return "1k", nil
	case v == 10000:
		return "10k", nil
	case v == 100000:
		return "100k", nil
	case v == 1000000:
		return "1M", nil
	}
	return "", fmt.Errorf("%d: %w", v, ErrMagnitude)
}

// A Table holds the derived costs of every key of a Grid.
type Table struct {
	Variant *Variant
	Parties []int
	Groups  []*Group
}

// A Group holds the rows for one circuit depth.
type Group struct {
	Dim  int
	Rows []*Row
}

// A Row holds the cells for one circuit size and depth, one per
// party count.
type Row struct {
	Size, Dim int
	Cells     []*Cell
}

// A Cell holds the results for one key.
type Cell struct {
	Key     trialfmt.Key
	Metrics *Metrics
	Derived Derived
}

// BuildTable aggregates every key of g.
func BuildTable(a *Aggregator, g Grid) (*Table, error) {
	t := &Table{Variant: a.Variant, Parties: g.Parties}
	for _, d := range g.Dims {
		group := &Group{Dim: d}
		for _, s := range g.Sizes[d] {
			row := &Row{Size: s, Dim: d}
			for _, n := range g.Parties {
				key := trialfmt.Key{N: n, Size: s, Dim: d}
				m, err := a.Aggregate(key)
				if err != nil {
					return nil, fmt.Errorf("%v: %w", key, err)
				}
				row.Cells = append(row.Cells, &Cell{key, m, ComputeDerived(a.Variant, m)})
			}
			group.Rows = append(group.Rows, row)
		}
		t.Groups = append(t.Groups, group)
	}
	return t, nil
}
