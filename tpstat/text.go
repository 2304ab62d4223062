// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tpstat

import (
	"fmt"
	"io"

	"github.com/tpmpc/tpbench/internal/texttab"
)

// FormatText writes t as an aligned plain text table with one line
// per key, for reading on a terminal.
func FormatText(w io.Writer, t *Table, prec Precision) error {
	var tab texttab.Table
	base := t.Variant.Baseline
	tab.Row().Cell("depth").Cell("size").Cell("n", texttab.Right).Cell("trials", texttab.Right).
		Cell("FD off/on", texttab.Right).Cell("vs "+base, texttab.Right).
		Cell("FI off/on", texttab.Right).Cell("vs "+base, texttab.Right).
		Cell("spread")
	for _, g := range t.Groups {
		dim, err := FormatPower(g.Dim)
		if err != nil {
			return err
		}
		for _, row := range g.Rows {
			size, err := FormatPower(row.Size)
			if err != nil {
				return err
			}
			for _, c := range row.Cells {
				d := c.Derived
				tab.Row().Cell(dim).Cell(size).
					Cell(fmt.Sprint(c.Key.N), texttab.Right).
					Cell(fmt.Sprint(c.Metrics.Trials), texttab.Right).
					Cell(pair(d.FD, prec.Cost), texttab.Right).
					Cell(pair(d.RatioFD, prec.Ratio), texttab.Right).
					Cell(pair(d.FI, prec.Cost), texttab.Right).
					Cell(pair(d.RatioFI, prec.Ratio), texttab.Right).
					Cell(spread(t.Variant, c.Metrics))
			}
		}
	}
	return tab.Format(w)
}

func pair(c Costs, prec int) string {
	return formatFloat(c.Offline, prec) + " / " + formatFloat(c.Online, prec)
}

// spread formats the largest relative deviation of any timer's
// per-trial sum from its mean, like benchstat's "±" column.
func spread(v *Variant, m *Metrics) string {
	if m.Trials < 2 {
		return ""
	}
	var diff float64
	for _, l := range v.Vocabulary() {
		mean := m.Values[l]
		if mean == 0 {
			continue
		}
		if d := 1 - m.Min[l]/mean; d > diff {
			diff = d
		}
		if d := m.Max[l]/mean - 1; d > diff {
			diff = d
		}
	}
	return fmt.Sprintf("±%.0f%%", diff*100)
}
