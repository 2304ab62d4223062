// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tpstat

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Precision gives the number of decimals printed for costs and
// ratios.
type Precision struct {
	Cost, Ratio int
}

// DefaultPrecision returns the precision used for v's reports.
func DefaultPrecision(v *Variant) Precision {
	return Precision{Cost: 2, Ratio: v.RatioPrec}
}

// FormatLaTeX writes the body rows of a booktabs/multirow tabular to
// w. Each depth opens a multirow spanning its sizes; each size has an
// FD row and an FI row, with one "cost & ratio" column pair per party
// count.
func FormatLaTeX(w io.Writer, t *Table, prec Precision) error {
	bw := bufio.NewWriter(w)
	lastCol := 3 + 2*len(t.Parties)
	for _, g := range t.Groups {
		dim, err := FormatPower(g.Dim)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "\\multirow{%d}{*}{%s}", 2*len(g.Rows), dim)
		for _, row := range g.Rows {
			size, err := FormatPower(row.Size)
			if err != nil {
				return err
			}
			fmt.Fprintf(bw, "& \\multirow{2}{*}{%s} & \\textbf{FD}", size)
			for _, c := range row.Cells {
				writeLaTeXCell(bw, c.Derived.FD, c.Derived.RatioFD, prec)
			}
			bw.WriteString("\\\\\n")
			bw.WriteString("& & \\textbf{FI}")
			for _, c := range row.Cells {
				writeLaTeXCell(bw, c.Derived.FI, c.Derived.RatioFI, prec)
			}
			fmt.Fprintf(bw, "\\\\ \n \\cmidrule{3-%d} \n", lastCol)
		}
	}
	return bw.Flush()
}

func writeLaTeXCell(w *bufio.Writer, c, r Costs, prec Precision) {
	w.WriteString(" & ")
	w.WriteString(formatFloat(c.Offline, prec.Cost))
	w.WriteString(" / ")
	w.WriteString(formatFloat(c.Online, prec.Cost))
	w.WriteString(" & ")
	w.WriteString(formatFloat(r.Offline, prec.Ratio))
	w.WriteString(" / ")
	w.WriteString(formatFloat(r.Online, prec.Ratio))
}

// formatFloat formats v with prec decimals. Undefined values print
// as "--".
func formatFloat(v float64, prec int) string {
	if math.IsNaN(v) {
		return "--"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
