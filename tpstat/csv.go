// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tpstat

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
)

var csvHeader = []string{
	"depth", "size", "n", "trials",
	"fd_offline", "fd_online", "fi_offline", "fi_online",
	"base_fd_offline", "base_fd_online", "base_fi_offline", "base_fi_online",
	"ratio_fd_offline", "ratio_fd_online", "ratio_fi_offline", "ratio_fi_online",
}

// FormatCSV writes one record per key of t, with full precision
// values. Undefined ratios are empty fields.
func FormatCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	cw.Write(csvHeader)
	for _, g := range t.Groups {
		for _, row := range g.Rows {
			for _, c := range row.Cells {
				d := c.Derived
				rec := []string{
					strconv.Itoa(row.Dim), strconv.Itoa(row.Size),
					strconv.Itoa(c.Key.N), strconv.Itoa(c.Metrics.Trials),
				}
				for _, cost := range []Costs{d.FD, d.FI, d.BaseFD, d.BaseFI, d.RatioFD, d.RatioFI} {
					rec = append(rec, csvFloat(cost.Offline), csvFloat(cost.Online))
				}
				cw.Write(rec)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
