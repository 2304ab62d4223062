// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tpstat

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	chartWidth  = 16 * vg.Centimeter
	chartHeight = 10 * vg.Centimeter
	chartDPI    = 96
)

type series struct {
	name  string
	color color.Color
	dash  bool
	ratio func(d Derived) float64
}

var chartSeries = []series{
	{"FD offline", color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, false, func(d Derived) float64 { return d.RatioFD.Offline }},
	{"FD online", color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, true, func(d Derived) float64 { return d.RatioFD.Online }},
	{"FI offline", color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, false, func(d Derived) float64 { return d.RatioFI.Offline }},
	{"FI online", color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, true, func(d Derived) float64 { return d.RatioFI.Online }},
}

// Chart writes one PNG per size and depth of t to dir, plotting the
// four cost ratios against the party count. It returns the files
// written. Keys without logs are left out of the plot.
func Chart(t *Table, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	var files []string
	for _, g := range t.Groups {
		for _, row := range g.Rows {
			file := filepath.Join(dir, fmt.Sprintf("ratio_%d_%d.png", row.Size, row.Dim))
			if err := chartRow(t.Variant, row, file); err != nil {
				return files, err
			}
			files = append(files, file)
		}
	}
	return files, nil
}

func chartRow(v *Variant, row *Row, file string) error {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("size %d, depth %d", row.Size, row.Dim)
	pl.X.Label.Text = "parties"
	pl.Y.Label.Text = "cost / " + v.Baseline + " cost"

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	for _, s := range chartSeries {
		var xys plotter.XYs
		for _, c := range row.Cells {
			if c.Metrics.Placeholder() {
				continue
			}
			y := s.ratio(c.Derived)
			if math.IsNaN(y) || math.IsInf(y, 0) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(c.Key.N), Y: y})
		}
		if len(xys) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		line.LineStyle.Color = s.color
		points.GlyphStyle.Color = s.color
		if s.dash {
			line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		}
		pl.Add(line, points)
		pl.Legend.Add(s.name, line, points)
	}
	pl.Legend.Top = true

	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(chartWidth, chartHeight),
		vgimg.UseDPI(chartDPI), vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(can))

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
