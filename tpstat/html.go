// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tpstat

import (
	"io"

	"github.com/google/safehtml/template"
)

const htmlTable = `
<table class='tpstat'>
<tr><th>depth<th>size<th>{{range .Parties}}<th colspan='2'>n = {{.}}{{end}}
{{- range $g := .Groups}}
<tbody>
{{- range $row := .Rows}}
<tr><td rowspan='2'>{{power $g.Dim}}<td rowspan='2'>{{power $row.Size}}<th>FD
{{- range .Cells}}<td>{{costs .Derived.FD}}<td>{{ratios .Derived.RatioFD}}{{end}}
<tr><th>FI
{{- range .Cells}}<td>{{costs .Derived.FI}}<td>{{ratios .Derived.RatioFI}}{{end}}
{{- end}}
</tbody>
{{- end}}
</table>
`

// FormatHTML writes t as an HTML table.
func FormatHTML(w io.Writer, t *Table, prec Precision) error {
	funcs := template.FuncMap{
		"power":  FormatPower,
		"costs":  func(c Costs) string { return pair(c, prec.Cost) },
		"ratios": func(c Costs) string { return pair(c, prec.Ratio) },
	}
	tmpl, err := template.New("table").Funcs(funcs).Parse(htmlTable)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, t)
}
