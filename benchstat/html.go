// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"bytes"
	"html/template"
	"strconv"
)

var htmlTemplate = template.Must(template.New("").Parse(`
<table class='allocstat'>
<tr class='header'>{{range .Header}}<th>{{.}}{{end}}
{{range .Rows -}}
<tr>{{range .}}<td>{{.}}{{end}}
{{end -}}
</table>
`))

type htmlTable struct {
	Header []string
	Rows   [][]string
}

// FormatHTML appends an HTML table of the statistics to buf, with the
// same columns and row order as WriteCSV.
func FormatHTML(buf *bytes.Buffer, rows []Row) {
	t := htmlTable{Header: csvHeader}
	for _, r := range sortedRows(rows) {
		cells := []string{
			r.Key.Platform,
			r.Key.Allocator,
			r.Key.Pattern,
			strconv.Itoa(r.Key.SizeBytes),
			strconv.Itoa(r.N),
		}
		for _, d := range [2]Dist{r.Total, r.Latency} {
			cells = append(cells,
				textValue(d.Mean), textValue(d.Std), textValue(d.Median),
				textValue(d.P25), textValue(d.P75), textValue(d.Min), textValue(d.Max))
		}
		t.Rows = append(t.Rows, cells)
	}
	err := htmlTemplate.Execute(buf, t)
	if err != nil {
		// Only possible errors here are template not matching data structure.
		// Don't make caller check - it's our fault.
		panic(err)
	}
}
