// Package render writes task tables as inline-styled HTML suitable for
// email bodies.
package render

import (
	"html/template"
	"io"
	"strings"

	"github.com/harrisonrobin/taskdigest/pkg/priority"
)

const (
	cellBorder = "border-right: 1px solid #dee2e6;"
	headBorder = "border-bottom: 2px solid #dee2e6;"
)

const tableTemplate = `{{define "table"}}` +
	`<h3 style="margin: 20px 0 10px 0; color: #333; font-family: Arial, sans-serif;">Tasks for {{.Company}}</h3>` +
	`<table style="border-collapse: collapse; width: 100%; font-family: Arial, sans-serif; margin: 0 0 30px 0; border: 1px solid #dee2e6;">` +
	`<tr style="background-color: #f8f9fa; font-weight: bold;">` +
	`<th style="padding: 12px; text-align: left; ` + cellBorder + ` ` + headBorder + `">Task</th>` +
	`<th style="padding: 12px; text-align: left; ` + cellBorder + ` ` + headBorder + `">Due Date</th>` +
	`<th style="padding: 12px; text-align: left; ` + headBorder + `">Status</th>` +
	`</tr>` +
	`{{range .Rows}}` +
	`<tr style="background-color:{{.Background}}; border-bottom: 1px solid #dee2e6;">` +
	`<td style="padding: 12px; ` + cellBorder + `">{{.Marker}} {{.Name}}</td>` +
	`<td style="padding: 12px; ` + cellBorder + `">{{if .Due}}{{.Due}}{{else}}N/A{{end}}</td>` +
	`<td style="padding: 12px;">{{.Status}}</td>` +
	`</tr>` +
	`{{end}}` +
	`</table>` +
	`{{end}}` +
	`{{define "tables"}}{{range .}}{{template "table" .}}{{end}}{{end}}`

var tmpl = template.Must(template.New("report").Parse(tableTemplate))

var markers = map[priority.Tier]template.HTML{
	priority.High:   `<span title="High Priority">🔴</span>`,
	priority.Medium: `<span title="Medium Priority">🟡</span>`,
	priority.Low:    `<span title="Low Priority">🟢</span>`,
}

// Row is one task line. An empty Due renders as "N/A".
type Row struct {
	Tier       priority.Tier
	Name       string
	Due        string
	Status     string
	Background string
}

// Marker returns the coloured dot for the row's priority tier.
func (r Row) Marker() template.HTML {
	return markers[r.Tier]
}

// Table is the task list for one company.
type Table struct {
	Company string
	Rows    []Row
}

// Tables writes a heading and table per company, in the given order.
func Tables(w io.Writer, tables []Table) error {
	return tmpl.ExecuteTemplate(w, "tables", tables)
}

// TablesString is Tables into a string.
func TablesString(tables []Table) (string, error) {
	var sb strings.Builder
	if err := Tables(&sb, tables); err != nil {
		return "", err
	}
	return sb.String(), nil
}
