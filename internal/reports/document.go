// Package reports builds exportable business reports from the dashboard's
// source collections. Each report kind filters its collections by a date
// interval and optional categorical filters, projects the survivors into flat
// rows matching a fixed column schema, and appends summary rows computed over
// the filtered set.
package reports

import (
	"time"

	"github.com/pressroom-erp/pressroom/internal/shared"
)

// Column pairs a display header with the row key it projects.
type Column struct {
	Header string `json:"header"`
	Key    string `json:"key"`
}

// Row is one line of exported output. Every row carries exactly the key set
// declared by its report's column schema; cells that do not apply hold "".
type Row map[string]string

// NewRow returns a row with every schema key present and blank.
func NewRow(columns []Column) Row {
	row := make(Row, len(columns))
	for _, col := range columns {
		row[col.Key] = ""
	}
	return row
}

// Document is one renderable table: title, subtitle, schema and rows.
type Document struct {
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle"`
	Columns   []Column `json:"columns"`
	Rows      []Row    `json:"rows"`
	Landscape bool     `json:"landscape"`
}

// Report is the output of one transform. Most kinds produce a single
// document; the daily time record produces one per employee.
type Report struct {
	Kind        string          `json:"kind"`
	FileBase    string          `json:"file_base"`
	Documents   []Document      `json:"documents"`
	Notices     []shared.Notice `json:"notices,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// summaryRow builds a row where label sits in the first column and value in
// the last, with every other cell blank.
func summaryRow(columns []Column, label, value string) Row {
	row := NewRow(columns)
	row[columns[0].Key] = label
	row[columns[len(columns)-1].Key] = value
	return row
}

// blankRow separates data rows from the summary block.
func blankRow(columns []Column) Row {
	return NewRow(columns)
}
