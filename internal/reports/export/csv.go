package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/pressroom-erp/pressroom/internal/reports"
)

// CSV renders the report as comma-separated values. Metadata travels in "#"
// comment lines ahead of each table; multi-document reports become stacked
// sections separated by a blank line. If the csv writer fails the encoder
// falls back to manual quoting so the download still succeeds.
func CSV(rep *reports.Report) (*File, error) {
	var buf bytes.Buffer
	if err := writeCSV(&buf, rep); err != nil {
		buf.Reset()
		writeCSVManual(&buf, rep)
	}
	return &File{
		Name:        Filename(rep, "csv"),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

func writeCSV(buf *bytes.Buffer, rep *reports.Report) error {
	w := csv.NewWriter(buf)
	w.UseCRLF = true
	for i, doc := range rep.Documents {
		if i > 0 {
			buf.WriteString("\r\n")
		}
		buf.WriteString("# " + doc.Title + "\r\n")
		if doc.Subtitle != "" {
			buf.WriteString("# " + doc.Subtitle + "\r\n")
		}
		buf.WriteString("# Generated " + rep.GeneratedAt.Format("2006-01-02 15:04") + "\r\n")

		header := make([]string, len(doc.Columns))
		for j, col := range doc.Columns {
			header[j] = col.Header
		}
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
		for _, row := range doc.Rows {
			record := make([]string, len(doc.Columns))
			for j, col := range doc.Columns {
				record[j] = row[col.Key]
			}
			if err := w.Write(record); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("flush csv: %w", err)
		}
	}
	return nil
}

// writeCSVManual quotes every cell by hand. Double quotes inside a cell are
// doubled per RFC 4180.
func writeCSVManual(buf *bytes.Buffer, rep *reports.Report) {
	for i, doc := range rep.Documents {
		if i > 0 {
			buf.WriteString("\r\n")
		}
		buf.WriteString("# " + doc.Title + "\r\n")

		cells := make([]string, len(doc.Columns))
		for j, col := range doc.Columns {
			cells[j] = quoteCell(col.Header)
		}
		buf.WriteString(strings.Join(cells, ",") + "\r\n")
		for _, row := range doc.Rows {
			for j, col := range doc.Columns {
				cells[j] = quoteCell(row[col.Key])
			}
			buf.WriteString(strings.Join(cells, ",") + "\r\n")
		}
	}
}

func quoteCell(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
