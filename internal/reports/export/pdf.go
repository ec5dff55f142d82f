package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/pressroom-erp/pressroom/internal/reports"
)

// pdfStrategy renders one document to PDF bytes. Strategies are tried in
// order of fidelity; the first that succeeds wins.
type pdfStrategy struct {
	name   string
	render func(doc reports.Document, org Organization, generated time.Time) ([]byte, error)
}

func pdfStrategies() []pdfStrategy {
	return []pdfStrategy{
		{name: "styled-table", render: renderStyledTable},
		{name: "plain-grid", render: renderPlainGrid},
		{name: "text-dump", render: renderTextDump},
	}
}

// PDF renders the report. Single-document reports download as one PDF;
// multi-document reports are bundled into a ZIP with one PDF per document.
func PDF(logger *slog.Logger, org Organization, rep *reports.Report) (*File, error) {
	return renderPDF(logger, org, rep, pdfStrategies())
}

func renderPDF(logger *slog.Logger, org Organization, rep *reports.Report, strategies []pdfStrategy) (*File, error) {
	rendered := make([][]byte, 0, len(rep.Documents))
	for _, doc := range rep.Documents {
		data, strategy, err := renderDocument(doc, org, rep.GeneratedAt, strategies)
		if err != nil {
			return nil, err
		}
		if strategy != strategies[0].name {
			logger.Warn("pdf renderer degraded",
				slog.String("report", rep.Kind),
				slog.String("strategy", strategy),
				slog.String("document", doc.Title))
		}
		rendered = append(rendered, data)
	}

	if len(rendered) == 1 {
		return &File{
			Name:        Filename(rep, "pdf"),
			ContentType: "application/pdf",
			Data:        rendered[0],
		}, nil
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, data := range rendered {
		name := fmt.Sprintf("%02d_%s.pdf", i+1, Slug(rep.Documents[i].Subtitle))
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("create zip entry: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("write zip entry: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return &File{
		Name:        Slug(rep.FileBase) + "_report.zip",
		ContentType: "application/zip",
		Data:        buf.Bytes(),
	}, nil
}

func renderDocument(doc reports.Document, org Organization, generated time.Time, strategies []pdfStrategy) ([]byte, string, error) {
	var errs []error
	for _, s := range strategies {
		data, err := s.render(doc, org, generated)
		if err == nil {
			return data, s.name, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
	}
	return nil, "", fmt.Errorf("render pdf %q: %w", doc.Title, errors.Join(errs...))
}

func newDocPDF(doc reports.Document, org Organization, generated time.Time) *gofpdf.Fpdf {
	orientation := "P"
	if doc.Landscape {
		orientation = "L"
	}
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(12, 14, 12)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 7, org.Name, "", 1, "C", false, 0, "")
	if org.Contact != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, org.Contact, "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, doc.Title, "", 1, "C", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 5, doc.Subtitle, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Generated "+generated.Format("Jan 02, 2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(3)
	return pdf
}

// columnWidths splits the printable width across columns in proportion to
// their widest content, with a floor so narrow columns stay readable.
func columnWidths(pdf *gofpdf.Fpdf, doc reports.Document) []float64 {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	weights := make([]float64, len(doc.Columns))
	var total float64
	for i, col := range doc.Columns {
		w := pdf.GetStringWidth(col.Header)
		for _, row := range doc.Rows {
			if cw := pdf.GetStringWidth(row[col.Key]); cw > w {
				w = cw
			}
		}
		if w < 10 {
			w = 10
		}
		weights[i] = w
		total += w
	}
	widths := make([]float64, len(weights))
	for i, w := range weights {
		widths[i] = usable * w / total
	}
	return widths
}

func fitCell(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width-2 {
		return s
	}
	runes := []rune(s)
	for len(runes) > 1 && pdf.GetStringWidth(string(runes)+"...") > width-2 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func renderStyledTable(doc reports.Document, org Organization, generated time.Time) ([]byte, error) {
	pdf := newDocPDF(doc, org, generated)
	pdf.SetFont("Helvetica", "", 8)
	widths := columnWidths(pdf, doc)

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(60, 60, 60)
		pdf.SetTextColor(255, 255, 255)
		for i, col := range doc.Columns {
			pdf.CellFormat(widths[i], 7, fitCell(pdf, col.Header, widths[i]), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
	}
	drawHeader()

	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for r, row := range doc.Rows {
		if pdf.GetY() > pageH-bottom-20 {
			pdf.AddPage()
			drawHeader()
		}
		fill := r%2 == 1
		pdf.SetFillColor(240, 240, 240)
		for i, col := range doc.Columns {
			pdf.CellFormat(widths[i], 6, fitCell(pdf, row[col.Key], widths[i]), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	return outputPDF(pdf)
}

func renderPlainGrid(doc reports.Document, org Organization, generated time.Time) ([]byte, error) {
	pdf := newDocPDF(doc, org, generated)
	pdf.SetFont("Helvetica", "", 8)
	widths := columnWidths(pdf, doc)

	pdf.SetFont("Helvetica", "B", 8)
	for i, col := range doc.Columns {
		pdf.CellFormat(widths[i], 7, fitCell(pdf, col.Header, widths[i]), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 8)

	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range doc.Rows {
		if pdf.GetY() > pageH-bottom-20 {
			pdf.AddPage()
		}
		for i, col := range doc.Columns {
			pdf.CellFormat(widths[i], 6, fitCell(pdf, row[col.Key], widths[i]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return outputPDF(pdf)
}

// renderTextDump is the last resort: one "Header: value" line per cell,
// a blank line between rows.
func renderTextDump(doc reports.Document, org Organization, generated time.Time) ([]byte, error) {
	pdf := newDocPDF(doc, org, generated)
	pdf.SetFont("Courier", "", 7)

	for _, row := range doc.Rows {
		for _, line := range dumpLines(doc.Columns, row) {
			pdf.MultiCell(0, 4, line, "", "L", false)
		}
		pdf.Ln(2)
	}

	return outputPDF(pdf)
}

func dumpLines(cols []reports.Column, row reports.Row) []string {
	lines := make([]string, 0, len(cols))
	for _, col := range cols {
		lines = append(lines, col.Header+": "+row[col.Key])
	}
	return lines
}

func outputPDF(pdf *gofpdf.Fpdf) ([]byte, error) {
	if pdf.Err() {
		return nil, pdf.Error()
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
