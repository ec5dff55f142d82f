package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pressroom-erp/pressroom/internal/reports"
)

const maxSheetName = 31

// Excel renders the report as an .xlsx workbook, one sheet per document.
// Headers are bold on a grey fill and column widths follow the widest cell.
func Excel(org Organization, rep *reports.Report) (*File, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build header style: %w", err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("build title style: %w", err)
	}

	multi := len(rep.Documents) > 1
	for i, doc := range rep.Documents {
		sheet := sheetName(doc, i, multi)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("add sheet: %w", err)
			}
		}

		if err := f.SetCellValue(sheet, "A1", doc.Title); err != nil {
			return nil, fmt.Errorf("write title: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
			return nil, fmt.Errorf("style title: %w", err)
		}
		if err := f.SetCellValue(sheet, "A2", doc.Subtitle); err != nil {
			return nil, fmt.Errorf("write subtitle: %w", err)
		}

		widths := make([]int, len(doc.Columns))
		headerRowIdx := 4
		for j, col := range doc.Columns {
			cell, err := excelize.CoordinatesToCellName(j+1, headerRowIdx)
			if err != nil {
				return nil, fmt.Errorf("header cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
				return nil, fmt.Errorf("write header: %w", err)
			}
			widths[j] = len(col.Header)
		}
		first, err := excelize.CoordinatesToCellName(1, headerRowIdx)
		if err != nil {
			return nil, err
		}
		last, err := excelize.CoordinatesToCellName(len(doc.Columns), headerRowIdx)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, first, last, headerStyle); err != nil {
			return nil, fmt.Errorf("style header: %w", err)
		}

		for r, row := range doc.Rows {
			for j, col := range doc.Columns {
				cell, err := excelize.CoordinatesToCellName(j+1, headerRowIdx+1+r)
				if err != nil {
					return nil, fmt.Errorf("cell name: %w", err)
				}
				val := row[col.Key]
				if err := f.SetCellValue(sheet, cell, val); err != nil {
					return nil, fmt.Errorf("write cell: %w", err)
				}
				if len(val) > widths[j] {
					widths[j] = len(val)
				}
			}
		}

		for j := range doc.Columns {
			name, err := excelize.ColumnNumberToName(j + 1)
			if err != nil {
				return nil, fmt.Errorf("column name: %w", err)
			}
			width := float64(widths[j]) + 3
			if width > 60 {
				width = 60
			}
			if err := f.SetColWidth(sheet, name, name, width); err != nil {
				return nil, fmt.Errorf("set column width: %w", err)
			}
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       rep.Documents[0].Title,
		Subject:     rep.Documents[0].Title,
		Creator:     org.Name,
		Created:     rep.GeneratedAt.Format(time.RFC3339),
		Description: "Generated " + rep.GeneratedAt.Format("2006-01-02 15:04"),
	}); err != nil {
		return nil, fmt.Errorf("set doc props: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return &File{
		Name:        Filename(rep, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

// sheetName derives a unique sheet title from the document, truncated to the
// 31-character limit the format imposes. Multi-document workbooks prefix the
// document index so subtitle collisions cannot merge sheets.
func sheetName(doc reports.Document, idx int, multi bool) string {
	name := doc.Title
	if multi && doc.Subtitle != "" {
		name = fmt.Sprintf("%d %s", idx+1, doc.Subtitle)
	}
	name = sanitizeSheetName(name)
	if name == "" {
		name = fmt.Sprintf("Sheet%d", idx+1)
	}
	// The limit is 31 characters, not bytes. Cutting on a byte offset could
	// split a rune in a subtitle and leave the title invalid UTF-8.
	if runes := []rune(name); len(runes) > maxSheetName {
		name = string(runes[:maxSheetName])
	}
	return name
}

// sanitizeSheetName strips characters xlsx forbids in sheet titles.
func sanitizeSheetName(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
