package export

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pressroom-erp/pressroom/internal/reports"
)

func testOrg() Organization {
	return Organization{Name: "Pressroom Printing Services", Contact: "info@pressroom.local"}
}

func TestExcelReadBack(t *testing.T) {
	file, err := Excel(testOrg(), sampleReport())
	require.NoError(t, err)
	require.Equal(t, "sales_summary_report.xlsx", file.Name)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	sheets := wb.GetSheetList()
	require.Len(t, sheets, 1)

	title, err := wb.GetCellValue(sheets[0], "A1")
	require.NoError(t, err)
	require.Equal(t, "Sales Summary Report", title)

	header, err := wb.GetCellValue(sheets[0], "A4")
	require.NoError(t, err)
	require.Equal(t, "Order #", header)

	cell, err := wb.GetCellValue(sheets[0], "B5")
	require.NoError(t, err)
	require.Equal(t, `Acme "Quality" Publishing`, cell)

	props, err := wb.GetDocProps()
	require.NoError(t, err)
	require.Equal(t, "Sales Summary Report", props.Title)
	require.Equal(t, "Sales Summary Report", props.Subject)
	require.Equal(t, "Pressroom Printing Services", props.Creator)
	require.Equal(t, "2025-02-02T09:30:00Z", props.Created)
}

func TestExcelSheetPerDocument(t *testing.T) {
	rep := sampleReport()
	for _, name := range []string{"Ana Cruz", "Ben Ruiz"} {
		doc := rep.Documents[0]
		doc.Title = "Daily Time Record"
		doc.Subtitle = name
		rep.Documents = append(rep.Documents, doc)
	}
	rep.Documents = rep.Documents[1:]

	file, err := Excel(testOrg(), rep)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	sheets := wb.GetSheetList()
	require.Len(t, sheets, 2)
	require.Contains(t, sheets[0], "Ana Cruz")
	require.Contains(t, sheets[1], "Ben Ruiz")
}

func TestSheetNameLimits(t *testing.T) {
	doc := reports.Document{Title: "X", Subtitle: "A very long employee name that overflows the sheet limit"}
	name := sheetName(doc, 4, true)
	require.LessOrEqual(t, len(name), maxSheetName)

	bad := reports.Document{Title: "a/b:c?d*e[f]g"}
	require.Equal(t, "abcdefg", sheetName(bad, 0, false))

	accented := reports.Document{Title: "X", Subtitle: "Niña Peñaflorida née Müller-Ólafsdóttir"}
	name = sheetName(accented, 0, true)
	require.True(t, utf8.ValidString(name))
	require.LessOrEqual(t, utf8.RuneCountInString(name), maxSheetName)
}
