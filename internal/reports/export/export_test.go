package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pressroom-erp/pressroom/internal/reports"
)

func sampleReport() *reports.Report {
	columns := []reports.Column{
		{Header: "Order #", Key: "order_number"},
		{Header: "Client", Key: "client"},
		{Header: "Total", Key: "total"},
	}
	row := func(num, client, total string) reports.Row {
		return reports.Row{"order_number": num, "client": client, "total": total}
	}
	return &reports.Report{
		Kind:     "sales-summary",
		FileBase: "sales_summary",
		Documents: []reports.Document{{
			Title:    "Sales Summary Report",
			Subtitle: "Jan 01, 2025 to Jan 31, 2025",
			Columns:  columns,
			Rows: []reports.Row{
				row("ORD-202501-0001", `Acme "Quality" Publishing`, "5,000.00"),
				row("ORD-202501-0002", "Harbor Press Co", "1,200.00"),
			},
		}},
		GeneratedAt: time.Date(2025, time.February, 2, 9, 30, 0, 0, time.UTC),
	}
}

func TestSlug(t *testing.T) {
	require.Equal(t, "sales_summary", Slug("Sales Summary"))
	require.Equal(t, "daily_time_record", Slug("Daily-Time Record!"))
	require.Equal(t, "ana_cruz_production", Slug("Ana Cruz (Production)"))
	require.Equal(t, "report", Slug("***"))
	require.Equal(t, "q1_2025", Slug("  Q1 / 2025  "))
}

func TestFilename(t *testing.T) {
	rep := sampleReport()
	require.Equal(t, "sales_summary_report.csv", Filename(rep, "csv"))
	require.Equal(t, "sales_summary_report.xlsx", Filename(rep, "xlsx"))
}

func TestCSVRoundTrip(t *testing.T) {
	file, err := CSV(sampleReport())
	require.NoError(t, err)
	require.Equal(t, "sales_summary_report.csv", file.Name)
	require.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	var dataLines []string
	for _, line := range strings.Split(string(file.Data), "\r\n") {
		if line == "" || strings.HasPrefix(line, "# ") {
			continue
		}
		dataLines = append(dataLines, line)
	}

	r := csv.NewReader(strings.NewReader(strings.Join(dataLines, "\n")))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, []string{"Order #", "Client", "Total"}, records[0])
	require.Equal(t, `Acme "Quality" Publishing`, records[1][1])
}

func TestCSVMetadataComments(t *testing.T) {
	file, err := CSV(sampleReport())
	require.NoError(t, err)

	text := string(file.Data)
	require.Contains(t, text, "# Sales Summary Report\r\n")
	require.Contains(t, text, "# Jan 01, 2025 to Jan 31, 2025\r\n")
	require.Contains(t, text, "# Generated 2025-02-02 09:30\r\n")
}

func TestCSVManualFallbackParses(t *testing.T) {
	var buf bytes.Buffer
	writeCSVManual(&buf, sampleReport())

	var dataLines []string
	for _, line := range strings.Split(buf.String(), "\r\n") {
		if line == "" || strings.HasPrefix(line, "# ") {
			continue
		}
		dataLines = append(dataLines, line)
	}
	r := csv.NewReader(strings.NewReader(strings.Join(dataLines, "\n")))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, `Acme "Quality" Publishing`, records[1][1])
}

func TestCSVMultiDocumentSections(t *testing.T) {
	rep := sampleReport()
	second := rep.Documents[0]
	second.Title = "Second Section"
	rep.Documents = append(rep.Documents, second)

	file, err := CSV(rep)
	require.NoError(t, err)
	require.Contains(t, string(file.Data), "# Second Section\r\n")
}
