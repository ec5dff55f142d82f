package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pressroom-erp/pressroom/internal/reports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPDFSingleDocument(t *testing.T) {
	file, err := PDF(discardLogger(), testOrg(), sampleReport())
	require.NoError(t, err)
	require.Equal(t, "sales_summary_report.pdf", file.Name)
	require.Equal(t, "application/pdf", file.ContentType)
	require.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}

func TestPDFMultiDocumentBundlesZip(t *testing.T) {
	rep := sampleReport()
	second := rep.Documents[0]
	second.Subtitle = "Ben Ruiz (Finishing)"
	rep.Documents = append(rep.Documents, second)
	rep.FileBase = "daily_time_record"

	file, err := PDF(discardLogger(), testOrg(), rep)
	require.NoError(t, err)
	require.Equal(t, "daily_time_record_report.zip", file.Name)
	require.Equal(t, "application/zip", file.ContentType)

	zr, err := zip.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	require.Equal(t, "02_ben_ruiz_finishing.pdf", zr.File[1].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	head := make([]byte, 4)
	_, err = io.ReadFull(rc, head)
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(head))
}

func TestPDFDegradesThroughStrategies(t *testing.T) {
	failing := pdfStrategy{
		name: "styled-table",
		render: func(reports.Document, Organization, time.Time) ([]byte, error) {
			return nil, errors.New("table renderer unavailable")
		},
	}
	strategies := []pdfStrategy{failing, {name: "text-dump", render: renderTextDump}}

	var record bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&record, nil))

	file, err := renderPDF(logger, testOrg(), sampleReport(), strategies)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
	require.Contains(t, record.String(), "pdf renderer degraded")
	require.Contains(t, record.String(), "text-dump")
}

func TestTextDumpEmitsHeaderValueLines(t *testing.T) {
	doc := sampleReport().Documents[0]
	lines := dumpLines(doc.Columns, doc.Rows[0])
	require.Equal(t, []string{
		"Order #: ORD-202501-0001",
		`Client: Acme "Quality" Publishing`,
		"Total: 5,000.00",
	}, lines)
}

func TestPDFAllStrategiesFail(t *testing.T) {
	boom := func(reports.Document, Organization, time.Time) ([]byte, error) {
		return nil, errors.New("boom")
	}
	strategies := []pdfStrategy{
		{name: "styled-table", render: boom},
		{name: "plain-grid", render: boom},
	}

	_, err := renderPDF(discardLogger(), testOrg(), sampleReport(), strategies)
	require.Error(t, err)
	require.Contains(t, err.Error(), "styled-table")
	require.Contains(t, err.Error(), "plain-grid")
}

func TestPDFLandscapeOrientation(t *testing.T) {
	rep := sampleReport()
	rep.Documents[0].Landscape = true

	file, err := PDF(discardLogger(), testOrg(), rep)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}
