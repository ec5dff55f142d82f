package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/pressroom-erp/pressroom/internal/clients"
	"github.com/pressroom-erp/pressroom/internal/inventory"
	"github.com/pressroom-erp/pressroom/internal/machinery"
	"github.com/pressroom-erp/pressroom/internal/orders"
	"github.com/pressroom-erp/pressroom/internal/reports"
	"github.com/pressroom-erp/pressroom/internal/reports/export"
	"github.com/pressroom-erp/pressroom/internal/suppliers"
	"github.com/pressroom-erp/pressroom/internal/workforce"
)

type memClients struct{ rows []clients.Client }

func (m memClients) ListAll(context.Context) ([]clients.Client, error) { return m.rows, nil }

type memSuppliers struct{ rows []suppliers.Supplier }

func (m memSuppliers) ListAll(context.Context) ([]suppliers.Supplier, error) { return m.rows, nil }

type memOrders struct {
	rows []orders.Order
	err  error
}

func (m memOrders) ListAll(context.Context) ([]orders.Order, error) { return m.rows, m.err }

type memInventory struct{ rows []inventory.Item }

func (m memInventory) ListAll(context.Context) ([]inventory.Item, error) { return m.rows, nil }

type memMachinery struct {
	machines []machinery.Machine
	records  []machinery.MaintenanceRecord
}

func (m memMachinery) ListMachines(context.Context) ([]machinery.Machine, error) {
	return m.machines, nil
}

func (m memMachinery) ListAllMaintenance(context.Context) ([]machinery.MaintenanceRecord, error) {
	return m.records, nil
}

type memWorkforce struct {
	employees  []workforce.Employee
	attendance []workforce.AttendanceRecord
	payroll    []workforce.PayrollRecord
}

func (m memWorkforce) ListEmployees(context.Context) ([]workforce.Employee, error) {
	return m.employees, nil
}

func (m memWorkforce) ListAllAttendance(context.Context) ([]workforce.AttendanceRecord, error) {
	return m.attendance, nil
}

func (m memWorkforce) ListAllPayroll(context.Context) ([]workforce.PayrollRecord, error) {
	return m.payroll, nil
}

func testSources(ordersErr error) reports.Sources {
	paid := 5000.0
	return reports.Sources{
		Clients:   memClients{rows: []clients.Client{{ID: 1, Name: "Acme Publishing"}}},
		Suppliers: memSuppliers{},
		Orders: memOrders{
			err: ordersErr,
			rows: []orders.Order{{
				ID: 1, OrderNumber: "ORD-202501-0001", ClientID: 1, ClientName: "Acme Publishing",
				OrderDate:   time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
				Status:      orders.StatusCompleted,
				TotalAmount: 5000, PaidAmount: &paid,
			}},
		},
		Inventory: memInventory{},
		Machinery: memMachinery{},
		Workforce: memWorkforce{
			employees: []workforce.Employee{{ID: 1, FirstName: "Ana", LastName: "Cruz", Department: "Production"}},
		},
	}
}

func testRouter(t *testing.T, ordersErr error) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	agg := reports.NewAggregator(testSources(ordersErr))
	svc := NewService(logger, agg, export.Organization{Name: "Pressroom Printing Services"}, nil)
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Route("/reports", h.MountRoutes)
	return r
}

func TestCatalogListsReports(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Reports []struct {
			ID      string   `json:"id"`
			Formats []string `json:"formats"`
		} `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Reports, 7)
	require.Equal(t, "sales-summary", body.Reports[0].ID)
	require.Contains(t, body.Reports[0].Formats, "csv")
}

func TestExportCSVDownload(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/reports/sales-summary/export?format=csv&from=2025-01-01&to=2025-01-31", nil)
	testRouter(t, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename="sales_summary_report.csv"`,
		rec.Header().Get("Content-Disposition"))
	require.Contains(t, rec.Body.String(), "ORD-202501-0001")
}

func TestExportPDFIsDefaultFormat(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/sales-summary/export", nil)
	testRouter(t, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestExportUnknownReport(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/quarterly-tax/export?format=csv", nil)
	testRouter(t, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
}

func TestExportUnknownFormat(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/sales-summary/export?format=docx", nil)
	testRouter(t, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportInvalidDates(t *testing.T) {
	router := testRouter(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/sales-summary/export?format=csv&from=01-10-2025", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet,
		"/reports/sales-summary/export?format=csv&from=2025-02-01&to=2025-01-01", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportSourceFailureReturnsError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/sales-summary/export?format=csv", nil)
	testRouter(t, errors.New("connection refused")).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Header().Get("Content-Disposition"), "attachment")
}

func TestExportNoticesHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/reports/daily-time-record/export?format=csv&from=2025-01-01&to=2025-01-31", nil)
	testRouter(t, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	header := rec.Header().Get("X-Report-Notices")
	require.NotEmpty(t, header)
	require.Contains(t, header, "Ana Cruz")
}
