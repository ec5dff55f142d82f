package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pressroom-erp/pressroom/internal/clients"
	"github.com/pressroom-erp/pressroom/internal/inventory"
	"github.com/pressroom-erp/pressroom/internal/machinery"
	"github.com/pressroom-erp/pressroom/internal/orders"
	"github.com/pressroom-erp/pressroom/internal/shared"
	"github.com/pressroom-erp/pressroom/internal/suppliers"
	"github.com/pressroom-erp/pressroom/internal/workforce"
)

func ptr[T any](v T) *T { return &v }

func testBag() *DataBag {
	return &DataBag{
		Clients: []clients.Client{
			{ID: 1, Name: "Acme Publishing"},
			{ID: 2, Name: "Harbor Press Co"},
		},
		Suppliers: []suppliers.Supplier{
			{ID: 1, Name: "PaperSource Inc"},
		},
		Orders: []orders.Order{
			{
				ID: 1, OrderNumber: "ORD-202501-0001", ClientID: 1, ClientName: "Acme Publishing",
				OrderDate: date(2025, time.January, 10), Status: orders.StatusCompleted,
				TotalAmount: 5000, PaidAmount: ptr(5000.0),
				Items: []orders.OrderItem{
					{ID: 1, OrderID: 1, ProductName: "Business Cards", Quantity: 1000, UnitPrice: 2, TotalPrice: 2000},
					{ID: 2, OrderID: 1, ProductName: "Flyers", Quantity: 600, UnitPrice: 5, TotalPrice: 3000},
				},
			},
			{
				ID: 2, OrderNumber: "ORD-202501-0002", ClientID: 2, ClientName: "Harbor Press Co",
				OrderDate: date(2025, time.January, 15), Status: orders.StatusPending,
				TotalAmount: 1200, PaidAmount: ptr(200.0),
				Items: []orders.OrderItem{
					{ID: 3, OrderID: 2, ProductName: "Posters", Quantity: 100, UnitPrice: 12, TotalPrice: 1200},
				},
			},
			{
				ID: 3, OrderNumber: "ORD-202502-0001", ClientID: 1, ClientName: "Acme Publishing",
				OrderDate: date(2025, time.February, 1), Status: orders.StatusPending,
				TotalAmount: 800,
			},
		},
		Inventory: []inventory.Item{
			{ID: 1, Name: "A4 Bond Paper", SKU: "PPR-A4", Category: "Paper", Quantity: 5, MinStock: 10, UnitPrice: 250, SupplierID: ptr(int64(1)), SupplierName: ptr("PaperSource Inc")},
			{ID: 2, Name: "Black Ink", SKU: "INK-BLK", Category: "Ink", Quantity: 10, MinStock: 10, UnitPrice: 600},
		},
		Machines: []machinery.Machine{
			{ID: 1, Name: "Heidelberg SM52", Type: "Offset", Status: machinery.MachineOperational},
		},
		Maintenance: []machinery.MaintenanceRecord{
			{ID: 1, MachineID: 1, MachineName: "Heidelberg SM52", Date: date(2025, time.January, 12), Type: machinery.MaintenanceScheduled, Cost: 1500, PerformedBy: ptr("R. Santos")},
			{ID: 2, MachineID: 1, MachineName: "Heidelberg SM52", Date: date(2025, time.January, 20), Type: machinery.MaintenanceRepair, Cost: 4200},
		},
		Employees: []workforce.Employee{
			{ID: 1, FirstName: "Ana", LastName: "Cruz", Department: "Production", Position: "Press Operator"},
			{ID: 2, FirstName: "Ben", LastName: "Ruiz", Department: "Finishing", Position: "Binder"},
			{ID: 3, FirstName: "Carla", LastName: "Dee", Department: "Admin", Position: "Clerk"},
		},
		Attendance: []workforce.AttendanceRecord{
			{ID: 1, EmployeeID: 1, EmployeeName: "Ana Cruz", Department: "Production", Date: date(2025, time.January, 10), TimeIn: ptr("08:00"), TimeOut: ptr("17:00"), Status: workforce.AttendancePresent, HoursWorked: 8},
			{ID: 2, EmployeeID: 1, EmployeeName: "Ana Cruz", Department: "Production", Date: date(2025, time.January, 11), TimeIn: ptr("08:40"), TimeOut: ptr("17:00"), Status: workforce.AttendanceLate, HoursWorked: 7.25, OvertimeHours: 1},
			{ID: 3, EmployeeID: 2, EmployeeName: "Ben Ruiz", Department: "Finishing", Date: date(2025, time.January, 10), Status: workforce.AttendanceAbsent},
			{ID: 4, EmployeeID: 2, EmployeeName: "Ben Ruiz", Department: "Finishing", Date: date(2025, time.March, 3), TimeIn: ptr("08:00"), TimeOut: ptr("17:00"), Status: workforce.AttendancePresent, HoursWorked: 8},
		},
		Payroll: []workforce.PayrollRecord{
			{ID: 1, EmployeeID: 1, EmployeeName: "Ana Cruz", PeriodStart: date(2025, time.January, 1), PeriodEnd: date(2025, time.January, 15), BaseSalary: 12000, OvertimePay: 800, Deductions: 1300, NetSalary: 11500, Status: workforce.PayrollPaid},
			{ID: 2, EmployeeID: 2, EmployeeName: "Ben Ruiz", PeriodStart: date(2025, time.January, 16), PeriodEnd: date(2025, time.January, 31), BaseSalary: 11000, Deductions: 1100, NetSalary: 9900, Status: workforce.PayrollPending},
		},
	}
}

func janOpts() Options {
	return Options{
		Start: date(2025, time.January, 1),
		End:   date(2025, time.January, 31),
		Now:   date(2025, time.February, 2),
	}
}

func TestEveryRowMatchesColumnSchema(t *testing.T) {
	bag := testBag()
	for _, desc := range Registry() {
		rep := desc.Build(bag, janOpts())
		require.NotEmpty(t, rep.Documents, desc.ID)
		for _, doc := range rep.Documents {
			for i, row := range doc.Rows {
				require.Len(t, row, len(doc.Columns), "%s row %d", desc.ID, i)
				for _, col := range doc.Columns {
					_, ok := row[col.Key]
					require.True(t, ok, "%s row %d missing %q", desc.ID, i, col.Key)
				}
			}
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	for _, desc := range Registry() {
		first := desc.Build(testBag(), janOpts())
		second := desc.Build(testBag(), janOpts())
		require.Equal(t, first, second, desc.ID)
	}
}

func TestSalesSummaryDateBoundaries(t *testing.T) {
	opts := janOpts()
	opts.Start = date(2025, time.January, 10)
	opts.End = date(2025, time.January, 15)

	rep := buildSalesSummary(testBag(), opts)
	doc := rep.Documents[0]

	var numbers []string
	for _, row := range doc.Rows {
		if row["date"] != "" && row["order_number"] != "" {
			numbers = append(numbers, row["order_number"])
		}
	}
	require.Equal(t, []string{"ORD-202501-0001", "ORD-202501-0002"}, numbers)
}

func TestSalesSummaryTotals(t *testing.T) {
	rep := buildSalesSummary(testBag(), janOpts())
	rows := rep.Documents[0].Rows

	require.Equal(t, "6,200.00", summaryValue(t, rows, "Total Sales", "order_number", "balance"))
	require.Equal(t, "5,200.00", summaryValue(t, rows, "Total Collected", "order_number", "balance"))
	require.Equal(t, "1,000.00", summaryValue(t, rows, "Outstanding Balance", "order_number", "balance"))
	require.Equal(t, "2", summaryValue(t, rows, "Total Orders", "order_number", "balance"))
}

func TestSalesSummaryClientFilter(t *testing.T) {
	opts := janOpts()
	opts.Filters = map[string]string{"client_id": "2"}

	rep := buildSalesSummary(testBag(), opts)
	require.Equal(t, "1", summaryValue(t, rep.Documents[0].Rows, "Total Orders", "order_number", "balance"))

	opts.Filters = map[string]string{"client_id": "all"}
	rep = buildSalesSummary(testBag(), opts)
	require.Equal(t, "2", summaryValue(t, rep.Documents[0].Rows, "Total Orders", "order_number", "balance"))
}

func TestSalesSummaryFiltersCompose(t *testing.T) {
	opts := janOpts()
	opts.End = date(2025, time.February, 28)

	orderNumbers := func(filters map[string]string) []string {
		opts.Filters = filters
		var nums []string
		for _, row := range buildSalesSummary(testBag(), opts).Documents[0].Rows {
			if n := row["order_number"]; n != "" && row["date"] != "" {
				nums = append(nums, n)
			}
		}
		return nums
	}

	byClient := orderNumbers(map[string]string{"client_id": "1"})
	require.Equal(t, []string{"ORD-202501-0001", "ORD-202502-0001"}, byClient)

	byStatus := orderNumbers(map[string]string{"status": string(orders.StatusPending)})
	require.Equal(t, []string{"ORD-202501-0002", "ORD-202502-0001"}, byStatus)

	both := orderNumbers(map[string]string{"client_id": "1", "status": string(orders.StatusPending)})
	require.Equal(t, []string{"ORD-202502-0001"}, both)

	swapped := orderNumbers(map[string]string{"status": string(orders.StatusPending), "client_id": "1"})
	require.Equal(t, both, swapped)
}

func TestPrintingJobsExplodesLineItems(t *testing.T) {
	rep := buildPrintingJobs(testBag(), janOpts())
	rows := rep.Documents[0].Rows

	var products []string
	for _, row := range rows {
		if row["product"] != "" {
			products = append(products, row["product"])
		}
	}
	require.Equal(t, []string{"Business Cards", "Flyers", "Posters"}, products)
	require.Equal(t, "3", summaryValue(t, rows, "Total Jobs", "order_number", "status"))
	require.Equal(t, "6,200.00", summaryValue(t, rows, "Total Value", "order_number", "status"))
}

func TestInventoryStatusLowStockBoundary(t *testing.T) {
	rep := buildInventoryStatus(testBag(), janOpts())
	rows := rep.Documents[0].Rows

	statuses := map[string]string{}
	for _, row := range rows {
		if row["sku"] != "" {
			statuses[row["sku"]] = row["status"]
		}
	}
	require.Equal(t, "Low Stock", statuses["PPR-A4"])
	require.Equal(t, "In Stock", statuses["INK-BLK"])

	require.Len(t, rep.Notices, 1)
	require.Equal(t, shared.SeverityWarning, rep.Notices[0].Severity)
}

func TestInventoryStatusSupplierFilter(t *testing.T) {
	opts := janOpts()
	opts.Filters = map[string]string{"supplier_id": "1"}

	rep := buildInventoryStatus(testBag(), opts)
	require.Equal(t, "1", summaryValue(t, rep.Documents[0].Rows, "Total Items", "name", "status"))
}

func TestAttendanceStatusFilter(t *testing.T) {
	opts := janOpts()
	opts.Filters = map[string]string{"status": "Late"}

	rep := buildAttendance(testBag(), opts)
	require.Equal(t, "1", summaryValue(t, rep.Documents[0].Rows, "Total Records", "date", "overtime"))
}

func TestAttendanceExcludesOutOfRange(t *testing.T) {
	rep := buildAttendance(testBag(), janOpts())
	require.Equal(t, "3", summaryValue(t, rep.Documents[0].Rows, "Total Records", "date", "overtime"))
}

func TestMaintenanceTypeFilterAndCosts(t *testing.T) {
	rep := buildMachineryMaintenance(testBag(), janOpts())
	rows := rep.Documents[0].Rows
	require.Equal(t, "5,700.00", summaryValue(t, rows, "Total Cost", "date", "cost"))

	opts := janOpts()
	opts.Filters = map[string]string{"maintenance_type": "Repair"}
	rep = buildMachineryMaintenance(testBag(), opts)
	rows = rep.Documents[0].Rows
	require.Equal(t, "1", summaryValue(t, rows, "Total Records", "date", "cost"))
	require.Equal(t, "4,200.00", summaryValue(t, rows, "Total Cost", "date", "cost"))
}

func TestPayrollUsesPeriodEnd(t *testing.T) {
	opts := janOpts()
	opts.Start = date(2025, time.January, 20)

	rep := buildPayroll(testBag(), opts)
	rows := rep.Documents[0].Rows
	require.Equal(t, "1", summaryValue(t, rows, "Total Records", "employee", "status"))
	require.Equal(t, "9,900.00", summaryValue(t, rows, "Total Net Pay", "employee", "status"))
}

func TestDailyTimeRecordGroupsPerEmployee(t *testing.T) {
	rep := buildDailyTimeRecord(testBag(), janOpts())

	require.Len(t, rep.Documents, 2)
	require.Contains(t, rep.Documents[0].Subtitle, "Ana Cruz")
	require.Contains(t, rep.Documents[1].Subtitle, "Ben Ruiz")

	// Carla has no records in January and is reported, not rendered.
	require.Len(t, rep.Notices, 1)
	require.Equal(t, shared.SeverityInfo, rep.Notices[0].Severity)
	require.Contains(t, rep.Notices[0].Message, "Carla Dee")

	require.Equal(t, "1", summaryValue(t, rep.Documents[0].Rows, "Days Present", "date", "overtime"))
	require.Equal(t, "1", summaryValue(t, rep.Documents[0].Rows, "Days Late", "date", "overtime"))
}

func TestDailyTimeRecordEmployeeFilter(t *testing.T) {
	opts := janOpts()
	opts.Filters = map[string]string{"employee_id": "2"}

	rep := buildDailyTimeRecord(testBag(), opts)
	require.Len(t, rep.Documents, 1)
	require.Contains(t, rep.Documents[0].Subtitle, "Ben Ruiz")
	require.Empty(t, rep.Notices)
}

func TestDailyTimeRecordEmptySelection(t *testing.T) {
	opts := janOpts()
	opts.Start = date(2030, time.January, 1)
	opts.End = date(2030, time.January, 31)

	rep := buildDailyTimeRecord(testBag(), opts)
	require.Len(t, rep.Documents, 1)
	require.Len(t, rep.Notices, 3)
}

func TestLookupUnknownKind(t *testing.T) {
	_, err := Lookup("quarterly-tax")
	require.ErrorIs(t, err, ErrUnknownReport)
}

func TestRegistryCoversAllKinds(t *testing.T) {
	ids := map[string]bool{}
	for _, d := range Registry() {
		ids[d.ID] = true
		require.NotNil(t, d.Build, d.ID)
		require.NotEmpty(t, d.Formats, d.ID)
	}
	for _, want := range []string{
		"sales-summary", "printing-jobs", "inventory-status", "attendance",
		"machinery-maintenance", "payroll", "daily-time-record",
	} {
		require.True(t, ids[want], want)
	}
}

func TestDescriptorSupports(t *testing.T) {
	d := Descriptor{Formats: []Format{FormatPDF, FormatCSV}}
	require.True(t, d.Supports(FormatPDF))
	require.True(t, d.Supports(FormatCSV))
	require.False(t, d.Supports(FormatExcel))
	require.False(t, d.Supports(Format("docx")))
}

// summaryValue finds the summary row labeled in labelKey and returns its
// value cell.
func summaryValue(t *testing.T, rows []Row, label, labelKey, valueKey string) string {
	t.Helper()
	for _, row := range rows {
		if row[labelKey] == label {
			return row[valueKey]
		}
	}
	t.Fatalf("summary row %q not found", label)
	return ""
}
