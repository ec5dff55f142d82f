package reports

import (
	"sort"

	"github.com/pressroom-erp/pressroom/internal/shared"
	"github.com/pressroom-erp/pressroom/internal/workforce"
)

// buildAttendance reports daily attendance logs across the workforce.
func buildAttendance(bag *DataBag, opts Options) *Report {
	columns := []Column{
		{Header: "Date", Key: "date"},
		{Header: "Employee", Key: "employee"},
		{Header: "Department", Key: "department"},
		{Header: "Status", Key: "status"},
		{Header: "Time In", Key: "time_in"},
		{Header: "Time Out", Key: "time_out"},
		{Header: "Hours", Key: "hours"},
		{Header: "Overtime", Key: "overtime"},
	}

	employeeID, byEmployee := opts.FilterID("employee_id")
	status, byStatus := opts.Filter("status")

	var (
		rows         []Row
		totalHours   float64
		totalOT      float64
		statusCounts = map[workforce.AttendanceStatus]int{}
	)
	for _, rec := range bag.Attendance {
		if !opts.InRange(rec.Date) {
			continue
		}
		if byEmployee && rec.EmployeeID != employeeID {
			continue
		}
		if byStatus && string(rec.Status) != status {
			continue
		}

		row := NewRow(columns)
		row["date"] = fmtDate(rec.Date)
		row["employee"] = rec.EmployeeName
		row["department"] = rec.Department
		row["status"] = string(rec.Status)
		row["time_in"] = orNA(rec.TimeIn)
		row["time_out"] = orNA(rec.TimeOut)
		row["hours"] = fmtHours(rec.HoursWorked)
		row["overtime"] = fmtHours(rec.OvertimeHours)
		rows = append(rows, row)

		totalHours += rec.HoursWorked
		totalOT += rec.OvertimeHours
		statusCounts[rec.Status]++
	}

	records := len(rows)
	rows = append(rows, blankRow(columns))
	rows = append(rows, summaryRow(columns, "Total Records", fmtCount(records)))
	for _, s := range workforce.AttendanceStatuses() {
		rows = append(rows, summaryRow(columns, string(s), fmtCount(statusCounts[s])))
	}
	rows = append(rows, summaryRow(columns, "Total Hours", fmtHours(totalHours)))
	rows = append(rows, summaryRow(columns, "Total Overtime", fmtHours(totalOT)))

	return &Report{
		Kind:     "attendance",
		FileBase: "attendance",
		Documents: []Document{{
			Title:    "Attendance Report",
			Subtitle: opts.RangeLabel(),
			Columns:  columns,
			Rows:     rows,
		}},
		GeneratedAt: opts.clock(),
	}
}

// buildPayroll reports pay-period records. A payroll row is in range when
// its period end date falls inside the selection.
func buildPayroll(bag *DataBag, opts Options) *Report {
	columns := []Column{
		{Header: "Employee", Key: "employee"},
		{Header: "Pay Period", Key: "period"},
		{Header: "Base Salary", Key: "base"},
		{Header: "Overtime Pay", Key: "overtime"},
		{Header: "Deductions", Key: "deductions"},
		{Header: "Net Pay", Key: "net"},
		{Header: "Status", Key: "status"},
	}

	employeeID, byEmployee := opts.FilterID("employee_id")
	status, byStatus := opts.Filter("status")

	var (
		rows            []Row
		totalNet        float64
		totalDeductions float64
	)
	for _, rec := range bag.Payroll {
		if !opts.InRange(rec.PeriodEnd) {
			continue
		}
		if byEmployee && rec.EmployeeID != employeeID {
			continue
		}
		if byStatus && string(rec.Status) != status {
			continue
		}

		row := NewRow(columns)
		row["employee"] = rec.EmployeeName
		row["period"] = fmtDate(rec.PeriodStart) + " - " + fmtDate(rec.PeriodEnd)
		row["base"] = fmtMoney(rec.BaseSalary)
		row["overtime"] = fmtMoney(rec.OvertimePay)
		row["deductions"] = fmtMoney(rec.Deductions)
		row["net"] = fmtMoney(rec.NetSalary)
		row["status"] = string(rec.Status)
		rows = append(rows, row)

		totalNet += rec.NetSalary
		totalDeductions += rec.Deductions
	}

	records := len(rows)
	rows = append(rows, blankRow(columns))
	rows = append(rows, summaryRow(columns, "Total Records", fmtCount(records)))
	rows = append(rows, summaryRow(columns, "Total Deductions", fmtMoney(totalDeductions)))
	rows = append(rows, summaryRow(columns, "Total Net Pay", fmtMoney(totalNet)))

	return &Report{
		Kind:     "payroll",
		FileBase: "payroll",
		Documents: []Document{{
			Title:     "Payroll Report",
			Subtitle:  opts.RangeLabel(),
			Columns:   columns,
			Rows:      rows,
			Landscape: true,
		}},
		GeneratedAt: opts.clock(),
	}
}

// buildDailyTimeRecord builds one document per employee covering their time
// logs in the period. Employees without any record in range are skipped and
// reported through a notice so an empty export is never silent.
func buildDailyTimeRecord(bag *DataBag, opts Options) *Report {
	columns := []Column{
		{Header: "Date", Key: "date"},
		{Header: "Time In", Key: "time_in"},
		{Header: "Time Out", Key: "time_out"},
		{Header: "Status", Key: "status"},
		{Header: "Hours", Key: "hours"},
		{Header: "Overtime", Key: "overtime"},
	}

	employeeID, byEmployee := opts.FilterID("employee_id")

	byOwner := make(map[int64][]workforce.AttendanceRecord)
	for _, rec := range bag.Attendance {
		if !opts.InRange(rec.Date) {
			continue
		}
		if byEmployee && rec.EmployeeID != employeeID {
			continue
		}
		byOwner[rec.EmployeeID] = append(byOwner[rec.EmployeeID], rec)
	}

	rep := &Report{
		Kind:        "daily-time-record",
		FileBase:    "daily_time_record",
		GeneratedAt: opts.clock(),
	}

	var skipped []string
	for _, emp := range bag.Employees {
		if byEmployee && emp.ID != employeeID {
			continue
		}
		recs := byOwner[emp.ID]
		if len(recs) == 0 {
			skipped = append(skipped, emp.FullName())
			continue
		}
		sort.Slice(recs, func(i, j int) bool { return recs[i].Date.Before(recs[j].Date) })

		var (
			rows         []Row
			totalHours   float64
			totalOT      float64
			statusCounts = map[workforce.AttendanceStatus]int{}
		)
		for _, rec := range recs {
			row := NewRow(columns)
			row["date"] = fmtDate(rec.Date)
			row["time_in"] = orNA(rec.TimeIn)
			row["time_out"] = orNA(rec.TimeOut)
			row["status"] = string(rec.Status)
			row["hours"] = fmtHours(rec.HoursWorked)
			row["overtime"] = fmtHours(rec.OvertimeHours)
			rows = append(rows, row)

			totalHours += rec.HoursWorked
			totalOT += rec.OvertimeHours
			statusCounts[rec.Status]++
		}

		rows = append(rows, blankRow(columns))
		rows = append(rows, summaryRow(columns, "Days Present", fmtCount(statusCounts[workforce.AttendancePresent])))
		rows = append(rows, summaryRow(columns, "Days Late", fmtCount(statusCounts[workforce.AttendanceLate])))
		rows = append(rows, summaryRow(columns, "Days Absent", fmtCount(statusCounts[workforce.AttendanceAbsent])))
		rows = append(rows, summaryRow(columns, "Total Hours", fmtHours(totalHours)))
		rows = append(rows, summaryRow(columns, "Total Overtime", fmtHours(totalOT)))

		rep.Documents = append(rep.Documents, Document{
			Title:    "Daily Time Record",
			Subtitle: emp.FullName() + " (" + emp.Department + ") " + opts.RangeLabel(),
			Columns:  columns,
			Rows:     rows,
		})
	}

	for _, name := range skipped {
		rep.Notices = append(rep.Notices, shared.InfoNotice("No time records for "+name+" in the selected period"))
	}
	if len(rep.Documents) == 0 {
		rep.Documents = append(rep.Documents, Document{
			Title:    "Daily Time Record",
			Subtitle: opts.RangeLabel(),
			Columns:  columns,
			Rows:     []Row{summaryRow(columns, "Total Records", "0")},
		})
	}
	return rep
}
