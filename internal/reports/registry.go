package reports

import (
	"errors"
	"fmt"
)

// Format identifies an export encoding.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
	FormatCSV   Format = "csv"
)

// Formats lists every supported export format.
func Formats() []Format {
	return []Format{FormatPDF, FormatExcel, FormatCSV}
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	switch f {
	case FormatPDF, FormatExcel, FormatCSV:
		return true
	}
	return false
}

var (
	ErrUnknownReport = errors.New("unknown report kind")
	ErrUnknownFormat = errors.New("unknown export format")
)

// BuildFunc turns a data snapshot and filter options into a report.
type BuildFunc func(bag *DataBag, opts Options) *Report

// Descriptor declares one report kind: its identity, the filters it honors
// and the transform that builds it.
type Descriptor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Formats     []Format  `json:"formats"`
	Filters     []string  `json:"filters"`
	Build       BuildFunc `json:"-"`
}

// Supports reports whether this kind can be exported as f.
func (d Descriptor) Supports(f Format) bool {
	for _, have := range d.Formats {
		if have == f {
			return true
		}
	}
	return false
}

// registry lists every report kind the dashboard offers, in menu order.
var registry = []Descriptor{
	{
		ID:          "sales-summary",
		Name:        "Sales Summary",
		Description: "Orders with totals, payments and outstanding balances.",
		Formats:     Formats(),
		Filters:     []string{"client_id", "status"},
		Build:       buildSalesSummary,
	},
	{
		ID:          "printing-jobs",
		Name:        "Printing Jobs",
		Description: "Order line items: products, quantities and line totals.",
		Formats:     Formats(),
		Filters:     []string{"client_id", "status"},
		Build:       buildPrintingJobs,
	},
	{
		ID:          "inventory-status",
		Name:        "Inventory Status",
		Description: "Stock levels, valuations and low-stock flags.",
		Formats:     Formats(),
		Filters:     []string{"supplier_id", "category"},
		Build:       buildInventoryStatus,
	},
	{
		ID:          "attendance",
		Name:        "Attendance",
		Description: "Daily attendance logs across the workforce.",
		Formats:     Formats(),
		Filters:     []string{"employee_id", "status"},
		Build:       buildAttendance,
	},
	{
		ID:          "machinery-maintenance",
		Name:        "Machinery Maintenance",
		Description: "Maintenance interventions with costs by machine.",
		Formats:     Formats(),
		Filters:     []string{"machine_id", "maintenance_type"},
		Build:       buildMachineryMaintenance,
	},
	{
		ID:          "payroll",
		Name:        "Payroll",
		Description: "Pay periods with earnings, deductions and net pay.",
		Formats:     Formats(),
		Filters:     []string{"employee_id", "status"},
		Build:       buildPayroll,
	},
	{
		ID:          "daily-time-record",
		Name:        "Daily Time Record",
		Description: "Per-employee time records over the selected period.",
		Formats:     Formats(),
		Filters:     []string{"employee_id"},
		Build:       buildDailyTimeRecord,
	},
}

// Registry returns the report catalog.
func Registry() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// Lookup resolves a report kind by its identifier.
func Lookup(id string) (Descriptor, error) {
	for _, d := range registry {
		if d.ID == id {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownReport, id)
}
