package reports

import "github.com/pressroom-erp/pressroom/internal/machinery"

// buildMachineryMaintenance reports maintenance interventions in the period,
// with a cost breakdown by intervention type.
func buildMachineryMaintenance(bag *DataBag, opts Options) *Report {
	columns := []Column{
		{Header: "Date", Key: "date"},
		{Header: "Machine", Key: "machine"},
		{Header: "Type", Key: "type"},
		{Header: "Performed By", Key: "performed_by"},
		{Header: "Description", Key: "description"},
		{Header: "Cost", Key: "cost"},
	}

	machineID, byMachine := opts.FilterID("machine_id")
	mtype, byType := opts.Filter("maintenance_type")

	var (
		rows       []Row
		totalCost  float64
		typeCosts  = map[string]float64{}
		typeCounts = map[string]int{}
	)
	for _, rec := range bag.Maintenance {
		if !opts.InRange(rec.Date) {
			continue
		}
		if byMachine && rec.MachineID != machineID {
			continue
		}
		if byType && string(rec.Type) != mtype {
			continue
		}

		row := NewRow(columns)
		row["date"] = fmtDate(rec.Date)
		row["machine"] = rec.MachineName
		row["type"] = string(rec.Type)
		row["performed_by"] = orNA(rec.PerformedBy)
		row["description"] = orNA(rec.Description)
		row["cost"] = fmtMoney(rec.Cost)
		rows = append(rows, row)

		totalCost += rec.Cost
		typeCosts[string(rec.Type)] += rec.Cost
		typeCounts[string(rec.Type)]++
	}

	records := len(rows)
	rows = append(rows, blankRow(columns))
	rows = append(rows, summaryRow(columns, "Total Records", fmtCount(records)))
	rows = append(rows, summaryRow(columns, "Total Cost", fmtMoney(totalCost)))
	for _, t := range machinery.MaintenanceTypes() {
		if n := typeCounts[string(t)]; n > 0 {
			label := string(t) + " (" + fmtCount(n) + ")"
			rows = append(rows, summaryRow(columns, label, fmtMoney(typeCosts[string(t)])))
		}
	}

	return &Report{
		Kind:     "machinery-maintenance",
		FileBase: "machinery_maintenance",
		Documents: []Document{{
			Title:    "Machinery Maintenance Report",
			Subtitle: opts.RangeLabel(),
			Columns:  columns,
			Rows:     rows,
		}},
		GeneratedAt: opts.clock(),
	}
}
