package reports

import "github.com/pressroom-erp/pressroom/internal/orders"

// buildSalesSummary reports one row per order inside the selected period,
// with payment standing and a per-status breakdown in the summary block.
func buildSalesSummary(bag *DataBag, opts Options) *Report {
	columns := []Column{
		{Header: "Order #", Key: "order_number"},
		{Header: "Client", Key: "client"},
		{Header: "Order Date", Key: "date"},
		{Header: "Status", Key: "status"},
		{Header: "Total Amount", Key: "total"},
		{Header: "Amount Paid", Key: "paid"},
		{Header: "Balance", Key: "balance"},
	}

	clientID, byClient := opts.FilterID("client_id")
	status, byStatus := opts.Filter("status")

	var (
		rows         []Row
		totalSales   float64
		totalPaid    float64
		statusCounts = map[string]int{}
	)
	for _, o := range bag.Orders {
		if !opts.InRange(o.OrderDate) {
			continue
		}
		if byClient && o.ClientID != clientID {
			continue
		}
		if byStatus && string(o.Status) != status {
			continue
		}

		row := NewRow(columns)
		row["order_number"] = o.OrderNumber
		row["client"] = o.ClientName
		row["date"] = fmtDate(o.OrderDate)
		row["status"] = string(o.Status)
		row["total"] = fmtMoney(o.TotalAmount)
		if o.PaidAmount != nil {
			row["paid"] = fmtMoney(*o.PaidAmount)
		} else {
			row["paid"] = fmtMoney(0)
		}
		row["balance"] = fmtMoney(o.Balance())
		rows = append(rows, row)

		totalSales += o.TotalAmount
		if o.PaidAmount != nil {
			totalPaid += *o.PaidAmount
		}
		statusCounts[string(o.Status)]++
	}

	rows = append(rows, blankRow(columns))
	rows = append(rows, summaryRow(columns, "Total Orders", fmtCount(len(rows)-1)))
	rows = append(rows, summaryRow(columns, "Total Sales", fmtMoney(totalSales)))
	rows = append(rows, summaryRow(columns, "Total Collected", fmtMoney(totalPaid)))
	rows = append(rows, summaryRow(columns, "Outstanding Balance", fmtMoney(totalSales-totalPaid)))
	for _, s := range orders.Statuses() {
		if n := statusCounts[string(s)]; n > 0 {
			rows = append(rows, summaryRow(columns, string(s)+" Orders", fmtCount(n)))
		}
	}

	return &Report{
		Kind:     "sales-summary",
		FileBase: "sales_summary",
		Documents: []Document{{
			Title:     "Sales Summary Report",
			Subtitle:  opts.RangeLabel(),
			Columns:   columns,
			Rows:      rows,
			Landscape: true,
		}},
		GeneratedAt: opts.clock(),
	}
}

// buildPrintingJobs reports one row per order line item, so a single order
// with three products contributes three rows.
func buildPrintingJobs(bag *DataBag, opts Options) *Report {
	columns := []Column{
		{Header: "Order #", Key: "order_number"},
		{Header: "Client", Key: "client"},
		{Header: "Order Date", Key: "date"},
		{Header: "Product", Key: "product"},
		{Header: "Quantity", Key: "quantity"},
		{Header: "Unit Price", Key: "unit_price"},
		{Header: "Line Total", Key: "line_total"},
		{Header: "Status", Key: "status"},
	}

	clientID, byClient := opts.FilterID("client_id")
	status, byStatus := opts.Filter("status")

	var (
		rows       []Row
		totalQty   float64
		totalValue float64
	)
	for _, o := range bag.Orders {
		if !opts.InRange(o.OrderDate) {
			continue
		}
		if byClient && o.ClientID != clientID {
			continue
		}
		if byStatus && string(o.Status) != status {
			continue
		}
		for _, it := range o.Items {
			row := NewRow(columns)
			row["order_number"] = o.OrderNumber
			row["client"] = o.ClientName
			row["date"] = fmtDate(o.OrderDate)
			row["product"] = it.ProductName
			row["quantity"] = fmtQuantity(it.Quantity)
			row["unit_price"] = fmtMoney(it.UnitPrice)
			row["line_total"] = fmtMoney(it.TotalPrice)
			row["status"] = string(o.Status)
			rows = append(rows, row)

			totalQty += it.Quantity
			totalValue += it.TotalPrice
		}
	}

	jobs := len(rows)
	rows = append(rows, blankRow(columns))
	rows = append(rows, summaryRow(columns, "Total Jobs", fmtCount(jobs)))
	rows = append(rows, summaryRow(columns, "Total Quantity", fmtQuantity(totalQty)))
	rows = append(rows, summaryRow(columns, "Total Value", fmtMoney(totalValue)))

	return &Report{
		Kind:     "printing-jobs",
		FileBase: "printing_jobs",
		Documents: []Document{{
			Title:     "Printing Jobs Report",
			Subtitle:  opts.RangeLabel(),
			Columns:   columns,
			Rows:      rows,
			Landscape: true,
		}},
		GeneratedAt: opts.clock(),
	}
}
