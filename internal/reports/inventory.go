package reports

import (
	"strings"

	"github.com/pressroom-erp/pressroom/internal/shared"
)

// buildInventoryStatus snapshots current stock levels. Inventory has no
// business date, so the period selection only labels the report.
func buildInventoryStatus(bag *DataBag, opts Options) *Report {
	columns := []Column{
		{Header: "Item", Key: "name"},
		{Header: "SKU", Key: "sku"},
		{Header: "Category", Key: "category"},
		{Header: "Supplier", Key: "supplier"},
		{Header: "On Hand", Key: "quantity"},
		{Header: "Min Stock", Key: "min_stock"},
		{Header: "Unit Price", Key: "unit_price"},
		{Header: "Stock Value", Key: "stock_value"},
		{Header: "Status", Key: "status"},
	}

	supplierID, bySupplier := opts.FilterID("supplier_id")
	category, byCategory := opts.Filter("category")

	var (
		rows       []Row
		lowCount   int
		totalValue float64
	)
	for _, item := range bag.Inventory {
		if bySupplier && (item.SupplierID == nil || *item.SupplierID != supplierID) {
			continue
		}
		if byCategory && !strings.EqualFold(item.Category, category) {
			continue
		}

		row := NewRow(columns)
		row["name"] = item.Name
		row["sku"] = item.SKU
		row["category"] = item.Category
		row["supplier"] = orNA(item.SupplierName)
		row["quantity"] = fmtQuantity(item.Quantity)
		row["min_stock"] = fmtQuantity(item.MinStock)
		row["unit_price"] = fmtMoney(item.UnitPrice)
		row["stock_value"] = fmtMoney(item.StockValue())
		if item.IsLowStock() {
			row["status"] = "Low Stock"
			lowCount++
		} else {
			row["status"] = "In Stock"
		}
		rows = append(rows, row)

		totalValue += item.StockValue()
	}

	items := len(rows)
	rows = append(rows, blankRow(columns))
	rows = append(rows, summaryRow(columns, "Total Items", fmtCount(items)))
	rows = append(rows, summaryRow(columns, "Low Stock Items", fmtCount(lowCount)))
	rows = append(rows, summaryRow(columns, "Total Stock Value", fmtMoney(totalValue)))

	rep := &Report{
		Kind:     "inventory-status",
		FileBase: "inventory_status",
		Documents: []Document{{
			Title:     "Inventory Status Report",
			Subtitle:  "As of " + fmtDate(opts.clock()),
			Columns:   columns,
			Rows:      rows,
			Landscape: true,
		}},
		GeneratedAt: opts.clock(),
	}
	if lowCount > 0 {
		rep.Notices = append(rep.Notices, shared.WarningNotice(
			fmtCount(lowCount)+" item(s) below minimum stock"))
	}
	return rep
}
