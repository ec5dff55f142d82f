package inventory

import "time"

// Item is a stocked consumable: paper, ink, plates, binding material.
type Item struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	SKU          string    `json:"sku" db:"sku"`
	Category     string    `json:"category" db:"category"`
	Quantity     float64   `json:"quantity" db:"quantity"`
	MinStock     float64   `json:"min_stock" db:"min_stock"`
	UnitPrice    float64   `json:"unit_price" db:"unit_price"`
	SupplierID   *int64    `json:"supplier_id,omitempty" db:"supplier_id"`
	SupplierName *string   `json:"supplier_name,omitempty" db:"supplier_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// IsLowStock reports whether the item has fallen below its minimum stock
// threshold. Quantity equal to the threshold still counts as in stock.
func (i Item) IsLowStock() bool {
	return i.Quantity < i.MinStock
}

// StockValue returns the monetary value of the on-hand quantity.
func (i Item) StockValue() float64 {
	return i.Quantity * i.UnitPrice
}
