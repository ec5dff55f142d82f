package inventory

type CreateItemRequest struct {
	Name       string  `json:"name" validate:"required,max=200"`
	SKU        string  `json:"sku" validate:"required,max=64"`
	Category   string  `json:"category" validate:"required,max=100"`
	Quantity   float64 `json:"quantity" validate:"gte=0"`
	MinStock   float64 `json:"min_stock" validate:"gte=0"`
	UnitPrice  float64 `json:"unit_price" validate:"gte=0"`
	SupplierID *int64  `json:"supplier_id,omitempty" validate:"omitempty,gt=0"`
}

type UpdateItemRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Category   *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Quantity   *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	MinStock   *float64 `json:"min_stock,omitempty" validate:"omitempty,gte=0"`
	UnitPrice  *float64 `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
	SupplierID *int64   `json:"supplier_id,omitempty" validate:"omitempty,gt=0"`
}

type AdjustQuantityRequest struct {
	Delta float64 `json:"delta" validate:"required"`
	Note  string  `json:"note,omitempty" validate:"max=500"`
}

type ListItemsRequest struct {
	Category   *string `json:"category,omitempty"`
	SupplierID *int64  `json:"supplier_id,omitempty"`
	LowOnly    bool    `json:"low_only,omitempty"`
	Search     *string `json:"search,omitempty"`
	Limit      int     `json:"limit" validate:"gte=0,lte=1000"`
	Offset     int     `json:"offset" validate:"gte=0"`
}
