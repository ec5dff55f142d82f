package orders

import "time"

type CreateOrderRequest struct {
	ClientID   int64                    `json:"client_id" validate:"required,gt=0"`
	OrderDate  time.Time                `json:"order_date" validate:"required"`
	PaidAmount *float64                 `json:"paid_amount,omitempty" validate:"omitempty,gte=0"`
	Notes      *string                  `json:"notes,omitempty"`
	Items      []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CreateOrderItemRequest struct {
	ProductName string  `json:"product_name" validate:"required,max=200"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"required,gte=0"`
}

type UpdateOrderRequest struct {
	OrderDate  *time.Time                `json:"order_date,omitempty"`
	Status     *Status                   `json:"status,omitempty"`
	PaidAmount *float64                  `json:"paid_amount,omitempty" validate:"omitempty,gte=0"`
	Notes      *string                   `json:"notes,omitempty"`
	Items      *[]CreateOrderItemRequest `json:"items,omitempty" validate:"omitempty,min=1,dive"`
}

type ListOrdersRequest struct {
	ClientID *int64     `json:"client_id,omitempty"`
	Status   *Status    `json:"status,omitempty"`
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`
	Limit    int        `json:"limit" validate:"gte=0,lte=1000"`
	Offset   int        `json:"offset" validate:"gte=0"`
}
