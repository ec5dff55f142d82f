package orders

import "time"

// Status tracks a print order through its lifecycle. The value set mirrors
// what the order screens expose; "Delivered" is the terminal state after
// completion for orders that ship.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
	StatusDelivered  Status = "Delivered"
)

// Statuses lists every valid order status, in lifecycle order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled, StatusDelivered}
}

// Valid reports whether s is a known order status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled, StatusDelivered:
		return true
	}
	return false
}

// Order is a print job booked by a client.
type Order struct {
	ID          int64       `json:"id" db:"id"`
	OrderNumber string      `json:"order_number" db:"order_number"`
	ClientID    int64       `json:"client_id" db:"client_id"`
	ClientName  string      `json:"client_name,omitempty" db:"client_name"`
	OrderDate   time.Time   `json:"order_date" db:"order_date"`
	Status      Status      `json:"status" db:"status"`
	TotalAmount float64     `json:"total_amount" db:"total_amount"`
	PaidAmount  *float64    `json:"paid_amount,omitempty" db:"paid_amount"`
	Notes       *string     `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
	Items       []OrderItem `json:"items,omitempty" db:"-"`
}

// Balance returns the unpaid remainder of the order.
func (o Order) Balance() float64 {
	if o.PaidAmount == nil {
		return o.TotalAmount
	}
	return o.TotalAmount - *o.PaidAmount
}

// OrderItem is one line of a print order.
type OrderItem struct {
	ID          int64   `json:"id" db:"id"`
	OrderID     int64   `json:"order_id" db:"order_id"`
	ProductName string  `json:"product_name" db:"product_name"`
	Quantity    float64 `json:"quantity" db:"quantity"`
	UnitPrice   float64 `json:"unit_price" db:"unit_price"`
	TotalPrice  float64 `json:"total_price" db:"total_price"`
}
