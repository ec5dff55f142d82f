package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pressroom-erp/pressroom/internal/platform/db"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	Get(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context, req ListOrdersRequest) ([]Order, int, error)
	ListAll(ctx context.Context) ([]Order, error)
	Create(ctx context.Context, order Order) (int64, error)
	Update(ctx context.Context, order Order) error
	InsertItem(ctx context.Context, item OrderItem) (int64, error)
	DeleteItems(ctx context.Context, orderID int64) error
	Delete(ctx context.Context, id int64) error
	GenerateNumber(ctx context.Context, date time.Time) (string, error)
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db   dbtx
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool, pool: pool}
}

func (r *repository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &repository{db: tx, pool: r.pool})
	})
}

const orderSelect = `
	SELECT o.id, o.order_number, o.client_id, c.name, o.order_date, o.status,
	       o.total_amount, o.paid_amount, o.notes, o.created_at, o.updated_at
	FROM orders o
	JOIN clients c ON c.id = o.client_id`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.ClientID, &o.ClientName, &o.OrderDate, &o.Status,
		&o.TotalAmount, &o.PaidAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, orderSelect+" WHERE o.id = $1", id))
	if err != nil {
		return nil, err
	}
	items, err := r.itemsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *repository) itemsFor(ctx context.Context, orderID int64) ([]OrderItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, product_name, quantity, unit_price, total_price
		FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) List(ctx context.Context, req ListOrdersRequest) ([]Order, int, error) {
	conditions := []string{"1=1"}
	var args []interface{}
	argPos := 1

	if req.ClientID != nil {
		conditions = append(conditions, fmt.Sprintf("o.client_id = $%d", argPos))
		args = append(args, *req.ClientID)
		argPos++
	}
	if req.Status != nil {
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", argPos))
		args = append(args, *req.Status)
		argPos++
	}
	if req.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("o.order_date >= $%d", argPos))
		args = append(args, *req.DateFrom)
		argPos++
	}
	if req.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("o.order_date <= $%d", argPos))
		args = append(args, *req.DateTo)
		argPos++
	}

	whereClause := "WHERE " + conditions[0]
	for i := 1; i < len(conditions); i++ {
		whereClause += " AND " + conditions[i]
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM orders o %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf("%s %s ORDER BY o.order_date DESC, o.id DESC LIMIT %d OFFSET %d", orderSelect, whereClause, limit, req.Offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.ClientID, &o.ClientName, &o.OrderDate, &o.Status,
			&o.TotalAmount, &o.PaidAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, o)
	}
	return result, total, rows.Err()
}

// ListAll returns every order with its line items, for report aggregation.
func (r *repository) ListAll(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, orderSelect+" ORDER BY o.order_date, o.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Order
	index := make(map[int64]int)
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.ClientID, &o.ClientName, &o.OrderDate, &o.Status,
			&o.TotalAmount, &o.PaidAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		index[o.ID] = len(result)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.db.Query(ctx, `
		SELECT id, order_id, product_name, quantity, unit_price, total_price
		FROM order_items ORDER BY order_id, id`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var it OrderItem
		if err := itemRows.Scan(&it.ID, &it.OrderID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, err
		}
		if i, ok := index[it.OrderID]; ok {
			result[i].Items = append(result[i].Items, it)
		}
	}
	return result, itemRows.Err()
}

func (r *repository) Create(ctx context.Context, order Order) (int64, error) {
	query := `
		INSERT INTO orders (order_number, client_id, order_date, status, total_amount, paid_amount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query, order.OrderNumber, order.ClientID, order.OrderDate, order.Status,
		order.TotalAmount, order.PaidAmount, order.Notes).Scan(&id)
	return id, err
}

func (r *repository) Update(ctx context.Context, order Order) error {
	query := `
		UPDATE orders
		SET order_date = $2, status = $3, total_amount = $4, paid_amount = $5, notes = $6, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, order.ID, order.OrderDate, order.Status, order.TotalAmount, order.PaidAmount, order.Notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) InsertItem(ctx context.Context, item OrderItem) (int64, error) {
	query := `
		INSERT INTO order_items (order_id, product_name, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query, item.OrderID, item.ProductName, item.Quantity, item.UnitPrice, item.TotalPrice).Scan(&id)
	return id, err
}

func (r *repository) DeleteItems(ctx context.Context, orderID int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM order_items WHERE order_id = $1", orderID)
	return err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GenerateNumber produces the next sequential order number for the month,
// formatted as ORD-YYYYMM-NNNN.
func (r *repository) GenerateNumber(ctx context.Context, date time.Time) (string, error) {
	prefix := fmt.Sprintf("ORD-%s-", date.Format("200601"))
	var seq int
	query := `
		SELECT COALESCE(MAX(CAST(SUBSTRING(order_number FROM LENGTH($1) + 1) AS INTEGER)), 0)
		FROM orders WHERE order_number LIKE $1 || '%'`
	if err := r.db.QueryRow(ctx, query, prefix).Scan(&seq); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, seq+1), nil
}
