package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound      = errors.New("inventory item not found")
	ErrDuplicateSKU  = errors.New("sku already exists")
	ErrNegativeStock = errors.New("stock cannot go negative")
)

const pgUniqueViolation = "23505"

type Repository interface {
	Get(ctx context.Context, id int64) (*Item, error)
	List(ctx context.Context, req ListItemsRequest) ([]Item, int, error)
	ListAll(ctx context.Context) ([]Item, error)
	Create(ctx context.Context, item Item) (int64, error)
	Update(ctx context.Context, item Item) error
	AdjustQuantity(ctx context.Context, id int64, delta float64) (*Item, error)
	Delete(ctx context.Context, id int64) error
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db dbtx
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

const itemSelect = `
	SELECT i.id, i.name, i.sku, i.category, i.quantity, i.min_stock, i.unit_price,
	       i.supplier_id, s.name, i.created_at, i.updated_at
	FROM inventory_items i
	LEFT JOIN suppliers s ON s.id = i.supplier_id`

func scanItem(row pgx.Row) (*Item, error) {
	var it Item
	err := row.Scan(&it.ID, &it.Name, &it.SKU, &it.Category, &it.Quantity, &it.MinStock, &it.UnitPrice,
		&it.SupplierID, &it.SupplierName, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Item, error) {
	return scanItem(r.db.QueryRow(ctx, itemSelect+" WHERE i.id = $1", id))
}

func (r *repository) List(ctx context.Context, req ListItemsRequest) ([]Item, int, error) {
	conditions := []string{"1=1"}
	var args []interface{}
	argPos := 1

	if req.Category != nil && *req.Category != "" {
		conditions = append(conditions, fmt.Sprintf("i.category = $%d", argPos))
		args = append(args, *req.Category)
		argPos++
	}
	if req.SupplierID != nil {
		conditions = append(conditions, fmt.Sprintf("i.supplier_id = $%d", argPos))
		args = append(args, *req.SupplierID)
		argPos++
	}
	if req.Search != nil && *req.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(i.name ILIKE $%d OR i.sku ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+*req.Search+"%")
		argPos++
	}
	if req.LowOnly {
		conditions = append(conditions, "i.quantity < i.min_stock")
	}

	whereClause := "WHERE " + conditions[0]
	for i := 1; i < len(conditions); i++ {
		whereClause += " AND " + conditions[i]
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM inventory_items i %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf("%s %s ORDER BY i.name LIMIT %d OFFSET %d", itemSelect, whereClause, limit, req.Offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result, err := collectItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, itemSelect+" ORDER BY i.name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

func collectItems(rows pgx.Rows) ([]Item, error) {
	var result []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.SKU, &it.Category, &it.Quantity, &it.MinStock, &it.UnitPrice,
			&it.SupplierID, &it.SupplierName, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	return result, rows.Err()
}

func (r *repository) Create(ctx context.Context, item Item) (int64, error) {
	query := `
		INSERT INTO inventory_items (name, sku, category, quantity, min_stock, unit_price, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query, item.Name, item.SKU, item.Category, item.Quantity, item.MinStock,
		item.UnitPrice, item.SupplierID).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, ErrDuplicateSKU
		}
		return 0, err
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, item Item) error {
	query := `
		UPDATE inventory_items
		SET name = $2, category = $3, quantity = $4, min_stock = $5, unit_price = $6, supplier_id = $7, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, item.ID, item.Name, item.Category, item.Quantity, item.MinStock,
		item.UnitPrice, item.SupplierID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) AdjustQuantity(ctx context.Context, id int64, delta float64) (*Item, error) {
	query := `
		UPDATE inventory_items
		SET quantity = quantity + $2, updated_at = NOW()
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING id`
	var updated int64
	if err := r.db.QueryRow(ctx, query, id, delta).Scan(&updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the item is missing or the adjustment would go negative.
			if _, getErr := r.Get(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, ErrNegativeStock
		}
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM inventory_items WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
