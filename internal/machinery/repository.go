package machinery

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

var ErrNotFound = errors.New("machinery record not found")

type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	GetMachine(ctx context.Context, id int64) (*Machine, error)
	ListMachines(ctx context.Context) ([]Machine, error)
	ListDueMachines(ctx context.Context, by time.Time) ([]Machine, error)
	CreateMachine(ctx context.Context, m Machine) (int64, error)
	UpdateMachine(ctx context.Context, m Machine) error
	DeleteMachine(ctx context.Context, id int64) error
	ListMaintenance(ctx context.Context, req ListMaintenanceRequest) ([]MaintenanceRecord, int, error)
	ListAllMaintenance(ctx context.Context) ([]MaintenanceRecord, error)
	CreateMaintenance(ctx context.Context, rec MaintenanceRecord) (int64, error)
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

const machineColumns = "id, name, type, status, last_maintenance, next_maintenance, created_at, updated_at"

func (r *repository) GetMachine(ctx context.Context, id int64) (*Machine, error) {
	query := fmt.Sprintf("SELECT %s FROM machines WHERE id = $1", machineColumns)
	var m Machine
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Type, &m.Status,
		&m.LastMaintenance, &m.NextMaintenance, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) ListMachines(ctx context.Context) ([]Machine, error) {
	query := fmt.Sprintf("SELECT %s FROM machines ORDER BY name", machineColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMachines(rows)
}

// ListDueMachines returns machines whose next maintenance falls on or before the given day.
func (r *repository) ListDueMachines(ctx context.Context, by time.Time) ([]Machine, error) {
	query := fmt.Sprintf("SELECT %s FROM machines WHERE next_maintenance IS NOT NULL AND next_maintenance <= $1 ORDER BY next_maintenance", machineColumns)
	rows, err := r.db.Query(ctx, query, by)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMachines(rows)
}

func collectMachines(rows pgx.Rows) ([]Machine, error) {
	var result []Machine
	for rows.Next() {
		var m Machine
		if err := rows.Scan(&m.ID, &m.Name, &m.Type, &m.Status,
			&m.LastMaintenance, &m.NextMaintenance, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (r *repository) CreateMachine(ctx context.Context, m Machine) (int64, error) {
	query := `
		INSERT INTO machines (name, type, status, last_maintenance, next_maintenance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query, m.Name, m.Type, m.Status, m.LastMaintenance, m.NextMaintenance).Scan(&id)
	return id, err
}

func (r *repository) UpdateMachine(ctx context.Context, m Machine) error {
	query := `
		UPDATE machines
		SET name = $2, type = $3, status = $4, last_maintenance = $5, next_maintenance = $6, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Type, m.Status, m.LastMaintenance, m.NextMaintenance)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) DeleteMachine(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM machines WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const maintenanceSelect = `
	SELECT mr.id, mr.machine_id, m.name, mr.date, mr.type, mr.cost, mr.performed_by, mr.description, mr.created_at
	FROM maintenance_records mr
	JOIN machines m ON m.id = mr.machine_id`

func (r *repository) ListMaintenance(ctx context.Context, req ListMaintenanceRequest) ([]MaintenanceRecord, int, error) {
	conditions := []string{"1=1"}
	var args []interface{}
	argPos := 1

	if req.MachineID != nil {
		conditions = append(conditions, fmt.Sprintf("mr.machine_id = $%d", argPos))
		args = append(args, *req.MachineID)
		argPos++
	}
	if req.Type != nil {
		conditions = append(conditions, fmt.Sprintf("mr.type = $%d", argPos))
		args = append(args, *req.Type)
		argPos++
	}
	if req.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("mr.date >= $%d", argPos))
		args = append(args, *req.DateFrom)
		argPos++
	}
	if req.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("mr.date <= $%d", argPos))
		args = append(args, *req.DateTo)
		argPos++
	}

	whereClause := "WHERE " + conditions[0]
	for i := 1; i < len(conditions); i++ {
		whereClause += " AND " + conditions[i]
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM maintenance_records mr %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf("%s %s ORDER BY mr.date DESC, mr.id DESC LIMIT %d OFFSET %d", maintenanceSelect, whereClause, limit, req.Offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result, err := collectMaintenance(rows)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *repository) ListAllMaintenance(ctx context.Context) ([]MaintenanceRecord, error) {
	rows, err := r.db.Query(ctx, maintenanceSelect+" ORDER BY mr.date, mr.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMaintenance(rows)
}

func collectMaintenance(rows pgx.Rows) ([]MaintenanceRecord, error) {
	var result []MaintenanceRecord
	for rows.Next() {
		var rec MaintenanceRecord
		if err := rows.Scan(&rec.ID, &rec.MachineID, &rec.MachineName, &rec.Date, &rec.Type,
			&rec.Cost, &rec.PerformedBy, &rec.Description, &rec.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func (r *repository) CreateMaintenance(ctx context.Context, rec MaintenanceRecord) (int64, error) {
	query := `
		INSERT INTO maintenance_records (machine_id, date, type, cost, performed_by, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query, rec.MachineID, rec.Date, rec.Type, rec.Cost, rec.PerformedBy, rec.Description).Scan(&id)
	return id, err
}
