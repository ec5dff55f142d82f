package workforce

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("workforce record not found")

type Repository interface {
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	CreateEmployee(ctx context.Context, e Employee) (int64, error)
	UpdateEmployee(ctx context.Context, e Employee) error
	DeleteEmployee(ctx context.Context, id int64) error

	ListAttendance(ctx context.Context, req ListAttendanceRequest) ([]AttendanceRecord, int, error)
	ListAllAttendance(ctx context.Context) ([]AttendanceRecord, error)
	CreateAttendance(ctx context.Context, rec AttendanceRecord) (int64, error)

	ListPayroll(ctx context.Context, req ListPayrollRequest) ([]PayrollRecord, int, error)
	ListAllPayroll(ctx context.Context) ([]PayrollRecord, error)
	CreatePayroll(ctx context.Context, rec PayrollRecord) (int64, error)
	UpdatePayrollStatus(ctx context.Context, id int64, status PayrollStatus) error
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

const employeeColumns = "id, first_name, last_name, department, position, created_at, updated_at"

func (r *repository) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	query := fmt.Sprintf("SELECT %s FROM employees WHERE id = $1", employeeColumns)
	var e Employee
	err := r.db.QueryRow(ctx, query, id).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Department, &e.Position, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) ListEmployees(ctx context.Context) ([]Employee, error) {
	query := fmt.Sprintf("SELECT %s FROM employees ORDER BY last_name, first_name", employeeColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Department, &e.Position, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func (r *repository) CreateEmployee(ctx context.Context, e Employee) (int64, error) {
	query := `
		INSERT INTO employees (first_name, last_name, department, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query, e.FirstName, e.LastName, e.Department, e.Position).Scan(&id)
	return id, err
}

func (r *repository) UpdateEmployee(ctx context.Context, e Employee) error {
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, department = $4, position = $5, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, e.ID, e.FirstName, e.LastName, e.Department, e.Position)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) DeleteEmployee(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, e.first_name || ' ' || e.last_name, e.department,
	       a.date, a.time_in, a.time_out, a.status, a.hours_worked, a.overtime_hours, a.created_at
	FROM attendance_records a
	JOIN employees e ON e.id = a.employee_id`

func (r *repository) ListAttendance(ctx context.Context, req ListAttendanceRequest) ([]AttendanceRecord, int, error) {
	conditions := []string{"1=1"}
	var args []interface{}
	argPos := 1

	if req.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argPos))
		args = append(args, *req.EmployeeID)
		argPos++
	}
	if req.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argPos))
		args = append(args, *req.Status)
		argPos++
	}
	if req.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argPos))
		args = append(args, *req.DateFrom)
		argPos++
	}
	if req.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argPos))
		args = append(args, *req.DateTo)
		argPos++
	}

	whereClause := "WHERE " + conditions[0]
	for i := 1; i < len(conditions); i++ {
		whereClause += " AND " + conditions[i]
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM attendance_records a %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf("%s %s ORDER BY a.date DESC, a.id DESC LIMIT %d OFFSET %d", attendanceSelect, whereClause, limit, req.Offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result, err := collectAttendance(rows)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *repository) ListAllAttendance(ctx context.Context) ([]AttendanceRecord, error) {
	rows, err := r.db.Query(ctx, attendanceSelect+" ORDER BY a.date, a.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAttendance(rows)
}

func collectAttendance(rows pgx.Rows) ([]AttendanceRecord, error) {
	var result []AttendanceRecord
	for rows.Next() {
		var rec AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Department,
			&rec.Date, &rec.TimeIn, &rec.TimeOut, &rec.Status, &rec.HoursWorked, &rec.OvertimeHours, &rec.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func (r *repository) CreateAttendance(ctx context.Context, rec AttendanceRecord) (int64, error) {
	query := `
		INSERT INTO attendance_records (employee_id, date, time_in, time_out, status, hours_worked, overtime_hours, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query, rec.EmployeeID, rec.Date, rec.TimeIn, rec.TimeOut, rec.Status,
		rec.HoursWorked, rec.OvertimeHours).Scan(&id)
	return id, err
}

const payrollSelect = `
	SELECT p.id, p.employee_id, e.first_name || ' ' || e.last_name,
	       p.period_start, p.period_end, p.base_salary, p.overtime_pay, p.deductions, p.net_salary, p.status, p.created_at
	FROM payroll_records p
	JOIN employees e ON e.id = p.employee_id`

func (r *repository) ListPayroll(ctx context.Context, req ListPayrollRequest) ([]PayrollRecord, int, error) {
	conditions := []string{"1=1"}
	var args []interface{}
	argPos := 1

	if req.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argPos))
		args = append(args, *req.EmployeeID)
		argPos++
	}
	if req.Status != nil {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argPos))
		args = append(args, *req.Status)
		argPos++
	}
	if req.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("p.period_start >= $%d", argPos))
		args = append(args, *req.DateFrom)
		argPos++
	}
	if req.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("p.period_start <= $%d", argPos))
		args = append(args, *req.DateTo)
		argPos++
	}

	whereClause := "WHERE " + conditions[0]
	for i := 1; i < len(conditions); i++ {
		whereClause += " AND " + conditions[i]
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM payroll_records p %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf("%s %s ORDER BY p.period_start DESC, p.id DESC LIMIT %d OFFSET %d", payrollSelect, whereClause, limit, req.Offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result, err := collectPayroll(rows)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *repository) ListAllPayroll(ctx context.Context) ([]PayrollRecord, error) {
	rows, err := r.db.Query(ctx, payrollSelect+" ORDER BY p.period_start, p.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayroll(rows)
}

func collectPayroll(rows pgx.Rows) ([]PayrollRecord, error) {
	var result []PayrollRecord
	for rows.Next() {
		var rec PayrollRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName,
			&rec.PeriodStart, &rec.PeriodEnd, &rec.BaseSalary, &rec.OvertimePay, &rec.Deductions,
			&rec.NetSalary, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func (r *repository) CreatePayroll(ctx context.Context, rec PayrollRecord) (int64, error) {
	query := `
		INSERT INTO payroll_records (employee_id, period_start, period_end, base_salary, overtime_pay, deductions, net_salary, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query, rec.EmployeeID, rec.PeriodStart, rec.PeriodEnd, rec.BaseSalary,
		rec.OvertimePay, rec.Deductions, rec.NetSalary, rec.Status).Scan(&id)
	return id, err
}

func (r *repository) UpdatePayrollStatus(ctx context.Context, id int64, status PayrollStatus) error {
	tag, err := r.db.Exec(ctx, "UPDATE payroll_records SET status = $2 WHERE id = $1", id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
