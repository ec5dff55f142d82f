package workforce

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidPeriod = errors.New("period end before period start")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	return s.repo.GetEmployee(ctx, id)
}

func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	return s.repo.ListEmployees(ctx)
}

func (s *Service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	e := Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Position:   req.Position,
	}
	id, err := s.repo.CreateEmployee(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return s.repo.GetEmployee(ctx, id)
}

func (s *Service) UpdateEmployee(ctx context.Context, id int64, req UpdateEmployeeRequest) (*Employee, error) {
	e, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if err := s.repo.UpdateEmployee(ctx, *e); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return s.repo.GetEmployee(ctx, id)
}

func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	return s.repo.DeleteEmployee(ctx, id)
}

func (s *Service) ListAttendance(ctx context.Context, req ListAttendanceRequest) ([]AttendanceRecord, int, error) {
	return s.repo.ListAttendance(ctx, req)
}

func (s *Service) RecordAttendance(ctx context.Context, req CreateAttendanceRequest) (*AttendanceRecord, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}
	if _, err := s.repo.GetEmployee(ctx, req.EmployeeID); err != nil {
		return nil, err
	}
	rec := AttendanceRecord{
		EmployeeID:    req.EmployeeID,
		Date:          req.Date,
		TimeIn:        req.TimeIn,
		TimeOut:       req.TimeOut,
		Status:        req.Status,
		HoursWorked:   req.HoursWorked,
		OvertimeHours: req.OvertimeHours,
	}
	id, err := s.repo.CreateAttendance(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("record attendance: %w", err)
	}
	rec.ID = id
	return &rec, nil
}

func (s *Service) ListPayroll(ctx context.Context, req ListPayrollRequest) ([]PayrollRecord, int, error) {
	return s.repo.ListPayroll(ctx, req)
}

// CreatePayroll computes the net salary server-side; clients never submit it.
func (s *Service) CreatePayroll(ctx context.Context, req CreatePayrollRequest) (*PayrollRecord, error) {
	if req.PeriodEnd.Before(req.PeriodStart) {
		return nil, ErrInvalidPeriod
	}
	if _, err := s.repo.GetEmployee(ctx, req.EmployeeID); err != nil {
		return nil, err
	}
	rec := PayrollRecord{
		EmployeeID:  req.EmployeeID,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		BaseSalary:  req.BaseSalary,
		OvertimePay: req.OvertimePay,
		Deductions:  req.Deductions,
		NetSalary:   NetPay(req.BaseSalary, req.OvertimePay, req.Deductions),
		Status:      PayrollPending,
	}
	id, err := s.repo.CreatePayroll(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("create payroll: %w", err)
	}
	rec.ID = id
	return &rec, nil
}

func (s *Service) MarkPayrollPaid(ctx context.Context, id int64) error {
	return s.repo.UpdatePayrollStatus(ctx, id, PayrollPaid)
}
