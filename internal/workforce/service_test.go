package workforce

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type memRepo struct {
	employees  map[int64]*Employee
	attendance []AttendanceRecord
	payroll    []PayrollRecord
	nextID     int64
}

func newMemRepo(employees ...Employee) *memRepo {
	r := &memRepo{employees: map[int64]*Employee{}, nextID: 1}
	for i := range employees {
		e := employees[i]
		if e.ID == 0 {
			e.ID = r.nextID
		}
		r.employees[e.ID] = &e
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
	}
	return r
}

func (r *memRepo) GetEmployee(_ context.Context, id int64) (*Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memRepo) ListEmployees(_ context.Context) ([]Employee, error) {
	var out []Employee
	for _, e := range r.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (r *memRepo) CreateEmployee(_ context.Context, e Employee) (int64, error) {
	e.ID = r.nextID
	r.nextID++
	r.employees[e.ID] = &e
	return e.ID, nil
}

func (r *memRepo) UpdateEmployee(_ context.Context, e Employee) error {
	if _, ok := r.employees[e.ID]; !ok {
		return ErrNotFound
	}
	r.employees[e.ID] = &e
	return nil
}

func (r *memRepo) DeleteEmployee(_ context.Context, id int64) error {
	delete(r.employees, id)
	return nil
}

func (r *memRepo) ListAttendance(_ context.Context, _ ListAttendanceRequest) ([]AttendanceRecord, int, error) {
	return r.attendance, len(r.attendance), nil
}

func (r *memRepo) ListAllAttendance(_ context.Context) ([]AttendanceRecord, error) {
	return r.attendance, nil
}

func (r *memRepo) CreateAttendance(_ context.Context, rec AttendanceRecord) (int64, error) {
	rec.ID = int64(len(r.attendance) + 1)
	r.attendance = append(r.attendance, rec)
	return rec.ID, nil
}

func (r *memRepo) ListPayroll(_ context.Context, _ ListPayrollRequest) ([]PayrollRecord, int, error) {
	return r.payroll, len(r.payroll), nil
}

func (r *memRepo) ListAllPayroll(_ context.Context) ([]PayrollRecord, error) {
	return r.payroll, nil
}

func (r *memRepo) CreatePayroll(_ context.Context, rec PayrollRecord) (int64, error) {
	rec.ID = int64(len(r.payroll) + 1)
	r.payroll = append(r.payroll, rec)
	return rec.ID, nil
}

func (r *memRepo) UpdatePayrollStatus(_ context.Context, id int64, status PayrollStatus) error {
	for i := range r.payroll {
		if r.payroll[i].ID == id {
			r.payroll[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func TestCreatePayrollComputesNetServerSide(t *testing.T) {
	svc := NewService(newMemRepo(Employee{ID: 1, FirstName: "Ana", LastName: "Cruz"}))

	rec, err := svc.CreatePayroll(context.Background(), CreatePayrollRequest{
		EmployeeID:  1,
		PeriodStart: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		BaseSalary:  12000,
		OvertimePay: 800,
		Deductions:  1300,
	})
	require.NoError(t, err)
	require.Equal(t, 11500.0, rec.NetSalary)
	require.Equal(t, PayrollPending, rec.Status)
}

func TestCreatePayrollRejectsInvertedPeriod(t *testing.T) {
	svc := NewService(newMemRepo(Employee{ID: 1}))

	_, err := svc.CreatePayroll(context.Background(), CreatePayrollRequest{
		EmployeeID:  1,
		PeriodStart: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestRecordAttendanceValidatesStatusAndEmployee(t *testing.T) {
	svc := NewService(newMemRepo(Employee{ID: 1}))

	_, err := svc.RecordAttendance(context.Background(), CreateAttendanceRequest{
		EmployeeID: 1,
		Date:       time.Now(),
		Status:     AttendanceStatus("On Leave"),
	})
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.RecordAttendance(context.Background(), CreateAttendanceRequest{
		EmployeeID: 99,
		Date:       time.Now(),
		Status:     AttendancePresent,
	})
	require.ErrorIs(t, err, ErrNotFound)
}
