package workforce

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceStatus marks how an employee's day was recorded.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceLate    AttendanceStatus = "Late"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

// AttendanceStatuses lists the valid attendance statuses.
func AttendanceStatuses() []AttendanceStatus {
	return []AttendanceStatus{AttendancePresent, AttendanceLate, AttendanceAbsent}
}

// Valid reports whether s is a known attendance status.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceLate, AttendanceAbsent:
		return true
	}
	return false
}

// PayrollStatus tracks a payroll record through approval and payment.
type PayrollStatus string

const (
	PayrollPending PayrollStatus = "Pending"
	PayrollPaid    PayrollStatus = "Paid"
)

// Employee is a member of the press workforce.
type Employee struct {
	ID         int64     `json:"id" db:"id"`
	FirstName  string    `json:"first_name" db:"first_name"`
	LastName   string    `json:"last_name" db:"last_name"`
	Department string    `json:"department" db:"department"`
	Position   string    `json:"position" db:"position"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// FullName renders "First Last".
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// AttendanceRecord is one day's time log for an employee.
type AttendanceRecord struct {
	ID            int64            `json:"id" db:"id"`
	EmployeeID    int64            `json:"employee_id" db:"employee_id"`
	EmployeeName  string           `json:"employee_name,omitempty" db:"employee_name"`
	Department    string           `json:"department,omitempty" db:"department"`
	Date          time.Time        `json:"date" db:"date"`
	TimeIn        *string          `json:"time_in,omitempty" db:"time_in"`
	TimeOut       *string          `json:"time_out,omitempty" db:"time_out"`
	Status        AttendanceStatus `json:"status" db:"status"`
	HoursWorked   float64          `json:"hours_worked" db:"hours_worked"`
	OvertimeHours float64          `json:"overtime_hours" db:"overtime_hours"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
}

// PayrollRecord is one employee's pay for one period.
type PayrollRecord struct {
	ID           int64         `json:"id" db:"id"`
	EmployeeID   int64         `json:"employee_id" db:"employee_id"`
	EmployeeName string        `json:"employee_name,omitempty" db:"employee_name"`
	PeriodStart  time.Time     `json:"period_start" db:"period_start"`
	PeriodEnd    time.Time     `json:"period_end" db:"period_end"`
	BaseSalary   float64       `json:"base_salary" db:"base_salary"`
	OvertimePay  float64       `json:"overtime_pay" db:"overtime_pay"`
	Deductions   float64       `json:"deductions" db:"deductions"`
	NetSalary    float64       `json:"net_salary" db:"net_salary"`
	Status       PayrollStatus `json:"status" db:"status"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
}

// NetPay computes base + overtime - deductions using exact decimal
// arithmetic, rounded to centavos.
func NetPay(base, overtime, deductions float64) float64 {
	net := decimal.NewFromFloat(base).
		Add(decimal.NewFromFloat(overtime)).
		Sub(decimal.NewFromFloat(deductions)).
		Round(2)
	f, _ := net.Float64()
	return f
}
