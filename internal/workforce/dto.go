package workforce

import "time"

type CreateEmployeeRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Department string `json:"department" validate:"required,max=100"`
	Position   string `json:"position" validate:"required,max=100"`
}

type UpdateEmployeeRequest struct {
	FirstName  *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName   *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=100"`
	Position   *string `json:"position,omitempty" validate:"omitempty,max=100"`
}

type CreateAttendanceRequest struct {
	EmployeeID    int64            `json:"employee_id" validate:"required,gt=0"`
	Date          time.Time        `json:"date" validate:"required"`
	TimeIn        *string          `json:"time_in,omitempty" validate:"omitempty,max=10"`
	TimeOut       *string          `json:"time_out,omitempty" validate:"omitempty,max=10"`
	Status        AttendanceStatus `json:"status" validate:"required"`
	HoursWorked   float64          `json:"hours_worked" validate:"gte=0,lte=24"`
	OvertimeHours float64          `json:"overtime_hours" validate:"gte=0,lte=16"`
}

type ListAttendanceRequest struct {
	EmployeeID *int64            `json:"employee_id,omitempty"`
	Status     *AttendanceStatus `json:"status,omitempty"`
	DateFrom   *time.Time        `json:"date_from,omitempty"`
	DateTo     *time.Time        `json:"date_to,omitempty"`
	Limit      int               `json:"limit" validate:"gte=0,lte=1000"`
	Offset     int               `json:"offset" validate:"gte=0"`
}

type CreatePayrollRequest struct {
	EmployeeID  int64     `json:"employee_id" validate:"required,gt=0"`
	PeriodStart time.Time `json:"period_start" validate:"required"`
	PeriodEnd   time.Time `json:"period_end" validate:"required"`
	BaseSalary  float64   `json:"base_salary" validate:"gte=0"`
	OvertimePay float64   `json:"overtime_pay" validate:"gte=0"`
	Deductions  float64   `json:"deductions" validate:"gte=0"`
}

type ListPayrollRequest struct {
	EmployeeID *int64         `json:"employee_id,omitempty"`
	Status     *PayrollStatus `json:"status,omitempty"`
	DateFrom   *time.Time     `json:"date_from,omitempty"`
	DateTo     *time.Time     `json:"date_to,omitempty"`
	Limit      int            `json:"limit" validate:"gte=0,lte=1000"`
	Offset     int            `json:"offset" validate:"gte=0"`
}
