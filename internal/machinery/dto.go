package machinery

import "time"

type CreateMachineRequest struct {
	Name            string     `json:"name" validate:"required,max=200"`
	Type            string     `json:"type" validate:"required,max=100"`
	NextMaintenance *time.Time `json:"next_maintenance,omitempty"`
}

type UpdateMachineRequest struct {
	Name            *string        `json:"name,omitempty" validate:"omitempty,max=200"`
	Type            *string        `json:"type,omitempty" validate:"omitempty,max=100"`
	Status          *MachineStatus `json:"status,omitempty"`
	NextMaintenance *time.Time     `json:"next_maintenance,omitempty"`
}

type CreateMaintenanceRequest struct {
	MachineID   int64           `json:"machine_id" validate:"required,gt=0"`
	Date        time.Time       `json:"date" validate:"required"`
	Type        MaintenanceType `json:"type" validate:"required"`
	Cost        float64         `json:"cost" validate:"gte=0"`
	PerformedBy *string         `json:"performed_by,omitempty" validate:"omitempty,max=200"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=1000"`
	// NextMaintenance, when set, rolls the machine's schedule forward.
	NextMaintenance *time.Time `json:"next_maintenance,omitempty"`
}

type ListMaintenanceRequest struct {
	MachineID *int64           `json:"machine_id,omitempty"`
	Type      *MaintenanceType `json:"type,omitempty"`
	DateFrom  *time.Time       `json:"date_from,omitempty"`
	DateTo    *time.Time       `json:"date_to,omitempty"`
	Limit     int              `json:"limit" validate:"gte=0,lte=1000"`
	Offset    int              `json:"offset" validate:"gte=0"`
}
