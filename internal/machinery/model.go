package machinery

import "time"

// MachineStatus reflects operational state of a press or finishing machine.
type MachineStatus string

const (
	MachineOperational       MachineStatus = "Operational"
	MachineUnderMaintenance  MachineStatus = "Under Maintenance"
	MachineOutOfService      MachineStatus = "Out of Service"
)

// MaintenanceType classifies a maintenance intervention.
type MaintenanceType string

const (
	MaintenanceScheduled  MaintenanceType = "Scheduled"
	MaintenanceRepair     MaintenanceType = "Repair"
	MaintenanceInspection MaintenanceType = "Inspection"
	MaintenanceEmergency  MaintenanceType = "Emergency"
)

// MaintenanceTypes lists the valid maintenance record types.
func MaintenanceTypes() []MaintenanceType {
	return []MaintenanceType{MaintenanceScheduled, MaintenanceRepair, MaintenanceInspection, MaintenanceEmergency}
}

// Valid reports whether t is a known maintenance type.
func (t MaintenanceType) Valid() bool {
	switch t {
	case MaintenanceScheduled, MaintenanceRepair, MaintenanceInspection, MaintenanceEmergency:
		return true
	}
	return false
}

// Machine is a piece of production machinery.
type Machine struct {
	ID              int64         `json:"id" db:"id"`
	Name            string        `json:"name" db:"name"`
	Type            string        `json:"type" db:"type"`
	Status          MachineStatus `json:"status" db:"status"`
	LastMaintenance *time.Time    `json:"last_maintenance,omitempty" db:"last_maintenance"`
	NextMaintenance *time.Time    `json:"next_maintenance,omitempty" db:"next_maintenance"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// MaintenanceRecord is one maintenance intervention on a machine.
type MaintenanceRecord struct {
	ID          int64           `json:"id" db:"id"`
	MachineID   int64           `json:"machine_id" db:"machine_id"`
	MachineName string          `json:"machine_name,omitempty" db:"machine_name"`
	Date        time.Time       `json:"date" db:"date"`
	Type        MaintenanceType `json:"type" db:"type"`
	Cost        float64         `json:"cost" db:"cost"`
	PerformedBy *string         `json:"performed_by,omitempty" db:"performed_by"`
	Description *string         `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
