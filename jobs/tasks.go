// Package jobs runs scheduled background scans over the press data: stock
// levels and machine maintenance schedules.
package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskLowStockScan walks the inventory for items below minimum stock.
	TaskLowStockScan = "inventory:low_stock_scan"
	// TaskMaintenanceDueScan finds machines whose next maintenance is due.
	TaskMaintenanceDueScan = "machinery:maintenance_due_scan"
)

// LowStockScanPayload tunes one low stock scan run.
type LowStockScanPayload struct {
	// Limit caps how many items a single run reports. Zero means no cap.
	Limit int `json:"limit"`
}

// NewLowStockScanTask builds the scan task.
func NewLowStockScanTask(payload LowStockScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLowStockScan, data), nil
}

// MaintenanceDueScanPayload tunes one maintenance due scan run.
type MaintenanceDueScanPayload struct {
	// AheadDays extends the horizon so upcoming maintenance is flagged
	// before the schedule date arrives.
	AheadDays int `json:"ahead_days"`
}

// NewMaintenanceDueScanTask builds the scan task.
func NewMaintenanceDueScanTask(payload MaintenanceDueScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskMaintenanceDueScan, data), nil
}
