package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
)

func TestLowStockScanTaskPayload(t *testing.T) {
	task, err := NewLowStockScanTask(LowStockScanPayload{Limit: 25})
	require.NoError(t, err)
	require.Equal(t, TaskLowStockScan, task.Type())
	require.JSONEq(t, `{"limit":25}`, string(task.Payload()))
}

func TestMaintenanceDueScanTaskPayload(t *testing.T) {
	task, err := NewMaintenanceDueScanTask(MaintenanceDueScanPayload{AheadDays: 7})
	require.NoError(t, err)
	require.Equal(t, TaskMaintenanceDueScan, task.Type())
	require.JSONEq(t, `{"ahead_days":7}`, string(task.Payload()))
}

func TestHandleRejectsMalformedPayload(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	lowStock := NewLowStockScanJob(nil, logger)
	err := lowStock.Handle(context.Background(), asynq.NewTask(TaskLowStockScan, []byte("{broken")))
	require.ErrorIs(t, err, asynq.SkipRetry)

	maintenance := NewMaintenanceDueScanJob(nil, logger)
	err = maintenance.Handle(context.Background(), asynq.NewTask(TaskMaintenanceDueScan, []byte("{broken")))
	require.ErrorIs(t, err, asynq.SkipRetry)
}
