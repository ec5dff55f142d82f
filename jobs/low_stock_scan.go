package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/pressroom-erp/pressroom/internal/inventory"
)

// LowStockScanJob reports inventory items that have fallen below their
// minimum stock threshold so purchasing can restock before a press stalls.
type LowStockScanJob struct {
	inventory *inventory.Service
	logger    *slog.Logger
}

func NewLowStockScanJob(inv *inventory.Service, logger *slog.Logger) *LowStockScanJob {
	return &LowStockScanJob{inventory: inv, logger: logger}
}

// Handle processes TaskLowStockScan tasks.
func (j *LowStockScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload LowStockScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	items, err := j.inventory.LowStock(ctx)
	if err != nil {
		return err
	}
	if payload.Limit > 0 && len(items) > payload.Limit {
		items = items[:payload.Limit]
	}

	if len(items) == 0 {
		j.logger.Info("low stock scan clean")
		return nil
	}
	for _, item := range items {
		j.logger.Warn("item below minimum stock",
			slog.Int64("item_id", item.ID),
			slog.String("sku", item.SKU),
			slog.String("name", item.Name),
			slog.Float64("quantity", item.Quantity),
			slog.Float64("min_stock", item.MinStock))
	}
	j.logger.Info("low stock scan finished", slog.Int("flagged", len(items)))
	return nil
}
