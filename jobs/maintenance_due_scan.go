package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/pressroom-erp/pressroom/internal/machinery"
)

// MaintenanceDueScanJob flags machines whose next scheduled maintenance
// falls within the configured horizon.
type MaintenanceDueScanJob struct {
	machinery *machinery.Service
	logger    *slog.Logger
	now       func() time.Time
}

func NewMaintenanceDueScanJob(svc *machinery.Service, logger *slog.Logger) *MaintenanceDueScanJob {
	return &MaintenanceDueScanJob{machinery: svc, logger: logger, now: time.Now}
}

// Handle processes TaskMaintenanceDueScan tasks.
func (j *MaintenanceDueScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload MaintenanceDueScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	horizon := j.now().AddDate(0, 0, payload.AheadDays)
	machines, err := j.machinery.DueForMaintenance(ctx, horizon)
	if err != nil {
		return err
	}

	if len(machines) == 0 {
		j.logger.Info("maintenance due scan clean", slog.Time("horizon", horizon))
		return nil
	}
	for _, m := range machines {
		attrs := []slog.Attr{
			slog.Int64("machine_id", m.ID),
			slog.String("name", m.Name),
			slog.String("status", string(m.Status)),
		}
		if m.NextMaintenance != nil {
			attrs = append(attrs, slog.Time("next_maintenance", *m.NextMaintenance))
		}
		j.logger.LogAttrs(ctx, slog.LevelWarn, "machine maintenance due", attrs...)
	}
	j.logger.Info("maintenance due scan finished",
		slog.Int("flagged", len(machines)),
		slog.Time("horizon", horizon))
	return nil
}
