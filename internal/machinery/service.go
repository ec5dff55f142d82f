package machinery

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrInvalidType = errors.New("invalid maintenance type")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetMachine(ctx context.Context, id int64) (*Machine, error) {
	return s.repo.GetMachine(ctx, id)
}

func (s *Service) ListMachines(ctx context.Context) ([]Machine, error) {
	return s.repo.ListMachines(ctx)
}

func (s *Service) DueForMaintenance(ctx context.Context, by time.Time) ([]Machine, error) {
	return s.repo.ListDueMachines(ctx, by)
}

func (s *Service) CreateMachine(ctx context.Context, req CreateMachineRequest) (*Machine, error) {
	m := Machine{
		Name:            req.Name,
		Type:            req.Type,
		Status:          MachineOperational,
		NextMaintenance: req.NextMaintenance,
	}
	id, err := s.repo.CreateMachine(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("create machine: %w", err)
	}
	return s.repo.GetMachine(ctx, id)
}

func (s *Service) UpdateMachine(ctx context.Context, id int64, req UpdateMachineRequest) (*Machine, error) {
	m, err := s.repo.GetMachine(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Type != nil {
		m.Type = *req.Type
	}
	if req.Status != nil {
		m.Status = *req.Status
	}
	if req.NextMaintenance != nil {
		m.NextMaintenance = req.NextMaintenance
	}
	if err := s.repo.UpdateMachine(ctx, *m); err != nil {
		return nil, fmt.Errorf("update machine: %w", err)
	}
	return s.repo.GetMachine(ctx, id)
}

func (s *Service) DeleteMachine(ctx context.Context, id int64) error {
	return s.repo.DeleteMachine(ctx, id)
}

func (s *Service) ListMaintenance(ctx context.Context, req ListMaintenanceRequest) ([]MaintenanceRecord, int, error) {
	return s.repo.ListMaintenance(ctx, req)
}

// LogMaintenance records an intervention and rolls the machine's
// last/next maintenance dates forward in the same transaction.
func (s *Service) LogMaintenance(ctx context.Context, req CreateMaintenanceRequest) (*MaintenanceRecord, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}

	var recID int64
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		machine, err := repo.GetMachine(ctx, req.MachineID)
		if err != nil {
			return err
		}
		rec := MaintenanceRecord{
			MachineID:   req.MachineID,
			Date:        req.Date,
			Type:        req.Type,
			Cost:        req.Cost,
			PerformedBy: req.PerformedBy,
			Description: req.Description,
		}
		id, err := repo.CreateMaintenance(ctx, rec)
		if err != nil {
			return fmt.Errorf("create maintenance record: %w", err)
		}
		recID = id

		date := req.Date
		machine.LastMaintenance = &date
		if req.NextMaintenance != nil {
			machine.NextMaintenance = req.NextMaintenance
		}
		return repo.UpdateMachine(ctx, *machine)
	})
	if err != nil {
		return nil, err
	}

	records, _, err := s.repo.ListMaintenance(ctx, ListMaintenanceRequest{MachineID: &req.MachineID, Limit: 1000})
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == recID {
			return &records[i], nil
		}
	}
	return nil, ErrNotFound
}
