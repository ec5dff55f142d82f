package inventory

import (
	"context"
	"fmt"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Get(ctx context.Context, id int64) (*Item, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, req ListItemsRequest) ([]Item, int, error) {
	return s.repo.List(ctx, req)
}

func (s *Service) Create(ctx context.Context, req CreateItemRequest) (*Item, error) {
	item := Item{
		Name:       req.Name,
		SKU:        req.SKU,
		Category:   req.Category,
		Quantity:   req.Quantity,
		MinStock:   req.MinStock,
		UnitPrice:  req.UnitPrice,
		SupplierID: req.SupplierID,
	}
	id, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateItemRequest) (*Item, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.MinStock != nil {
		item.MinStock = *req.MinStock
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.SupplierID != nil {
		item.SupplierID = req.SupplierID
	}
	if err := s.repo.Update(ctx, *item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return s.repo.Get(ctx, id)
}

// Adjust applies a stock movement and logs when the item crosses its
// low-stock threshold.
func (s *Service) Adjust(ctx context.Context, id int64, req AdjustQuantityRequest) (*Item, error) {
	item, err := s.repo.AdjustQuantity(ctx, id, req.Delta)
	if err != nil {
		return nil, err
	}
	if item.IsLowStock() && s.logger != nil {
		s.logger.Warn("item below minimum stock",
			slog.Int64("item_id", item.ID),
			slog.String("sku", item.SKU),
			slog.Float64("quantity", item.Quantity),
			slog.Float64("min_stock", item.MinStock),
		)
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// LowStock returns every item currently below its threshold.
func (s *Service) LowStock(ctx context.Context) ([]Item, error) {
	items, _, err := s.repo.List(ctx, ListItemsRequest{LowOnly: true, Limit: 1000})
	return items, err
}
