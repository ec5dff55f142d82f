package orders

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidStatus = errors.New("invalid order status")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id int64) (*Order, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, req ListOrdersRequest) ([]Order, int, error) {
	return s.repo.List(ctx, req)
}

func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	orderNumber, err := s.repo.GenerateNumber(ctx, req.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("generate order number: %w", err)
	}

	var total float64
	for _, item := range req.Items {
		total += item.Quantity * item.UnitPrice
	}

	order := Order{
		OrderNumber: orderNumber,
		ClientID:    req.ClientID,
		OrderDate:   req.OrderDate,
		Status:      StatusPending,
		TotalAmount: total,
		PaidAmount:  req.PaidAmount,
		Notes:       req.Notes,
	}

	var orderID int64
	err = s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		id, err := repo.Create(ctx, order)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		orderID = id
		for _, itemReq := range req.Items {
			item := OrderItem{
				OrderID:     orderID,
				ProductName: itemReq.ProductName,
				Quantity:    itemReq.Quantity,
				UnitPrice:   itemReq.UnitPrice,
				TotalPrice:  itemReq.Quantity * itemReq.UnitPrice,
			}
			if _, err := repo.InsertItem(ctx, item); err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, orderID)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateOrderRequest) (*Order, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.OrderDate != nil {
		order.OrderDate = *req.OrderDate
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		order.Status = *req.Status
	}
	if req.PaidAmount != nil {
		order.PaidAmount = req.PaidAmount
	}
	if req.Notes != nil {
		order.Notes = req.Notes
	}

	err = s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		if req.Items != nil {
			if err := repo.DeleteItems(ctx, id); err != nil {
				return fmt.Errorf("replace order items: %w", err)
			}
			var total float64
			for _, itemReq := range *req.Items {
				item := OrderItem{
					OrderID:     id,
					ProductName: itemReq.ProductName,
					Quantity:    itemReq.Quantity,
					UnitPrice:   itemReq.UnitPrice,
					TotalPrice:  itemReq.Quantity * itemReq.UnitPrice,
				}
				if _, err := repo.InsertItem(ctx, item); err != nil {
					return fmt.Errorf("insert order item: %w", err)
				}
				total += item.TotalPrice
			}
			order.TotalAmount = total
		}
		return repo.Update(ctx, *order)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		if err := repo.DeleteItems(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}
