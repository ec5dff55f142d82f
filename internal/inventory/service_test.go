package inventory

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type memRepo struct {
	items  map[int64]*Item
	nextID int64
}

func newMemRepo(items ...Item) *memRepo {
	r := &memRepo{items: map[int64]*Item{}, nextID: 1}
	for i := range items {
		it := items[i]
		if it.ID == 0 {
			it.ID = r.nextID
		}
		r.items[it.ID] = &it
		if it.ID >= r.nextID {
			r.nextID = it.ID + 1
		}
	}
	return r
}

func (r *memRepo) Get(_ context.Context, id int64) (*Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (r *memRepo) List(_ context.Context, req ListItemsRequest) ([]Item, int, error) {
	var out []Item
	for _, it := range r.items {
		if req.LowOnly && !it.IsLowStock() {
			continue
		}
		if req.Category != nil && it.Category != *req.Category {
			continue
		}
		out = append(out, *it)
	}
	return out, len(out), nil
}

func (r *memRepo) ListAll(_ context.Context) ([]Item, error) {
	var out []Item
	for _, it := range r.items {
		out = append(out, *it)
	}
	return out, nil
}

func (r *memRepo) Create(_ context.Context, item Item) (int64, error) {
	for _, existing := range r.items {
		if existing.SKU == item.SKU {
			return 0, ErrDuplicateSKU
		}
	}
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = &item
	return item.ID, nil
}

func (r *memRepo) Update(_ context.Context, item Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return ErrNotFound
	}
	r.items[item.ID] = &item
	return nil
}

func (r *memRepo) AdjustQuantity(_ context.Context, id int64, delta float64) (*Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if it.Quantity+delta < 0 {
		return nil, ErrNegativeStock
	}
	it.Quantity += delta
	cp := *it
	return &cp, nil
}

func (r *memRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func testService(items ...Item) (*Service, *memRepo) {
	repo := newMemRepo(items...)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, logger), repo
}

func TestLowStockBoundary(t *testing.T) {
	atThreshold := Item{Quantity: 10, MinStock: 10}
	require.False(t, atThreshold.IsLowStock())

	below := Item{Quantity: 9.5, MinStock: 10}
	require.True(t, below.IsLowStock())
}

func TestAdjustRejectsNegativeStock(t *testing.T) {
	svc, _ := testService(Item{ID: 1, Name: "A4 Bond Paper", SKU: "PPR-A4", Quantity: 5, MinStock: 2})

	_, err := svc.Adjust(context.Background(), 1, AdjustQuantityRequest{Delta: -6})
	require.ErrorIs(t, err, ErrNegativeStock)

	item, err := svc.Adjust(context.Background(), 1, AdjustQuantityRequest{Delta: -5})
	require.NoError(t, err)
	require.Zero(t, item.Quantity)
}

func TestCreateRejectsDuplicateSKU(t *testing.T) {
	svc, _ := testService(Item{ID: 1, SKU: "PPR-A4"})

	_, err := svc.Create(context.Background(), CreateItemRequest{Name: "More Paper", SKU: "PPR-A4", Category: "Paper"})
	require.ErrorIs(t, err, ErrDuplicateSKU)
}

func TestLowStockListsOnlyBelowThreshold(t *testing.T) {
	svc, _ := testService(
		Item{ID: 1, SKU: "PPR-A4", Quantity: 5, MinStock: 10},
		Item{ID: 2, SKU: "INK-BLK", Quantity: 10, MinStock: 10},
	)

	items, err := svc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "PPR-A4", items[0].SKU)
}

func TestUpdatePartialFields(t *testing.T) {
	svc, _ := testService(Item{ID: 1, Name: "A4 Bond Paper", SKU: "PPR-A4", Category: "Paper", UnitPrice: 250})

	price := 275.0
	item, err := svc.Update(context.Background(), 1, UpdateItemRequest{UnitPrice: &price})
	require.NoError(t, err)
	require.Equal(t, 275.0, item.UnitPrice)
	require.Equal(t, "A4 Bond Paper", item.Name)
	require.Equal(t, "PPR-A4", item.SKU)
}

func TestStockValue(t *testing.T) {
	item := Item{Quantity: 4, UnitPrice: 250.5}
	require.Equal(t, 1002.0, item.StockValue())
}
