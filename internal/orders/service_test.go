package orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type memRepo struct {
	orders     map[int64]*Order
	items      map[int64][]OrderItem
	nextOrder  int64
	nextItem   int64
	nextSerial int
}

func newMemRepo() *memRepo {
	return &memRepo{
		orders:    map[int64]*Order{},
		items:     map[int64][]OrderItem{},
		nextOrder: 1,
		nextItem:  1,
	}
}

func (r *memRepo) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return fn(ctx, r)
}

func (r *memRepo) Get(_ context.Context, id int64) (*Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	cp.Items = append([]OrderItem(nil), r.items[id]...)
	return &cp, nil
}

func (r *memRepo) List(_ context.Context, _ ListOrdersRequest) ([]Order, int, error) {
	var out []Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, len(out), nil
}

func (r *memRepo) ListAll(ctx context.Context) ([]Order, error) {
	out, _, err := r.List(ctx, ListOrdersRequest{})
	return out, err
}

func (r *memRepo) Create(_ context.Context, order Order) (int64, error) {
	order.ID = r.nextOrder
	r.nextOrder++
	r.orders[order.ID] = &order
	return order.ID, nil
}

func (r *memRepo) Update(_ context.Context, order Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return ErrNotFound
	}
	order.Items = nil
	r.orders[order.ID] = &order
	return nil
}

func (r *memRepo) InsertItem(_ context.Context, item OrderItem) (int64, error) {
	item.ID = r.nextItem
	r.nextItem++
	r.items[item.OrderID] = append(r.items[item.OrderID], item)
	return item.ID, nil
}

func (r *memRepo) DeleteItems(_ context.Context, orderID int64) error {
	delete(r.items, orderID)
	return nil
}

func (r *memRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.orders[id]; !ok {
		return ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *memRepo) GenerateNumber(_ context.Context, date time.Time) (string, error) {
	r.nextSerial++
	return fmt.Sprintf("ORD-%s-%04d", date.Format("200601"), r.nextSerial), nil
}

func TestCreateComputesTotals(t *testing.T) {
	svc := NewService(newMemRepo())

	order, err := svc.Create(context.Background(), CreateOrderRequest{
		ClientID:  1,
		OrderDate: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		Items: []CreateOrderItemRequest{
			{ProductName: "Business Cards", Quantity: 1000, UnitPrice: 2},
			{ProductName: "Flyers", Quantity: 600, UnitPrice: 5},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "ORD-202501-0001", order.OrderNumber)
	require.Equal(t, StatusPending, order.Status)
	require.Equal(t, 5000.0, order.TotalAmount)
	require.Len(t, order.Items, 2)
	require.Equal(t, 3000.0, order.Items[1].TotalPrice)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newMemRepo())
	order, err := svc.Create(context.Background(), CreateOrderRequest{
		ClientID:  1,
		OrderDate: time.Now(),
		Items:     []CreateOrderItemRequest{{ProductName: "Posters", Quantity: 10, UnitPrice: 10}},
	})
	require.NoError(t, err)

	bogus := Status("Shipped")
	_, err = svc.Update(context.Background(), order.ID, UpdateOrderRequest{Status: &bogus})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateReplacesItemsAndTotal(t *testing.T) {
	svc := NewService(newMemRepo())
	order, err := svc.Create(context.Background(), CreateOrderRequest{
		ClientID:  1,
		OrderDate: time.Now(),
		Items:     []CreateOrderItemRequest{{ProductName: "Posters", Quantity: 10, UnitPrice: 10}},
	})
	require.NoError(t, err)
	require.Equal(t, 100.0, order.TotalAmount)

	newItems := []CreateOrderItemRequest{{ProductName: "Banners", Quantity: 2, UnitPrice: 750}}
	updated, err := svc.Update(context.Background(), order.ID, UpdateOrderRequest{Items: &newItems})
	require.NoError(t, err)
	require.Equal(t, 1500.0, updated.TotalAmount)
	require.Len(t, updated.Items, 1)
	require.Equal(t, "Banners", updated.Items[0].ProductName)
}

func TestBalance(t *testing.T) {
	paid := 300.0
	withPayment := Order{TotalAmount: 1000, PaidAmount: &paid}
	require.Equal(t, 700.0, withPayment.Balance())

	unpaid := Order{TotalAmount: 1000}
	require.Equal(t, 1000.0, unpaid.Balance())
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses() {
		require.True(t, s.Valid())
	}
	require.False(t, Status("Shipped").Valid())
}
