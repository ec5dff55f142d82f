package reports

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pressroom-erp/pressroom/internal/clients"
	"github.com/pressroom-erp/pressroom/internal/inventory"
	"github.com/pressroom-erp/pressroom/internal/machinery"
	"github.com/pressroom-erp/pressroom/internal/orders"
	"github.com/pressroom-erp/pressroom/internal/suppliers"
	"github.com/pressroom-erp/pressroom/internal/workforce"
)

// DataBag holds a consistent snapshot of every collection the report
// transforms draw from. Transforms never touch storage themselves.
type DataBag struct {
	Clients     []clients.Client
	Suppliers   []suppliers.Supplier
	Orders      []orders.Order
	Inventory   []inventory.Item
	Machines    []machinery.Machine
	Maintenance []machinery.MaintenanceRecord
	Employees   []workforce.Employee
	Attendance  []workforce.AttendanceRecord
	Payroll     []workforce.PayrollRecord
}

// Sources enumerates the repository methods the aggregator needs. Each
// domain package's Repository satisfies its slot.
type Sources struct {
	Clients interface {
		ListAll(ctx context.Context) ([]clients.Client, error)
	}
	Suppliers interface {
		ListAll(ctx context.Context) ([]suppliers.Supplier, error)
	}
	Orders interface {
		ListAll(ctx context.Context) ([]orders.Order, error)
	}
	Inventory interface {
		ListAll(ctx context.Context) ([]inventory.Item, error)
	}
	Machinery interface {
		ListMachines(ctx context.Context) ([]machinery.Machine, error)
		ListAllMaintenance(ctx context.Context) ([]machinery.MaintenanceRecord, error)
	}
	Workforce interface {
		ListEmployees(ctx context.Context) ([]workforce.Employee, error)
		ListAllAttendance(ctx context.Context) ([]workforce.AttendanceRecord, error)
		ListAllPayroll(ctx context.Context) ([]workforce.PayrollRecord, error)
	}
}

// BagCache stores recent snapshots so bursts of export requests do not hammer
// the database. A nil cache disables caching entirely.
type BagCache interface {
	Get(ctx context.Context, key string, target interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

const bagCacheKey = "reports:bag:v1"

// Aggregator loads the full data bag for a report run.
type Aggregator struct {
	src   Sources
	cache BagCache
}

func NewAggregator(src Sources) *Aggregator {
	return &Aggregator{src: src}
}

// WithCache enables short-lived snapshot caching.
func (a *Aggregator) WithCache(c BagCache) *Aggregator {
	a.cache = c
	return a
}

// Load fetches every collection concurrently. Any single failure aborts the
// whole load; a report is never generated from a partial snapshot.
func (a *Aggregator) Load(ctx context.Context) (*DataBag, error) {
	bag := &DataBag{}
	if a.cache != nil {
		if hit, err := a.cache.Get(ctx, bagCacheKey, bag); err == nil && hit {
			return bag, nil
		}
	}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if bag.Clients, err = a.src.Clients.ListAll(ctx); err != nil {
			return fmt.Errorf("load clients: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if bag.Suppliers, err = a.src.Suppliers.ListAll(ctx); err != nil {
			return fmt.Errorf("load suppliers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if bag.Orders, err = a.src.Orders.ListAll(ctx); err != nil {
			return fmt.Errorf("load orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if bag.Inventory, err = a.src.Inventory.ListAll(ctx); err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if bag.Machines, err = a.src.Machinery.ListMachines(ctx); err != nil {
			return fmt.Errorf("load machines: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if bag.Maintenance, err = a.src.Machinery.ListAllMaintenance(ctx); err != nil {
			return fmt.Errorf("load maintenance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if bag.Employees, err = a.src.Workforce.ListEmployees(ctx); err != nil {
			return fmt.Errorf("load employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if bag.Attendance, err = a.src.Workforce.ListAllAttendance(ctx); err != nil {
			return fmt.Errorf("load attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if bag.Payroll, err = a.src.Workforce.ListAllPayroll(ctx); err != nil {
			return fmt.Errorf("load payroll: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if a.cache != nil {
		// Best effort: a cache write failure never fails the report.
		_ = a.cache.Set(ctx, bagCacheKey, bag)
	}
	return bag, nil
}
