package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/pressroom-erp/pressroom/internal/clients"
	"github.com/pressroom-erp/pressroom/internal/inventory"
	"github.com/pressroom-erp/pressroom/internal/machinery"
	"github.com/pressroom-erp/pressroom/internal/observability"
	"github.com/pressroom-erp/pressroom/internal/orders"
	reporthttp "github.com/pressroom-erp/pressroom/internal/reports/http"
	"github.com/pressroom-erp/pressroom/internal/suppliers"
	"github.com/pressroom-erp/pressroom/internal/workforce"
	"github.com/pressroom-erp/pressroom/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	ClientsHandler   *clients.Handler
	SuppliersHandler *suppliers.Handler
	OrdersHandler    *orders.Handler
	InventoryHandler *inventory.Handler
	MachineryHandler *machinery.Handler
	WorkforceHandler *workforce.Handler
	ReportsHandler   *reporthttp.Handler
	JobHandler       *jobs.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with Pressroom defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/clients", params.ClientsHandler.MountRoutes)
		r.Route("/suppliers", params.SuppliersHandler.MountRoutes)
		r.Route("/orders", params.OrdersHandler.MountRoutes)
		r.Route("/inventory", params.InventoryHandler.MountRoutes)
		r.Route("/machinery", params.MachineryHandler.MountRoutes)
		r.Route("/workforce", params.WorkforceHandler.MountRoutes)
		r.Route("/reports", params.ReportsHandler.MountRoutes)
		if params.JobHandler != nil {
			r.Route("/jobs", params.JobHandler.MountRoutes)
		}
	})

	return r
}
