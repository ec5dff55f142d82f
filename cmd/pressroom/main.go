package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/pressroom-erp/pressroom/internal/app"
	"github.com/pressroom-erp/pressroom/internal/clients"
	"github.com/pressroom-erp/pressroom/internal/inventory"
	"github.com/pressroom-erp/pressroom/internal/machinery"
	"github.com/pressroom-erp/pressroom/internal/observability"
	"github.com/pressroom-erp/pressroom/internal/orders"
	"github.com/pressroom-erp/pressroom/internal/platform/cache"
	"github.com/pressroom-erp/pressroom/internal/platform/db"
	"github.com/pressroom-erp/pressroom/internal/reports"
	"github.com/pressroom-erp/pressroom/internal/reports/export"
	reporthttp "github.com/pressroom-erp/pressroom/internal/reports/http"
	"github.com/pressroom-erp/pressroom/internal/suppliers"
	"github.com/pressroom-erp/pressroom/internal/workforce"
	"github.com/pressroom-erp/pressroom/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping server startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN, db.Options{
		MaxConns:        cfg.PGMaxConns,
		MaxConnLifetime: cfg.PGConnLifetime,
	})
	if err != nil {
		logger.Error("connect database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	var bagStore *cache.Store
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, report snapshot cache disabled", slog.Any("error", err))
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		bagStore = cache.NewStore(redisClient, cfg.ReportCacheTTL)
	}

	metrics := observability.NewMetrics()

	clientsRepo := clients.NewRepository(pool)
	suppliersRepo := suppliers.NewRepository(pool)
	ordersRepo := orders.NewRepository(pool)
	inventoryRepo := inventory.NewRepository(pool)
	machineryRepo := machinery.NewRepository(pool)
	workforceRepo := workforce.NewRepository(pool)

	clientsHandler := clients.NewHandler(logger, clients.NewService(clientsRepo))
	suppliersHandler := suppliers.NewHandler(logger, suppliers.NewService(suppliersRepo))
	ordersHandler := orders.NewHandler(logger, orders.NewService(ordersRepo))
	inventoryHandler := inventory.NewHandler(logger, inventory.NewService(inventoryRepo, logger))
	machineryHandler := machinery.NewHandler(logger, machinery.NewService(machineryRepo))
	workforceHandler := workforce.NewHandler(logger, workforce.NewService(workforceRepo))

	aggregator := reports.NewAggregator(reports.Sources{
		Clients:   clientsRepo,
		Suppliers: suppliersRepo,
		Orders:    ordersRepo,
		Inventory: inventoryRepo,
		Machinery: machineryRepo,
		Workforce: workforceRepo,
	})
	if bagStore != nil {
		aggregator = aggregator.WithCache(bagStore)
	}
	reportsService := reporthttp.NewService(logger, aggregator, export.Organization{
		Name:    cfg.OrgName,
		Contact: cfg.OrgContact,
	}, metrics)
	reportsHandler := reporthttp.NewHandler(reportsService)

	jobHandler := jobs.NewHandler(asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr}), logger)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		ClientsHandler:   clientsHandler,
		SuppliersHandler: suppliersHandler,
		OrdersHandler:    ordersHandler,
		InventoryHandler: inventoryHandler,
		MachineryHandler: machineryHandler,
		WorkforceHandler: workforceHandler,
		ReportsHandler:   reportsHandler,
		JobHandler:       jobHandler,
		Metrics:          metrics,
	})

	srv := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", cfg.AppAddr), slog.String("env", cfg.AppEnv))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server run", slog.Any("error", err))
			os.Exit(1)
		}
	}
}
