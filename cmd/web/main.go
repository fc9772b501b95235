package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"ecomdash/internal/config"
	"ecomdash/internal/handlers"
	"ecomdash/internal/middleware"
	"ecomdash/internal/observability"
	"ecomdash/internal/server"
	"ecomdash/internal/services"
	"ecomdash/internal/ui/templates"
	"ecomdash/internal/warehouse"

	"github.com/a-h/templ"
)

const (
	renderTimeout = 10 * time.Second
	cacheMaxAge   = "public, max-age=300"
)

func pageHandler(page func() templ.Component) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
		defer cancel()

		w.Header().Set("Cache-Control", cacheMaxAge)
		if err := page().Render(ctx, w); err != nil {
			http.Error(w, "render error", http.StatusInternalServerError)
		}
	}
}

// loadDataset fills the analytics service from the configured source and
// returns the warehouse store when that source is in use.
func loadDataset(cfg *config.Config, logger *slog.Logger, analytics *services.Analytics) (*warehouse.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Dataset.LoadTimeout)
	defer cancel()

	if !cfg.Warehouse.Enabled {
		return nil, analytics.LoadFromCSV(ctx, cfg.Dataset.CSVFile)
	}

	store, err := warehouse.Open(ctx, cfg.Warehouse, observability.Component(logger, "warehouse"))
	if err != nil {
		return nil, err
	}

	data, err := store.LoadTransactions(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	analytics.SetData(data)

	if err := store.SaveSegmentSnapshot(ctx, analytics.SnapshotID(), analytics.SegmentSummary()); err != nil {
		logger.Warn("failed to persist segment snapshot", "error", err)
	}

	return store, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", "1.0.0",
		"warehouse_enabled", cfg.Warehouse.Enabled,
	)

	analytics := services.NewAnalytics()

	start := time.Now()
	store, err := loadDataset(cfg, logger, analytics)
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}
	logger.Info("dataset loaded", "duration", time.Since(start))

	templateHandlers := &server.TemplateHandlers{
		Overview:   pageHandler(templates.Overview),
		Revenue:    pageHandler(templates.Revenue),
		Customers:  pageHandler(templates.Customers),
		Products:   pageHandler(templates.Products),
		Operations: pageHandler(templates.Operations),
		Geography:  pageHandler(templates.Geography),
	}

	srv := server.NewServer(analytics, logger, templateHandlers)
	if store != nil {
		srv.MountWarehouse(handlers.NewWarehouseHandlers(store, observability.Component(logger, "warehouse")))
	}

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
		middleware.Compression(cfg.Security, logger),
	)

	handler := middlewareChain(srv)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg)

	if store != nil {
		gracefulServer.RegisterShutdownHook("warehouse", func(ctx context.Context) error {
			logger.Info("closing warehouse connection")
			return store.Close()
		})
	}

	logger.Info("starting graceful server", "address", cfg.Address())
	if err := gracefulServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
