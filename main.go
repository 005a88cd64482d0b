package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	domcategory "github.com/MiniShopTech/MiniShop/internal/domain/category"
	domproduct "github.com/MiniShopTech/MiniShop/internal/domain/product"
	"github.com/MiniShopTech/MiniShop/internal/infra/config"
	"github.com/MiniShopTech/MiniShop/internal/infra/logging"
	"github.com/MiniShopTech/MiniShop/internal/infra/observability"
	"github.com/MiniShopTech/MiniShop/internal/infra/persistence/memory"
	"github.com/MiniShopTech/MiniShop/internal/infra/persistence/sqlstore"
	apihttp "github.com/MiniShopTech/MiniShop/internal/interface/http"
	"github.com/MiniShopTech/MiniShop/internal/pkg/clock"
	categoryuc "github.com/MiniShopTech/MiniShop/internal/usecase/category"
	productuc "github.com/MiniShopTech/MiniShop/internal/usecase/product"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type store struct {
	categories domcategory.Repository
	products   domproduct.Repository
	health     func(ctx context.Context) error
	close      func() error
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics()
	st, err := openStore(ctx, cfg, logger, metrics)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Error("close store", slog.Any("error", err))
		}
	}()

	clk := clock.NewReal()
	api := apihttp.NewAPI(apihttp.Dependencies{
		CategoryService: categoryuc.NewService(st.categories, st.products, clk),
		ProductService:  productuc.NewService(st.products, st.categories, clk),
		Logger:          logger,
		Metrics:         metrics,
		HealthCheck:     st.health,
		Options: apihttp.Options{
			RequestTimeout:     cfg.AppRequestTimeout,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
			Production:         cfg.IsProduction(),
		},
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.Router(),
		ReadTimeout:       cfg.AppReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server",
			slog.String("addr", server.Addr),
			slog.String("store", cfg.StoreDriver),
			slog.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.AppShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) (*store, error) {
	if cfg.StoreDriver == config.StoreMemory {
		logger.Warn("using in-memory store; data is lost on exit")
		return &store{
			categories: memory.NewCategoryRepository(),
			products:   memory.NewProductRepository(),
			close:      func() error { return nil },
		}, nil
	}

	db, dialect, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver:          cfg.StoreDriver,
		DSN:             cfg.DSN(),
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := sqlstore.Migrate(ctx, db, dialect); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("schema migrated", slog.String("dialect", dialect.String()))
	}
	if err := metrics.RegisterDBStats(db, "minishop"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("register db stats: %w", err)
	}
	return &store{
		categories: sqlstore.NewCategoryRepository(db, dialect),
		products:   sqlstore.NewProductRepository(db, dialect),
		health:     pinger(db),
		close:      db.Close,
	}, nil
}

func pinger(db *sql.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return db.PingContext(ctx)
	}
}
