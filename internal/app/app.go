package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bookstore-backend/internal/adapter/postgres"
	bulkrepo "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres/bulk"
	catalogrepo "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres/catalog"
	customerrepo "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres/customer"
	historyrepo "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres/history"
	orderrepo "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres/order"
	recommendrepo "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres/recommend"
	reportrepo "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres/report"
	"github.com/heartmarshall/bookstore-backend/internal/config"
	"github.com/heartmarshall/bookstore-backend/internal/service/catalog"
	"github.com/heartmarshall/bookstore-backend/internal/service/history"
	"github.com/heartmarshall/bookstore-backend/internal/service/order"
	"github.com/heartmarshall/bookstore-backend/internal/service/recommend"
	"github.com/heartmarshall/bookstore-backend/internal/service/report"
)

// Container holds the wired application: pool, transaction manager, and
// services. Commands build one with Bootstrap and release it with Close.
type Container struct {
	Config *config.Config
	Log    *slog.Logger
	Pool   *pgxpool.Pool
	Tx     *postgres.TxManager

	Orders    *order.Service
	History   *history.Projector
	Recommend *recommend.Service
	Reports   *report.Service
	Catalog   *catalog.Service
	Bulk      *bulkrepo.Repo

	shutdownTracing func(context.Context) error
}

// Bootstrap connects to the database and wires every service.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	shutdownTracing, err := SetupTracing(ctx, cfg.Tracing)
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		_ = shutdownTracing(ctx)
		return nil, err
	}

	c := Wire(cfg, logger, pool)
	c.shutdownTracing = shutdownTracing
	return c, nil
}

// Wire builds the repositories and services on top of an open pool.
func Wire(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *Container {
	txm := postgres.NewTxManager(pool,
		postgres.WithRetryPolicy(postgres.RetryPolicy{
			MaxAttempts: cfg.Order.MaxTxAttempts,
			BaseDelay:   cfg.Order.RetryBaseDelay,
			MaxDelay:    cfg.Order.RetryMaxDelay,
		}),
		postgres.WithLockTimeout(cfg.Order.LockTimeout),
		postgres.WithLogger(logger),
	)

	catalogs := catalogrepo.New(pool)
	customers := customerrepo.New(pool)
	projector := history.NewProjector(logger, historyrepo.New(pool))

	return &Container{
		Config: cfg,
		Log:    logger,
		Pool:   pool,
		Tx:     txm,

		Orders:    order.NewService(logger, customers, catalogs, orderrepo.New(pool), projector, txm, cfg.Order),
		History:   projector,
		Recommend: recommend.NewService(logger, customers, recommendrepo.New(pool)),
		Reports:   report.NewService(logger, reportrepo.New(pool), cfg.Report),
		Catalog:   catalog.NewService(logger, catalogs, txm),
		Bulk:      bulkrepo.New(pool),
	}
}

// Close releases the pool and flushes pending spans.
func (c *Container) Close(ctx context.Context) {
	c.Pool.Close()
	if c.shutdownTracing == nil {
		return
	}
	if err := c.shutdownTracing(ctx); err != nil {
		c.Log.WarnContext(ctx, "tracing shutdown", slog.String("error", err.Error()))
	}
}

// Run is the server entry point. It loads configuration, initializes the
// logger, wires the services, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("report_timezone", cfg.Report.Location.String()),
	)

	c, err := Bootstrap(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close(context.WithoutCancel(ctx))

	return Serve(ctx, c)
}
