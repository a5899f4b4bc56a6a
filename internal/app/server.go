package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bookstore-backend/internal/transport/middleware"
	"github.com/heartmarshall/bookstore-backend/internal/transport/rest"
)

const schemaProbeSQL = `SELECT to_regclass('public.sales_history') IS NOT NULL`

// NewHandler builds the HTTP handler: probes plus the API behind the
// middleware chain RequestID → ClientIP → Logger → Recovery → CORS → RateLimit.
// The returned stop function ends the rate limiter's cleanup loop, if one
// was started.
func NewHandler(c *Container) (http.Handler, func()) {
	cfg := c.Config

	var rateLimit middleware.Middleware
	stop := func() {}
	if cfg.RateLimit.Enabled() {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		rateLimit = limiter.Limit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		stop = limiter.Stop
	}

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(c.Log),
		middleware.Recovery(c.Log),
		middleware.Optional(cfg.CORS.AllowedOrigins != "", middleware.CORS(cfg.CORS)),
		rateLimit,
	)

	health := rest.NewHealthHandler(BuildVersion(),
		rest.Check{Name: "database", Probe: c.Pool.Ping},
		rest.Check{Name: "schema", Probe: func(ctx context.Context) error {
			var ok bool
			if err := c.Pool.QueryRow(ctx, schemaProbeSQL).Scan(&ok); err != nil {
				return err
			}
			if !ok {
				return errors.New("migrations not applied")
			}
			return nil
		}},
	)

	router := rest.NewRouter(rest.Handlers{
		Health:    health,
		Orders:    rest.NewOrderHandler(c.Orders, c.History, c.Log),
		Recommend: rest.NewRecommendHandler(c.Recommend, c.Log),
		Reports:   rest.NewReportHandler(c.Reports, c.Log),
		Catalog:   rest.NewCatalogHandler(c.Catalog, c.Log),
	}, chain)

	return router, stop
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout.
func Serve(ctx context.Context, c *Container) error {
	cfg := c.Config.Server

	handler, stop := NewHandler(c)
	defer stop()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c.Log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		c.Log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
