// Command daily-report prints yesterday's revenue, the current month's top
// products, and the high-value customers of the trailing window. It is
// intended to be invoked by an external cron job.
//
// Flags:
//
//	--top        number of top products to list
//	--window     high-value window in days
//	--threshold  high-value threshold
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/bookstore-backend/internal/adapter/postgres"
	reportrepo "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres/report"
	"github.com/heartmarshall/bookstore-backend/internal/app"
	"github.com/heartmarshall/bookstore-backend/internal/config"
	"github.com/heartmarshall/bookstore-backend/internal/service/report"
)

func main() {
	topFlag := flag.Int("top", 10, "number of top products")
	windowFlag := flag.Int("window", 30, "high-value window in days")
	thresholdFlag := flag.String("threshold", "1000", "high-value threshold")
	flag.Parse()

	threshold, err := decimal.NewFromString(*thresholdFlag)
	if err != nil {
		log.Fatalf("parse --threshold: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := report.NewService(logger, reportrepo.New(pool), cfg.Report)

	day := svc.Yesterday()
	revenue, err := svc.DailyRevenue(ctx, day)
	if err != nil {
		logger.Error("daily revenue failed", slog.String("date", day), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("daily revenue",
		slog.String("date", day),
		slog.String("revenue", revenue.Revenue.StringFixed(2)),
		slog.Int("orders", revenue.OrderCount),
	)

	month := svc.CurrentMonth()
	top, err := svc.MonthlyTopProducts(ctx, month, *topFlag)
	if err != nil {
		logger.Error("top products failed", slog.String("month", month), slog.String("error", err.Error()))
		os.Exit(1)
	}
	for i, p := range top {
		logger.Info("top product",
			slog.String("month", month),
			slog.Int("rank", i+1),
			slog.String("product_id", p.ProductID),
			slog.String("name", p.NameEN),
			slog.Int("units", p.Units),
			slog.String("revenue", p.Revenue.StringFixed(2)),
		)
	}

	customers, err := svc.HighValueCustomers(ctx, report.HighValueInput{WindowDays: *windowFlag, Threshold: threshold})
	if err != nil {
		logger.Error("high value customers failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for _, c := range customers {
		logger.Info("high value customer",
			slog.String("customer_id", c.CustomerID.String()),
			slog.String("email", c.Email),
			slog.Int("orders", c.OrderCount),
			slog.String("total", c.Total.StringFixed(2)),
		)
	}
}
