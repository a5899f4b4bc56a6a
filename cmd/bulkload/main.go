// Command bulkload loads a YAML dataset of categories, authors, products,
// customers, and historical orders in a single transaction. Sales history is
// projected for every loaded line item.
//
// Flags:
//
//	--file         path to the dataset YAML file (required)
//	--dry-run      parse and validate without writing to DB
//	--batch-size   rows per pgx batch
//	--bcrypt-cost  cost used to hash customer passwords
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

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/bookstore-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookstore-backend/internal/app"
	"github.com/heartmarshall/bookstore-backend/internal/app/bulkload"
	"github.com/heartmarshall/bookstore-backend/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "path to the dataset YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "parse and validate without writing to DB")
	batchSizeFlag := flag.Int("batch-size", 500, "rows per batch")
	costFlag := flag.Int("bcrypt-cost", bcrypt.DefaultCost, "bcrypt cost for customer passwords")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("--file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ds, err := bulkload.LoadFile(*fileFlag)
	if err != nil {
		logger.Error("load dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	plan, err := bulkload.Build(ds, bulkload.BcryptHasher(*costFlag))
	if err != nil {
		logger.Error("invalid dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	c := app.Wire(cfg, logger, pool)

	pipeline := bulkload.NewPipeline(logger, c.Bulk, c.History, c.Tx, bulkload.Config{
		BatchSize: *batchSizeFlag,
		DryRun:    *dryRunFlag,
	})
	if err := pipeline.Run(ctx, plan); err != nil {
		logger.Error("bulk load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("bulk load completed successfully", slog.Bool("dry_run", *dryRunFlag))
}
