// Package bulkload loads a YAML dataset of catalog, customer, and historical
// order data in one transaction, projecting sales history for every loaded
// line item.
package bulkload

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// Phases in the order they run.
const (
	PhaseCategories = "categories"
	PhaseAuthors    = "authors"
	PhaseProducts   = "products"
	PhaseCustomers  = "customers"
	PhaseOrders     = "orders"
	PhaseLineItems  = "line_items"
	PhaseHistory    = "history"
)

var allPhases = []string{
	PhaseCategories, PhaseAuthors, PhaseProducts, PhaseCustomers,
	PhaseOrders, PhaseLineItems, PhaseHistory,
}

type bulkRepo interface {
	InsertCategories(ctx context.Context, categories []domain.Category) (int, error)
	InsertAuthors(ctx context.Context, authors []domain.Author) (int, error)
	InsertProducts(ctx context.Context, products []domain.Product) (int, error)
	InsertCustomers(ctx context.Context, customers []domain.Customer) (int, error)
	InsertOrders(ctx context.Context, orders []domain.Order) (int, error)
	InsertLineItems(ctx context.Context, items []domain.OrderLineItem) (int, error)
}

type historyProjector interface {
	Project(ctx context.Context, item domain.OrderLineItem) (*domain.SalesHistoryRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds bulk load settings.
type Config struct {
	BatchSize int
	DryRun    bool
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline inserts a Plan phase by phase.
type Pipeline struct {
	log     *slog.Logger
	repo    bulkRepo
	history historyProjector
	tx      txManager
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo bulkRepo, history historyProjector, tx txManager, cfg Config) *Pipeline {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	return &Pipeline{
		log:     log.With("service", "bulkload"),
		repo:    repo,
		history: history,
		tx:      tx,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run inserts the plan. All phases share one transaction: a failing phase
// rolls back everything inserted before it. In dry-run mode nothing is
// written and every row is counted as skipped.
func (p *Pipeline) Run(ctx context.Context, plan *Plan) error {
	clear(p.results)

	if p.cfg.DryRun {
		for _, phase := range allPhases {
			p.results[phase] = PhaseResult{Skipped: p.phaseSize(plan, phase)}
		}
		p.log.InfoContext(ctx, "dry run: dataset is valid",
			slog.Int("categories", len(plan.Categories)),
			slog.Int("products", len(plan.Products)),
			slog.Int("orders", len(plan.Orders)),
			slog.Int("line_items", len(plan.LineItems)),
		)
		return nil
	}

	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		clear(p.results)
		for _, phase := range allPhases {
			start := time.Now()
			p.log.InfoContext(ctx, "starting phase", slog.String("phase", phase))

			n, err := p.runPhase(ctx, plan, phase)
			result := PhaseResult{Inserted: n, Duration: time.Since(start), Err: err}
			p.results[phase] = result

			if err != nil {
				p.log.WarnContext(ctx, "phase failed",
					slog.String("phase", phase),
					slog.String("error", err.Error()),
					slog.Duration("duration", result.Duration),
				)
				return fmt.Errorf("phase %s: %w", phase, err)
			}
			p.log.InfoContext(ctx, "phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", n),
				slog.Duration("duration", result.Duration),
			)
		}
		return nil
	})
	if err != nil {
		return err
	}

	total := 0
	for _, r := range p.results {
		total += r.Inserted
	}
	p.log.InfoContext(ctx, "bulk load completed", slog.Int("rows", total))
	return nil
}

func (p *Pipeline) runPhase(ctx context.Context, plan *Plan, phase string) (int, error) {
	size := p.cfg.BatchSize
	switch phase {
	case PhaseCategories:
		return batchProcess(plan.Categories, size, func(b []domain.Category) (int, error) {
			return p.repo.InsertCategories(ctx, b)
		})
	case PhaseAuthors:
		return batchProcess(plan.Authors, size, func(b []domain.Author) (int, error) {
			return p.repo.InsertAuthors(ctx, b)
		})
	case PhaseProducts:
		return batchProcess(plan.Products, size, func(b []domain.Product) (int, error) {
			return p.repo.InsertProducts(ctx, b)
		})
	case PhaseCustomers:
		return batchProcess(plan.Customers, size, func(b []domain.Customer) (int, error) {
			return p.repo.InsertCustomers(ctx, b)
		})
	case PhaseOrders:
		return batchProcess(plan.Orders, size, func(b []domain.Order) (int, error) {
			return p.repo.InsertOrders(ctx, b)
		})
	case PhaseLineItems:
		return batchProcess(plan.LineItems, size, func(b []domain.OrderLineItem) (int, error) {
			return p.repo.InsertLineItems(ctx, b)
		})
	case PhaseHistory:
		n := 0
		for _, li := range plan.LineItems {
			if _, err := p.history.Project(ctx, li); err != nil {
				return n, fmt.Errorf("line item %s: %w", li.ID, err)
			}
			n++
		}
		return n, nil
	}
	return 0, fmt.Errorf("unknown phase %q", phase)
}

func (p *Pipeline) phaseSize(plan *Plan, phase string) int {
	switch phase {
	case PhaseCategories:
		return len(plan.Categories)
	case PhaseAuthors:
		return len(plan.Authors)
	case PhaseProducts:
		return len(plan.Products)
	case PhaseCustomers:
		return len(plan.Customers)
	case PhaseOrders:
		return len(plan.Orders)
	case PhaseLineItems, PhaseHistory:
		return len(plan.LineItems)
	}
	return 0
}

// batchProcess splits items into chunks and calls fn for each chunk.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
