// Package report implements the read-only revenue and customer reports.
// All calendar boundaries are computed in the configured reporting zone.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/bookstore-backend/internal/config"
	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

type reportRepo interface {
	Revenue(ctx context.Context, from, to time.Time) (decimal.Decimal, int, error)
	TopProducts(ctx context.Context, from, to time.Time, n int) ([]domain.ProductRevenue, error)
	HighValueCustomers(ctx context.Context, from, to time.Time, threshold decimal.Decimal) ([]domain.CustomerValue, error)
}

// MaxWindowDays bounds the high-value customers window.
const MaxWindowDays = 3650

var tracer = otel.Tracer("github.com/heartmarshall/bookstore-backend/internal/service/report")

// Service runs reports.
type Service struct {
	repo    reportRepo
	loc     *time.Location
	maxTopN int
	now     func() time.Time
	log     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new report service. A nil cfg.Location means UTC.
func NewService(log *slog.Logger, repo reportRepo, cfg config.ReportConfig, opts ...Option) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	s := &Service{
		repo:    repo,
		loc:     loc,
		maxTopN: cfg.MaxTopN,
		now:     time.Now,
		log:     log.With("service", "report"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the reporting time zone.
func (s *Service) Location() *time.Location {
	return s.loc
}
