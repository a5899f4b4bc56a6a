package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// DailyRevenue sums order totals for one calendar day ("YYYY-MM-DD") in the
// reporting zone. A day without orders yields zero revenue.
func (s *Service) DailyRevenue(ctx context.Context, date string) (domain.DailyRevenue, error) {
	ctx, span := tracer.Start(ctx, "report.DailyRevenue", trace.WithAttributes(attribute.String("date", date)))
	defer span.End()

	from, to, err := ParseDay(date, s.loc)
	if err != nil {
		return domain.DailyRevenue{}, err
	}

	revenue, count, err := s.repo.Revenue(ctx, from, to)
	if err != nil {
		return domain.DailyRevenue{}, fmt.Errorf("daily revenue: %w", err)
	}

	return domain.DailyRevenue{
		Date:       from,
		From:       from,
		To:         to,
		Revenue:    revenue.Round(2),
		OrderCount: count,
	}, nil
}

// MonthlyTopProducts ranks products by line revenue for one calendar month
// ("YYYY-MM") and returns the top n.
func (s *Service) MonthlyTopProducts(ctx context.Context, month string, n int) ([]domain.ProductRevenue, error) {
	ctx, span := tracer.Start(ctx, "report.MonthlyTopProducts",
		trace.WithAttributes(attribute.String("month", month), attribute.Int("n", n)),
	)
	defer span.End()

	var errs []domain.FieldError
	from, to, err := ParseMonth(month, s.loc)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be YYYY-MM"})
	}
	switch {
	case s.maxTopN > 0 && (n < 1 || n > s.maxTopN):
		errs = append(errs, domain.FieldError{Field: "n", Message: fmt.Sprintf("must be between 1 and %d", s.maxTopN)})
	case n < 1:
		errs = append(errs, domain.FieldError{Field: "n", Message: "must be at least 1"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	rows, err := s.repo.TopProducts(ctx, from, to, n)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	return RankProducts(rows, n), nil
}

// HighValueInput holds the parameters for HighValueCustomers.
type HighValueInput struct {
	WindowDays int
	Threshold  decimal.Decimal
}

// HighValueCustomers returns customers whose order totals over the last
// WindowDays days, [now - window, now), strictly exceed Threshold.
func (s *Service) HighValueCustomers(ctx context.Context, input HighValueInput) ([]domain.CustomerValue, error) {
	ctx, span := tracer.Start(ctx, "report.HighValueCustomers",
		trace.WithAttributes(
			attribute.Int("window.days", input.WindowDays),
			attribute.String("threshold", input.Threshold.String()),
		),
	)
	defer span.End()

	var errs []domain.FieldError
	if input.WindowDays < 1 || input.WindowDays > MaxWindowDays {
		errs = append(errs, domain.FieldError{Field: "window_days", Message: fmt.Sprintf("must be between 1 and %d", MaxWindowDays)})
	}
	if input.Threshold.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "threshold", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	to := s.now().In(s.loc)
	from := to.AddDate(0, 0, -input.WindowDays)

	rows, err := s.repo.HighValueCustomers(ctx, from, to, input.Threshold)
	if err != nil {
		return nil, fmt.Errorf("high value customers: %w", err)
	}

	result := FilterHighValue(rows, input.Threshold)
	s.log.DebugContext(ctx, "high value customers computed",
		slog.Time("from", from),
		slog.Time("to", to),
		slog.Int("count", len(result)),
	)
	return result, nil
}

// Yesterday returns the day key of the day before now in the reporting zone.
func (s *Service) Yesterday() string {
	return FormatDay(DayStart(s.now(), s.loc).AddDate(0, 0, -1), s.loc)
}

// CurrentMonth returns the month key of now in the reporting zone.
func (s *Service) CurrentMonth() string {
	return FormatMonth(s.now(), s.loc)
}
