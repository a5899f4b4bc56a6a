// Package recommend suggests products related to what a customer has bought.
package recommend

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	recommendrepo "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres/recommend"
	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

type customerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Customer, error)
}

type recommendRepo interface {
	PurchasedProducts(ctx context.Context, customerID uuid.UUID) ([]domain.Recommendation, error)
	Candidates(ctx context.Context, q recommendrepo.CandidateQuery) ([]domain.Recommendation, error)
}

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

var tracer = otel.Tracer("github.com/heartmarshall/bookstore-backend/internal/service/recommend")

// Service computes product recommendations.
type Service struct {
	customers customerRepo
	repo      recommendRepo
	log       *slog.Logger
}

// NewService creates a new recommendation service.
func NewService(log *slog.Logger, customers customerRepo, repo recommendRepo) *Service {
	return &Service{
		customers: customers,
		repo:      repo,
		log:       log.With("service", "recommend"),
	}
}

// RecommendInput holds the parameters for RecommendProducts.
type RecommendInput struct {
	CustomerID uuid.UUID
	Mode       string
	Limit      int
}

// RecommendProducts returns products sharing a category (and, in the
// constrained mode, also an author) with something the customer bought,
// excluding anything already bought, ordered by product id. A customer
// without purchases gets an empty list.
func (s *Service) RecommendProducts(ctx context.Context, input RecommendInput) ([]domain.Recommendation, error) {
	ctx, span := tracer.Start(ctx, "recommend.RecommendProducts",
		trace.WithAttributes(
			attribute.String("customer.id", input.CustomerID.String()),
			attribute.String("mode", input.Mode),
		),
	)
	defer span.End()

	var errs []domain.FieldError
	if input.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}
	mode, err := domain.ParseRecommendMode(input.Mode)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be same_category or same_category_and_author"})
	}
	if input.Limit < 0 || input.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", MaxLimit)})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	if _, err := s.customers.GetByID(ctx, input.CustomerID); err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	purchased, err := s.repo.PurchasedProducts(ctx, input.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("purchased products: %w", err)
	}
	if len(purchased) == 0 {
		return []domain.Recommendation{}, nil
	}

	q := BuildCandidateQuery(mode, purchased, limit)
	candidates, err := s.repo.Candidates(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("candidates: %w", err)
	}

	result := FilterCandidates(purchased, candidates, limit)
	span.SetAttributes(
		attribute.Int("purchased.count", len(purchased)),
		attribute.Int("result.count", len(result)),
	)

	s.log.DebugContext(ctx, "recommendations computed",
		slog.String("customer_id", input.CustomerID.String()),
		slog.String("mode", mode.String()),
		slog.Int("count", len(result)),
	)

	return result, nil
}

// BuildCandidateQuery derives the candidate filter from a purchase set.
func BuildCandidateQuery(mode domain.RecommendMode, purchased []domain.Recommendation, limit int) recommendrepo.CandidateQuery {
	q := recommendrepo.CandidateQuery{Limit: limit}
	for _, p := range purchased {
		q.CategoryIDs = appendUnique(q.CategoryIDs, p.CategoryID)
		if mode == domain.RecommendSameCategoryAndAuthor {
			q.AuthorIDs = appendUnique(q.AuthorIDs, p.AuthorID)
		}
		q.ExcludeIDs = append(q.ExcludeIDs, p.ProductID)
	}
	return q
}

// FilterCandidates drops purchased products and duplicates, sorts by
// product id and truncates to limit.
func FilterCandidates(purchased, candidates []domain.Recommendation, limit int) []domain.Recommendation {
	owned := make(map[string]struct{}, len(purchased))
	for _, p := range purchased {
		owned[p.ProductID] = struct{}{}
	}

	result := make([]domain.Recommendation, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if _, ok := owned[c.ProductID]; ok {
			continue
		}
		if _, ok := seen[c.ProductID]; ok {
			continue
		}
		seen[c.ProductID] = struct{}{}
		result = append(result, c)
	}

	slices.SortFunc(result, func(a, b domain.Recommendation) int {
		return cmp.Compare(a.ProductID, b.ProductID)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

func appendUnique(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}
