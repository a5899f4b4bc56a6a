package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// GetProduct returns a product by SKU.
func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if !domain.ValidSKU(id) {
		return domain.Product{}, domain.NewValidationError("id", fmt.Sprintf("must be %d characters", domain.SKULength))
	}
	return s.repo.GetProduct(ctx, id)
}

// SearchProducts returns products whose names or descriptions, in either
// language, contain the query case-insensitively, ordered by id.
func (s *Service) SearchProducts(ctx context.Context, input SearchProductsInput) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "catalog.SearchProducts",
		trace.WithAttributes(attribute.Int("limit", input.Limit)),
	)
	defer span.End()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultSearchLimit
	}

	products, err := s.repo.SearchProducts(ctx, domain.ProductSearchFilter{
		Query: strings.TrimSpace(input.Query),
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}
