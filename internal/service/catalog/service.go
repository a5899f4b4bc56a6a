// Package catalog maintains the category tree and searches products.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

type catalogRepo interface {
	GetCategory(ctx context.Context, id uuid.UUID) (domain.Category, error)
	CreateCategory(ctx context.Context, c domain.Category) error
	SetCategoryParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error
	LockCategoryTree(ctx context.Context) error
	AncestorIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	SearchProducts(ctx context.Context, f domain.ProductSearchFilter) ([]domain.Product, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultSearchLimit = 50
	MaxSearchLimit     = 200
)

var tracer = otel.Tracer("github.com/heartmarshall/bookstore-backend/internal/service/catalog")

// Service implements catalog maintenance and product search.
type Service struct {
	repo catalogRepo
	tx   txManager
	log  *slog.Logger
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, repo catalogRepo, tx txManager) *Service {
	return &Service{
		repo: repo,
		tx:   tx,
		log:  log.With("service", "catalog"),
	}
}
