// Package order implements order placement: validation, stock reservation,
// persistence and synchronous sales-history projection in one transaction.
package order

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/bookstore-backend/internal/config"
	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

type customerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Customer, error)
}

type productRepo interface {
	LockProducts(ctx context.Context, ids []string) ([]domain.ProductStock, error)
	DecrementStock(ctx context.Context, id string, qty int) error
}

type orderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	AddLineItem(ctx context.Context, li domain.OrderLineItem) error
	GetWithItems(ctx context.Context, id uuid.UUID) (domain.Order, error)
}

type historyProjector interface {
	Project(ctx context.Context, item domain.OrderLineItem) (*domain.SalesHistoryRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

var tracer = otel.Tracer("github.com/heartmarshall/bookstore-backend/internal/service/order")

// Service places and reads orders.
type Service struct {
	customers customerRepo
	products  productRepo
	orders    orderRepo
	history   historyProjector
	tx        txManager
	log       *slog.Logger
	cfg       config.OrderConfig
}

// NewService creates a new order service.
func NewService(
	log *slog.Logger,
	customers customerRepo,
	products productRepo,
	orders orderRepo,
	history historyProjector,
	tx txManager,
	cfg config.OrderConfig,
) *Service {
	return &Service{
		customers: customers,
		products:  products,
		orders:    orders,
		history:   history,
		tx:        tx,
		log:       log.With("service", "order"),
		cfg:       cfg,
	}
}
