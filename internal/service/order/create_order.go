package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// CreateOrder validates the request, reserves stock and persists the order,
// its line items and one sales-history record per line item atomically.
//
// Requested products are row-locked in ascending id order before stock is
// checked, so concurrent orders for the same product serialize and stock
// never goes negative. Contention is retried by the transaction manager; when
// retries run out the error matches domain.ErrConflict.
func (s *Service) CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error) {
	ctx, span := tracer.Start(ctx, "order.CreateOrder",
		trace.WithAttributes(
			attribute.String("customer.id", input.CustomerID.String()),
			attribute.Int("item.count", len(input.Items)),
		),
	)
	defer span.End()

	result, err := s.createOrder(ctx, input, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return result, nil
}

func (s *Service) createOrder(ctx context.Context, input CreateOrderInput, span trace.Span) (*CreateOrderResult, error) {
	if err := input.Validate(s.cfg.MaxLineItems); err != nil {
		return nil, err
	}

	productIDs := input.productIDs()

	var (
		order   domain.Order
		attempt int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		attempt++
		span.SetAttributes(attribute.Int("tx.attempt", attempt))

		var err error
		order, err = s.placeOrder(txCtx, input, productIDs)
		return err
	})
	if err != nil {
		var stockErr *domain.InsufficientStockError
		if errors.As(err, &stockErr) {
			s.log.InfoContext(ctx, "order rejected: insufficient stock",
				slog.String("customer_id", input.CustomerID.String()),
				slog.String("product_id", stockErr.ProductID),
				slog.Int("requested", stockErr.Requested),
				slog.Int("available", stockErr.Available),
			)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID.String()),
		slog.String("customer_id", order.CustomerID.String()),
		slog.String("total", order.TotalAmount.StringFixed(2)),
		slog.Int("items", len(order.Items)),
		slog.Int("attempts", attempt),
	)

	return &CreateOrderResult{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		CreatedAt:  order.CreatedAt,
		Total:      order.TotalAmount,
		Items:      order.Items,
	}, nil
}

// placeOrder runs inside the transaction. It may run more than once, so it
// allocates fresh ids on every call.
func (s *Service) placeOrder(ctx context.Context, input CreateOrderInput, productIDs []string) (domain.Order, error) {
	if _, err := s.customers.GetByID(ctx, input.CustomerID); err != nil {
		return domain.Order{}, fmt.Errorf("get customer: %w", err)
	}

	locked, err := s.products.LockProducts(ctx, productIDs)
	if err != nil {
		return domain.Order{}, fmt.Errorf("lock products: %w", err)
	}
	stock := make(map[string]domain.ProductStock, len(locked))
	for _, p := range locked {
		stock[p.ID] = p
	}

	order := domain.Order{
		ID:         uuid.New(),
		CustomerID: input.CustomerID,
		Items:      make([]domain.OrderLineItem, 0, len(input.Items)),
	}

	for idx, it := range input.Items {
		p, ok := stock[it.ProductID]
		if !ok {
			return domain.Order{}, fmt.Errorf("product %s: %w", it.ProductID, domain.ErrNotFound)
		}
		if it.Quantity > p.StockQuantity {
			return domain.Order{}, &domain.InsufficientStockError{
				ProductID: p.ID,
				Requested: it.Quantity,
				Available: p.StockQuantity,
			}
		}
		order.Items = append(order.Items, domain.OrderLineItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: p.ID,
			Position:  idx + 1,
			Quantity:  it.Quantity,
			UnitPrice: p.SalePrice,
		})
	}
	order.TotalAmount = domain.SumLineTotals(order.Items)

	if err := s.orders.Create(ctx, &order); err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	for _, li := range order.Items {
		if err := s.orders.AddLineItem(ctx, li); err != nil {
			return domain.Order{}, fmt.Errorf("add line item %d: %w", li.Position, err)
		}
		if _, err := s.history.Project(ctx, li); err != nil {
			return domain.Order{}, fmt.Errorf("project line item %d: %w", li.Position, err)
		}
	}

	for _, li := range order.Items {
		if err := s.products.DecrementStock(ctx, li.ProductID, li.Quantity); err != nil {
			return domain.Order{}, fmt.Errorf("decrement stock: %w", err)
		}
	}

	return order, nil
}
