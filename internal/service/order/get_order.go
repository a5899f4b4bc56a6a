package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// GetOrder returns a committed order with its line items.
func (s *Service) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	if orderID == uuid.Nil {
		return nil, domain.NewValidationError("order_id", "required")
	}

	o, err := s.orders.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}
