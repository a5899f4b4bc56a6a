// Package history projects placed line items into the append-only sales
// history and serves read access to it.
package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

type historyRepo interface {
	SnapshotSource(ctx context.Context, lineItemID uuid.UUID) (domain.HistorySource, error)
	Append(ctx context.Context, rec *domain.SalesHistoryRecord) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.SalesHistoryRecord, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]domain.SalesHistoryRecord, error)
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Projector writes one SalesHistoryRecord per line item.
type Projector struct {
	repo historyRepo
	log  *slog.Logger
}

// NewProjector creates a new history projector.
func NewProjector(log *slog.Logger, repo historyRepo) *Projector {
	return &Projector{
		repo: repo,
		log:  log.With("service", "history"),
	}
}

// Project snapshots the customer and product names the line item refers to
// and appends the record. ctx must carry the transaction that inserted the
// line item so the record commits or rolls back together with it.
// Quantity and unit price are copied from item, never re-read.
func (p *Projector) Project(ctx context.Context, item domain.OrderLineItem) (*domain.SalesHistoryRecord, error) {
	src, err := p.repo.SnapshotSource(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("snapshot source: %w", err)
	}
	if src.OrderID != item.OrderID || src.ProductID != item.ProductID {
		return nil, fmt.Errorf("line item %s does not match its stored row: %w", item.ID, domain.ErrConflict)
	}

	rec := &domain.SalesHistoryRecord{
		LineItemID:     item.ID,
		OrderID:        src.OrderID,
		OrderCreatedAt: src.OrderCreatedAt,
		CustomerID:     src.CustomerID,
		CustomerName:   domain.FullName(src.CustomerFirstName, src.CustomerLastName),
		ProductName:    src.ProductName,
		Quantity:       item.Quantity,
		UnitPrice:      item.UnitPrice,
	}

	if err := p.repo.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}

	p.log.DebugContext(ctx, "line item projected",
		slog.String("line_item_id", item.ID.String()),
		slog.Int64("record_id", rec.ID),
	)

	return rec, nil
}

// ListByOrder returns the history records of one order.
func (p *Projector) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.SalesHistoryRecord, error) {
	if orderID == uuid.Nil {
		return nil, domain.NewValidationError("order_id", "required")
	}

	records, err := p.repo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list history by order: %w", err)
	}
	return records, nil
}

// ListByCustomer returns a customer's most recent history records.
// limit defaults to 50 and is capped at 200.
func (p *Projector) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]domain.SalesHistoryRecord, error) {
	if customerID == uuid.Nil {
		return nil, domain.NewValidationError("customer_id", "required")
	}

	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	records, err := p.repo.ListByCustomer(ctx, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list history by customer: %w", err)
	}
	return records, nil
}
