// Package order implements order and line-item persistence using PostgreSQL.
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// Repo provides order persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new order repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

// created_at defaults to now(), which is the transaction start time.
const insertOrderSQL = `
INSERT INTO orders (id, customer_id, total_amount)
VALUES ($1, $2, $3)
RETURNING created_at`

const insertLineItemSQL = `
INSERT INTO order_line_items (id, order_id, product_id, position, quantity, unit_price)
VALUES ($1, $2, $3, $4, $5, $6)`

const getOrderSQL = `
SELECT id, customer_id, created_at, total_amount
FROM orders
WHERE id = $1`

const listLineItemsSQL = `
SELECT id, order_id, product_id, position, quantity, unit_price
FROM order_line_items
WHERE order_id = $1
ORDER BY position`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the order header and fills o.CreatedAt from the database.
// Line items are inserted separately with AddLineItem.
func (r *Repo) Create(ctx context.Context, o *domain.Order) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx, insertOrderSQL, o.ID, o.CustomerID, o.TotalAmount).Scan(&o.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "order", o.ID)
	}
	return nil
}

// AddLineItem inserts one line item. A repeated product within the order
// maps to ErrDuplicateLineItem.
func (r *Repo) AddLineItem(ctx context.Context, li domain.OrderLineItem) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertLineItemSQL,
		li.ID, li.OrderID, li.ProductID, li.Position, li.Quantity, li.UnitPrice,
	)
	if err != nil {
		mapped := postgres.MapError(err, "line_item", li.ID)
		if errors.Is(mapped, domain.ErrAlreadyExists) {
			return fmt.Errorf("order %s product %s: %w", li.OrderID, li.ProductID, domain.ErrDuplicateLineItem)
		}
		return mapped
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetWithItems returns an order together with its line items ordered by position.
func (r *Repo) GetWithItems(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var o domain.Order
	err := q.QueryRow(ctx, getOrderSQL, id).Scan(&o.ID, &o.CustomerID, &o.CreatedAt, &o.TotalAmount)
	if err != nil {
		return domain.Order{}, postgres.MapError(err, "order", id)
	}

	rows, err := q.Query(ctx, listLineItemsSQL, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()

	o.Items = []domain.OrderLineItem{}
	for rows.Next() {
		var li domain.OrderLineItem
		if err := rows.Scan(&li.ID, &li.OrderID, &li.ProductID, &li.Position, &li.Quantity, &li.UnitPrice); err != nil {
			return domain.Order{}, fmt.Errorf("scan line item: %w", err)
		}
		o.Items = append(o.Items, li)
	}
	if err := rows.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("list line items: %w", err)
	}

	return o, nil
}
