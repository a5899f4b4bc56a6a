// Package history implements the append-only sales history store using PostgreSQL.
// The package exposes no update or delete statements.
package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// Repo provides sales history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new sales history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const snapshotSourceSQL = `
SELECT li.id, o.id, o.created_at, c.id, c.first_name, c.last_name, p.id, p.name_en
FROM order_line_items li
JOIN orders o    ON o.id = li.order_id
JOIN customers c ON c.id = o.customer_id
JOIN products p  ON p.id = li.product_id
WHERE li.id = $1`

const appendSQL = `
INSERT INTO sales_history
    (line_item_id, order_id, order_created_at, customer_id, customer_name, product_name, quantity, unit_price)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, recorded_at`

const recordColumns = `id, line_item_id, order_id, order_created_at, customer_id,
       customer_name, product_name, quantity, unit_price, recorded_at`

const listByOrderSQL = `
SELECT ` + recordColumns + `
FROM sales_history
WHERE order_id = $1
ORDER BY id`

const listByCustomerSQL = `
SELECT ` + recordColumns + `
FROM sales_history
WHERE customer_id = $1
ORDER BY order_created_at DESC, id DESC
LIMIT $2`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// SnapshotSource reads the current customer and product state a line item
// refers to. Inside a transaction it sees the caller's uncommitted rows.
func (r *Repo) SnapshotSource(ctx context.Context, lineItemID uuid.UUID) (domain.HistorySource, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.HistorySource
	err := q.QueryRow(ctx, snapshotSourceSQL, lineItemID).Scan(
		&s.LineItemID, &s.OrderID, &s.OrderCreatedAt,
		&s.CustomerID, &s.CustomerFirstName, &s.CustomerLastName,
		&s.ProductID, &s.ProductName,
	)
	if err != nil {
		return domain.HistorySource{}, postgres.MapError(err, "line_item", lineItemID)
	}
	return s, nil
}

// Append stores rec and fills its ID and RecordedAt. A second record for the
// same line item maps to ErrAlreadyExists.
func (r *Repo) Append(ctx context.Context, rec *domain.SalesHistoryRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx, appendSQL,
		rec.LineItemID, rec.OrderID, rec.OrderCreatedAt, rec.CustomerID,
		rec.CustomerName, rec.ProductName, rec.Quantity, rec.UnitPrice,
	).Scan(&rec.ID, &rec.RecordedAt)
	if err != nil {
		return postgres.MapError(err, "sales_history", rec.LineItemID)
	}
	return nil
}

// ListByOrder returns the records of one order in insertion order.
func (r *Repo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.SalesHistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByOrderSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("list history by order: %w", err)
	}
	return collectRecords(rows)
}

// ListByCustomer returns a customer's most recent records first.
func (r *Repo) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]domain.SalesHistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByCustomerSQL, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list history by customer: %w", err)
	}
	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]domain.SalesHistoryRecord, error) {
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SalesHistoryRecord, error) {
		var rec domain.SalesHistoryRecord
		err := row.Scan(
			&rec.ID, &rec.LineItemID, &rec.OrderID, &rec.OrderCreatedAt, &rec.CustomerID,
			&rec.CustomerName, &rec.ProductName, &rec.Quantity, &rec.UnitPrice, &rec.RecordedAt,
		)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan history: %w", err)
	}
	if records == nil {
		records = []domain.SalesHistoryRecord{}
	}
	return records, nil
}
