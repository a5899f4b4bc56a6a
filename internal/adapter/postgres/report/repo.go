// Package report implements the read-only reporting queries using PostgreSQL.
// Queries run on the pool and therefore only see committed orders.
package report

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// Repo runs aggregate queries over orders and line items.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// inWindow matches orders created in [from, to).
func inWindow(from, to time.Time) sq.And {
	return sq.And{
		sq.GtOrEq{"o.created_at": from},
		sq.Lt{"o.created_at": to},
	}
}

// Revenue returns the sum of order totals and the order count in [from, to).
func (r *Repo) Revenue(ctx context.Context, from, to time.Time) (decimal.Decimal, int, error) {
	query, args, err := psql.
		Select("COALESCE(SUM(o.total_amount), 0)", "COUNT(*)").
		From("orders o").
		Where(inWindow(from, to)).
		ToSql()
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("build revenue query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		revenue decimal.Decimal
		count   int
	)
	if err := q.QueryRow(ctx, query, args...).Scan(&revenue, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("revenue: %w", err)
	}
	return revenue, count, nil
}

// TopProducts ranks products by line revenue in [from, to), highest first,
// ties broken by ascending product id.
func (r *Repo) TopProducts(ctx context.Context, from, to time.Time, n int) ([]domain.ProductRevenue, error) {
	query, args, err := psql.
		Select(
			"li.product_id",
			"p.name_en",
			"SUM(li.quantity) AS units",
			"SUM(li.quantity * li.unit_price) AS revenue",
		).
		From("order_line_items li").
		Join("orders o ON o.id = li.order_id").
		Join("products p ON p.id = li.product_id").
		Where(inWindow(from, to)).
		GroupBy("li.product_id", "p.name_en").
		OrderBy("revenue DESC", "li.product_id ASC").
		Limit(uint64(n)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build top products query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ProductRevenue, error) {
		var pr domain.ProductRevenue
		err := row.Scan(&pr.ProductID, &pr.NameEN, &pr.Units, &pr.Revenue)
		return pr, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan top products: %w", err)
	}
	if result == nil {
		result = []domain.ProductRevenue{}
	}
	return result, nil
}

// HighValueCustomers returns customers whose order totals in [from, to) sum
// to strictly more than threshold, highest spenders first.
func (r *Repo) HighValueCustomers(ctx context.Context, from, to time.Time, threshold decimal.Decimal) ([]domain.CustomerValue, error) {
	query, args, err := psql.
		Select(
			"c.id",
			"c.first_name",
			"c.last_name",
			"c.email",
			"COUNT(o.id) AS order_count",
			"SUM(o.total_amount) AS total",
		).
		From("orders o").
		Join("customers c ON c.id = o.customer_id").
		Where(inWindow(from, to)).
		GroupBy("c.id", "c.first_name", "c.last_name", "c.email").
		Having(sq.Expr("SUM(o.total_amount) > ?", threshold)).
		OrderBy("total DESC", "c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build high value query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("high value customers: %w", err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CustomerValue, error) {
		var cv domain.CustomerValue
		err := row.Scan(&cv.CustomerID, &cv.FirstName, &cv.LastName, &cv.Email, &cv.OrderCount, &cv.Total)
		return cv, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan high value customers: %w", err)
	}
	if result == nil {
		result = []domain.CustomerValue{}
	}
	return result, nil
}
