// Package recommend implements the product-recommendation read queries
// using PostgreSQL.
package recommend

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// Repo runs recommendation queries.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recommendation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Purchased products are resolved through the line item each history row
// was projected from, never by product name.
const purchasedSQL = `
SELECT DISTINCT p.id, p.name_en, p.category_id, p.author_id
FROM sales_history h
JOIN order_line_items li ON li.id = h.line_item_id
JOIN products p          ON p.id = li.product_id
WHERE h.customer_id = $1
ORDER BY p.id`

// PurchasedProducts returns the distinct products a customer has bought.
func (r *Repo) PurchasedProducts(ctx context.Context, customerID uuid.UUID) ([]domain.Recommendation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, purchasedSQL, customerID)
	if err != nil {
		return nil, fmt.Errorf("purchased products: %w", err)
	}
	return collect(rows)
}

// CandidateQuery selects products related to a purchase set.
type CandidateQuery struct {
	CategoryIDs []uuid.UUID
	// AuthorIDs further restricts candidates when non-empty.
	AuthorIDs  []uuid.UUID
	ExcludeIDs []string
	Limit      int
}

// Candidates returns products in the given categories (and authors, if set)
// that are not excluded, ordered by id.
func (r *Repo) Candidates(ctx context.Context, cq CandidateQuery) ([]domain.Recommendation, error) {
	if len(cq.CategoryIDs) == 0 {
		return []domain.Recommendation{}, nil
	}

	where := sq.And{sq.Eq{"category_id": cq.CategoryIDs}}
	if len(cq.AuthorIDs) > 0 {
		where = append(where, sq.Eq{"author_id": cq.AuthorIDs})
	}
	if len(cq.ExcludeIDs) > 0 {
		where = append(where, sq.NotEq{"id": cq.ExcludeIDs})
	}

	query, args, err := psql.
		Select("id", "name_en", "category_id", "author_id").
		From("products").
		Where(where).
		OrderBy("id ASC").
		Limit(uint64(cq.Limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidates query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recommendation candidates: %w", err)
	}
	return collect(rows)
}

func collect(rows pgx.Rows) ([]domain.Recommendation, error) {
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Recommendation, error) {
		var rec domain.Recommendation
		err := row.Scan(&rec.ProductID, &rec.NameEN, &rec.CategoryID, &rec.AuthorID)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan recommendations: %w", err)
	}
	if result == nil {
		result = []domain.Recommendation{}
	}
	return result, nil
}
