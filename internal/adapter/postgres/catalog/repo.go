// Package catalog implements read and maintenance access to categories,
// authors and products using PostgreSQL.
package catalog

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const categoryColumns = `id, name_en, name_local, description_en, description_local, parent_id`

const productColumns = `id, category_id, author_id, name_en, name_local,
       description_en, description_local, long_description_en, long_description_local,
       price, sale_price, discount, shipping_cost, on_hand_quantity, stock_quantity`

const getCategorySQL = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

const insertCategorySQL = `
INSERT INTO categories (id, name_en, name_local, description_en, description_local, parent_id)
VALUES ($1, $2, $3, $4, $5, $6)`

const setCategoryParentSQL = `UPDATE categories SET parent_id = $2 WHERE id = $1`

// categoryTreeLockKey identifies the advisory lock that serializes re-parenting.
const categoryTreeLockKey int64 = 0x626f6f6b74726565

const lockCategoryTreeSQL = `SELECT pg_advisory_xact_lock($1)`

// ancestorsSQL walks parent links upward starting at $1 (inclusive).
// The depth guard stops the walk on corrupt data instead of looping forever.
const ancestorsSQL = `
WITH RECURSIVE chain (id, parent_id, depth) AS (
    SELECT id, parent_id, 0 FROM categories WHERE id = $1
    UNION ALL
    SELECT c.id, c.parent_id, chain.depth + 1
    FROM categories c
    JOIN chain ON c.id = chain.parent_id
    WHERE chain.depth < 1000
)
SELECT id FROM chain ORDER BY depth`

const getProductSQL = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

const lockProductsSQL = `
SELECT id, name_en, sale_price, stock_quantity
FROM products
WHERE id = ANY($1::text[])
ORDER BY id
FOR UPDATE`

const decrementStockSQL = `
UPDATE products
SET stock_quantity = stock_quantity - $2
WHERE id = $1 AND stock_quantity >= $2`

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// GetCategory returns a category by id.
func (r *Repo) GetCategory(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(q.QueryRow(ctx, getCategorySQL, id))
	if err != nil {
		return domain.Category{}, postgres.MapError(err, "category", id)
	}
	return c, nil
}

// CreateCategory inserts a category. A missing parent maps to ErrNotFound.
func (r *Repo) CreateCategory(ctx context.Context, c domain.Category) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertCategorySQL,
		c.ID, c.NameEN, c.NameLocal, c.DescriptionEN, c.DescriptionLocal, c.ParentID,
	)
	if err != nil {
		return postgres.MapError(err, "category", c.ID)
	}
	return nil
}

// LockCategoryTree takes a transaction-scoped advisory lock shared by every
// re-parenting. It must be called inside a transaction; the lock is released
// on commit or rollback.
func (r *Repo) LockCategoryTree(ctx context.Context) error {
	if !postgres.InTx(ctx) {
		return errors.New("lock category tree: no transaction in context")
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, lockCategoryTreeSQL, categoryTreeLockKey); err != nil {
		return fmt.Errorf("lock category tree: %w", err)
	}
	return nil
}

// SetCategoryParent re-links a category. Cycle detection is the caller's job.
func (r *Repo) SetCategoryParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setCategoryParentSQL, id, parentID)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AncestorIDs returns id followed by its ancestors, nearest first.
// An unknown id yields an empty slice.
func (r *Repo) AncestorIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, ancestorsSQL, id)
	if err != nil {
		return nil, fmt.Errorf("category ancestors: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("category ancestors: %w", err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

// GetProduct returns a product by SKU.
func (r *Repo) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProduct(q.QueryRow(ctx, getProductSQL, id))
	if err != nil {
		return domain.Product{}, postgres.MapError(err, "product", id)
	}
	return p, nil
}

// LockProducts row-locks the given products for the rest of the transaction
// and returns their stock view. Locks are taken in ascending id order so
// concurrent orders cannot deadlock on each other. Ids that do not exist are
// simply absent from the result.
func (r *Repo) LockProducts(ctx context.Context, ids []string) ([]domain.ProductStock, error) {
	if len(ids) == 0 {
		return []domain.ProductStock{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, lockProductsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("lock products: %w", err)
	}
	defer rows.Close()

	result := make([]domain.ProductStock, 0, len(ids))
	for rows.Next() {
		var p domain.ProductStock
		if err := rows.Scan(&p.ID, &p.NameEN, &p.SalePrice, &p.StockQuantity); err != nil {
			return nil, fmt.Errorf("scan locked product: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		// Lock timeouts surface here; keep the pg error visible for retries.
		return nil, fmt.Errorf("lock products: %w", err)
	}

	return result, nil
}

// DecrementStock subtracts qty from a product's stock. It fails with
// ErrConflict when the guarded update matches no row, which can only happen
// if the row was not locked by the caller.
func (r *Repo) DecrementStock(ctx context.Context, id string, qty int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, decrementStockSQL, id, qty)
	if err != nil {
		return postgres.MapError(err, "product", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("decrement stock of product %s: %w", id, domain.ErrConflict)
	}
	return nil
}

// SearchProducts returns products where any of the name or description
// columns contains the query, case-insensitively, ordered by id.
// LIKE wildcards in the query match literally.
func (r *Repo) SearchProducts(ctx context.Context, f domain.ProductSearchFilter) ([]domain.Product, error) {
	pattern := "%" + domain.EscapeLike(f.Query) + "%"

	match := sq.Or{}
	for _, col := range searchColumns {
		match = append(match, sq.ILike{col: pattern})
	}

	query, args, err := psql.
		Select(productColumns).
		From("products").
		Where(match).
		OrderBy("id").
		Limit(uint64(f.Limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	if result == nil {
		result = []domain.Product{}
	}
	return result, nil
}

var searchColumns = []string{
	"name_en",
	"name_local",
	"description_en",
	"description_local",
	"long_description_en",
	"long_description_local",
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanCategory(row pgx.Row) (domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.NameEN, &c.NameLocal, &c.DescriptionEN, &c.DescriptionLocal, &c.ParentID)
	return c, err
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.AuthorID, &p.NameEN, &p.NameLocal,
		&p.DescriptionEN, &p.DescriptionLocal, &p.LongDescriptionEN, &p.LongDescriptionLocal,
		&p.Price, &p.SalePrice, &p.Discount, &p.ShippingCost, &p.OnHandQuantity, &p.StockQuantity,
	)
	return p, err
}
