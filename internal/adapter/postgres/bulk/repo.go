// Package bulk implements batched inserts used by the bulk-load command.
// All methods honour a context-carried transaction so a whole dataset is
// loaded atomically.
package bulk

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// Repo provides batched inserts backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bulk repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Batch insert methods (pgx.Batch API)
// ---------------------------------------------------------------------------

// InsertCategories inserts categories in slice order; parents must precede
// their children.
func (r *Repo) InsertCategories(ctx context.Context, categories []domain.Category) (int, error) {
	batch := &pgx.Batch{}
	for _, c := range categories {
		batch.Queue(
			`INSERT INTO categories (id, name_en, name_local, description_en, description_local, parent_id)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			c.ID, c.NameEN, c.NameLocal, c.DescriptionEN, c.DescriptionLocal, c.ParentID,
		)
	}
	return r.sendBatchExec(ctx, batch, "categories")
}

// InsertAuthors inserts authors.
func (r *Repo) InsertAuthors(ctx context.Context, authors []domain.Author) (int, error) {
	batch := &pgx.Batch{}
	for _, a := range authors {
		batch.Queue(`INSERT INTO authors (id, name) VALUES ($1, $2)`, a.ID, a.Name)
	}
	return r.sendBatchExec(ctx, batch, "authors")
}

// InsertProducts inserts products.
func (r *Repo) InsertProducts(ctx context.Context, products []domain.Product) (int, error) {
	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(
			`INSERT INTO products (id, category_id, author_id, name_en, name_local,
			     description_en, description_local, long_description_en, long_description_local,
			     price, sale_price, discount, shipping_cost, on_hand_quantity, stock_quantity)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			p.ID, p.CategoryID, p.AuthorID, p.NameEN, p.NameLocal,
			p.DescriptionEN, p.DescriptionLocal, p.LongDescriptionEN, p.LongDescriptionLocal,
			p.Price, p.SalePrice, p.Discount, p.ShippingCost, p.OnHandQuantity, p.StockQuantity,
		)
	}
	return r.sendBatchExec(ctx, batch, "products")
}

// InsertCustomers inserts customers. PasswordHash must already be hashed.
func (r *Repo) InsertCustomers(ctx context.Context, customers []domain.Customer) (int, error) {
	batch := &pgx.Batch{}
	for _, c := range customers {
		batch.Queue(
			`INSERT INTO customers (id, first_name, last_name, email, password_hash)
			 VALUES ($1, $2, $3, $4, $5)`,
			c.ID, c.FirstName, c.LastName, c.Email, c.PasswordHash,
		)
	}
	return r.sendBatchExec(ctx, batch, "customers")
}

// InsertOrders inserts order headers with their explicit timestamps.
func (r *Repo) InsertOrders(ctx context.Context, orders []domain.Order) (int, error) {
	batch := &pgx.Batch{}
	for _, o := range orders {
		batch.Queue(
			`INSERT INTO orders (id, customer_id, created_at, total_amount) VALUES ($1, $2, $3, $4)`,
			o.ID, o.CustomerID, o.CreatedAt, o.TotalAmount,
		)
	}
	return r.sendBatchExec(ctx, batch, "orders")
}

// InsertLineItems inserts line items of already inserted orders.
func (r *Repo) InsertLineItems(ctx context.Context, items []domain.OrderLineItem) (int, error) {
	batch := &pgx.Batch{}
	for _, li := range items {
		batch.Queue(
			`INSERT INTO order_line_items (id, order_id, product_id, position, quantity, unit_price)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			li.ID, li.OrderID, li.ProductID, li.Position, li.Quantity, li.UnitPrice,
		)
	}
	return r.sendBatchExec(ctx, batch, "line items")
}

func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch, what string) (int, error) {
	if batch.Len() == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for i := range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, what, fmt.Sprintf("#%d", i))
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}
