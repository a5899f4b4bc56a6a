package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewSKU returns a random 10-character product id.
func NewSKU() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:domain.SKULength])
}

// SeedCategory creates a category. parent may be nil for a root category.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, parent *uuid.UUID) domain.Category {
	t.Helper()

	c := domain.Category{
		ID:       uuid.New(),
		NameEN:   "Category " + uniqueSuffix(),
		ParentID: parent,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, name_en, parent_id) VALUES ($1, $2, $3)`,
		c.ID, c.NameEN, c.ParentID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// SeedAuthor creates an author.
func SeedAuthor(t *testing.T, pool *pgxpool.Pool) domain.Author {
	t.Helper()

	a := domain.Author{ID: uuid.New(), Name: "Author " + uniqueSuffix()}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO authors (id, name) VALUES ($1, $2)`, a.ID, a.Name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAuthor: %v", err)
	}
	return a
}

// ProductOpts customizes SeedProduct. Zero values fall back to defaults.
type ProductOpts struct {
	Name      string
	SalePrice string
	Stock     int
}

// SeedProduct creates a product in the given category and author.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, categoryID, authorID uuid.UUID, opts ProductOpts) domain.Product {
	t.Helper()

	if opts.Name == "" {
		opts.Name = "Book " + uniqueSuffix()
	}
	if opts.SalePrice == "" {
		opts.SalePrice = "10.00"
	}
	sale := decimal.RequireFromString(opts.SalePrice)

	p := domain.Product{
		ID:             NewSKU(),
		CategoryID:     categoryID,
		AuthorID:       authorID,
		NameEN:         opts.Name,
		Price:          sale,
		SalePrice:      sale,
		OnHandQuantity: opts.Stock,
		StockQuantity:  opts.Stock,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO products (id, category_id, author_id, name_en, price, sale_price, on_hand_quantity, stock_quantity)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.CategoryID, p.AuthorID, p.NameEN, p.Price, p.SalePrice, p.OnHandQuantity, p.StockQuantity,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct: %v", err)
	}
	return p
}

// SeedCatalogProduct creates a fresh category and author and a product in them.
func SeedCatalogProduct(t *testing.T, pool *pgxpool.Pool, opts ProductOpts) domain.Product {
	t.Helper()
	cat := SeedCategory(t, pool, nil)
	author := SeedAuthor(t, pool)
	return SeedProduct(t, pool, cat.ID, author.ID, opts)
}

// SeedCustomer creates a customer with a unique email.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool) domain.Customer {
	t.Helper()

	suffix := uniqueSuffix()
	c := domain.Customer{
		ID:        uuid.New(),
		FirstName: "Ada",
		LastName:  "Reader " + suffix,
		Email:     "reader-" + suffix + "@example.com",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO customers (id, first_name, last_name, email) VALUES ($1, $2, $3, $4)`,
		c.ID, c.FirstName, c.LastName, c.Email,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomer: %v", err)
	}
	return c
}

// SeedLine describes one line item for SeedOrder.
type SeedLine struct {
	Product  domain.Product
	Quantity int
}

// SeedOrder writes an order, its line items and their history rows directly,
// bypassing stock checks. createdAt controls the order timestamp so reports
// can be tested against fixed windows.
func SeedOrder(t *testing.T, pool *pgxpool.Pool, customer domain.Customer, createdAt time.Time, lines ...SeedLine) domain.Order {
	t.Helper()
	ctx := context.Background()

	o := domain.Order{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		CreatedAt:  createdAt.UTC().Truncate(time.Microsecond),
	}
	for i, l := range lines {
		o.Items = append(o.Items, domain.OrderLineItem{
			ID:        uuid.New(),
			OrderID:   o.ID,
			ProductID: l.Product.ID,
			Position:  i + 1,
			Quantity:  l.Quantity,
			UnitPrice: l.Product.SalePrice,
		})
	}
	o.TotalAmount = domain.SumLineTotals(o.Items)

	_, err := pool.Exec(ctx,
		`INSERT INTO orders (id, customer_id, created_at, total_amount) VALUES ($1, $2, $3, $4)`,
		o.ID, o.CustomerID, o.CreatedAt, o.TotalAmount,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOrder insert order: %v", err)
	}

	for i, item := range o.Items {
		_, err := pool.Exec(ctx,
			`INSERT INTO order_line_items (id, order_id, product_id, position, quantity, unit_price)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.OrderID, item.ProductID, item.Position, item.Quantity, item.UnitPrice,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedOrder insert line %d: %v", i, err)
		}

		_, err = pool.Exec(ctx,
			`INSERT INTO sales_history (line_item_id, order_id, order_created_at, customer_id, customer_name, product_name, quantity, unit_price)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, o.ID, o.CreatedAt, customer.ID,
			domain.FullName(customer.FirstName, customer.LastName),
			lines[i].Product.NameEN, item.Quantity, item.UnitPrice,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedOrder insert history %d: %v", i, err)
		}
	}

	return o
}
