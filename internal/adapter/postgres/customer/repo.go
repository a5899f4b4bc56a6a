// Package customer implements read access to the customer store using PostgreSQL.
package customer

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bookstore-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new customer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, first_name, last_name, email
FROM customers
WHERE id = $1`

const insertSQL = `
INSERT INTO customers (id, first_name, last_name, email, password_hash)
VALUES ($1, $2, $3, $4, $5)`

// GetByID returns a customer by primary key. PasswordHash is never loaded.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Customer
	err := q.QueryRow(ctx, getByIDSQL, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email)
	if err != nil {
		return domain.Customer{}, postgres.MapError(err, "customer", id)
	}
	return c, nil
}

// Create inserts a customer. A duplicate email maps to ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c domain.Customer) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertSQL, c.ID, c.FirstName, c.LastName, c.Email, c.PasswordHash)
	if err != nil {
		return postgres.MapError(err, "customer", c.ID)
	}
	return nil
}
