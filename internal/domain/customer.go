package domain

import "github.com/google/uuid"

// Customer is a registered buyer. PasswordHash is opaque and never leaves the
// customer store.
type Customer struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

// FullName returns the name as it is frozen into sales history.
func (c Customer) FullName() string {
	return FullName(c.FirstName, c.LastName)
}
