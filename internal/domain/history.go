package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesHistoryRecord is an append-only snapshot of one sold line item.
// Names are copied at write time and never follow later catalog or customer
// edits.
type SalesHistoryRecord struct {
	ID             int64
	LineItemID     uuid.UUID
	OrderID        uuid.UUID
	OrderCreatedAt time.Time
	CustomerID     uuid.UUID
	CustomerName   string
	ProductName    string
	Quantity       int
	UnitPrice      decimal.Decimal
	RecordedAt     time.Time
}

// HistorySource is the joined state read inside the order transaction from
// which a SalesHistoryRecord is built.
type HistorySource struct {
	LineItemID        uuid.UUID
	OrderID           uuid.UUID
	OrderCreatedAt    time.Time
	CustomerID        uuid.UUID
	CustomerFirstName string
	CustomerLastName  string
	ProductID         string
	ProductName       string
}

// FullName concatenates first and last name as "first last". A missing part
// does not leave a dangling space.
func FullName(first, last string) string {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
