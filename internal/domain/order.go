package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxLineQuantity is the largest quantity a single line item can carry.
const MaxLineQuantity = 32767

// Order is a placed customer order. TotalAmount equals the sum of its line
// totals at commit time.
type Order struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	CreatedAt   time.Time
	TotalAmount decimal.Decimal
	Items       []OrderLineItem
}

// OrderLineItem is one product-and-quantity entry of an order. UnitPrice is
// the sale price captured when the order was placed.
type OrderLineItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID string
	Position  int
	Quantity  int
	UnitPrice decimal.Decimal
}

// LineTotal returns quantity × unit price.
func (li OrderLineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// SumLineTotals returns Σ(quantity × unit price) rounded to cents.
func SumLineTotals(items []OrderLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.LineTotal())
	}
	return total.Round(2)
}
