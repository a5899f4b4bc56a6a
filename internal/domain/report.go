package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyRevenue is the revenue of one calendar day in the reporting zone.
type DailyRevenue struct {
	Date       time.Time
	From       time.Time
	To         time.Time
	Revenue    decimal.Decimal
	OrderCount int
}

// ProductRevenue is one row of the monthly top-products ranking.
type ProductRevenue struct {
	ProductID string
	NameEN    string
	Units     int
	Revenue   decimal.Decimal
}

// CustomerValue is one row of the high-value customers report.
type CustomerValue struct {
	CustomerID uuid.UUID
	FirstName  string
	LastName   string
	Email      string
	OrderCount int
	Total      decimal.Decimal
}
