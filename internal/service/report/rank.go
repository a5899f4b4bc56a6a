package report

import (
	"bytes"
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// RankProducts orders rows by revenue descending, ties by product id
// ascending, and keeps the first n.
func RankProducts(rows []domain.ProductRevenue, n int) []domain.ProductRevenue {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b domain.ProductRevenue) int {
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductID, b.ProductID)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// FilterHighValue keeps customers whose total strictly exceeds threshold,
// ordered by total descending, ties by customer id ascending in uuid byte
// order, as PostgreSQL sorts them.
func FilterHighValue(rows []domain.CustomerValue, threshold decimal.Decimal) []domain.CustomerValue {
	out := make([]domain.CustomerValue, 0, len(rows))
	for _, r := range rows {
		if r.Total.GreaterThan(threshold) {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.CustomerValue) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return bytes.Compare(a.CustomerID[:], b.CustomerID[:])
	})
	return out
}
