package order

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// OrderedItem is one requested product and quantity.
type OrderedItem struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput holds the parameters for placing an order.
type CreateOrderInput struct {
	CustomerID uuid.UUID
	Items      []OrderedItem
}

// Validate checks all fields and collects all errors. maxItems <= 0 means
// no limit. A product repeated across items is reported as
// domain.ErrDuplicateLineItem once the fields themselves are valid.
func (i CreateOrderInput) Validate(maxItems int) error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}
	if len(i.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "at least one item required"})
	}
	if maxItems > 0 && len(i.Items) > maxItems {
		errs = append(errs, domain.FieldError{Field: "items", Message: fmt.Sprintf("max %d items", maxItems)})
	}

	for idx, it := range i.Items {
		prefix := fmt.Sprintf("items[%d]", idx)
		if strings.TrimSpace(it.ProductID) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + ".product_id", Message: "required"})
		} else if !domain.ValidSKU(it.ProductID) {
			errs = append(errs, domain.FieldError{Field: prefix + ".product_id", Message: fmt.Sprintf("must be %d characters", domain.SKULength)})
		}
		if it.Quantity < 1 || it.Quantity > domain.MaxLineQuantity {
			errs = append(errs, domain.FieldError{Field: prefix + ".quantity", Message: fmt.Sprintf("must be between 1 and %d", domain.MaxLineQuantity)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	seen := make(map[string]struct{}, len(i.Items))
	for _, it := range i.Items {
		if _, dup := seen[it.ProductID]; dup {
			return fmt.Errorf("product %s: %w", it.ProductID, domain.ErrDuplicateLineItem)
		}
		seen[it.ProductID] = struct{}{}
	}

	return nil
}

// productIDs returns the distinct requested product ids in ascending order.
func (i CreateOrderInput) productIDs() []string {
	ids := make([]string, 0, len(i.Items))
	for _, it := range i.Items {
		ids = append(ids, it.ProductID)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// CreateOrderResult describes a committed order.
type CreateOrderResult struct {
	OrderID    uuid.UUID
	CustomerID uuid.UUID
	CreatedAt  time.Time
	Total      decimal.Decimal
	Items      []domain.OrderLineItem
}
