package bulkload

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// Plan is a validated dataset converted to domain rows, in insert order.
type Plan struct {
	Categories []domain.Category
	Authors    []domain.Author
	Products   []domain.Product
	Customers  []domain.Customer
	Orders     []domain.Order
	LineItems  []domain.OrderLineItem
}

// PasswordHasher turns a plain customer secret into the stored hash.
type PasswordHasher func(password string) (string, error)

// BcryptHasher returns a PasswordHasher with the given bcrypt cost.
func BcryptHasher(cost int) PasswordHasher {
	return func(password string) (string, error) {
		if password == "" {
			return "", nil
		}
		h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return "", fmt.Errorf("hash password: %w", err)
		}
		return string(h), nil
	}
}

// Validate checks references, uniqueness and required fields. Every problem is
// reported, not only the first one.
func (ds *Dataset) Validate() error {
	var errs []domain.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	categories := make(map[string]bool, len(ds.Categories))
	for i, c := range ds.Categories {
		field := fmt.Sprintf("categories[%d]", i)
		switch {
		case strings.TrimSpace(c.Key) == "":
			add(field+".key", "required")
		case categories[c.Key]:
			add(field+".key", "duplicate key %q", c.Key)
		}
		if strings.TrimSpace(c.NameEN) == "" {
			add(field+".name_en", "required")
		}
		categories[c.Key] = true
	}
	for i, c := range ds.Categories {
		if c.Parent != "" && !categories[c.Parent] {
			add(fmt.Sprintf("categories[%d].parent", i), "unknown category %q", c.Parent)
		}
	}

	authors := make(map[string]bool, len(ds.Authors))
	for i, a := range ds.Authors {
		field := fmt.Sprintf("authors[%d]", i)
		switch {
		case strings.TrimSpace(a.Key) == "":
			add(field+".key", "required")
		case authors[a.Key]:
			add(field+".key", "duplicate key %q", a.Key)
		}
		if strings.TrimSpace(a.Name) == "" {
			add(field+".name", "required")
		}
		authors[a.Key] = true
	}

	products := make(map[string]bool, len(ds.Products))
	for i, p := range ds.Products {
		field := fmt.Sprintf("products[%d]", i)
		switch {
		case !domain.ValidSKU(p.SKU):
			add(field+".sku", "must be exactly %d characters", domain.SKULength)
		case products[p.SKU]:
			add(field+".sku", "duplicate sku %q", p.SKU)
		}
		if !categories[p.Category] {
			add(field+".category", "unknown category %q", p.Category)
		}
		if !authors[p.Author] {
			add(field+".author", "unknown author %q", p.Author)
		}
		if strings.TrimSpace(p.NameEN) == "" {
			add(field+".name_en", "required")
		}
		if p.Price.IsNegative() || p.SalePrice.IsNegative() {
			add(field+".price", "must not be negative")
		}
		for name, v := range map[string]decimal.Decimal{
			"price":         p.Price,
			"sale_price":    p.SalePrice,
			"discount":      p.Discount,
			"shipping_cost": p.ShippingCost,
		} {
			if !wholeCents(v) {
				add(field+"."+name, "must have at most 2 decimal places")
			}
		}
		if p.Stock < 0 || p.OnHand < 0 {
			add(field+".stock", "must not be negative")
		}
		products[p.SKU] = true
	}

	customers := make(map[string]bool, len(ds.Customers))
	emails := make(map[string]bool, len(ds.Customers))
	for i, c := range ds.Customers {
		field := fmt.Sprintf("customers[%d]", i)
		switch {
		case strings.TrimSpace(c.Key) == "":
			add(field+".key", "required")
		case customers[c.Key]:
			add(field+".key", "duplicate key %q", c.Key)
		}
		email := strings.ToLower(strings.TrimSpace(c.Email))
		switch {
		case email == "":
			add(field+".email", "required")
		case emails[email]:
			add(field+".email", "duplicate email %q", c.Email)
		}
		customers[c.Key] = true
		emails[email] = true
	}

	for i, o := range ds.Orders {
		field := fmt.Sprintf("orders[%d]", i)
		if !customers[o.Customer] {
			add(field+".customer", "unknown customer %q", o.Customer)
		}
		if o.CreatedAt.IsZero() {
			add(field+".created_at", "required")
		}
		if len(o.Items) == 0 {
			add(field+".items", "at least one item required")
		}
		seen := make(map[string]bool, len(o.Items))
		for j, it := range o.Items {
			itemField := fmt.Sprintf("%s.items[%d]", field, j)
			if !products[it.Product] {
				add(itemField+".product", "unknown product %q", it.Product)
			}
			if seen[it.Product] {
				add(itemField+".product", "duplicate product %q", it.Product)
			}
			seen[it.Product] = true
			if it.Quantity <= 0 {
				add(itemField+".quantity", "must be positive")
			}
			if it.UnitPrice != nil {
				if it.UnitPrice.IsNegative() {
					add(itemField+".unit_price", "must not be negative")
				}
				if !wholeCents(*it.UnitPrice) {
					add(itemField+".unit_price", "must have at most 2 decimal places")
				}
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// wholeCents reports whether d is stored in a numeric(_, 2) column unchanged,
// so order totals computed here match the line items Postgres keeps.
func wholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

// SortCategories returns the categories with every parent placed before its
// children. Siblings keep their dataset order.
func SortCategories(records []CategoryRecord) ([]CategoryRecord, error) {
	children := make(map[string][]CategoryRecord, len(records))
	var roots []CategoryRecord
	for _, c := range records {
		if c.Parent == "" {
			roots = append(roots, c)
			continue
		}
		children[c.Parent] = append(children[c.Parent], c)
	}

	sorted := make([]CategoryRecord, 0, len(records))
	queue := roots
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		sorted = append(sorted, c)
		queue = append(queue, children[c.Key]...)
	}

	if len(sorted) != len(records) {
		return nil, domain.NewValidationError("categories", "parent chain contains a cycle")
	}
	return sorted, nil
}

// Build validates the dataset and resolves it into a Plan with fresh IDs.
func Build(ds *Dataset, hash PasswordHasher) (*Plan, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	ordered, err := SortCategories(ds.Categories)
	if err != nil {
		return nil, err
	}

	plan := &Plan{}

	categoryIDs := make(map[string]uuid.UUID, len(ordered))
	for _, c := range ordered {
		cat := domain.Category{
			ID:               uuid.New(),
			NameEN:           c.NameEN,
			NameLocal:        c.NameLocal,
			DescriptionEN:    c.DescriptionEN,
			DescriptionLocal: c.DescriptionLocal,
		}
		if c.Parent != "" {
			parent := categoryIDs[c.Parent]
			cat.ParentID = &parent
		}
		categoryIDs[c.Key] = cat.ID
		plan.Categories = append(plan.Categories, cat)
	}

	authorIDs := make(map[string]uuid.UUID, len(ds.Authors))
	for _, a := range ds.Authors {
		author := domain.Author{ID: uuid.New(), Name: a.Name}
		authorIDs[a.Key] = author.ID
		plan.Authors = append(plan.Authors, author)
	}

	productsBySKU := make(map[string]domain.Product, len(ds.Products))
	for _, p := range ds.Products {
		product := domain.Product{
			ID:                   p.SKU,
			CategoryID:           categoryIDs[p.Category],
			AuthorID:             authorIDs[p.Author],
			NameEN:               p.NameEN,
			NameLocal:            p.NameLocal,
			DescriptionEN:        p.DescriptionEN,
			DescriptionLocal:     p.DescriptionLocal,
			LongDescriptionEN:    p.LongDescriptionEN,
			LongDescriptionLocal: p.LongDescriptionLocal,
			Price:                p.Price,
			SalePrice:            p.SalePrice,
			Discount:             p.Discount,
			ShippingCost:         p.ShippingCost,
			OnHandQuantity:       p.OnHand,
			StockQuantity:        p.Stock,
		}
		productsBySKU[p.SKU] = product
		plan.Products = append(plan.Products, product)
	}

	customerIDs := make(map[string]uuid.UUID, len(ds.Customers))
	for _, c := range ds.Customers {
		passwordHash, err := hash(c.Password)
		if err != nil {
			return nil, fmt.Errorf("customer %s: %w", c.Key, err)
		}
		customer := domain.Customer{
			ID:           uuid.New(),
			FirstName:    c.FirstName,
			LastName:     c.LastName,
			Email:        strings.TrimSpace(c.Email),
			PasswordHash: passwordHash,
		}
		customerIDs[c.Key] = customer.ID
		plan.Customers = append(plan.Customers, customer)
	}

	for _, o := range ds.Orders {
		order := domain.Order{
			ID:         uuid.New(),
			CustomerID: customerIDs[o.Customer],
			CreatedAt:  o.CreatedAt,
		}
		for i, it := range o.Items {
			price := productsBySKU[it.Product].SalePrice
			if it.UnitPrice != nil {
				price = *it.UnitPrice
			}
			order.Items = append(order.Items, domain.OrderLineItem{
				ID:        uuid.New(),
				OrderID:   order.ID,
				ProductID: it.Product,
				Position:  i + 1,
				Quantity:  it.Quantity,
				UnitPrice: price,
			})
		}
		order.TotalAmount = domain.SumLineTotals(order.Items)
		plan.Orders = append(plan.Orders, order)
		plan.LineItems = append(plan.LineItems, order.Items...)
	}

	return plan, nil
}
