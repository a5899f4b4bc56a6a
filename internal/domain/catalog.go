package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SKULength is the fixed length of a product identifier.
const SKULength = 10

// Category is a node in the category tree. Root categories have no parent.
type Category struct {
	ID               uuid.UUID
	NameEN           string
	NameLocal        string
	DescriptionEN    string
	DescriptionLocal string
	ParentID         *uuid.UUID
}

// IsRoot reports whether the category has no parent.
func (c Category) IsRoot() bool {
	return c.ParentID == nil
}

// Author is immutable reference data for products.
type Author struct {
	ID   uuid.UUID
	Name string
}

// Product is a sellable catalog item identified by a fixed-length SKU.
type Product struct {
	ID                   string
	CategoryID           uuid.UUID
	AuthorID             uuid.UUID
	NameEN               string
	NameLocal            string
	DescriptionEN        string
	DescriptionLocal     string
	LongDescriptionEN    string
	LongDescriptionLocal string
	Price                decimal.Decimal
	SalePrice            decimal.Decimal
	Discount             decimal.Decimal
	ShippingCost         decimal.Decimal
	OnHandQuantity       int
	StockQuantity        int
}

// ValidSKU reports whether id has the exact SKU length.
func ValidSKU(id string) bool {
	return len(id) == SKULength
}

// ProductStock is the locked view of a product used while placing an order.
type ProductStock struct {
	ID            string
	NameEN        string
	SalePrice     decimal.Decimal
	StockQuantity int
}

// ProductSearchFilter selects products whose text fields contain Query,
// compared case-insensitively.
type ProductSearchFilter struct {
	Query string
	Limit int
}
