package bulkload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Dataset is the YAML document accepted by the bulk loader. Records refer to
// each other by Key; products are referred to by their SKU.
type Dataset struct {
	Categories []CategoryRecord `yaml:"categories"`
	Authors    []AuthorRecord   `yaml:"authors"`
	Products   []ProductRecord  `yaml:"products"`
	Customers  []CustomerRecord `yaml:"customers"`
	Orders     []OrderRecord    `yaml:"orders"`
}

// CategoryRecord is one category. Parent names another category's Key.
type CategoryRecord struct {
	Key              string `yaml:"key"`
	Parent           string `yaml:"parent"`
	NameEN           string `yaml:"name_en"`
	NameLocal        string `yaml:"name_local"`
	DescriptionEN    string `yaml:"description_en"`
	DescriptionLocal string `yaml:"description_local"`
}

type AuthorRecord struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

type ProductRecord struct {
	SKU                  string          `yaml:"sku"`
	Category             string          `yaml:"category"`
	Author               string          `yaml:"author"`
	NameEN               string          `yaml:"name_en"`
	NameLocal            string          `yaml:"name_local"`
	DescriptionEN        string          `yaml:"description_en"`
	DescriptionLocal     string          `yaml:"description_local"`
	LongDescriptionEN    string          `yaml:"long_description_en"`
	LongDescriptionLocal string          `yaml:"long_description_local"`
	Price                decimal.Decimal `yaml:"price"`
	SalePrice            decimal.Decimal `yaml:"sale_price"`
	Discount             decimal.Decimal `yaml:"discount"`
	ShippingCost         decimal.Decimal `yaml:"shipping_cost"`
	OnHand               int             `yaml:"on_hand"`
	Stock                int             `yaml:"stock"`
}

// CustomerRecord carries the customer's plain secret; it is hashed before
// anything reaches the database.
type CustomerRecord struct {
	Key       string `yaml:"key"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
}

type OrderRecord struct {
	Customer  string       `yaml:"customer"`
	CreatedAt time.Time    `yaml:"created_at"`
	Items     []ItemRecord `yaml:"items"`
}

// ItemRecord is one line of a historical order. A missing UnitPrice falls
// back to the product's sale price.
type ItemRecord struct {
	Product   string           `yaml:"product"`
	Quantity  int              `yaml:"quantity"`
	UnitPrice *decimal.Decimal `yaml:"unit_price"`
}

// Decode reads a dataset from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return &ds, nil
		}
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &ds, nil
}

// LoadFile opens and decodes the dataset at path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
