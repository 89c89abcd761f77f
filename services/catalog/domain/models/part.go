package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Part is the core aggregate for the catalog bounded context: one stocked
// spare part with pricing and quantity fields. This is the single canonical
// Part shape; the postgres repository is the only mapping boundary.
type Part struct {
	ID            uuid.UUID
	PartNumber    PartNumber
	PartName      string
	Category      string
	Manufacturer  string // optional
	Description   string // optional
	SellingPrice  decimal.Decimal
	CostPrice     decimal.Decimal // zero means "not recorded"; a zero cost cannot be represented
	StockQuantity int
	MinStock      int
	Unit          string
	Location      string // optional
	CreatedAt     time.Time
}

// NewPart constructs a valid Part aggregate with generated ID and current timestamp.
// Unit defaults to "piece" when blank.
func NewPart(
	number PartNumber,
	name, category, manufacturer, description string,
	sellingPrice, costPrice decimal.Decimal,
	stockQuantity, minStock int,
	unit, location string,
) (*Part, error) {
	if name == "" {
		return nil, fmt.Errorf("part name must not be blank")
	}
	if sellingPrice.IsNegative() {
		return nil, fmt.Errorf("selling price must not be negative")
	}
	if costPrice.IsNegative() {
		return nil, fmt.Errorf("cost price must not be negative")
	}
	if stockQuantity < 0 {
		return nil, fmt.Errorf("stock quantity must not be negative")
	}
	if minStock < 0 {
		return nil, fmt.Errorf("min stock must not be negative")
	}
	if unit == "" {
		unit = "piece"
	}

	return &Part{
		ID:            uuid.New(),
		PartNumber:    number,
		PartName:      name,
		Category:      category,
		Manufacturer:  manufacturer,
		Description:   description,
		SellingPrice:  sellingPrice,
		CostPrice:     costPrice,
		StockQuantity: stockQuantity,
		MinStock:      minStock,
		Unit:          unit,
		Location:      location,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// IsLowStock reports whether the part's stock has fallen below its configured
// minimum. Derived on read, never stored.
func (p *Part) IsLowStock() bool {
	return p.StockQuantity < p.MinStock
}
