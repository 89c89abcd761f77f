package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ezzystore/partsledger/services/billing/domain"
)

// BillItem is a persisted invoice line. LineNo is the 1-based position the
// line held in the draft, so a reprint lists lines in composition order.
type BillItem struct {
	ID         uuid.UUID
	BillID     uuid.UUID
	PartID     uuid.UUID
	LineNo     int
	PartNumber string
	PartName   string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// Bill is a finalized invoice. Bills are immutable once saved.
type Bill struct {
	ID           uuid.UUID
	BillNumber   string
	CustomerName string
	TotalAmount  decimal.Decimal
	Items        []BillItem
	CreatedAt    time.Time
}

// DefaultCustomerName is used when a bill is finalized without one.
const DefaultCustomerName = "N/A"

// NewBillFromDraft freezes a draft into a bill. The draft must have at
// least one line.
func NewBillFromDraft(d *Draft, now time.Time) (*Bill, error) {
	if d.IsEmpty() {
		return nil, domain.ErrEmptyDraft
	}

	customer := d.CustomerName
	if customer == "" {
		customer = DefaultCustomerName
	}

	bill := &Bill{
		ID:           uuid.New(),
		BillNumber:   d.BillNumber,
		CustomerName: customer,
		TotalAmount:  d.Subtotal(),
		CreatedAt:    now.UTC(),
	}
	for i, item := range d.Items {
		bill.Items = append(bill.Items, BillItem{
			ID:         uuid.New(),
			BillID:     bill.ID,
			PartID:     item.PartID,
			LineNo:     i + 1,
			PartNumber: item.PartNumber,
			PartName:   item.PartName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.LineTotal(),
		})
	}
	return bill, nil
}

// TotalQuantity is the sum of line quantities.
func (b *Bill) TotalQuantity() int {
	total := 0
	for _, item := range b.Items {
		total += item.Quantity
	}
	return total
}
