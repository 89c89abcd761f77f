package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ezzystore/partsledger/services/billing/domain"
)

// DraftItem is a line on an in-progress bill. Part number and name are
// snapshotted at add time so later catalog edits do not change a draft.
type DraftItem struct {
	PartID     uuid.UUID       `json:"part_id"`
	PartNumber string          `json:"part_number"`
	PartName   string          `json:"part_name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// LineTotal is Quantity * UnitPrice, exact.
func (i DraftItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Draft is a bill being composed. It lives in the draft store until it
// is finalized into a Bill or cancelled.
type Draft struct {
	ID           uuid.UUID   `json:"id"`
	BillNumber   string      `json:"bill_number"`
	CustomerName string      `json:"customer_name"`
	Items        []DraftItem `json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
}

// NewDraft starts an empty draft with a server-assigned bill number.
func NewDraft(now time.Time) *Draft {
	return &Draft{
		ID:         uuid.New(),
		BillNumber: GenerateBillNumber(now),
		Items:      []DraftItem{},
		CreatedAt:  now.UTC(),
	}
}

// GenerateBillNumber derives a human-readable invoice number from the
// millisecond timestamp. Uniqueness is enforced by the bills table, not
// here.
func GenerateBillNumber(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	return "INV-" + ms[len(ms)-6:]
}

// AddItem appends a line. Each part may appear at most once per draft;
// callers adjust the quantity of the existing line instead.
func (d *Draft) AddItem(item DraftItem) error {
	if item.Quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	if !item.UnitPrice.IsPositive() {
		return domain.ErrInvalidPrice
	}
	for _, existing := range d.Items {
		if existing.PartID == item.PartID {
			return domain.ErrDuplicateItem
		}
	}
	d.Items = append(d.Items, item)
	return nil
}

// RemoveItem deletes the line for the given part. Removing a part that
// is not on the draft is a no-op.
func (d *Draft) RemoveItem(partID uuid.UUID) {
	for i, item := range d.Items {
		if item.PartID == partID {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return
		}
	}
}

// SetCustomer stores the trimmed customer name.
func (d *Draft) SetCustomer(name string) {
	d.CustomerName = strings.TrimSpace(name)
}

// Subtotal is the exact sum of all line totals.
func (d *Draft) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// TotalQuantity is the sum of line quantities.
func (d *Draft) TotalQuantity() int {
	total := 0
	for _, item := range d.Items {
		total += item.Quantity
	}
	return total
}

// IsEmpty reports whether the draft has no lines.
func (d *Draft) IsEmpty() bool {
	return len(d.Items) == 0
}
