package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopicBillFinalized carries BillFinalizedEvent messages.
const TopicBillFinalized = "billing.bill.finalized"

// BillFinalizedEvent is published in the same transaction that saves a
// bill, via the outbox.
type BillFinalizedEvent struct {
	EventID      uuid.UUID       `json:"event_id"`
	Version      int             `json:"version"`
	BillID       uuid.UUID       `json:"bill_id"`
	BillNumber   string          `json:"bill_number"`
	CustomerName string          `json:"customer_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ItemCount    int             `json:"item_count"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
