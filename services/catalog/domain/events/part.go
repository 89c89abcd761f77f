package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopicPartCreated is published when a new spare part enters the catalog.
const TopicPartCreated = "catalog.part.created"

// PartCreatedEvent is the payload for TopicPartCreated.
// Published transactionally with the insert (outbox pattern).
type PartCreatedEvent struct {
	EventID       uuid.UUID       `json:"event_id"`
	Version       int             `json:"version"`
	PartID        uuid.UUID       `json:"part_id"`
	PartNumber    string          `json:"part_number"`
	PartName      string          `json:"part_name"`
	Category      string          `json:"category"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	StockQuantity int             `json:"stock_quantity"`
	MinStock      int             `json:"min_stock"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
