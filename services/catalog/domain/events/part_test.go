package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ezzystore/partsledger/services/catalog/domain/events"
)

func TestPartCreatedEvent_JSONRoundTrip(t *testing.T) {
	original := events.PartCreatedEvent{
		EventID:       uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		Version:       1,
		PartID:        uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		PartNumber:    "BP-1042",
		PartName:      "Brake Pad Set",
		Category:      "Brakes",
		SellingPrice:  decimal.RequireFromString("85.00"),
		StockQuantity: 12,
		MinStock:      5,
		OccurredAt:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty JSON")
	}

	var decoded events.PartCreatedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if decoded.EventID != original.EventID {
		t.Errorf("EventID: got %v, want %v", decoded.EventID, original.EventID)
	}
	if decoded.PartID != original.PartID {
		t.Errorf("PartID: got %v, want %v", decoded.PartID, original.PartID)
	}
	if decoded.PartNumber != original.PartNumber {
		t.Errorf("PartNumber: got %q, want %q", decoded.PartNumber, original.PartNumber)
	}
	if !decoded.SellingPrice.Equal(original.SellingPrice) {
		t.Errorf("SellingPrice: got %v, want %v", decoded.SellingPrice, original.SellingPrice)
	}
	if !decoded.OccurredAt.Equal(original.OccurredAt) {
		t.Errorf("OccurredAt: got %v, want %v", decoded.OccurredAt, original.OccurredAt)
	}
}

func TestPartCreatedEvent_JSONFieldNames(t *testing.T) {
	evt := events.PartCreatedEvent{
		EventID:       uuid.New(),
		Version:       1,
		PartID:        uuid.New(),
		PartNumber:    "OF-220",
		PartName:      "Oil Filter",
		Category:      "Filters",
		SellingPrice:  decimal.RequireFromString("12.50"),
		StockQuantity: 30,
		MinStock:      10,
		OccurredAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "part_id", "part_number", "part_name", "category", "selling_price", "stock_quantity", "min_stock", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopicPartCreated_Value(t *testing.T) {
	if events.TopicPartCreated != "catalog.part.created" {
		t.Errorf("expected %q, got %q", "catalog.part.created", events.TopicPartCreated)
	}
}
