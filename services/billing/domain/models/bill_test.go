package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ezzystore/partsledger/services/billing/domain"
)

func TestNewBillFromDraft(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("empty draft returns ErrEmptyDraft", func(t *testing.T) {
		d := NewDraft(now)
		_, err := NewBillFromDraft(d, now)
		if !errors.Is(err, domain.ErrEmptyDraft) {
			t.Fatalf("expected ErrEmptyDraft, got %v", err)
		}
	})

	t.Run("freezes lines with exact totals", func(t *testing.T) {
		d := NewDraft(now)
		_ = d.AddItem(draftItem(uuid.New(), "BRK-4420", "Brake Pad", 2, 85))
		_ = d.AddItem(draftItem(uuid.New(), "FLT-100", "Oil Filter", 1, 90))

		bill, err := NewBillFromDraft(d, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bill.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(bill.Items))
		}
		if want := decimal.NewFromInt(170); !bill.Items[0].TotalPrice.Equal(want) {
			t.Fatalf("expected first line total %s, got %s", want, bill.Items[0].TotalPrice)
		}
		if want := decimal.NewFromInt(260); !bill.TotalAmount.Equal(want) {
			t.Fatalf("expected total %s, got %s", want, bill.TotalAmount)
		}
		if bill.TotalQuantity() != 3 {
			t.Fatalf("expected total quantity 3, got %d", bill.TotalQuantity())
		}
	})

	t.Run("carries the draft's bill number", func(t *testing.T) {
		d := NewDraft(now)
		_ = d.AddItem(draftItem(uuid.New(), "A", "Part A", 1, 10))
		bill, err := NewBillFromDraft(d, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.BillNumber != d.BillNumber {
			t.Fatalf("expected bill number %q, got %q", d.BillNumber, bill.BillNumber)
		}
	})

	t.Run("blank customer defaults to N/A", func(t *testing.T) {
		d := NewDraft(now)
		_ = d.AddItem(draftItem(uuid.New(), "A", "Part A", 1, 10))
		bill, err := NewBillFromDraft(d, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.CustomerName != DefaultCustomerName {
			t.Fatalf("expected customer %q, got %q", DefaultCustomerName, bill.CustomerName)
		}
	})

	t.Run("named customer is kept", func(t *testing.T) {
		d := NewDraft(now)
		d.SetCustomer("Garage Noor")
		_ = d.AddItem(draftItem(uuid.New(), "A", "Part A", 1, 10))
		bill, err := NewBillFromDraft(d, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.CustomerName != "Garage Noor" {
			t.Fatalf("expected customer %q, got %q", "Garage Noor", bill.CustomerName)
		}
	})

	t.Run("numbers lines in composition order", func(t *testing.T) {
		// FLT sorts after BRK lexicographically; the line numbers must still
		// follow the order the lines were added in.
		d := NewDraft(now)
		_ = d.AddItem(draftItem(uuid.New(), "FLT-100", "Oil Filter", 1, 90))
		_ = d.AddItem(draftItem(uuid.New(), "BRK-4420", "Brake Pad", 2, 85))

		bill, err := NewBillFromDraft(d, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantOrder := []string{"FLT-100", "BRK-4420"}
		for i, item := range bill.Items {
			if item.PartNumber != wantOrder[i] {
				t.Fatalf("line %d: expected part %q, got %q", i+1, wantOrder[i], item.PartNumber)
			}
			if item.LineNo != i+1 {
				t.Fatalf("line %d: expected line number %d, got %d", i+1, i+1, item.LineNo)
			}
		}
	})

	t.Run("links items to the bill ID", func(t *testing.T) {
		d := NewDraft(now)
		_ = d.AddItem(draftItem(uuid.New(), "A", "Part A", 1, 10))
		bill, err := NewBillFromDraft(d, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, item := range bill.Items {
			if item.BillID != bill.ID {
				t.Fatalf("expected item bill ID %v, got %v", bill.ID, item.BillID)
			}
		}
	})
}
