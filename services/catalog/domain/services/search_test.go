package services

import (
	"fmt"
	"testing"

	"github.com/ezzystore/partsledger/services/catalog/domain/models"
)

func testPart(number, name, category string) *models.Part {
	return &models.Part{
		PartNumber: models.PartNumber(number),
		PartName:   name,
		Category:   category,
	}
}

func TestFilterParts(t *testing.T) {
	parts := []*models.Part{
		testPart("BRK-4420", "Brake Pad Front", "Brakes"),
		testPart("FLT-100", "Oil Filter", "Filters"),
		testPart("SUS-220", "Shock Absorber", "Suspension"),
	}

	t.Run("blank query returns input unchanged", func(t *testing.T) {
		got := FilterParts(parts, "   ")
		if len(got) != len(parts) {
			t.Fatalf("expected %d parts, got %d", len(parts), len(got))
		}
	})

	t.Run("matches part number case-insensitively", func(t *testing.T) {
		got := FilterParts(parts, "brk")
		if len(got) != 1 || got[0].PartNumber != "BRK-4420" {
			t.Fatalf("expected BRK-4420, got %v", got)
		}
	})

	t.Run("matches part name", func(t *testing.T) {
		got := FilterParts(parts, "filter")
		if len(got) != 1 || got[0].PartNumber != "FLT-100" {
			t.Fatalf("expected FLT-100, got %v", got)
		}
	})

	t.Run("matches category", func(t *testing.T) {
		got := FilterParts(parts, "suspension")
		if len(got) != 1 || got[0].PartNumber != "SUS-220" {
			t.Fatalf("expected SUS-220, got %v", got)
		}
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		got := FilterParts(parts, "does-not-exist")
		if len(got) != 0 {
			t.Fatalf("expected no parts, got %d", len(got))
		}
	})
}

func TestSearchParts(t *testing.T) {
	parts := []*models.Part{
		testPart("BRK-4420", "Brake Pad Front", "Brakes"),
		testPart("FLT-100", "Oil Filter", "Filters"),
		testPart("SUS-220", "Shock Absorber", "Suspension"),
	}

	t.Run("blank query returns nil", func(t *testing.T) {
		if got := SearchParts(parts, ""); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("does not match on category", func(t *testing.T) {
		got := SearchParts(parts, "suspension")
		if len(got) != 0 {
			t.Fatalf("expected no parts, got %d", len(got))
		}
	})

	t.Run("matches on number and name", func(t *testing.T) {
		got := SearchParts(parts, "f")
		// FLT-100 matches on number, "Brake Pad Front" and "Oil Filter" on name.
		if len(got) != 3 {
			t.Fatalf("expected 3 parts, got %d", len(got))
		}
	})

	t.Run("caps results at DropdownLimit", func(t *testing.T) {
		many := make([]*models.Part, 0, 25)
		for i := 0; i < 25; i++ {
			many = append(many, testPart(fmt.Sprintf("CMN-%03d", i), "Common Part", "Misc"))
		}
		got := SearchParts(many, "cmn")
		if len(got) != DropdownLimit {
			t.Fatalf("expected %d parts, got %d", DropdownLimit, len(got))
		}
	})

	t.Run("preserves input order", func(t *testing.T) {
		got := SearchParts(parts, "o")
		if len(got) < 2 {
			t.Fatalf("expected at least 2 parts, got %d", len(got))
		}
		if got[0].PartNumber != "BRK-4420" {
			t.Fatalf("expected BRK-4420 first, got %s", got[0].PartNumber)
		}
	})
}

func TestLowStockParts(t *testing.T) {
	parts := []*models.Part{
		{PartNumber: "A", StockQuantity: 1, MinStock: 5},
		{PartNumber: "B", StockQuantity: 5, MinStock: 5},
		{PartNumber: "C", StockQuantity: 0, MinStock: 2},
	}

	got := LowStockParts(parts)
	if len(got) != 2 {
		t.Fatalf("expected 2 low-stock parts, got %d", len(got))
	}
	if got[0].PartNumber != "A" || got[1].PartNumber != "C" {
		t.Fatalf("expected A then C, got %s then %s", got[0].PartNumber, got[1].PartNumber)
	}
}
