package models

import (
	"strings"
	"testing"
)

func TestNewPartNumber(t *testing.T) {
	t.Run("valid single character", func(t *testing.T) {
		n, err := NewPartNumber("a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "a" {
			t.Fatalf("expected %q, got %q", "a", n.String())
		}
	})

	t.Run("valid 64 characters", func(t *testing.T) {
		s := strings.Repeat("x", 64)
		n, err := NewPartNumber(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != s {
			t.Fatalf("expected string of length 64, got %d", len(n.String()))
		}
	})

	t.Run("valid typical part number", func(t *testing.T) {
		n, err := NewPartNumber("BRK-4420")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "BRK-4420" {
			t.Fatalf("expected %q, got %q", "BRK-4420", n.String())
		}
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		n, err := NewPartNumber("  BRK-4420  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "BRK-4420" {
			t.Fatalf("expected trimmed %q, got %q", "BRK-4420", n.String())
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		_, err := NewPartNumber("")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("whitespace only returns error", func(t *testing.T) {
		_, err := NewPartNumber("   ")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("65 characters returns error", func(t *testing.T) {
		s := strings.Repeat("x", 65)
		_, err := NewPartNumber(s)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestPartNumber_String(t *testing.T) {
	n := PartNumber("FLT-100")
	if n.String() != "FLT-100" {
		t.Fatalf("expected %q, got %q", "FLT-100", n.String())
	}
}
