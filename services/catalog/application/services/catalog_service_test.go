package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogdomain "github.com/ezzystore/partsledger/services/catalog/domain"
	"github.com/ezzystore/partsledger/services/catalog/domain/models"
)

// fakePartRepo serves a fixed set of parts and records updates.
type fakePartRepo struct {
	parts   map[uuid.UUID]*models.Part
	updated []*models.Part
}

func newFakePartRepo() *fakePartRepo {
	return &fakePartRepo{parts: make(map[uuid.UUID]*models.Part)}
}

func (r *fakePartRepo) Save(_ context.Context, part *models.Part) error {
	r.parts[part.ID] = part
	return nil
}

func (r *fakePartRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Part, error) {
	part, ok := r.parts[id]
	if !ok {
		return nil, catalogdomain.ErrPartNotFound
	}
	return part, nil
}

func (r *fakePartRepo) FindAll(_ context.Context) ([]*models.Part, error) {
	out := make([]*models.Part, 0, len(r.parts))
	for _, p := range r.parts {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePartRepo) Update(_ context.Context, part *models.Part) error {
	if _, ok := r.parts[part.ID]; !ok {
		return catalogdomain.ErrPartNotFound
	}
	r.parts[part.ID] = part
	r.updated = append(r.updated, part)
	return nil
}

func (r *fakePartRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.parts[id]; !ok {
		return catalogdomain.ErrPartNotFound
	}
	delete(r.parts, id)
	return nil
}

func seedPart(repo *fakePartRepo) *models.Part {
	part := &models.Part{
		ID:            uuid.New(),
		PartNumber:    models.PartNumber("BRK-4420"),
		PartName:      "Brake Pad Front",
		Category:      "Brakes",
		SellingPrice:  decimal.NewFromInt(85),
		StockQuantity: 12,
		MinStock:      5,
		Unit:          "piece",
		CreatedAt:     time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
	}
	repo.parts[part.ID] = part
	return part
}

func TestCatalogService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakePartRepo()
	part := seedPart(repo)
	// No cache configured: every read goes straight to the repository.
	svc := NewCatalogService(repo, nil)

	t.Run("serves the part from the repository", func(t *testing.T) {
		got, err := svc.GetByID(ctx, part.ID)
		if err != nil {
			t.Fatalf("get part: %v", err)
		}
		if got.PartNumber != part.PartNumber {
			t.Fatalf("expected part number %q, got %q", part.PartNumber, got.PartNumber)
		}
	})

	t.Run("unknown ID returns ErrPartNotFound", func(t *testing.T) {
		_, err := svc.GetByID(ctx, uuid.New())
		if !errors.Is(err, catalogdomain.ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})
}

func TestCatalogService_Create_InvalidPartNumber(t *testing.T) {
	svc := NewCatalogService(newFakePartRepo(), nil)

	_, err := svc.Create(context.Background(), PartInput{
		PartNumber:   "   ",
		PartName:     "Brake Pad Front",
		Category:     "Brakes",
		SellingPrice: decimal.NewFromInt(85),
	})
	if !errors.Is(err, catalogdomain.ErrInvalidPartNumber) {
		t.Fatalf("expected ErrInvalidPartNumber, got %v", err)
	}
}

func TestCatalogService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects negative prices", func(t *testing.T) {
		repo := newFakePartRepo()
		part := seedPart(repo)
		svc := NewCatalogService(repo, nil)

		_, err := svc.Update(ctx, part.ID, PartInput{
			PartNumber:   part.PartNumber.String(),
			PartName:     part.PartName,
			Category:     part.Category,
			SellingPrice: decimal.NewFromInt(-1),
		})
		if !errors.Is(err, catalogdomain.ErrInvalidPart) {
			t.Fatalf("expected ErrInvalidPart, got %v", err)
		}
		if len(repo.updated) != 0 {
			t.Fatalf("expected zero updates, got %d", len(repo.updated))
		}
	})

	t.Run("persists the changed fields", func(t *testing.T) {
		repo := newFakePartRepo()
		part := seedPart(repo)
		svc := NewCatalogService(repo, nil)

		got, err := svc.Update(ctx, part.ID, PartInput{
			PartNumber:   part.PartNumber.String(),
			PartName:     "Brake Pad Rear",
			Category:     part.Category,
			SellingPrice: decimal.NewFromInt(95),
		})
		if err != nil {
			t.Fatalf("update part: %v", err)
		}
		if got.PartName != "Brake Pad Rear" {
			t.Fatalf("expected updated name, got %q", got.PartName)
		}
		if got.Unit != "piece" {
			t.Fatalf("expected blank unit to default to piece, got %q", got.Unit)
		}
		if len(repo.updated) != 1 {
			t.Fatalf("expected 1 update, got %d", len(repo.updated))
		}
	})
}
