package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ezzystore/partsledger/services/catalog/domain/models"
)

// PartRepository is the persistence interface for the Part aggregate.
// The domain layer owns this interface; infrastructure implements it.
type PartRepository interface {
	Save(ctx context.Context, part *models.Part) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Part, error)

	// FindAll retrieves every part ordered by part number. Shop inventories
	// are small; pagination is not modeled.
	FindAll(ctx context.Context) ([]*models.Part, error)

	// Update persists changes to an existing Part. Last write wins; there is
	// no optimistic concurrency token.
	Update(ctx context.Context, part *models.Part) error

	// Delete removes a part by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
