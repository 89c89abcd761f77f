package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ezzystore/partsledger/services/billing/domain/models"
)

// BillRepository persists finalized bills. Save writes the header, all
// items and the finalized event atomically.
type BillRepository interface {
	Save(ctx context.Context, bill *models.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bill, error)
	FindAll(ctx context.Context) ([]*models.Bill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
