package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgcache "github.com/ezzystore/partsledger/pkg/cache"
	billingdomain "github.com/ezzystore/partsledger/services/billing/domain"
	"github.com/ezzystore/partsledger/services/billing/domain/models"
	"github.com/ezzystore/partsledger/services/billing/domain/repositories"
	domainservices "github.com/ezzystore/partsledger/services/billing/domain/services"
	catalogrepos "github.com/ezzystore/partsledger/services/catalog/domain/repositories"
)

// DraftStore moves draft payloads in and out of storage. Satisfied by
// cache.DraftStore; Get returns cache.ErrDraftNotFound for missing drafts.
type DraftStore interface {
	Get(ctx context.Context, draftID string) ([]byte, error)
	Set(ctx context.Context, draftID string, payload []byte) error
	Delete(ctx context.Context, draftID string) error
}

// BillingService composes bill drafts and finalizes them into bills.
// Drafts live in the draft store; finalized bills go to the repository in a
// single transaction.
type BillingService struct {
	bills  repositories.BillRepository
	parts  catalogrepos.PartRepository
	drafts DraftStore
	now    func() time.Time
}

// NewBillingService wires the billing use cases.
func NewBillingService(bills repositories.BillRepository, parts catalogrepos.PartRepository, drafts DraftStore) *BillingService {
	return &BillingService{bills: bills, parts: parts, drafts: drafts, now: time.Now}
}

// StartDraft creates an empty draft with a server-assigned bill number and
// stores it.
func (s *BillingService) StartDraft(ctx context.Context) (*models.Draft, error) {
	draft := models.NewDraft(s.now())
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft loads a draft by ID.
func (s *BillingService) GetDraft(ctx context.Context, draftID uuid.UUID) (*models.Draft, error) {
	return s.loadDraft(ctx, draftID)
}

// AddItem adds a part line to the draft. The unit price is the part's selling
// price unless overridePrice is given; an override must be strictly positive.
// A part already on the draft is rejected so quantities stay on one line.
func (s *BillingService) AddItem(ctx context.Context, draftID, partID uuid.UUID, quantity int, overridePrice *decimal.Decimal) (*models.Draft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	part, err := s.parts.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}

	price := part.SellingPrice
	if overridePrice != nil {
		if !overridePrice.IsPositive() {
			return nil, fmt.Errorf("%w: got %s", billingdomain.ErrInvalidPrice, overridePrice)
		}
		price = *overridePrice
	}

	item := models.DraftItem{
		PartID:     part.ID,
		PartNumber: part.PartNumber.String(),
		PartName:   part.PartName,
		Quantity:   quantity,
		UnitPrice:  price,
	}
	if err := draft.AddItem(item); err != nil {
		return nil, err
	}

	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// RemoveItem deletes a line from the draft. Removing a part that is not on
// the draft succeeds without changing anything.
func (s *BillingService) RemoveItem(ctx context.Context, draftID, partID uuid.UUID) (*models.Draft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	draft.RemoveItem(partID)
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetCustomer updates the draft's customer name.
func (s *BillingService) SetCustomer(ctx context.Context, draftID uuid.UUID, name string) (*models.Draft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	draft.SetCustomer(name)
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Cancel discards a draft without saving anything.
func (s *BillingService) Cancel(ctx context.Context, draftID uuid.UUID) error {
	if _, err := s.loadDraft(ctx, draftID); err != nil {
		return err
	}
	return s.drafts.Delete(ctx, draftID.String())
}

// Finalize freezes the draft into a bill and saves it atomically. An empty
// draft is rejected before any store call. The draft is discarded only after
// the bill committed, so a failed save leaves the draft editable.
func (s *BillingService) Finalize(ctx context.Context, draftID uuid.UUID) (*models.Bill, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	bill, err := models.NewBillFromDraft(draft, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.bills.Save(ctx, bill); err != nil {
		return nil, err
	}

	if err := s.drafts.Delete(ctx, draftID.String()); err != nil {
		// The bill is committed; a leftover draft only lingers until its TTL.
		return bill, nil
	}
	return bill, nil
}

// ListBills returns all saved bills, newest first.
func (s *BillingService) ListBills(ctx context.Context) ([]*models.Bill, error) {
	return s.bills.FindAll(ctx)
}

// GetBill returns a saved bill with its items.
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*models.Bill, error) {
	return s.bills.GetByID(ctx, id)
}

// DeleteBill removes a saved bill and its items.
func (s *BillingService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	return s.bills.Delete(ctx, id)
}

// RenderDraftInvoice renders a print preview of an in-progress draft.
// The draft must have at least one line.
func (s *BillingService) RenderDraftInvoice(ctx context.Context, draftID uuid.UUID, layout domainservices.Layout) ([]byte, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	bill, err := models.NewBillFromDraft(draft, s.now())
	if err != nil {
		return nil, err
	}
	return domainservices.RenderInvoice(bill, layout)
}

// RenderBillInvoice renders the printable document for a saved bill.
func (s *BillingService) RenderBillInvoice(ctx context.Context, billID uuid.UUID, layout domainservices.Layout) ([]byte, error) {
	bill, err := s.bills.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	return domainservices.RenderInvoice(bill, layout)
}

func (s *BillingService) loadDraft(ctx context.Context, draftID uuid.UUID) (*models.Draft, error) {
	payload, err := s.drafts.Get(ctx, draftID.String())
	if err != nil {
		if errors.Is(err, pkgcache.ErrDraftNotFound) {
			return nil, billingdomain.ErrDraftNotFound
		}
		return nil, err
	}
	var draft models.Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &draft, nil
}

func (s *BillingService) saveDraft(ctx context.Context, draft *models.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return s.drafts.Set(ctx, draft.ID.String(), payload)
}
