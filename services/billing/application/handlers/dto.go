package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ezzystore/partsledger/services/billing/domain/models"
)

// AddItemRequest adds a part line to a draft. UnitPrice overrides the part's
// selling price when present; it must be strictly positive.
//
//	@name	AddItemRequest
type AddItemRequest struct {
	PartID    uuid.UUID        `json:"part_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty" swaggertype:"string"`
}

// UpdateDraftRequest sets the draft's customer name.
//
//	@name	UpdateDraftRequest
type UpdateDraftRequest struct {
	CustomerName string `json:"customer_name" validate:"max=255"`
}

// DraftItemResponse is one line of an in-progress draft.
//
//	@name	DraftItemResponse
type DraftItemResponse struct {
	PartID     uuid.UUID       `json:"part_id"`
	PartNumber string          `json:"part_number"`
	PartName   string          `json:"part_name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price" swaggertype:"string"`
	LineTotal  decimal.Decimal `json:"line_total" swaggertype:"string"`
}

// DraftResponse is the API representation of an in-progress draft.
//
//	@name	DraftResponse
type DraftResponse struct {
	ID            uuid.UUID           `json:"id"`
	BillNumber    string              `json:"bill_number"`
	CustomerName  string              `json:"customer_name"`
	Items         []DraftItemResponse `json:"items"`
	Subtotal      decimal.Decimal     `json:"subtotal" swaggertype:"string"`
	TotalQuantity int                 `json:"total_quantity"`
	CreatedAt     time.Time           `json:"created_at"`
}

// BillItemResponse is one line of a saved bill.
//
//	@name	BillItemResponse
type BillItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	PartID     uuid.UUID       `json:"part_id"`
	LineNo     int             `json:"line_no"`
	PartNumber string          `json:"part_number"`
	PartName   string          `json:"part_name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price" swaggertype:"string"`
	TotalPrice decimal.Decimal `json:"total_price" swaggertype:"string"`
}

// BillResponse is the API representation of a saved bill.
//
//	@name	BillResponse
type BillResponse struct {
	ID            uuid.UUID          `json:"id"`
	BillNumber    string             `json:"bill_number"`
	CustomerName  string             `json:"customer_name"`
	TotalAmount   decimal.Decimal    `json:"total_amount" swaggertype:"string"`
	TotalQuantity int                `json:"total_quantity"`
	Items         []BillItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
}

// ErrorResponse is the standard error body.
//
//	@name	BillingErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

func toDraftResponse(d *models.Draft) DraftResponse {
	resp := DraftResponse{
		ID:            d.ID,
		BillNumber:    d.BillNumber,
		CustomerName:  d.CustomerName,
		Items:         []DraftItemResponse{},
		Subtotal:      d.Subtotal(),
		TotalQuantity: d.TotalQuantity(),
		CreatedAt:     d.CreatedAt,
	}
	for _, item := range d.Items {
		resp.Items = append(resp.Items, DraftItemResponse{
			PartID:     item.PartID,
			PartNumber: item.PartNumber,
			PartName:   item.PartName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			LineTotal:  item.LineTotal(),
		})
	}
	return resp
}

func toBillResponse(b *models.Bill) BillResponse {
	resp := BillResponse{
		ID:            b.ID,
		BillNumber:    b.BillNumber,
		CustomerName:  b.CustomerName,
		TotalAmount:   b.TotalAmount,
		TotalQuantity: b.TotalQuantity(),
		Items:         []BillItemResponse{},
		CreatedAt:     b.CreatedAt,
	}
	for _, item := range b.Items {
		resp.Items = append(resp.Items, BillItemResponse{
			ID:         item.ID,
			PartID:     item.PartID,
			LineNo:     item.LineNo,
			PartNumber: item.PartNumber,
			PartName:   item.PartName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	return resp
}

func toBillResponses(bills []*models.Bill) []BillResponse {
	resps := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		resps = append(resps, toBillResponse(b))
	}
	return resps
}
