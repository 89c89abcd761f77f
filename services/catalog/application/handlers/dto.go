package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ezzystore/partsledger/services/catalog/domain/models"
)

// PartRequest is the request body for POST /parts and PUT /parts/{id}.
type PartRequest struct {
	PartNumber    string          `json:"part_number" validate:"required,min=1,max=64" example:"bg-2002"`
	PartName      string          `json:"part_name" validate:"required,min=1,max=255" example:"Ring"`
	Category      string          `json:"category" validate:"max=255" example:"Ring"`
	Manufacturer  string          `json:"manufacturer" validate:"max=255" example:"TP"`
	Description   string          `json:"description" validate:"max=2000"`
	SellingPrice  decimal.Decimal `json:"selling_price" swaggertype:"string" example:"85.00"`
	CostPrice     decimal.Decimal `json:"cost_price" swaggertype:"string" example:"50.00"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0" example:"20"`
	MinStock      int             `json:"min_stock" validate:"gte=0" example:"5"`
	Unit          string          `json:"unit" validate:"max=32" example:"piece"`
	Location      string          `json:"location" validate:"max=255" example:"Shop"`
} // @name PartRequest

// PartResponse is the canonical wire shape of a spare part.
type PartResponse struct {
	ID            uuid.UUID       `json:"id"`
	PartNumber    string          `json:"part_number"`
	PartName      string          `json:"part_name"`
	Category      string          `json:"category"`
	Manufacturer  string          `json:"manufacturer,omitempty"`
	Description   string          `json:"description,omitempty"`
	SellingPrice  decimal.Decimal `json:"selling_price" swaggertype:"string"`
	CostPrice     decimal.Decimal `json:"cost_price" swaggertype:"string"`
	StockQuantity int             `json:"stock_quantity"`
	MinStock      int             `json:"min_stock"`
	Unit          string          `json:"unit"`
	Location      string          `json:"location,omitempty"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     time.Time       `json:"created_at"`
} // @name PartResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"part not found"`
} // @name CatalogErrorResponse

func toPartResponse(p *models.Part) PartResponse {
	return PartResponse{
		ID:            p.ID,
		PartNumber:    p.PartNumber.String(),
		PartName:      p.PartName,
		Category:      p.Category,
		Manufacturer:  p.Manufacturer,
		Description:   p.Description,
		SellingPrice:  p.SellingPrice,
		CostPrice:     p.CostPrice,
		StockQuantity: p.StockQuantity,
		MinStock:      p.MinStock,
		Unit:          p.Unit,
		Location:      p.Location,
		LowStock:      p.IsLowStock(),
		CreatedAt:     p.CreatedAt,
	}
}

func toPartResponses(parts []*models.Part) []PartResponse {
	out := make([]PartResponse, len(parts))
	for i, p := range parts {
		out[i] = toPartResponse(p)
	}
	return out
}
