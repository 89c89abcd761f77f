package handlers

import (
	"net/http"

	"github.com/ezzystore/partsledger/pkg/errhttp"
	"github.com/ezzystore/partsledger/pkg/httpx"
	pkgvalidator "github.com/ezzystore/partsledger/pkg/validator"
	appsvcs "github.com/ezzystore/partsledger/services/catalog/application/services"
)

// PostPartHandler handles POST /parts requests.
type PostPartHandler struct {
	svc *appsvcs.Services
}

// NewPostPartHandler returns a PostPartHandler backed by the given services.
func NewPostPartHandler(svc *appsvcs.Services) *PostPartHandler {
	return &PostPartHandler{svc: svc}
}

// Execute creates a new spare part.
//
//	@Summary		Create spare part
//	@Description	Adds a spare part to the inventory
//	@Tags			parts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PartRequest	true	"Part creation request"
//	@Success		201		{object}	PartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/parts [post]
func (h *PostPartHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[PartRequest](w, r)
	if !ok {
		return
	}

	part, err := h.svc.Catalog.Create(r.Context(), appsvcs.PartInput{
		PartNumber:    req.PartNumber,
		PartName:      req.PartName,
		Category:      req.Category,
		Manufacturer:  req.Manufacturer,
		Description:   req.Description,
		SellingPrice:  req.SellingPrice,
		CostPrice:     req.CostPrice,
		StockQuantity: req.StockQuantity,
		MinStock:      req.MinStock,
		Unit:          req.Unit,
		Location:      req.Location,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toPartResponse(part))
}
