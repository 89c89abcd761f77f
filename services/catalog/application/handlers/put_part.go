package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ezzystore/partsledger/pkg/errhttp"
	"github.com/ezzystore/partsledger/pkg/httpx"
	pkgvalidator "github.com/ezzystore/partsledger/pkg/validator"
	appsvcs "github.com/ezzystore/partsledger/services/catalog/application/services"
)

// PutPartHandler handles PUT /parts/{id} requests.
type PutPartHandler struct {
	svc *appsvcs.Services
}

// NewPutPartHandler returns a PutPartHandler backed by the given services.
func NewPutPartHandler(svc *appsvcs.Services) *PutPartHandler {
	return &PutPartHandler{svc: svc}
}

// Execute replaces the mutable fields of an existing part.
// Last write wins; there is no optimistic concurrency token.
//
//	@Summary		Update spare part
//	@Tags			parts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"Part ID"
//	@Param			request	body		PartRequest	true	"Part update request"
//	@Success		200		{object}	PartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/parts/{id} [put]
func (h *PutPartHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid part id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[PartRequest](w, r)
	if !ok {
		return
	}

	part, err := h.svc.Catalog.Update(r.Context(), id, appsvcs.PartInput{
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

	httpx.JSON(w, http.StatusOK, toPartResponse(part))
}
