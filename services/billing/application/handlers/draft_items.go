package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ezzystore/partsledger/pkg/errhttp"
	"github.com/ezzystore/partsledger/pkg/httpx"
	pkgvalidator "github.com/ezzystore/partsledger/pkg/validator"
	appsvcs "github.com/ezzystore/partsledger/services/billing/application/services"
)

// DraftItemsHandler handles draft line mutations.
type DraftItemsHandler struct {
	svc *appsvcs.Services
}

// NewDraftItemsHandler returns a DraftItemsHandler backed by the given services.
func NewDraftItemsHandler(svc *appsvcs.Services) *DraftItemsHandler {
	return &DraftItemsHandler{svc: svc}
}

// Add appends a part line to the draft.
//
//	@Summary		Add draft item
//	@Description	Adds a part line; each part may appear at most once per draft
//	@Tags			billing
//	@Accept			json
//	@Produce		json
//	@Param			draftID	path		string			true	"Draft ID"
//	@Param			request	body		AddItemRequest	true	"Item to add"
//	@Success		200		{object}	DraftResponse
//	@Failure		400		{object}	BillingErrorResponse
//	@Failure		401		{object}	BillingErrorResponse
//	@Failure		404		{object}	BillingErrorResponse
//	@Failure		422		{object}	BillingErrorResponse
//	@Router			/billing/drafts/{draftID}/items [post]
func (h *DraftItemsHandler) Add(w http.ResponseWriter, r *http.Request) {
	draftID, ok := draftIDParam(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AddItemRequest](w, r)
	if !ok {
		return
	}
	draft, err := h.svc.Billing.AddItem(r.Context(), draftID, req.PartID, req.Quantity, req.UnitPrice)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toDraftResponse(draft))
}

// Remove deletes a part line from the draft. Removing a part that is not on
// the draft returns 204 without changing anything.
//
//	@Summary		Remove draft item
//	@Tags			billing
//	@Param			draftID	path	string	true	"Draft ID"
//	@Param			partID	path	string	true	"Part ID"
//	@Success		204
//	@Failure		400	{object}	BillingErrorResponse
//	@Failure		401	{object}	BillingErrorResponse
//	@Failure		404	{object}	BillingErrorResponse
//	@Router			/billing/drafts/{draftID}/items/{partID} [delete]
func (h *DraftItemsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	draftID, ok := draftIDParam(w, r)
	if !ok {
		return
	}
	partID, err := uuid.Parse(chi.URLParam(r, "partID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid part id")
		return
	}
	if _, err := h.svc.Billing.RemoveItem(r.Context(), draftID, partID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
