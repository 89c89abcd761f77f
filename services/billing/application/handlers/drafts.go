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

// DraftsHandler handles the draft lifecycle endpoints.
type DraftsHandler struct {
	svc *appsvcs.Services
}

// NewDraftsHandler returns a DraftsHandler backed by the given services.
func NewDraftsHandler(svc *appsvcs.Services) *DraftsHandler {
	return &DraftsHandler{svc: svc}
}

// Start opens a new empty draft.
//
//	@Summary		Start bill draft
//	@Description	Creates an empty draft with a server-assigned bill number
//	@Tags			billing
//	@Produce		json
//	@Success		201	{object}	DraftResponse
//	@Failure		401	{object}	BillingErrorResponse
//	@Router			/billing/drafts [post]
func (h *DraftsHandler) Start(w http.ResponseWriter, r *http.Request) {
	draft, err := h.svc.Billing.StartDraft(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toDraftResponse(draft))
}

// Get returns a draft by ID.
//
//	@Summary		Get bill draft
//	@Tags			billing
//	@Produce		json
//	@Param			draftID	path		string	true	"Draft ID"
//	@Success		200		{object}	DraftResponse
//	@Failure		401		{object}	BillingErrorResponse
//	@Failure		404		{object}	BillingErrorResponse
//	@Router			/billing/drafts/{draftID} [get]
func (h *DraftsHandler) Get(w http.ResponseWriter, r *http.Request) {
	draftID, ok := draftIDParam(w, r)
	if !ok {
		return
	}
	draft, err := h.svc.Billing.GetDraft(r.Context(), draftID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toDraftResponse(draft))
}

// Update sets the draft's customer name.
//
//	@Summary		Update bill draft
//	@Tags			billing
//	@Accept			json
//	@Produce		json
//	@Param			draftID	path		string				true	"Draft ID"
//	@Param			request	body		UpdateDraftRequest	true	"Draft update request"
//	@Success		200		{object}	DraftResponse
//	@Failure		400		{object}	BillingErrorResponse
//	@Failure		401		{object}	BillingErrorResponse
//	@Failure		404		{object}	BillingErrorResponse
//	@Router			/billing/drafts/{draftID} [put]
func (h *DraftsHandler) Update(w http.ResponseWriter, r *http.Request) {
	draftID, ok := draftIDParam(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateDraftRequest](w, r)
	if !ok {
		return
	}
	draft, err := h.svc.Billing.SetCustomer(r.Context(), draftID, req.CustomerName)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toDraftResponse(draft))
}

// Cancel discards a draft.
//
//	@Summary		Cancel bill draft
//	@Tags			billing
//	@Param			draftID	path	string	true	"Draft ID"
//	@Success		204
//	@Failure		401	{object}	BillingErrorResponse
//	@Failure		404	{object}	BillingErrorResponse
//	@Router			/billing/drafts/{draftID} [delete]
func (h *DraftsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	draftID, ok := draftIDParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.Billing.Cancel(r.Context(), draftID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func draftIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "draftID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid draft id")
		return uuid.Nil, false
	}
	return id, true
}
