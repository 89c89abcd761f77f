package handlers

import (
	"net/http"

	"github.com/ezzystore/partsledger/pkg/errhttp"
	"github.com/ezzystore/partsledger/pkg/httpx"
	appsvcs "github.com/ezzystore/partsledger/services/billing/application/services"
)

// FinalizeDraftHandler handles POST /billing/drafts/{draftID}/finalize.
type FinalizeDraftHandler struct {
	svc *appsvcs.Services
}

// NewFinalizeDraftHandler returns a FinalizeDraftHandler backed by the given services.
func NewFinalizeDraftHandler(svc *appsvcs.Services) *FinalizeDraftHandler {
	return &FinalizeDraftHandler{svc: svc}
}

// Execute freezes a draft into a saved bill. The bill header, its items and
// the finalized event commit in one transaction.
//
//	@Summary		Finalize bill draft
//	@Tags			billing
//	@Produce		json
//	@Param			draftID	path		string	true	"Draft ID"
//	@Success		201		{object}	BillResponse
//	@Failure		400		{object}	BillingErrorResponse
//	@Failure		401		{object}	BillingErrorResponse
//	@Failure		404		{object}	BillingErrorResponse
//	@Failure		409		{object}	BillingErrorResponse
//	@Failure		422		{object}	BillingErrorResponse
//	@Router			/billing/drafts/{draftID}/finalize [post]
func (h *FinalizeDraftHandler) Execute(w http.ResponseWriter, r *http.Request) {
	draftID, ok := draftIDParam(w, r)
	if !ok {
		return
	}
	bill, err := h.svc.Billing.Finalize(r.Context(), draftID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toBillResponse(bill))
}
