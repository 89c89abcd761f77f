package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ezzystore/partsledger/pkg/errhttp"
	"github.com/ezzystore/partsledger/pkg/httpx"
	appsvcs "github.com/ezzystore/partsledger/services/billing/application/services"
)

// BillsHandler handles the saved-bill endpoints.
type BillsHandler struct {
	svc *appsvcs.Services
}

// NewBillsHandler returns a BillsHandler backed by the given services.
func NewBillsHandler(svc *appsvcs.Services) *BillsHandler {
	return &BillsHandler{svc: svc}
}

// List returns all saved bills, newest first.
//
//	@Summary		List bills
//	@Tags			billing
//	@Produce		json
//	@Success		200	{array}		BillResponse
//	@Failure		401	{object}	BillingErrorResponse
//	@Router			/billing/bills [get]
func (h *BillsHandler) List(w http.ResponseWriter, r *http.Request) {
	bills, err := h.svc.Billing.ListBills(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toBillResponses(bills))
}

// GetByID returns a saved bill with its items.
//
//	@Summary		Get bill
//	@Tags			billing
//	@Produce		json
//	@Param			id	path		string	true	"Bill ID"
//	@Success		200	{object}	BillResponse
//	@Failure		401	{object}	BillingErrorResponse
//	@Failure		404	{object}	BillingErrorResponse
//	@Router			/billing/bills/{id} [get]
func (h *BillsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := billIDParam(w, r)
	if !ok {
		return
	}
	bill, err := h.svc.Billing.GetBill(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toBillResponse(bill))
}

// Delete removes a saved bill and its items.
//
//	@Summary		Delete bill
//	@Tags			billing
//	@Param			id	path	string	true	"Bill ID"
//	@Success		204
//	@Failure		400	{object}	BillingErrorResponse
//	@Failure		401	{object}	BillingErrorResponse
//	@Failure		404	{object}	BillingErrorResponse
//	@Router			/billing/bills/{id} [delete]
func (h *BillsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := billIDParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.Billing.DeleteBill(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func billIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid bill id")
		return uuid.Nil, false
	}
	return id, true
}
