package handlers

import (
	"net/http"

	"github.com/ezzystore/partsledger/pkg/errhttp"
	"github.com/ezzystore/partsledger/pkg/httpx"
	appsvcs "github.com/ezzystore/partsledger/services/billing/application/services"
	domainservices "github.com/ezzystore/partsledger/services/billing/domain/services"
)

// GetInvoiceHandler serves the printable invoice documents.
type GetInvoiceHandler struct {
	svc *appsvcs.Services
}

// NewGetInvoiceHandler returns a GetInvoiceHandler backed by the given services.
func NewGetInvoiceHandler(svc *appsvcs.Services) *GetInvoiceHandler {
	return &GetInvoiceHandler{svc: svc}
}

// Draft renders a print preview of an in-progress draft.
//
//	@Summary		Render draft invoice
//	@Description	Printable HTML preview; layout "a4" (default) or "compact"
//	@Tags			billing
//	@Produce		html
//	@Param			draftID	path		string	true	"Draft ID"
//	@Param			layout	query		string	false	"Invoice layout"	Enums(a4, compact)
//	@Success		200		{string}	string	"HTML document"
//	@Failure		400		{object}	BillingErrorResponse
//	@Failure		401		{object}	BillingErrorResponse
//	@Failure		404		{object}	BillingErrorResponse
//	@Failure		422		{object}	BillingErrorResponse
//	@Router			/billing/drafts/{draftID}/invoice [get]
func (h *GetInvoiceHandler) Draft(w http.ResponseWriter, r *http.Request) {
	draftID, ok := draftIDParam(w, r)
	if !ok {
		return
	}
	layout, err := domainservices.ParseLayout(r.URL.Query().Get("layout"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	doc, err := h.svc.Billing.RenderDraftInvoice(r.Context(), draftID, layout)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.HTML(w, http.StatusOK, doc)
}

// Bill renders the printable document for a saved bill.
//
//	@Summary		Render bill invoice
//	@Description	Printable HTML document; layout "a4" (default) or "compact"
//	@Tags			billing
//	@Produce		html
//	@Param			id		path		string	true	"Bill ID"
//	@Param			layout	query		string	false	"Invoice layout"	Enums(a4, compact)
//	@Success		200		{string}	string	"HTML document"
//	@Failure		400		{object}	BillingErrorResponse
//	@Failure		401		{object}	BillingErrorResponse
//	@Failure		404		{object}	BillingErrorResponse
//	@Router			/billing/bills/{id}/invoice [get]
func (h *GetInvoiceHandler) Bill(w http.ResponseWriter, r *http.Request) {
	id, ok := billIDParam(w, r)
	if !ok {
		return
	}
	layout, err := domainservices.ParseLayout(r.URL.Query().Get("layout"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	doc, err := h.svc.Billing.RenderBillInvoice(r.Context(), id, layout)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.HTML(w, http.StatusOK, doc)
}
