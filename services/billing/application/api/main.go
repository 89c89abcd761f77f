package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ezzystore/partsledger/pkg/app"
	"github.com/ezzystore/partsledger/services/billing/application/handlers"
	appsvcs "github.com/ezzystore/partsledger/services/billing/application/services"
)

// BillingRoutes registers draft and bill endpoints on the provided chi router.
func BillingRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	drafts := handlers.NewDraftsHandler(svcs)
	items := handlers.NewDraftItemsHandler(svcs)
	bills := handlers.NewBillsHandler(svcs)
	invoices := handlers.NewGetInvoiceHandler(svcs)

	r.Route("/billing", func(r chi.Router) {
		r.Route("/drafts", func(r chi.Router) {
			r.Post("/", drafts.Start)
			r.Route("/{draftID}", func(r chi.Router) {
				r.Get("/", drafts.Get)
				r.Put("/", drafts.Update)
				r.Delete("/", drafts.Cancel)
				r.Post("/items", items.Add)
				r.Delete("/items/{partID}", items.Remove)
				r.Post("/finalize", handlers.NewFinalizeDraftHandler(svcs).Execute)
				r.Get("/invoice", invoices.Draft)
			})
		})
		r.Route("/bills", func(r chi.Router) {
			r.Get("/", bills.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", bills.GetByID)
				r.Delete("/", bills.Delete)
				r.Get("/invoice", invoices.Bill)
			})
		})
	})
}
