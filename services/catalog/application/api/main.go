package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ezzystore/partsledger/pkg/app"
	"github.com/ezzystore/partsledger/services/catalog/application/handlers"
	appsvcs "github.com/ezzystore/partsledger/services/catalog/application/services"
)

// CatalogRoutes registers spare-part endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	get := handlers.NewGetPartsHandler(svcs)
	r.Route("/parts", func(r chi.Router) {
		r.Get("/", get.List)
		r.Post("/", handlers.NewPostPartHandler(svcs).Execute)
		r.Get("/search", get.Search)
		r.Get("/low-stock", get.LowStock)
		r.Get("/{id}", get.GetByID)
		r.Put("/{id}", handlers.NewPutPartHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeletePartHandler(svcs).Execute)
	})
}
