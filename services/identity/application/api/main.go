package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ezzystore/partsledger/pkg/app"
	"github.com/ezzystore/partsledger/services/identity/application/handlers"
	"github.com/ezzystore/partsledger/services/identity/domain"
)

// IdentityRoutes registers the login and logout endpoints. These stay outside
// the auth middleware so an unauthenticated client can reach them.
func IdentityRoutes(r chi.Router, a *app.Application, creds *domain.Credentials) {
	r.Post("/login", handlers.NewLoginHandler(creds, a.SessionStore, a.Logger).Execute)
	r.Post("/logout", handlers.NewLogoutHandler(a.SessionStore, a.Logger).Execute)
}
