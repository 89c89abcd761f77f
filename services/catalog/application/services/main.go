package services

import (
	"github.com/ezzystore/partsledger/pkg/app"
	"github.com/ezzystore/partsledger/pkg/cache"
	"github.com/ezzystore/partsledger/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Catalog *CatalogService
}

// New wires all catalog application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewPartRepository(a.Db, a.EventBus)
	partCache := cache.NewPartCache(a.Redis)
	return &Services{
		Catalog: NewCatalogService(repo, partCache),
	}
}
