package services

import (
	"github.com/ezzystore/partsledger/pkg/app"
	"github.com/ezzystore/partsledger/pkg/cache"
	billingpostgres "github.com/ezzystore/partsledger/services/billing/infrastructure/persistence/postgres"
	catalogpostgres "github.com/ezzystore/partsledger/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Billing *BillingService
}

// New wires all billing application services with infrastructure from the
// Application container. The catalog repository is read-only here: billing
// looks parts up when lines are added but never writes to the catalog.
func New(a *app.Application) *Services {
	bills := billingpostgres.NewBillRepository(a.Db, a.EventBus)
	parts := catalogpostgres.NewPartRepository(a.Db, nil)
	drafts := cache.NewDraftStore(a.Redis)
	return &Services{
		Billing: NewBillingService(bills, parts, drafts),
	}
}
