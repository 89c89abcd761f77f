package app

import (
	"github.com/gorilla/sessions"

	"github.com/ezzystore/partsledger/pkg/cache"
	"github.com/ezzystore/partsledger/pkg/database"
	"github.com/ezzystore/partsledger/pkg/events"
	"github.com/ezzystore/partsledger/pkg/logger"
	"github.com/ezzystore/partsledger/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route-registration calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "saving bill", "bill_number", n)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
	SessionStore   sessions.Store // Redis-backed session store; nil in worker process
}
