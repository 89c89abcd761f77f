package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/ezzystore/partsledger/pkg/app"
	"github.com/ezzystore/partsledger/pkg/cache"
	"github.com/ezzystore/partsledger/pkg/config"
	"github.com/ezzystore/partsledger/pkg/database"
	"github.com/ezzystore/partsledger/pkg/events"
	"github.com/ezzystore/partsledger/pkg/logger"
	"github.com/ezzystore/partsledger/pkg/telemetry"
	"github.com/ezzystore/partsledger/pkg/workflows"
	billingEvents "github.com/ezzystore/partsledger/services/billing/domain/events"
	catalogWorkflows "github.com/ezzystore/partsledger/services/catalog/application/workflows"
	catalogEvents "github.com/ezzystore/partsledger/services/catalog/domain/events"
	catalogPostgres "github.com/ezzystore/partsledger/services/catalog/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	if err != nil {
		log.Error("failed to initialize temporal client", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer temporalClient.Close()

	appConfig := &app.Application{
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	temporalWorker, err := startTemporalWorker(ctx, appConfig)
	if err != nil {
		log.Error("failed to start temporal worker", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	temporalWorker.Stop()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := []string{catalogEvents.TopicPartCreated, billingEvents.TopicBillFinalized}

	partErrCh, err := a.EventBus.Subscribe(ctx, catalogEvents.TopicPartCreated, handlePartCreated(a))
	if err != nil {
		return err
	}
	billErrCh, err := a.EventBus.Subscribe(ctx, billingEvents.TopicBillFinalized, handleBillFinalized(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channels never block.
	drain := func(topic string, errCh <-chan error) {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
		}
	}
	go drain(catalogEvents.TopicPartCreated, partErrCh)
	go drain(billingEvents.TopicBillFinalized, billErrCh)

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handlePartCreated returns a handler for catalog.part.created events.
// Handlers must be idempotent as the EventBus retries up to 3x on failure.
// Warms the Redis read-model cache so subsequent GetByID calls are served
// from cache.
func handlePartCreated(a *app.Application) func(context.Context, *message.Message) error {
	partCache := cache.NewPartCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.PartCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := partCache.Set(ctx, &cache.CachedPart{
			ID:            evt.PartID,
			PartNumber:    evt.PartNumber,
			PartName:      evt.PartName,
			Category:      evt.Category,
			SellingPrice:  evt.SellingPrice,
			StockQuantity: evt.StockQuantity,
			MinStock:      evt.MinStock,
			Unit:          "piece",
			CreatedAt:     evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for part.created",
				"part_id", evt.PartID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed", "part_id", evt.PartID)
		}

		return nil
	}
}

// handleBillFinalized returns a handler for billing.bill.finalized events.
// For now the digest is audit logging; reporting consumers hang off this
// topic without touching the billing tables.
func handleBillFinalized(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt billingEvents.BillFinalizedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "bill finalized",
			"bill_id", evt.BillID,
			"bill_number", evt.BillNumber,
			"customer", evt.CustomerName,
			"total", evt.TotalAmount,
			"items", evt.ItemCount,
		)
		return nil
	}
}

// startTemporalWorker registers the low-stock digest workflow and kicks off
// its nightly cron run. Starting an already-running cron workflow fails with
// an already-started error, which is ignored.
func startTemporalWorker(ctx context.Context, a *app.Application) (worker.Worker, error) {
	w := worker.New(a.TemporalClient.Client, catalogWorkflows.TaskQueue, worker.Options{})

	repo := catalogPostgres.NewPartRepository(a.Db, nil)
	w.RegisterWorkflow(catalogWorkflows.LowStockDigestWorkflow)
	w.RegisterActivity(catalogWorkflows.NewLowStockActivities(repo, a.Logger).FetchLowStockParts)

	if err := w.Start(); err != nil {
		return nil, err
	}

	_, err := a.TemporalClient.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:           "low-stock-digest",
		TaskQueue:    catalogWorkflows.TaskQueue,
		CronSchedule: "0 8 * * *",
	}, catalogWorkflows.LowStockDigestWorkflow)
	if err != nil {
		a.Logger.Warn("could not schedule low stock digest", "error", err)
	}

	a.Logger.Info("temporal worker started", "task_queue", catalogWorkflows.TaskQueue)
	return w, nil
}
