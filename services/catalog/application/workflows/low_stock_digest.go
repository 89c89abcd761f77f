// Package workflows holds the catalog's Temporal workflows. The low-stock
// digest runs on a schedule from the worker process and summarizes parts
// that have fallen below their minimum stock level.
package workflows

import (
	"context"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ezzystore/partsledger/pkg/logger"
	"github.com/ezzystore/partsledger/services/catalog/domain/repositories"
	domainservices "github.com/ezzystore/partsledger/services/catalog/domain/services"
)

// TaskQueue is the Temporal task queue for catalog workflows.
const TaskQueue = "partsledger-catalog"

// LowStockLine is one entry of the digest.
type LowStockLine struct {
	PartID        string `json:"part_id"`
	PartNumber    string `json:"part_number"`
	PartName      string `json:"part_name"`
	StockQuantity int    `json:"stock_quantity"`
	MinStock      int    `json:"min_stock"`
}

// LowStockDigest is the workflow result.
type LowStockDigest struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Lines       []LowStockLine `json:"lines"`
}

// LowStockActivities holds the activity implementations. Activities talk to
// the database; the workflow itself stays deterministic.
type LowStockActivities struct {
	repo repositories.PartRepository
	log  logger.Logger
}

// NewLowStockActivities wires the digest activities.
func NewLowStockActivities(repo repositories.PartRepository, log logger.Logger) *LowStockActivities {
	return &LowStockActivities{repo: repo, log: log}
}

// FetchLowStockParts loads the catalog and returns every part below its
// minimum stock level.
func (a *LowStockActivities) FetchLowStockParts(ctx context.Context) ([]LowStockLine, error) {
	parts, err := a.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var lines []LowStockLine
	for _, part := range domainservices.LowStockParts(parts) {
		lines = append(lines, LowStockLine{
			PartID:        part.ID.String(),
			PartNumber:    part.PartNumber.String(),
			PartName:      part.PartName,
			StockQuantity: part.StockQuantity,
			MinStock:      part.MinStock,
		})
	}
	a.log.InfoContext(ctx, "low stock scan complete", "count", len(lines))
	return lines, nil
}

// LowStockDigestWorkflow collects the low-stock lines into a digest.
func LowStockDigestWorkflow(ctx workflow.Context) (LowStockDigest, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	})

	var lines []LowStockLine
	if err := workflow.ExecuteActivity(ctx, "FetchLowStockParts").Get(ctx, &lines); err != nil {
		return LowStockDigest{}, err
	}

	digest := LowStockDigest{
		GeneratedAt: workflow.Now(ctx).UTC(),
		Lines:       lines,
	}
	workflow.GetLogger(ctx).Info("low stock digest generated", "count", len(lines))
	return digest, nil
}
