package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/ezzystore/partsledger/pkg/database"
	"github.com/ezzystore/partsledger/pkg/events"
	catalogdomain "github.com/ezzystore/partsledger/services/catalog/domain"
	domainevents "github.com/ezzystore/partsledger/services/catalog/domain/events"
	"github.com/ezzystore/partsledger/services/catalog/domain/models"
)

const uniqueViolation = "23505"

// PartRepository implements repositories.PartRepository against PostgreSQL.
type PartRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewPartRepository returns a PartRepository backed by the given connection pool
// and event bus. The bus is used to publish PartCreatedEvents with the insert.
func NewPartRepository(db *database.Database, bus *events.EventBus) *PartRepository {
	return &PartRepository{db: db, bus: bus}
}

const partColumns = `id, part_number, part_name, category, manufacturer, description,
	selling_price, cost_price, stock_quantity, min_stock, unit, location, created_at`

// Save persists a new Part and publishes a PartCreatedEvent within the same
// transaction. Returns ErrPartAlreadyExists on part-number collisions.
func (r *PartRepository) Save(ctx context.Context, part *models.Part) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO spare_parts (`+partColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			part.ID,
			part.PartNumber.String(),
			part.PartName,
			part.Category,
			nullString(part.Manufacturer),
			nullString(part.Description),
			part.SellingPrice,
			nullDecimal(part.CostPrice),
			part.StockQuantity,
			part.MinStock,
			part.Unit,
			nullString(part.Location),
			part.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return catalogdomain.ErrPartAlreadyExists
			}
			return fmt.Errorf("insert part: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, part); err != nil {
				return fmt.Errorf("publish part created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a Part by ID. Returns ErrPartNotFound if not found.
func (r *PartRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Part, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+partColumns+` FROM spare_parts WHERE id = $1`, id)

	part, err := scanPart(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrPartNotFound
		}
		return nil, fmt.Errorf("query part: %w", err)
	}
	return part, nil
}

// FindAll retrieves every part ordered by part number.
func (r *PartRepository) FindAll(ctx context.Context) ([]*models.Part, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+partColumns+` FROM spare_parts ORDER BY part_number`)
	if err != nil {
		return nil, fmt.Errorf("query parts: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var parts []*models.Part
	for rows.Next() {
		part, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		parts = append(parts, part)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parts: %w", err)
	}
	return parts, nil
}

// Update persists changes to an existing Part. Last write wins.
// Returns ErrPartNotFound when no row matches.
func (r *PartRepository) Update(ctx context.Context, part *models.Part) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE spare_parts
		SET part_number = $2, part_name = $3, category = $4, manufacturer = $5,
			description = $6, selling_price = $7, cost_price = $8,
			stock_quantity = $9, min_stock = $10, unit = $11, location = $12
		WHERE id = $1`,
		part.ID,
		part.PartNumber.String(),
		part.PartName,
		part.Category,
		nullString(part.Manufacturer),
		nullString(part.Description),
		part.SellingPrice,
		nullDecimal(part.CostPrice),
		part.StockQuantity,
		part.MinStock,
		part.Unit,
		nullString(part.Location),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return catalogdomain.ErrPartAlreadyExists
		}
		return fmt.Errorf("update part: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return catalogdomain.ErrPartNotFound
	}
	return nil
}

// Delete removes a part by ID. Returns ErrPartNotFound when no row matches.
func (r *PartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM spare_parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return catalogdomain.ErrPartNotFound
	}
	return nil
}

func (r *PartRepository) publishCreated(tx *sql.Tx, part *models.Part) error {
	event := domainevents.PartCreatedEvent{
		EventID:       uuid.New(),
		Version:       1,
		PartID:        part.ID,
		PartNumber:    part.PartNumber.String(),
		PartName:      part.PartName,
		Category:      part.Category,
		SellingPrice:  part.SellingPrice,
		StockQuantity: part.StockQuantity,
		MinStock:      part.MinStock,
		OccurredAt:    part.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicPartCreated, msg)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPart maps a spare_parts row to a domain models.Part.
// NULLable columns (manufacturer, description, cost_price, location) map to
// zero values on the domain model.
func scanPart(row rowScanner) (*models.Part, error) {
	var (
		part         models.Part
		partNumber   string
		manufacturer sql.NullString
		description  sql.NullString
		costPrice    decimal.NullDecimal
		location     sql.NullString
	)
	err := row.Scan(
		&part.ID,
		&partNumber,
		&part.PartName,
		&part.Category,
		&manufacturer,
		&description,
		&part.SellingPrice,
		&costPrice,
		&part.StockQuantity,
		&part.MinStock,
		&part.Unit,
		&location,
		&part.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	part.PartNumber = models.PartNumber(partNumber)
	part.Manufacturer = manufacturer.String
	part.Description = description.String
	part.Location = location.String
	if costPrice.Valid {
		part.CostPrice = costPrice.Decimal
	}
	return &part, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// nullDecimal maps a zero cost price to NULL. The domain model uses decimal
// zero for "cost not recorded" (the API cannot distinguish an omitted
// cost_price from an explicit 0; both decode to zero), so the two are the
// same value everywhere and NULL is the stored form of that value.
func nullDecimal(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: !d.IsZero()}
}
