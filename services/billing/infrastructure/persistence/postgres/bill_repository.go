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

	"github.com/ezzystore/partsledger/pkg/database"
	"github.com/ezzystore/partsledger/pkg/events"
	billingdomain "github.com/ezzystore/partsledger/services/billing/domain"
	domainevents "github.com/ezzystore/partsledger/services/billing/domain/events"
	"github.com/ezzystore/partsledger/services/billing/domain/models"
)

const uniqueViolation = "23505"

// BillRepository implements repositories.BillRepository against PostgreSQL.
type BillRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewBillRepository returns a BillRepository backed by the given connection
// pool and event bus. The bus is used to publish BillFinalizedEvents with the
// insert.
func NewBillRepository(db *database.Database, bus *events.EventBus) *BillRepository {
	return &BillRepository{db: db, bus: bus}
}

// Save persists the bill header, all items and a BillFinalizedEvent in a
// single transaction. Either everything commits or nothing does. Returns
// ErrBillNumberConflict on bill-number collisions.
func (r *BillRepository) Save(ctx context.Context, bill *models.Bill) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO bills (id, bill_number, customer_name, total_amount, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			bill.ID, bill.BillNumber, bill.CustomerName, bill.TotalAmount, bill.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return billingdomain.ErrBillNumberConflict
			}
			return fmt.Errorf("insert bill: %w", err)
		}

		for _, item := range bill.Items {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO bill_items (id, bill_id, part_id, line_no, part_number, part_name, quantity, unit_price, total_price)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				item.ID, item.BillID, item.PartID, item.LineNo, item.PartNumber,
				item.PartName, item.Quantity, item.UnitPrice, item.TotalPrice,
			)
			if err != nil {
				return fmt.Errorf("insert bill item: %w", err)
			}
		}

		if r.bus != nil {
			if err := r.publishFinalized(tx, bill); err != nil {
				return fmt.Errorf("publish bill finalized: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a bill with its items. Returns ErrBillNotFound if not found.
func (r *BillRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bill, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, bill_number, customer_name, total_amount, created_at
		FROM bills WHERE id = $1`, id)

	bill, err := scanBill(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billingdomain.ErrBillNotFound
		}
		return nil, fmt.Errorf("query bill: %w", err)
	}

	if err := r.loadItems(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// FindAll retrieves all bills, newest first, with their items.
func (r *BillRepository) FindAll(ctx context.Context) ([]*models.Bill, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, bill_number, customer_name, total_amount, created_at
		FROM bills ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var bills []*models.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bills: %w", err)
	}

	for _, bill := range bills {
		if err := r.loadItems(ctx, bill); err != nil {
			return nil, err
		}
	}
	return bills, nil
}

// Delete removes a bill and, via ON DELETE CASCADE, its items.
// Returns ErrBillNotFound when no row matches.
func (r *BillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return billingdomain.ErrBillNotFound
	}
	return nil
}

func (r *BillRepository) loadItems(ctx context.Context, bill *models.Bill) error {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, bill_id, part_id, line_no, part_number, part_name, quantity, unit_price, total_price
		FROM bill_items WHERE bill_id = $1 ORDER BY line_no`, bill.ID)
	if err != nil {
		return fmt.Errorf("query bill items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		var item models.BillItem
		err := rows.Scan(
			&item.ID, &item.BillID, &item.PartID, &item.LineNo, &item.PartNumber,
			&item.PartName, &item.Quantity, &item.UnitPrice, &item.TotalPrice,
		)
		if err != nil {
			return fmt.Errorf("scan bill item: %w", err)
		}
		bill.Items = append(bill.Items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate bill items: %w", err)
	}
	return nil
}

func (r *BillRepository) publishFinalized(tx *sql.Tx, bill *models.Bill) error {
	event := domainevents.BillFinalizedEvent{
		EventID:      uuid.New(),
		Version:      1,
		BillID:       bill.ID,
		BillNumber:   bill.BillNumber,
		CustomerName: bill.CustomerName,
		TotalAmount:  bill.TotalAmount,
		ItemCount:    len(bill.Items),
		OccurredAt:   bill.CreatedAt,
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
	return p.Publish(domainevents.TopicBillFinalized, msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBill(row rowScanner) (*models.Bill, error) {
	var bill models.Bill
	err := row.Scan(&bill.ID, &bill.BillNumber, &bill.CustomerName, &bill.TotalAmount, &bill.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &bill, nil
}
