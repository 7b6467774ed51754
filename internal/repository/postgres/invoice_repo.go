package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"novabill/internal/domain"
	"novabill/internal/numbering"
	"novabill/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	inv.CreatedAt = time.Now().UTC()

	query := `INSERT INTO invoices (
		id, invoice_number, client_id, client_name, items,
		subtotal, tax_rate, tax_amount, discount, total,
		currency, status, created_at, due_date
	) VALUES (
		$1, $2, $3, $4, $5,
		$6, $7, $8, $9, $10,
		$11, $12, $13, $14
	)`

	_, err := r.db.ExecContext(ctx, query,
		inv.ID, inv.Number, inv.ClientID, inv.ClientName, inv.Items,
		inv.Subtotal, inv.TaxRate, inv.TaxAmount, inv.Discount, inv.Total,
		inv.Currency, inv.Status, inv.CreatedAt, inv.DueDate)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "invoice_number") {
			return domain.ErrDuplicateNumber
		}
		if strings.Contains(err.Error(), "violates foreign key") {
			return domain.ErrClientNotFound
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET
			client_id = $1, client_name = $2, items = $3,
			subtotal = $4, tax_rate = $5, tax_amount = $6, discount = $7, total = $8,
			currency = $9, status = $10, due_date = $11
		 WHERE id = $12`,
		inv.ClientID, inv.ClientName, inv.Items,
		inv.Subtotal, inv.TaxRate, inv.TaxAmount, inv.Discount, inv.Total,
		inv.Currency, inv.Status, inv.DueDate, inv.ID)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key") {
			return domain.ErrClientNotFound
		}
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

// NextNumber reserves the next sequence value for a year. The sequence
// row is the source of truth and the increment is atomic, so two
// concurrent creates cannot observe the same value once the row exists.
// Only the first use of a year pays for a scan of existing numbers,
// which seeds the row to cover data created before the sequence table
// existed.
func (r *invoiceRepo) NextNumber(ctx context.Context, year int) (int, error) {
	var seq int
	err := r.db.GetContext(ctx, &seq,
		`UPDATE invoice_sequences SET last_value = last_value + 1
		 WHERE year = $1
		 RETURNING last_value`, year)
	if err == nil {
		return seq, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("invoiceRepo.NextNumber: %w", err)
	}

	var numbers []string
	err = r.db.SelectContext(ctx, &numbers,
		"SELECT invoice_number FROM invoices WHERE invoice_number LIKE $1",
		fmt.Sprintf("%s-%d-%%", numbering.Prefix, year))
	if err != nil {
		return 0, fmt.Errorf("invoiceRepo.NextNumber scan: %w", err)
	}
	seed := numbering.MaxSeq(numbers, year)

	// Two creates can race the first insert of a year; the conflict arm
	// keeps the increment atomic for the loser.
	err = r.db.GetContext(ctx, &seq,
		`INSERT INTO invoice_sequences (year, last_value)
		 VALUES ($1, $2)
		 ON CONFLICT (year) DO UPDATE SET last_value = invoice_sequences.last_value + 1
		 RETURNING last_value`,
		year, seed+1)
	if err != nil {
		return 0, fmt.Errorf("invoiceRepo.NextNumber seed: %w", err)
	}
	return seq, nil
}
