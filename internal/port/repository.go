package port

import (
	"context"

	"github.com/google/uuid"

	"novabill/internal/domain"
)

// InvoiceRepository defines the contract for invoice persistence. The
// storage engine owns serialization of concurrent writes to the same row
// and enforces the invoice number uniqueness constraint; Create surfaces
// a collision as domain.ErrDuplicateNumber so callers with generated
// numbers can regenerate and retry.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error

	// NextNumber atomically reserves the next sequence value for the
	// given year and returns it. The per-year sequence row is seeded
	// from a scan of existing invoice numbers the first time a year is
	// seen, and is never decremented, so numbers are not reused even
	// after deletion.
	NextNumber(ctx context.Context, year int) (int, error)
}

// ClientRepository defines the contract for client persistence.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
}

// StatsRepository provides aggregate statistics queries.
type StatsRepository interface {
	GetInvoiceStats(ctx context.Context) (*domain.InvoiceStats, error)
}
