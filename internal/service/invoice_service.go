package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"novabill/internal/domain"
	"novabill/internal/numbering"
	"novabill/internal/port"
)

// numberRetries bounds the regenerate-and-retry loop for generated
// invoice numbers. The sequence read and the row insert are separate
// statements, so a concurrent create can still win the race; the unique
// constraint surfaces that as ErrDuplicateNumber and we draw a fresh
// sequence value.
const numberRetries = 3

// InvoiceService defines the invoice management contract.
type InvoiceService interface {
	List(ctx context.Context) ([]domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*domain.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceService struct {
	invoices port.InvoiceRepository
	clients  port.ClientRepository
	defaults ComputeDefaults
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(invoices port.InvoiceRepository, clients port.ClientRepository, defaults ComputeDefaults) InvoiceService {
	return &invoiceService{invoices: invoices, clients: clients, defaults: defaults}
}

func (s *invoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoices.List(ctx)
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *invoiceService) Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	inv, err := ComputeCreate(input, s.defaults)
	if err != nil {
		return nil, err
	}

	name, err := s.snapshotClientName(ctx, input.ClientID, input.ClientName)
	if err != nil {
		return nil, err
	}
	inv.ClientName = name

	if input.Number != nil {
		inv.Number = *input.Number
		if err := s.invoices.Create(ctx, inv); err != nil {
			return nil, err
		}
		return inv, nil
	}

	year := time.Now().UTC().Year()
	for attempt := 0; attempt < numberRetries; attempt++ {
		seq, err := s.invoices.NextNumber(ctx, year)
		if err != nil {
			return nil, err
		}
		inv.Number = numbering.Format(year, seq)

		err = s.invoices.Create(ctx, inv)
		if err == nil {
			return inv, nil
		}
		if !errors.Is(err, domain.ErrDuplicateNumber) {
			return nil, err
		}
	}
	return nil, domain.ErrDuplicateNumber
}

func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*domain.Invoice, error) {
	existing, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inv, err := ComputePatch(existing, input)
	if err != nil {
		return nil, err
	}

	// A patched client reference refreshes the display-name snapshot
	// unless the patch sets the name explicitly.
	if input.ClientID != nil && input.ClientName == nil {
		name, err := s.snapshotClientName(ctx, input.ClientID, nil)
		if err != nil {
			return nil, err
		}
		inv.ClientName = name
	}

	if err := s.invoices.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	// Deleting never releases the invoice number: the per-year sequence
	// only moves forward, so the number is not reused.
	return s.invoices.Delete(ctx, id)
}

// snapshotClientName resolves the display name stored on the invoice row.
// An explicit name wins; otherwise the referenced client's current name
// is captured. Invoices without a client reference fall back to a
// placeholder so the record stays renderable.
func (s *invoiceService) snapshotClientName(ctx context.Context, clientID *uuid.UUID, explicit *string) (string, error) {
	if explicit != nil && *explicit != "" {
		return *explicit, nil
	}
	if clientID != nil {
		client, err := s.clients.GetByID(ctx, *clientID)
		if err != nil {
			return "", err
		}
		return client.Name, nil
	}
	return "Unknown", nil
}
