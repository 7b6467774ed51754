package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"novabill/internal/domain"
	"novabill/internal/port"
)

// DocumentService produces and delivers rendered invoice documents. The
// renderer reproduces the stored figures verbatim; none of these
// operations recompute monetary fields.
type DocumentService interface {
	// Render streams the document for an already-fetched invoice to w.
	// Callers resolve the invoice first so delivery headers (filename,
	// content type) can be set before the first body byte is written.
	Render(ctx context.Context, inv *domain.Invoice, w io.Writer) error
	// EmailInvoice renders the document and sends it to the referenced
	// client's email address as a PDF attachment.
	EmailInvoice(ctx context.Context, id uuid.UUID) error
	// Archive renders the document and stores a copy in object storage,
	// returning the stored location.
	Archive(ctx context.Context, id uuid.UUID) (string, error)
}

type documentService struct {
	invoices port.InvoiceRepository
	clients  port.ClientRepository
	renderer port.DocumentRenderer
	email    port.EmailSender
	archive  port.DocumentArchive
	issuer   domain.Issuer
	prefix   string
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	invoices port.InvoiceRepository,
	clients port.ClientRepository,
	renderer port.DocumentRenderer,
	email port.EmailSender,
	archive port.DocumentArchive,
	issuer domain.Issuer,
	prefix string,
) DocumentService {
	return &documentService{
		invoices: invoices,
		clients:  clients,
		renderer: renderer,
		email:    email,
		archive:  archive,
		issuer:   issuer,
		prefix:   prefix,
	}
}

func (s *documentService) Render(ctx context.Context, inv *domain.Invoice, w io.Writer) error {
	if err := s.renderer.Render(ctx, inv, s.issuer, w); err != nil {
		return fmt.Errorf("rendering invoice %s: %w", inv.Number, err)
	}
	return nil
}

func (s *documentService) EmailInvoice(ctx context.Context, id uuid.UUID) error {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv.ClientID == nil {
		return domain.ErrClientNoEmail
	}
	client, err := s.clients.GetByID(ctx, *inv.ClientID)
	if err != nil {
		return err
	}
	if client.Email == "" {
		return domain.ErrClientNoEmail
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(ctx, inv, s.issuer, &buf); err != nil {
		return fmt.Errorf("rendering invoice %s: %w", inv.Number, err)
	}
	return s.email.SendInvoice(ctx, client.Email, inv.ClientName, inv.Number, buf.Bytes())
}

func (s *documentService) Archive(ctx context.Context, id uuid.UUID) (string, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(ctx, inv, s.issuer, &buf); err != nil {
		return "", fmt.Errorf("rendering invoice %s: %w", inv.Number, err)
	}

	key := fmt.Sprintf("%s/%s.pdf", s.prefix, inv.Number)
	return s.archive.Store(ctx, key, "application/pdf", buf.Bytes())
}
