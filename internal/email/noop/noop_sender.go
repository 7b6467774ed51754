package noop

import (
	"context"
	"log"

	"novabill/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoice(_ context.Context, toEmail, toName, invoiceNumber string, pdf []byte) error {
	log.Printf("[NOOP EMAIL] Invoice %s for %s (%s), %d byte attachment", invoiceNumber, toName, toEmail, len(pdf))
	return nil
}
