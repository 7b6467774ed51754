package port

import "context"

// EmailSender delivers a rendered invoice document to a client.
type EmailSender interface {
	SendInvoice(ctx context.Context, toEmail, toName, invoiceNumber string, pdf []byte) error
}
