package domain

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrItemsRequired   = errors.New("invoice requires at least one line item")
	ErrInvalidStatus   = errors.New("invalid invoice status")
	ErrDuplicateNumber = errors.New("invoice number already exists")
	ErrNameRequired    = errors.New("client name is required")
	ErrClientNoEmail   = errors.New("client has no email address on file")
	ErrArchiveDisabled = errors.New("document archiving is not configured")
)
