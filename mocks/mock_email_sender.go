package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendInvoice(ctx context.Context, toEmail, toName, invoiceNumber string, pdf []byte) error {
	args := m.Called(ctx, toEmail, toName, invoiceNumber, pdf)
	return args.Error(0)
}
