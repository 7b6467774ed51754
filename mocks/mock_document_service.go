package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"novabill/internal/domain"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock

	// Output, when set, is written to w on each successful Render call.
	Output []byte
}

func (m *MockDocumentService) Render(ctx context.Context, inv *domain.Invoice, w io.Writer) error {
	args := m.Called(ctx, inv, w)
	if args.Error(0) == nil && len(m.Output) > 0 {
		_, _ = w.Write(m.Output)
	}
	return args.Error(0)
}

func (m *MockDocumentService) EmailInvoice(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentService) Archive(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
