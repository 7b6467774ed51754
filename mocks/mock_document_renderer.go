package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"novabill/internal/domain"
)

// MockDocumentRenderer is a mock implementation of port.DocumentRenderer.
type MockDocumentRenderer struct {
	mock.Mock

	// Output, when set, is written to w on each successful Render call.
	Output []byte
}

func (m *MockDocumentRenderer) Render(ctx context.Context, inv *domain.Invoice, issuer domain.Issuer, w io.Writer) error {
	args := m.Called(ctx, inv, issuer, w)
	if args.Error(0) == nil && len(m.Output) > 0 {
		_, _ = w.Write(m.Output)
	}
	return args.Error(0)
}
