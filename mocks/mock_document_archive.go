package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockDocumentArchive is a mock implementation of port.DocumentArchive.
type MockDocumentArchive struct {
	mock.Mock
}

func (m *MockDocumentArchive) Store(ctx context.Context, key, contentType string, body []byte) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}
