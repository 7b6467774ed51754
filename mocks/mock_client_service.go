package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"novabill/internal/domain"
	"novabill/internal/service"
)

// MockClientService is a mock implementation of service.ClientService.
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientService) Create(ctx context.Context, input service.CreateClientInput) (*domain.Client, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
