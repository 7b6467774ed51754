package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"novabill/internal/domain"
)

// MockStatsRepo is a mock implementation of port.StatsRepository.
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) GetInvoiceStats(ctx context.Context) (*domain.InvoiceStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceStats), args.Error(1)
}
