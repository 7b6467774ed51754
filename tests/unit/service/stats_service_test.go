package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"novabill/internal/domain"
	"novabill/internal/service"
	"novabill/mocks"
)

func TestStatsService_GetStats(t *testing.T) {
	repo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(repo)

	expected := &domain.InvoiceStats{
		TotalRevenue: 35326.0,
		Pending:      9153.0,
		Overdue:      11300.0,
	}
	repo.On("GetInvoiceStats", mock.Anything).Return(expected, nil)

	stats, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, stats)
	repo.AssertExpectations(t)
}

func TestStatsService_GetStats_RepoError(t *testing.T) {
	repo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(repo)

	repo.On("GetInvoiceStats", mock.Anything).Return(nil, errors.New("connection refused"))

	stats, err := svc.GetStats(context.Background())

	assert.Nil(t, stats)
	assert.Error(t, err)
}
