package service

import (
	"context"

	"novabill/internal/domain"
	"novabill/internal/port"
)

// StatsService provides aggregate invoice statistics.
type StatsService interface {
	GetStats(ctx context.Context) (*domain.InvoiceStats, error)
}

type statsService struct {
	statsRepo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(statsRepo port.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStats(ctx context.Context) (*domain.InvoiceStats, error) {
	return s.statsRepo.GetInvoiceStats(ctx)
}
