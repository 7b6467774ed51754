package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"novabill/internal/domain"
	"novabill/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const invoiceStatsQuery = `SELECT
	COALESCE(SUM(CASE WHEN status = 'paid' THEN total END), 0) AS total_revenue,
	COALESCE(SUM(CASE WHEN status = 'sent' THEN total END), 0) AS pending,
	COALESCE(SUM(CASE WHEN status = 'overdue' THEN total END), 0) AS overdue
FROM invoices`

func (r *statsRepo) GetInvoiceStats(ctx context.Context) (*domain.InvoiceStats, error) {
	var stats domain.InvoiceStats
	if err := r.db.GetContext(ctx, &stats, invoiceStatsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetInvoiceStats: %w", err)
	}
	return &stats, nil
}
