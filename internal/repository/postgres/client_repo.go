package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"novabill/internal/domain"
	"novabill/internal/port"
)

type clientRepo struct {
	db *sqlx.DB
}

// NewClientRepo creates a new PostgreSQL-backed ClientRepository.
func NewClientRepo(db *sqlx.DB) port.ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *domain.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	client.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (id, name, email, address, phone, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		client.ID, client.Name, client.Email, client.Address, client.Phone, client.CreatedAt)
	if err != nil {
		return fmt.Errorf("clientRepo.Create: %w", err)
	}
	return nil
}

func (r *clientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var client domain.Client
	err := r.db.GetContext(ctx, &client, "SELECT * FROM clients WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("clientRepo.GetByID: %w", err)
	}
	return &client, nil
}

func (r *clientRepo) List(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.SelectContext(ctx, &clients, "SELECT * FROM clients ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("clientRepo.List: %w", err)
	}
	return clients, nil
}
