package service

import (
	"context"
	"strings"

	"novabill/internal/domain"
	"novabill/internal/port"
)

// CreateClientInput is the DTO for creating a client.
type CreateClientInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// ClientService defines the client management contract. Client deletion
// is intentionally not exposed; invoices hold a name snapshot and a
// nullable reference, and the storage layer rejects deletes that would
// orphan an invoice.
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
}

type clientService struct {
	repo port.ClientRepository
}

// NewClientService creates a new ClientService implementation.
func NewClientService(repo port.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *clientService) Create(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrNameRequired
	}
	client := &domain.Client{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		Phone:   input.Phone,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}
