package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jpriva/orders_backend/internal/apperrors"
	"github.com/jpriva/orders_backend/internal/core/domain"
	portsrepo "github.com/jpriva/orders_backend/internal/core/ports/repositories"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
	"github.com/jpriva/orders_backend/internal/dto"
)

// clientService implements client registry operations.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

// Ensure implementation matches interface
var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient persists a new client for a company.
func (s *clientService) CreateClient(ctx context.Context, companyID string, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	now := time.Now().UTC()

	client := domain.Client{
		ClientID:  uuid.NewString(),
		CompanyID: companyID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "failed to create client", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.LogInfo(ctx, "client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

// EnsureClientForUser returns the client linked to the user within the
// company. When none exists yet, one is created from the user's details so
// that external users can place orders without prior registry work.
func (s *clientService) EnsureClientForUser(ctx context.Context, companyID string, user domain.User) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByUserID(ctx, companyID, user.UserID)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up client for user %s: %w", user.UserID, err)
	}

	now := time.Now().UTC()
	userID := user.UserID
	newClient := domain.Client{
		ClientID:  uuid.NewString(),
		CompanyID: companyID,
		UserID:    &userID,
		Name:      user.FullName,
		Email:     user.Email,
		Phone:     user.Phone,
		Address:   user.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     user.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: user.UserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, newClient); err != nil {
		s.LogError(ctx, err, "failed to create client for user", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to create client for user %s: %w", user.UserID, err)
	}

	s.LogInfo(ctx, "client created for user",
		slog.String("client_id", newClient.ClientID),
		slog.String("user_id", user.UserID))
	return &newClient, nil
}

// GetClientByID retrieves a client by its ID.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s: %w", clientID, err)
	}
	return client, nil
}

// GetClientForUser retrieves the client linked to a user within a company.
func (s *clientService) GetClientForUser(ctx context.Context, companyID, userID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByUserID(ctx, companyID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client for user %s: %w", userID, err)
	}
	return client, nil
}

// ListClients retrieves all clients of a company.
func (s *clientService) ListClients(ctx context.Context, companyID string) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClientsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients of company %s: %w", companyID, err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}
