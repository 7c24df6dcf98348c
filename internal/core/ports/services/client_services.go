package services

import (
	"context"

	"github.com/jpriva/orders_backend/internal/core/domain"
	"github.com/jpriva/orders_backend/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a client by its ID.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// GetClientForUser retrieves the client linked to a user within a company.
	GetClientForUser(ctx context.Context, companyID, userID string) (*domain.Client, error)

	// ListClients retrieves all clients of a company.
	ListClients(ctx context.Context, companyID string) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// CreateClient persists a new client for a company.
	CreateClient(ctx context.Context, companyID string, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)

	// EnsureClientForUser returns the client linked to the user within the
	// company, creating one from the user's details if none exists.
	EnsureClientForUser(ctx context.Context, companyID string, user domain.User) (*domain.Client, error)
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
