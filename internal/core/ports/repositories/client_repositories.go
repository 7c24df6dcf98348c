package repositories

import (
	"context"

	"github.com/jpriva/orders_backend/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a client by its ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClientByUserID retrieves the client linked to a user within a company.
	FindClientByUserID(ctx context.Context, companyID, userID string) (*domain.Client, error)

	// ListClientsByCompany retrieves all clients of a company.
	ListClientsByCompany(ctx context.Context, companyID string) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}

// ClientRepositoryWithTx extends ClientRepositoryFacade with transaction capabilities
type ClientRepositoryWithTx interface {
	ClientRepositoryFacade
	TransactionManager
}
