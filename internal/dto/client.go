package dto

import (
	"time"

	"github.com/jpriva/orders_backend/internal/core/domain"
)

// CreateClientRequest defines data for creating a new client.
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ClientResponse defines data returned for a client.
type ClientResponse struct {
	ClientID  string    `json:"clientID"`
	CompanyID string    `json:"companyID"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToClientResponse converts domain.Client to DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  c.ClientID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

// ToClientResponseSlice converts a slice of domain.Client to DTOs.
func ToClientResponseSlice(cs []domain.Client) []ClientResponse {
	out := make([]ClientResponse, len(cs))
	for i, c := range cs {
		out[i] = ToClientResponse(&c)
	}
	return out
}
