package dto

import (
	"time"

	"github.com/jpriva/orders_backend/internal/core/domain"
)

// CreateCompanyRequest defines data for creating a new company.
type CreateCompanyRequest struct {
	TaxID   string `json:"taxID" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CompanyResponse defines data returned for a company.
type CompanyResponse struct {
	CompanyID string    `json:"companyID"`
	TaxID     string    `json:"taxID"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCompanyResponse converts domain.Company to DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID: c.CompanyID,
		TaxID:     c.TaxID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

// ToCompanyResponseSlice converts a slice of domain.Company to DTOs.
func ToCompanyResponseSlice(cs []domain.Company) []CompanyResponse {
	out := make([]CompanyResponse, len(cs))
	for i, c := range cs {
		out[i] = ToCompanyResponse(&c)
	}
	return out
}
