package dto

import "github.com/jpriva/orders_backend/internal/core/domain"

// CreateCategoryRequest defines data for creating a new category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryResponse defines data returned for a category.
type CategoryResponse struct {
	CategoryID  string `json:"categoryID"`
	CompanyID   string `json:"companyID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ToCategoryResponse converts domain.Category to DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// ToCategoryResponseSlice converts a slice of domain.Category to DTOs.
func ToCategoryResponseSlice(cs []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		out[i] = ToCategoryResponse(&c)
	}
	return out
}
