package dto

import (
	"time"

	"github.com/jpriva/orders_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines data for creating a new product.
// Products start with zero stock and no prices.
type CreateProductRequest struct {
	CategoryID  string `json:"categoryID" binding:"required"`
	SKU         string `json:"sku" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// SetProductPriceRequest defines data for creating or replacing a product
// price in one currency.
type SetProductPriceRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3,uppercase"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
}

// IncreaseStockRequest carries the stock increment, bound from the amount
// query parameter.
type IncreaseStockRequest struct {
	Amount int64 `form:"amount" binding:"required,gt=0"`
}

// ProductResponse defines data returned for a product. Prices map currency
// codes to unit prices formatted with two decimal places.
type ProductResponse struct {
	ProductID     string            `json:"productID"`
	CompanyID     string            `json:"companyID"`
	CategoryID    string            `json:"categoryID"`
	SKU           string            `json:"sku"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	StockQuantity int64             `json:"stockQuantity"`
	Prices        map[string]string `json:"prices"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// ProductPriceResponse defines data returned when resolving a single price.
type ProductPriceResponse struct {
	ProductID    string `json:"productID"`
	CurrencyCode string `json:"currencyCode"`
	Amount       string `json:"amount"`
}

// ToProductResponse converts domain.Product to DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	prices := make(map[string]string, len(p.Prices))
	for code, amount := range p.Prices {
		prices[code] = amount.StringFixed(2)
	}
	return ProductResponse{
		ProductID:     p.ProductID,
		CompanyID:     p.CompanyID,
		CategoryID:    p.CategoryID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		StockQuantity: p.StockQuantity,
		Prices:        prices,
		CreatedAt:     p.CreatedAt,
	}
}

// ToProductResponseSlice converts a slice of domain.Product to DTOs.
func ToProductResponseSlice(ps []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(ps))
	for i, p := range ps {
		out[i] = ToProductResponse(&p)
	}
	return out
}
