package services

import (
	"context"

	"github.com/jpriva/orders_backend/internal/core/domain"
	"github.com/jpriva/orders_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// ProductReaderSvc defines read operations for product data
type ProductReaderSvc interface {
	// GetProductByID retrieves a product with its prices by ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves all products of a company with their prices.
	ListProducts(ctx context.Context, companyID string) ([]domain.Product, error)

	// ResolvePrice returns the unit price of a product in the given currency.
	ResolvePrice(ctx context.Context, productID, currencyCode string) (decimal.Decimal, error)
}

// ProductWriterSvc defines write operations for product data
type ProductWriterSvc interface {
	// CreateProduct persists a new product with zero stock and no prices.
	CreateProduct(ctx context.Context, companyID string, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// SetProductPrice creates or replaces the product price for a currency.
	SetProductPrice(ctx context.Context, productID string, req dto.SetProductPriceRequest, updaterUserID string) (*domain.Product, error)

	// IncreaseStock adds a positive amount to the product's stock counter.
	IncreaseStock(ctx context.Context, productID string, req dto.IncreaseStockRequest, updaterUserID string) (*domain.Product, error)
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
