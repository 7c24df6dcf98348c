package repositories

import (
	"context"

	"github.com/jpriva/orders_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product with its prices by ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProductsByCompany retrieves all products of a company with their prices.
	ListProductsByCompany(ctx context.Context, companyID string) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// SaveProductPrice inserts or replaces the price of a product for one currency.
	SaveProductPrice(ctx context.Context, productID, currencyCode string, amount decimal.Decimal, updaterUserID string) error

	// IncreaseStock atomically adds amount to the product's stock counter and
	// returns the new quantity.
	IncreaseStock(ctx context.Context, productID string, amount int64, updaterUserID string) (int64, error)
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}

// ProductRepositoryWithTx extends ProductRepositoryFacade with transaction capabilities
type ProductRepositoryWithTx interface {
	ProductRepositoryFacade
	TransactionManager
}
