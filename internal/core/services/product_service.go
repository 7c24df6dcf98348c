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
	"github.com/shopspring/decimal"
)

// productService implements product catalog operations.
type productService struct {
	BaseService
	productRepo  portsrepo.ProductRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	currencySvc  portssvc.CurrencyReaderSvc
}

// NewProductService creates a new product service.
func NewProductService(
	productRepo portsrepo.ProductRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	currencySvc portssvc.CurrencyReaderSvc,
) portssvc.ProductSvcFacade {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		currencySvc:  currencySvc,
	}
}

// Ensure implementation matches interface
var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct persists a new product with zero stock and no prices.
// The category must belong to the same company as the product.
func (s *productService) CreateProduct(ctx context.Context, companyID string, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category %s: %w", req.CategoryID, err)
	}
	if category.CompanyID != companyID {
		return nil, fmt.Errorf("%w: category %s does not belong to company %s", apperrors.ErrNotFound, req.CategoryID, companyID)
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:     uuid.NewString(),
		CompanyID:     companyID,
		CategoryID:    req.CategoryID,
		SKU:           req.SKU,
		Name:          req.Name,
		Description:   req.Description,
		StockQuantity: 0,
		Prices:        map[string]decimal.Decimal{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "failed to create product",
			slog.String("company_id", companyID),
			slog.String("sku", req.SKU))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.LogInfo(ctx, "product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

// SetProductPrice creates or replaces the product price for one currency.
// The currency must be part of the seeded catalog.
func (s *productService) SetProductPrice(ctx context.Context, productID string, req dto.SetProductPriceRequest, updaterUserID string) (*domain.Product, error) {
	if _, err := s.currencySvc.GetCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unsupported currency %s", apperrors.ErrValidation, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to resolve currency %s: %w", req.CurrencyCode, err)
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}

	if err := product.SetPrice(req.CurrencyCode, req.Amount); err != nil {
		return nil, err
	}

	if err := s.productRepo.SaveProductPrice(ctx, productID, req.CurrencyCode, product.Prices[req.CurrencyCode], updaterUserID); err != nil {
		s.LogError(ctx, err, "failed to save product price",
			slog.String("product_id", productID),
			slog.String("currency_code", req.CurrencyCode))
		return nil, fmt.Errorf("failed to save product price: %w", err)
	}

	s.LogInfo(ctx, "product price set",
		slog.String("product_id", productID),
		slog.String("currency_code", req.CurrencyCode))
	return product, nil
}

// IncreaseStock adds a positive amount to the product's stock counter.
func (s *productService) IncreaseStock(ctx context.Context, productID string, req dto.IncreaseStockRequest, updaterUserID string) (*domain.Product, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: stock increase must be positive", apperrors.ErrValidation)
	}

	newQuantity, err := s.productRepo.IncreaseStock(ctx, productID, req.Amount, updaterUserID)
	if err != nil {
		s.LogError(ctx, err, "failed to increase stock", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to increase stock of product %s: %w", productID, err)
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s after stock update: %w", productID, err)
	}

	s.LogInfo(ctx, "stock increased",
		slog.String("product_id", productID),
		slog.Int64("new_quantity", newQuantity))
	return product, nil
}

// GetProductByID retrieves a product with its prices by ID.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	return product, nil
}

// ListProducts retrieves all products of a company with their prices.
func (s *productService) ListProducts(ctx context.Context, companyID string) ([]domain.Product, error) {
	products, err := s.productRepo.ListProductsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products of company %s: %w", companyID, err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

// ResolvePrice returns the unit price of a product in the given currency.
// A product without a price in that currency is reported as not found.
func (s *productService) ResolvePrice(ctx context.Context, productID, currencyCode string) (decimal.Decimal, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	return product.PriceFor(currencyCode)
}
