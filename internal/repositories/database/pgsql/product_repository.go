package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jpriva/orders_backend/internal/apperrors"
	"github.com/jpriva/orders_backend/internal/core/domain"
	portsrepo "github.com/jpriva/orders_backend/internal/core/ports/repositories"
	"github.com/jpriva/orders_backend/internal/models"
	"github.com/jpriva/orders_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryWithTx {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProductRepositoryWithTx = (*PgxProductRepository)(nil)

const productColumns = `product_id, company_id, category_id, sku, name, description, stock_quantity, created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.CompanyID,
		&m.CategoryID,
		&m.SKU,
		&m.Name,
		&m.Description,
		&m.StockQuantity,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// fetchProductPrices loads the price rows for a set of products, keyed by product ID.
func fetchProductPrices(ctx context.Context, q querier, productIDs []string) (map[string][]models.ProductPrice, error) {
	if len(productIDs) == 0 {
		return map[string][]models.ProductPrice{}, nil
	}
	query := `
		SELECT product_id, currency_code, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM product_prices
		WHERE product_id = ANY($1)
		ORDER BY product_id, currency_code;
	`
	rows, err := q.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query product prices: %w", err)
	}
	defer rows.Close()

	prices := make(map[string][]models.ProductPrice)
	for rows.Next() {
		var p models.ProductPrice
		if err := rows.Scan(
			&p.ProductID,
			&p.CurrencyCode,
			&p.Amount,
			&p.CreatedAt,
			&p.CreatedBy,
			&p.LastUpdatedAt,
			&p.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product price: %w", err)
		}
		prices[p.ProductID] = append(prices[p.ProductID], p)
	}
	return prices, rows.Err()
}

// SaveProduct inserts a new product. A duplicate SKU within the company maps
// to ErrDuplicate, a missing company or category to ErrNotFound.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.CompanyID, m.CategoryID, m.SKU, m.Name, m.Description, m.StockQuantity,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product with SKU %s in company %s", apperrors.ErrDuplicate, m.SKU, m.CompanyID)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: company or category for product %s", apperrors.ErrNotFound, m.ProductID)
		}
		return fmt.Errorf("failed to save product %s: %w", m.ProductID, err)
	}
	return nil
}

// SaveProductPrice inserts or replaces the price of a product for one currency.
func (r *PgxProductRepository) SaveProductPrice(ctx context.Context, productID, currencyCode string, amount decimal.Decimal, updaterUserID string) error {
	now := time.Now().UTC()

	query := `
		INSERT INTO product_prices (product_id, currency_code, amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $4, $5)
		ON CONFLICT (product_id, currency_code) DO UPDATE SET
			amount = EXCLUDED.amount,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, productID, currencyCode, amount, now, updaterUserID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
		return fmt.Errorf("failed to save price of product %s in %s: %w", productID, currencyCode, err)
	}
	return nil
}

// IncreaseStock atomically adds amount to the stock counter and returns the
// new quantity. The single UPDATE serializes concurrent increments.
func (r *PgxProductRepository) IncreaseStock(ctx context.Context, productID string, amount int64, updaterUserID string) (int64, error) {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity + $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE product_id = $1
		RETURNING stock_quantity;
	`
	var newQuantity int64
	err := r.Pool.QueryRow(ctx, query, productID, amount, time.Now().UTC(), updaterUserID).Scan(&newQuantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("failed to increase stock of product %s: %w", productID, err)
	}
	return newQuantity, nil
}

// FindProductByID retrieves a product with its prices by ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by id %s: %w", productID, err)
	}

	prices, err := fetchProductPrices(ctx, r.Pool, []string{m.ProductID})
	if err != nil {
		return nil, err
	}

	domainProduct := mapping.ToDomainProduct(m, prices[m.ProductID])
	return &domainProduct, nil
}

// ListProductsByCompany retrieves all products of a company with their prices.
func (r *PgxProductRepository) ListProductsByCompany(ctx context.Context, companyID string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE company_id = $1 ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products for company %s: %w", companyID, err)
	}
	defer rows.Close()

	modelProducts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}

	productIDs := make([]string, len(modelProducts))
	for i, m := range modelProducts {
		productIDs[i] = m.ProductID
	}
	prices, err := fetchProductPrices(ctx, r.Pool, productIDs)
	if err != nil {
		return nil, err
	}

	domainProducts := make([]domain.Product, len(modelProducts))
	for i, m := range modelProducts {
		domainProducts[i] = mapping.ToDomainProduct(m, prices[m.ProductID])
	}
	return domainProducts, nil
}
