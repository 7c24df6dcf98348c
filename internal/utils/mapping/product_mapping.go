package mapping

import (
	"github.com/jpriva/orders_backend/internal/core/domain"
	"github.com/jpriva/orders_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelProduct converts a domain Product to a model Product.
// Prices are mapped separately via ToModelProductPrices.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:     d.ProductID,
		CompanyID:     d.CompanyID,
		CategoryID:    d.CategoryID,
		SKU:           d.SKU,
		Name:          d.Name,
		Description:   d.Description,
		StockQuantity: d.StockQuantity,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product plus its price rows to a domain Product.
func ToDomainProduct(m models.Product, prices []models.ProductPrice) domain.Product {
	priceMap := make(map[string]decimal.Decimal, len(prices))
	for _, p := range prices {
		priceMap[p.CurrencyCode] = p.Amount
	}
	return domain.Product{
		ProductID:     m.ProductID,
		CompanyID:     m.CompanyID,
		CategoryID:    m.CategoryID,
		SKU:           m.SKU,
		Name:          m.Name,
		Description:   m.Description,
		StockQuantity: m.StockQuantity,
		Prices:        priceMap,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
