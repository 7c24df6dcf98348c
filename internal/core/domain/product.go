package domain

import (
	"fmt"

	"github.com/jpriva/orders_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// moneyPlaces is the number of decimal places stored for monetary amounts.
const moneyPlaces = 2

// Product represents an item a company sells. Prices are held per currency
// code; a product starts with zero stock and no prices.
type Product struct {
	ProductID     string                     `json:"productID"` // Primary Key (UUID)
	CompanyID     string                     `json:"companyID"`
	CategoryID    string                     `json:"categoryID"`
	SKU           string                     `json:"sku"` // Unique within a company
	Name          string                     `json:"name"`
	Description   string                     `json:"description,omitempty"`
	StockQuantity int64                      `json:"stockQuantity"`
	Prices        map[string]decimal.Decimal `json:"prices"` // currency code -> unit price
	AuditFields
}

// SetPrice creates or replaces the product price for a currency.
func (p *Product) SetPrice(currencyCode string, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: price must be positive", apperrors.ErrValidation)
	}
	if p.Prices == nil {
		p.Prices = make(map[string]decimal.Decimal)
	}
	p.Prices[currencyCode] = amount.Round(moneyPlaces)
	return nil
}

// PriceFor resolves the unit price for a currency. A product without a price
// in the requested currency is a not-found condition, not a zero price.
func (p *Product) PriceFor(currencyCode string) (decimal.Decimal, error) {
	price, ok := p.Prices[currencyCode]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: product %s has no price in %s", apperrors.ErrNotFound, p.ProductID, currencyCode)
	}
	return price, nil
}

// IncreaseStock adds the given amount to the stock counter.
// Only positive increments are allowed; stock never goes below zero.
func (p *Product) IncreaseStock(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: stock increase must be positive", apperrors.ErrValidation)
	}
	p.StockQuantity += amount
	return nil
}
