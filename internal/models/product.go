package models

import "github.com/shopspring/decimal"

// Product represents a row of the products table. Prices live in the
// product_prices table, one row per currency.
type Product struct {
	ProductID     string `db:"product_id"` // Primary Key (UUID)
	CompanyID     string `db:"company_id"`
	CategoryID    string `db:"category_id"`
	SKU           string `db:"sku"` // Unique per company
	Name          string `db:"name"`
	Description   string `db:"description"`
	StockQuantity int64  `db:"stock_quantity"`
	AuditFields
}

// ProductPrice represents a row of the product_prices table.
type ProductPrice struct {
	ProductID    string          `db:"product_id"`    // PK part 1
	CurrencyCode string          `db:"currency_code"` // PK part 2
	Amount       decimal.Decimal `db:"amount"`
	AuditFields
}
