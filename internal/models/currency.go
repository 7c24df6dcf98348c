package models

// Currency represents a row of the currencies table.
type Currency struct {
	CurrencyCode string `db:"currency_code"` // Primary Key (e.g., "USD")
	Name         string `db:"name"`
	Symbol       string `db:"symbol"`
	AuditFields
}
