package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a row of the orders table. ClientName and Address are
// denormalized snapshots taken at order creation.
type Order struct {
	OrderID      string          `db:"order_id"` // Primary Key (UUID)
	CompanyID    string          `db:"company_id"`
	ClientID     string          `db:"client_id"`
	ClientName   string          `db:"client_name"`
	Address      string          `db:"address"`
	CurrencyCode string          `db:"currency_code"`
	Status       string          `db:"status"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	OrderDate    time.Time       `db:"order_date"`
	AuditFields
}

// OrderItem represents a row of the order_items table. ProductName and
// UnitPrice are snapshots taken when the line was added. Position preserves
// insertion order of the lines.
type OrderItem struct {
	ItemID      string          `db:"item_id"` // Primary Key (UUID)
	OrderID     string          `db:"order_id"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int64           `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Position    int             `db:"position"`
	AuditFields
}
