package domain

import (
	"fmt"
	"time"

	"github.com/jpriva/orders_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsTerminal reports whether the status permits no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// OrderItem is a line of an order. ProductName and UnitPrice are snapshots
// taken when the line was added; later catalog changes do not affect them.
type OrderItem struct {
	ItemID      string          `json:"itemID"` // Primary Key (UUID)
	OrderID     string          `json:"orderID"`
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	AuditFields
}

// LineTotal returns quantity times unit price for this line.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Order is the order aggregate: a header with denormalized client data plus
// its line items. TotalAmount is always derived from the item list.
type Order struct {
	OrderID      string          `json:"orderID"` // Primary Key (UUID)
	CompanyID    string          `json:"companyID"`
	ClientID     string          `json:"clientID"`
	ClientName   string          `json:"clientName"` // Snapshot at creation
	Address      string          `json:"address,omitempty"`
	CurrencyCode string          `json:"currencyCode"`
	Status       OrderStatus     `json:"status"`
	Items        []OrderItem     `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	OrderDate    time.Time       `json:"orderDate"`
	AuditFields
}

// NewOrder creates a pending order with no items and a zero total.
func NewOrder(orderID, companyID, clientID, clientName, address, currencyCode string, now time.Time) Order {
	return Order{
		OrderID:      orderID,
		CompanyID:    companyID,
		ClientID:     clientID,
		ClientName:   clientName,
		Address:      address,
		CurrencyCode: currencyCode,
		Status:       OrderStatusPending,
		Items:        []OrderItem{},
		TotalAmount:  decimal.Zero,
		OrderDate:    now,
	}
}

// AddItem appends a line to the order and recomputes the total.
// Adding the same product twice yields two distinct lines; lines are never
// merged. Only pending orders accept new items.
func (o *Order) AddItem(item OrderItem) error {
	if o.Status != OrderStatusPending {
		return fmt.Errorf("%w: order %s is %s", apperrors.ErrInvalidState, o.OrderID, o.Status)
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: item quantity must be positive", apperrors.ErrValidation)
	}
	o.Items = append(o.Items, item)
	o.RecalculateTotal()
	return nil
}

// RecalculateTotal recomputes TotalAmount from the full item list.
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	o.TotalAmount = total.Round(moneyPlaces)
}

// ChangeStatus transitions the order to the next status. Terminal orders
// refuse any transition, and an order never returns to PENDING.
func (o *Order) ChangeStatus(next OrderStatus) error {
	if o.Status.IsTerminal() {
		return fmt.Errorf("%w: order %s is already %s", apperrors.ErrInvalidState, o.OrderID, o.Status)
	}
	if next == OrderStatusPending {
		return fmt.Errorf("%w: order cannot return to %s", apperrors.ErrInvalidState, OrderStatusPending)
	}
	o.Status = next
	return nil
}
