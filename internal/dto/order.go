package dto

import (
	"time"

	"github.com/jpriva/orders_backend/internal/core/domain"
)

// CreateOrderRequest defines data for creating a new pending order.
// ClientID may be empty for external users; the order is then created for
// the client linked to the authenticated user.
type CreateOrderRequest struct {
	ClientID     string `json:"clientID"`
	CurrencyCode string `json:"currencyCode" binding:"required,len=3,uppercase"`
}

// AddOrderItemRequest defines data for appending a line to an order.
// Quantity defaults to one when omitted.
type AddOrderItemRequest struct {
	ProductID string `json:"productID" binding:"required"`
	Quantity  *int64 `json:"quantity" binding:"omitempty,gt=0"`
}

// OrderItemResponse defines data returned for an order line.
type OrderItemResponse struct {
	ItemID      string `json:"itemID"`
	ProductID   string `json:"productID"`
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	LineTotal   string `json:"lineTotal"`
}

// OrderResponse defines data returned for an order with its items.
type OrderResponse struct {
	OrderID      string              `json:"orderID"`
	CompanyID    string              `json:"companyID"`
	ClientID     string              `json:"clientID"`
	ClientName   string              `json:"clientName"`
	Address      string              `json:"address,omitempty"`
	CurrencyCode string              `json:"currencyCode"`
	Status       domain.OrderStatus  `json:"status"`
	Items        []OrderItemResponse `json:"items"`
	TotalAmount  string              `json:"totalAmount"`
	OrderDate    time.Time           `json:"orderDate"`
}

// ToOrderItemResponse converts domain.OrderItem to DTO.
func ToOrderItemResponse(i *domain.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ItemID:      i.ItemID,
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice.StringFixed(2),
		LineTotal:   i.LineTotal().StringFixed(2),
	}
}

// ToOrderResponse converts domain.Order to DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = ToOrderItemResponse(&item)
	}
	return OrderResponse{
		OrderID:      o.OrderID,
		CompanyID:    o.CompanyID,
		ClientID:     o.ClientID,
		ClientName:   o.ClientName,
		Address:      o.Address,
		CurrencyCode: o.CurrencyCode,
		Status:       o.Status,
		Items:        items,
		TotalAmount:  o.TotalAmount.StringFixed(2),
		OrderDate:    o.OrderDate,
	}
}

// ToOrderResponseSlice converts a slice of domain.Order to DTOs.
func ToOrderResponseSlice(os []domain.Order) []OrderResponse {
	out := make([]OrderResponse, len(os))
	for i, o := range os {
		out[i] = ToOrderResponse(&o)
	}
	return out
}
