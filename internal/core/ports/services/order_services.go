package services

import (
	"context"

	"github.com/jpriva/orders_backend/internal/core/domain"
	"github.com/jpriva/orders_backend/internal/dto"
)

// OrderReaderSvc defines read operations for order data
type OrderReaderSvc interface {
	// GetOrder retrieves an order with its items, enforcing that external
	// users only see their own orders.
	GetOrder(ctx context.Context, orderID, requesterUserID string) (*domain.Order, error)

	// ListOrders retrieves one page of a company's orders, newest first,
	// together with the total count. External users only see the orders of
	// the client linked to them.
	ListOrders(ctx context.Context, companyID, requesterUserID string, page, pageSize int) ([]domain.Order, int64, error)
}

// OrderWriterSvc defines write operations for order data
type OrderWriterSvc interface {
	// CreateOrder creates a pending order for a client of the company,
	// snapshotting the client's name and address.
	CreateOrder(ctx context.Context, companyID string, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error)

	// AddOrderItem appends a line to a pending order, snapshotting the
	// product's name and its price in the order currency.
	AddOrderItem(ctx context.Context, orderID string, req dto.AddOrderItemRequest, requesterUserID string) (*domain.Order, error)

	// CompleteOrder transitions a pending order to COMPLETED.
	CompleteOrder(ctx context.Context, orderID, requesterUserID string) (*domain.Order, error)

	// CancelOrder transitions a pending order to CANCELLED.
	CancelOrder(ctx context.Context, orderID, requesterUserID string) (*domain.Order, error)
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}
