package repositories

import (
	"context"

	"github.com/jpriva/orders_backend/internal/core/domain"
)

// OrderReader defines read operations for order data
type OrderReader interface {
	// FindOrderByID retrieves an order with its items by ID.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrdersByCompany retrieves one page of a company's orders, newest
	// first, together with the total number of orders for the company.
	ListOrdersByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.Order, int64, error)

	// ListOrdersByClient retrieves one page of a client's orders within a
	// company, newest first, with the total count.
	ListOrdersByClient(ctx context.Context, companyID, clientID string, limit, offset int) ([]domain.Order, int64, error)
}

// OrderWriter defines write operations for order data.
// Item addition and status changes serialize on the order row so that the
// stored total always matches the item list.
type OrderWriter interface {
	// SaveOrder persists a new order header.
	SaveOrder(ctx context.Context, order domain.Order) error

	// AddOrderItem appends an item to a pending order and recomputes the
	// total inside a single transaction. It returns the updated order.
	AddOrderItem(ctx context.Context, orderID string, item domain.OrderItem) (*domain.Order, error)

	// UpdateOrderStatus transitions an order to the next status inside a
	// single transaction, enforcing the status machine. It returns the
	// updated order.
	UpdateOrderStatus(ctx context.Context, orderID string, next domain.OrderStatus, updaterUserID string) (*domain.Order, error)
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}

// OrderRepositoryWithTx extends OrderRepositoryFacade with transaction capabilities
type OrderRepositoryWithTx interface {
	OrderRepositoryFacade
	TransactionManager
}
