package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jpriva/orders_backend/internal/apperrors"
	"github.com/jpriva/orders_backend/internal/core/domain"
	portsrepo "github.com/jpriva/orders_backend/internal/core/ports/repositories"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
	"github.com/jpriva/orders_backend/internal/dto"
	"github.com/jpriva/orders_backend/internal/utils/pagination"
)

// orderService implements the order aggregate operations. Access rules live
// here: admins operate on any order, external users only on orders of the
// client linked to their account.
type orderService struct {
	BaseService
	orderRepo   portsrepo.OrderRepositoryFacade
	productSvc  portssvc.ProductReaderSvc
	clientSvc   portssvc.ClientSvcFacade
	currencySvc portssvc.CurrencyReaderSvc
	userSvc     portssvc.UserReaderSvc
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo portsrepo.OrderRepositoryFacade,
	productSvc portssvc.ProductReaderSvc,
	clientSvc portssvc.ClientSvcFacade,
	currencySvc portssvc.CurrencyReaderSvc,
	userSvc portssvc.UserReaderSvc,
) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo:   orderRepo,
		productSvc:  productSvc,
		clientSvc:   clientSvc,
		currencySvc: currencySvc,
		userSvc:     userSvc,
	}
}

// Ensure implementation matches interface
var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// accessOrder loads an order and checks that the requester may act on it.
// External users are only granted access when the order belongs to the
// client linked to their account.
func (s *orderService) accessOrder(ctx context.Context, orderID, requesterUserID string) (*domain.Order, *domain.User, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}

	user, err := s.userSvc.GetUserByID(ctx, requesterUserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get requester %s: %w", requesterUserID, err)
	}

	if user.Role != domain.RoleAdmin {
		client, err := s.clientSvc.GetClientForUser(ctx, order.CompanyID, user.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil, fmt.Errorf("%w: user %s has no access to order %s", apperrors.ErrForbidden, user.UserID, orderID)
			}
			return nil, nil, err
		}
		if client.ClientID != order.ClientID {
			return nil, nil, fmt.Errorf("%w: user %s has no access to order %s", apperrors.ErrForbidden, user.UserID, orderID)
		}
	}

	return order, user, nil
}

// CreateOrder creates a pending order with no items and a zero total.
// The client's name and address are snapshotted onto the order header.
// Admins name the client explicitly; external users always order as the
// client linked to their own account, creating it on first use.
func (s *orderService) CreateOrder(ctx context.Context, companyID string, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error) {
	if _, err := s.currencySvc.GetCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unsupported currency %s", apperrors.ErrValidation, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to resolve currency %s: %w", req.CurrencyCode, err)
	}

	user, err := s.userSvc.GetUserByID(ctx, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get requester %s: %w", creatorUserID, err)
	}

	var client *domain.Client
	if user.Role == domain.RoleAdmin {
		if req.ClientID == "" {
			return nil, fmt.Errorf("%w: clientID is required", apperrors.ErrValidation)
		}
		client, err = s.clientSvc.GetClientByID(ctx, req.ClientID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve client %s: %w", req.ClientID, err)
		}
		if client.CompanyID != companyID {
			return nil, fmt.Errorf("%w: client %s does not belong to company %s", apperrors.ErrNotFound, req.ClientID, companyID)
		}
	} else {
		client, err = s.clientSvc.EnsureClientForUser(ctx, companyID, *user)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	order := domain.NewOrder(uuid.NewString(), companyID, client.ClientID, client.Name, client.Address, req.CurrencyCode, now)
	order.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "failed to create order",
			slog.String("company_id", companyID),
			slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.LogInfo(ctx, "order created", slog.String("order_id", order.OrderID))
	return &order, nil
}

// AddOrderItem appends a line to a pending order, snapshotting the product
// name and its unit price in the order currency. Adding the same product
// again yields a new distinct line. Stock is not checked or consumed here.
func (s *orderService) AddOrderItem(ctx context.Context, orderID string, req dto.AddOrderItemRequest, requesterUserID string) (*domain.Order, error) {
	order, _, err := s.accessOrder(ctx, orderID, requesterUserID)
	if err != nil {
		return nil, err
	}

	product, err := s.productSvc.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product %s: %w", req.ProductID, err)
	}
	if product.CompanyID != order.CompanyID {
		return nil, fmt.Errorf("%w: product %s does not belong to company %s", apperrors.ErrNotFound, req.ProductID, order.CompanyID)
	}

	unitPrice, err := product.PriceFor(order.CurrencyCode)
	if err != nil {
		return nil, err
	}

	quantity := int64(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	now := time.Now().UTC()
	item := domain.OrderItem{
		ItemID:      uuid.NewString(),
		OrderID:     orderID,
		ProductID:   product.ProductID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requesterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requesterUserID,
		},
	}

	updated, err := s.orderRepo.AddOrderItem(ctx, orderID, item)
	if err != nil {
		s.LogError(ctx, err, "failed to add order item",
			slog.String("order_id", orderID),
			slog.String("product_id", req.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "order item added",
		slog.String("order_id", orderID),
		slog.String("item_id", item.ItemID))
	return updated, nil
}

// CompleteOrder transitions a pending order to COMPLETED.
func (s *orderService) CompleteOrder(ctx context.Context, orderID, requesterUserID string) (*domain.Order, error) {
	return s.changeStatus(ctx, orderID, requesterUserID, domain.OrderStatusCompleted)
}

// CancelOrder transitions a pending order to CANCELLED.
func (s *orderService) CancelOrder(ctx context.Context, orderID, requesterUserID string) (*domain.Order, error) {
	return s.changeStatus(ctx, orderID, requesterUserID, domain.OrderStatusCancelled)
}

func (s *orderService) changeStatus(ctx context.Context, orderID, requesterUserID string, next domain.OrderStatus) (*domain.Order, error) {
	if _, _, err := s.accessOrder(ctx, orderID, requesterUserID); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.UpdateOrderStatus(ctx, orderID, next, requesterUserID)
	if err != nil {
		s.LogError(ctx, err, "failed to change order status",
			slog.String("order_id", orderID),
			slog.String("next_status", string(next)))
		return nil, err
	}

	s.LogInfo(ctx, "order status changed",
		slog.String("order_id", orderID),
		slog.String("status", string(updated.Status)))
	return updated, nil
}

// GetOrder retrieves an order with its items.
func (s *orderService) GetOrder(ctx context.Context, orderID, requesterUserID string) (*domain.Order, error) {
	order, _, err := s.accessOrder(ctx, orderID, requesterUserID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders retrieves one page of a company's orders, newest first, plus
// the total count. External users only see the orders of their own client;
// an external user without a client record gets an empty page.
func (s *orderService) ListOrders(ctx context.Context, companyID, requesterUserID string, page, pageSize int) ([]domain.Order, int64, error) {
	params, err := pagination.NewParams(page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	user, err := s.userSvc.GetUserByID(ctx, requesterUserID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get requester %s: %w", requesterUserID, err)
	}

	if user.Role != domain.RoleAdmin {
		client, err := s.clientSvc.GetClientForUser(ctx, companyID, user.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return []domain.Order{}, 0, nil
			}
			return nil, 0, err
		}
		return s.orderRepo.ListOrdersByClient(ctx, companyID, client.ClientID, params.Size, params.Offset())
	}

	return s.orderRepo.ListOrdersByCompany(ctx, companyID, params.Size, params.Offset())
}
