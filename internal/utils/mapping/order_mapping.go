package mapping

import (
	"github.com/jpriva/orders_backend/internal/core/domain"
	"github.com/jpriva/orders_backend/internal/models"
)

// ToModelOrder converts a domain Order to a model Order.
// Items are mapped separately via ToModelOrderItem.
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:      d.OrderID,
		CompanyID:    d.CompanyID,
		ClientID:     d.ClientID,
		ClientName:   d.ClientName,
		Address:      d.Address,
		CurrencyCode: d.CurrencyCode,
		Status:       string(d.Status),
		TotalAmount:  d.TotalAmount,
		OrderDate:    d.OrderDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToModelOrderItem converts a domain OrderItem to a model OrderItem.
func ToModelOrderItem(d domain.OrderItem, position int) models.OrderItem {
	return models.OrderItem{
		ItemID:      d.ItemID,
		OrderID:     d.OrderID,
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		Position:    position,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrderItem converts a model OrderItem to a domain OrderItem.
func ToDomainOrderItem(m models.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		ItemID:      m.ItemID,
		OrderID:     m.OrderID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrder converts a model Order plus its item rows to a domain Order.
func ToDomainOrder(m models.Order, items []models.OrderItem) domain.Order {
	domainItems := make([]domain.OrderItem, len(items))
	for i, item := range items {
		domainItems[i] = ToDomainOrderItem(item)
	}
	return domain.Order{
		OrderID:      m.OrderID,
		CompanyID:    m.CompanyID,
		ClientID:     m.ClientID,
		ClientName:   m.ClientName,
		Address:      m.Address,
		CurrencyCode: m.CurrencyCode,
		Status:       domain.OrderStatus(m.Status),
		Items:        domainItems,
		TotalAmount:  m.TotalAmount,
		OrderDate:    m.OrderDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
