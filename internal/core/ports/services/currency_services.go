package services

import (
	"context"

	"github.com/jpriva/orders_backend/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for the currency catalog
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySeederSvc defines the startup seeding of the closed currency set
type CurrencySeederSvc interface {
	// SeedCurrencies upserts the supported currencies into storage.
	SeedCurrencies(ctx context.Context) error
}

// CurrencySvcFacade combines all currency-related service interfaces.
// The catalog is closed: there is no runtime create operation.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencySeederSvc
}
