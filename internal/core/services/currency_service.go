package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jpriva/orders_backend/internal/core/domain"
	portsrepo "github.com/jpriva/orders_backend/internal/core/ports/repositories"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
)

// currencyService implements the currency catalog operations.
// The catalog is closed: the only write path is the startup seeder.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

// Ensure implementation matches interface
var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// SeedCurrencies upserts the supported currencies. It runs at startup so that
// every deployment carries the same closed catalog.
func (s *currencyService) SeedCurrencies(ctx context.Context) error {
	now := time.Now().UTC()
	for _, currency := range domain.SeededCurrencies() {
		currency.AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		}
		if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
			s.LogError(ctx, err, "failed to seed currency", slog.String("currency_code", currency.CurrencyCode))
			return fmt.Errorf("failed to seed currency %s: %w", currency.CurrencyCode, err)
		}
	}
	s.LogDebug(ctx, "currency catalog seeded", slog.Int("count", len(domain.SeededCurrencies())))
	return nil
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", currencyCode, err)
	}
	return currency, nil
}

// ListCurrencies retrieves all available currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
