package services_test

import (
	"context"
	"testing"

	"github.com/jpriva/orders_backend/internal/apperrors"
	"github.com/jpriva/orders_backend/internal/core/domain"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
	"github.com/jpriva/orders_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	var currency *domain.Currency
	if args.Get(0) != nil {
		currency = args.Get(0).(*domain.Currency)
	}
	return currency, args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	var currencies []domain.Currency
	if args.Get(0) != nil {
		currencies = args.Get(0).([]domain.Currency)
	}
	return currencies, args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockCurrencyRepo)
}

// --- SeedCurrencies Tests ---

func (suite *CurrencyServiceTestSuite) TestSeedCurrencies_UpsertsWholeCatalog() {
	ctx := context.Background()
	seeded := make(map[string]bool)

	suite.mockCurrencyRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).
		Run(func(args mock.Arguments) {
			currency := args.Get(1).(domain.Currency)
			seeded[currency.CurrencyCode] = true
			suite.Equal("system", currency.CreatedBy)
		}).
		Return(nil).
		Times(len(domain.SeededCurrencies()))

	err := suite.service.SeedCurrencies(ctx)

	suite.Require().NoError(err)
	for _, code := range []string{"COP", "USD", "EUR", "GBP", "JPY"} {
		suite.True(seeded[code], "expected %s to be seeded", code)
	}
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSeedCurrencies_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockCurrencyRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(expectedErr).Once()

	err := suite.service.SeedCurrencies(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

// --- Read Tests ---

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyCode: "EUR", Name: "Euro", Symbol: "€"}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "EUR")

	suite.Require().NoError(err)
	suite.Equal("Euro", currency.Name)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_UnknownCode() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "XXX")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

// --- Run Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
