package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jpriva/orders_backend/internal/apperrors"
	"github.com/jpriva/orders_backend/internal/core/domain"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
	"github.com/jpriva/orders_backend/internal/core/services"
	"github.com/jpriva/orders_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.Order, int64, error) {
	args := m.Called(ctx, companyID, limit, offset)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) ListOrdersByClient(ctx context.Context, companyID, clientID string, limit, offset int) ([]domain.Order, int64, error) {
	args := m.Called(ctx, companyID, clientID, limit, offset)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) AddOrderItem(ctx context.Context, orderID string, item domain.OrderItem) (*domain.Order, error) {
	args := m.Called(ctx, orderID, item)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, next domain.OrderStatus, updaterUserID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, next, updaterUserID)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

// --- Mock ProductReaderSvc ---
type MockProductReaderSvc struct {
	mock.Mock
}

func (m *MockProductReaderSvc) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	var product *domain.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*domain.Product)
	}
	return product, args.Error(1)
}

func (m *MockProductReaderSvc) ListProducts(ctx context.Context, companyID string) ([]domain.Product, error) {
	args := m.Called(ctx, companyID)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductReaderSvc) ResolvePrice(ctx context.Context, productID, currencyCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, productID, currencyCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ClientSvcFacade ---
type MockClientSvc struct {
	mock.Mock
}

func (m *MockClientSvc) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientSvc) GetClientForUser(ctx context.Context, companyID, userID string) (*domain.Client, error) {
	args := m.Called(ctx, companyID, userID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientSvc) ListClients(ctx context.Context, companyID string) ([]domain.Client, error) {
	args := m.Called(ctx, companyID)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockClientSvc) CreateClient(ctx context.Context, companyID string, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	args := m.Called(ctx, companyID, req, creatorUserID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientSvc) EnsureClientForUser(ctx context.Context, companyID string, user domain.User) (*domain.Client, error) {
	args := m.Called(ctx, companyID, user)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

// --- Mock CurrencyReaderSvc ---
type MockCurrencyReaderSvc struct {
	mock.Mock
}

func (m *MockCurrencyReaderSvc) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	var currency *domain.Currency
	if args.Get(0) != nil {
		currency = args.Get(0).(*domain.Currency)
	}
	return currency, args.Error(1)
}

func (m *MockCurrencyReaderSvc) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	var currencies []domain.Currency
	if args.Get(0) != nil {
		currencies = args.Get(0).([]domain.Currency)
	}
	return currencies, args.Error(1)
}

// --- Mock UserReaderSvc ---
type MockUserReaderSvc struct {
	mock.Mock
}

func (m *MockUserReaderSvc) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReaderSvc) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo   *MockOrderRepository
	mockProductSvc  *MockProductReaderSvc
	mockClientSvc   *MockClientSvc
	mockCurrencySvc *MockCurrencyReaderSvc
	mockUserSvc     *MockUserReaderSvc
	service         portssvc.OrderSvcFacade

	companyID string
	adminUser *domain.User
	extUser   *domain.User
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockProductSvc = new(MockProductReaderSvc)
	suite.mockClientSvc = new(MockClientSvc)
	suite.mockCurrencySvc = new(MockCurrencyReaderSvc)
	suite.mockUserSvc = new(MockUserReaderSvc)
	suite.service = services.NewOrderService(
		suite.mockOrderRepo,
		suite.mockProductSvc,
		suite.mockClientSvc,
		suite.mockCurrencySvc,
		suite.mockUserSvc,
	)

	suite.companyID = uuid.NewString()
	suite.adminUser = &domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	suite.extUser = &domain.User{
		UserID:   uuid.NewString(),
		Email:    "buyer@example.com",
		FullName: "External Buyer",
		Role:     domain.RoleExternal,
	}
}

func (suite *OrderServiceTestSuite) pendingOrder(clientID string) *domain.Order {
	order := domain.NewOrder(uuid.NewString(), suite.companyID, clientID, "Some Client", "1 Main St", "USD", time.Now().UTC())
	return &order
}

// --- CreateOrder Tests ---

func (suite *OrderServiceTestSuite) TestCreateOrder_AdminSuccess() {
	ctx := context.Background()
	clientID := uuid.NewString()
	req := dto.CreateOrderRequest{ClientID: clientID, CurrencyCode: "USD"}
	client := &domain.Client{ClientID: clientID, CompanyID: suite.companyID, Name: "Acme Buyer", Address: "5 Side St"}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, suite.adminUser.UserID).Return(suite.adminUser, nil).Once()
	suite.mockClientSvc.On("GetClientByID", ctx, clientID).Return(client, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.MatchedBy(func(order domain.Order) bool {
		return order.CompanyID == suite.companyID &&
			order.ClientID == clientID &&
			order.ClientName == "Acme Buyer" &&
			order.Address == "5 Side St" &&
			order.Status == domain.OrderStatusPending &&
			len(order.Items) == 0 &&
			order.TotalAmount.IsZero()
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, suite.companyID, req, suite.adminUser.UserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal(domain.OrderStatusPending, order.Status)
	suite.Equal("Acme Buyer", order.ClientName)
	suite.Equal("0.00", order.TotalAmount.StringFixed(2))
	suite.NotEmpty(order.OrderID)
	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockClientSvc.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_AdminRequiresClientID() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{CurrencyCode: "USD"}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, suite.adminUser.UserID).Return(suite.adminUser, nil).Once()

	order, err := suite.service.CreateOrder(ctx, suite.companyID, req, suite.adminUser.UserID)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_UnsupportedCurrency() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{ClientID: uuid.NewString(), CurrencyCode: "XXX"}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	order, err := suite.service.CreateOrder(ctx, suite.companyID, req, suite.adminUser.UserID)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_ClientFromOtherCompany() {
	ctx := context.Background()
	clientID := uuid.NewString()
	req := dto.CreateOrderRequest{ClientID: clientID, CurrencyCode: "EUR"}
	client := &domain.Client{ClientID: clientID, CompanyID: uuid.NewString(), Name: "Stranger"}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(&domain.Currency{CurrencyCode: "EUR"}, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, suite.adminUser.UserID).Return(suite.adminUser, nil).Once()
	suite.mockClientSvc.On("GetClientByID", ctx, clientID).Return(client, nil).Once()

	order, err := suite.service.CreateOrder(ctx, suite.companyID, req, suite.adminUser.UserID)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_ExternalUsesOwnClient() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{CurrencyCode: "COP"}
	ownClient := &domain.Client{
		ClientID:  uuid.NewString(),
		CompanyID: suite.companyID,
		Name:      suite.extUser.FullName,
	}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "COP").Return(&domain.Currency{CurrencyCode: "COP"}, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, suite.extUser.UserID).Return(suite.extUser, nil).Once()
	suite.mockClientSvc.On("EnsureClientForUser", ctx, suite.companyID, *suite.extUser).Return(ownClient, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.MatchedBy(func(order domain.Order) bool {
		return order.ClientID == ownClient.ClientID && order.ClientName == suite.extUser.FullName
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, suite.companyID, req, suite.extUser.UserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal(ownClient.ClientID, order.ClientID)
	suite.mockClientSvc.AssertNotCalled(suite.T(), "GetClientByID", mock.Anything, mock.Anything)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

// --- AddOrderItem Tests ---

func (suite *OrderServiceTestSuite) TestAddOrderItem_RecomputesTotal() {
	ctx := context.Background()
	order := suite.pendingOrder(uuid.NewString())
	order.Items = []domain.OrderItem{{
		ItemID:    uuid.NewString(),
		OrderID:   order.OrderID,
		ProductID: uuid.NewString(),
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("10.00"),
	}}
	order.RecalculateTotal()
	suite.Equal("30.00", order.TotalAmount.StringFixed(2))

	product := &domain.Product{
		ProductID: uuid.NewString(),
		CompanyID: suite.companyID,
		Name:      "Widget",
		Prices:    map[string]decimal.Decimal{"USD": decimal.RequireFromString("20.00")},
	}
	quantity := int64(1)
	req := dto.AddOrderItemRequest{ProductID: product.ProductID, Quantity: &quantity}

	updated := *order
	updated.Items = append([]domain.OrderItem{}, order.Items...)
	updated.Items = append(updated.Items, domain.OrderItem{
		ProductID: product.ProductID,
		Quantity:  quantity,
		UnitPrice: decimal.RequireFromString("20.00"),
	})
	updated.RecalculateTotal()

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, suite.adminUser.UserID).Return(suite.adminUser, nil).Once()
	suite.mockProductSvc.On("GetProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockOrderRepo.On("AddOrderItem", ctx, order.OrderID, mock.MatchedBy(func(item domain.OrderItem) bool {
		return item.ProductID == product.ProductID &&
			item.ProductName == "Widget" &&
			item.Quantity == 1 &&
			item.UnitPrice.StringFixed(2) == "20.00"
	})).Return(&updated, nil).Once()

	result, err := suite.service.AddOrderItem(ctx, order.OrderID, req, suite.adminUser.UserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Len(result.Items, 2)
	suite.Equal("50.00", result.TotalAmount.StringFixed(2))
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestAddOrderItem_QuantityDefaultsToOne() {
	ctx := context.Background()
	order := suite.pendingOrder(uuid.NewString())
	product := &domain.Product{
		ProductID: uuid.NewString(),
		CompanyID: suite.companyID,
		Name:      "Widget",
		Prices:    map[string]decimal.Decimal{"USD": decimal.RequireFromString("5.50")},
	}
	req := dto.AddOrderItemRequest{ProductID: product.ProductID}

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, suite.adminUser.UserID).Return(suite.adminUser, nil).Once()
	suite.mockProductSvc.On("GetProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockOrderRepo.On("AddOrderItem", ctx, order.OrderID, mock.MatchedBy(func(item domain.OrderItem) bool {
		return item.Quantity == 1
	})).Return(order, nil).Once()

	_, err := suite.service.AddOrderItem(ctx, order.OrderID, req, suite.adminUser.UserID)

	suite.Require().NoError(err)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestAddOrderItem_NoPriceInOrderCurrency() {
	ctx := context.Background()
	order := suite.pendingOrder(uuid.NewString())
	product := &domain.Product{
		ProductID: uuid.NewString(),
		CompanyID: suite.companyID,
		Name:      "Widget",
		Prices:    map[string]decimal.Decimal{"EUR": decimal.RequireFromString("9.99")},
	}
	req := dto.AddOrderItemRequest{ProductID: product.ProductID}

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, suite.adminUser.UserID).Return(suite.adminUser, nil).Once()
	suite.mockProductSvc.On("GetProductByID", ctx, product.ProductID).Return(product, nil).Once()

	result, err := suite.service.AddOrderItem(ctx, order.OrderID, req, suite.adminUser.UserID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "AddOrderItem", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestAddOrderItem_ProductFromOtherCompany() {
	ctx := context.Background()
	order := suite.pendingOrder(uuid.NewString())
	product := &domain.Product{
		ProductID: uuid.NewString(),
		CompanyID: uuid.NewString(),
		Name:      "Foreign Widget",
		Prices:    map[string]decimal.Decimal{"USD": decimal.RequireFromString("9.99")},
	}
	req := dto.AddOrderItemRequest{ProductID: product.ProductID}

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, suite.adminUser.UserID).Return(suite.adminUser, nil).Once()
	suite.mockProductSvc.On("GetProductByID", ctx, product.ProductID).Return(product, nil).Once()

	result, err := suite.service.AddOrderItem(ctx, order.OrderID, req, suite.adminUser.UserID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "AddOrderItem", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestAddOrderItem_ExternalForbiddenOnOthersOrder() {
	ctx := context.Background()
	order := suite.pendingOrder(uuid.NewString())
	otherClient := &domain.Client{ClientID: uuid.NewString(), CompanyID: suite.companyID}
	req := dto.AddOrderItemRequest{ProductID: uuid.NewString()}

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, suite.extUser.UserID).Return(suite.extUser, nil).Once()
	suite.mockClientSvc.On("GetClientForUser", ctx, suite.companyID, suite.extUser.UserID).Return(otherClient, nil).Once()

	result, err := suite.service.AddOrderItem(ctx, order.OrderID, req, suite.extUser.UserID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockProductSvc.AssertNotCalled(suite.T(), "GetProductByID", mock.Anything, mock.Anything)
}

// --- Status Transition Tests ---

func (suite *OrderServiceTestSuite) TestCompleteOrder_Success() {
	ctx := context.Background()
	order := suite.pendingOrder(uuid.NewString())
	completed := *order
	completed.Status = domain.OrderStatusCompleted

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, suite.adminUser.UserID).Return(suite.adminUser, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, order.OrderID, domain.OrderStatusCompleted, suite.adminUser.UserID).Return(&completed, nil).Once()

	result, err := suite.service.CompleteOrder(ctx, order.OrderID, suite.adminUser.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderStatusCompleted, result.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCancelOrder_TerminalOrderRefused() {
	ctx := context.Background()
	order := suite.pendingOrder(uuid.NewString())
	order.Status = domain.OrderStatusCompleted

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, suite.adminUser.UserID).Return(suite.adminUser, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, order.OrderID, domain.OrderStatusCancelled, suite.adminUser.UserID).Return(nil, apperrors.ErrInvalidState).Once()

	result, err := suite.service.CancelOrder(ctx, order.OrderID, suite.adminUser.UserID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

// --- GetOrder Tests ---

func (suite *OrderServiceTestSuite) TestGetOrder_ExternalOwnOrder() {
	ctx := context.Background()
	clientID := uuid.NewString()
	order := suite.pendingOrder(clientID)
	ownClient := &domain.Client{ClientID: clientID, CompanyID: suite.companyID}

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, suite.extUser.UserID).Return(suite.extUser, nil).Once()
	suite.mockClientSvc.On("GetClientForUser", ctx, suite.companyID, suite.extUser.UserID).Return(ownClient, nil).Once()

	result, err := suite.service.GetOrder(ctx, order.OrderID, suite.extUser.UserID)

	suite.Require().NoError(err)
	suite.Equal(order.OrderID, result.OrderID)
	suite.mockClientSvc.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestGetOrder_NotFound() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.GetOrder(ctx, orderID, suite.adminUser.UserID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ListOrders Tests ---

func (suite *OrderServiceTestSuite) TestListOrders_AdminSeesWholeCompany() {
	ctx := context.Background()
	expected := []domain.Order{*suite.pendingOrder(uuid.NewString()), *suite.pendingOrder(uuid.NewString())}

	suite.mockUserSvc.On("GetUserByID", ctx, suite.adminUser.UserID).Return(suite.adminUser, nil).Once()
	suite.mockOrderRepo.On("ListOrdersByCompany", ctx, suite.companyID, 20, 0).Return(expected, int64(42), nil).Once()

	orders, total, err := suite.service.ListOrders(ctx, suite.companyID, suite.adminUser.UserID, 0, 20)

	suite.Require().NoError(err)
	suite.Len(orders, 2)
	suite.Equal(int64(42), total)
	suite.mockClientSvc.AssertNotCalled(suite.T(), "GetClientForUser", mock.Anything, mock.Anything, mock.Anything)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestListOrders_ExternalScopedToOwnClient() {
	ctx := context.Background()
	ownClient := &domain.Client{ClientID: uuid.NewString(), CompanyID: suite.companyID}
	expected := []domain.Order{*suite.pendingOrder(ownClient.ClientID)}

	suite.mockUserSvc.On("GetUserByID", ctx, suite.extUser.UserID).Return(suite.extUser, nil).Once()
	suite.mockClientSvc.On("GetClientForUser", ctx, suite.companyID, suite.extUser.UserID).Return(ownClient, nil).Once()
	suite.mockOrderRepo.On("ListOrdersByClient", ctx, suite.companyID, ownClient.ClientID, 10, 10).Return(expected, int64(11), nil).Once()

	orders, total, err := suite.service.ListOrders(ctx, suite.companyID, suite.extUser.UserID, 1, 10)

	suite.Require().NoError(err)
	suite.Len(orders, 1)
	suite.Equal(int64(11), total)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "ListOrdersByCompany", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestListOrders_ExternalWithoutClientGetsEmptyPage() {
	ctx := context.Background()

	suite.mockUserSvc.On("GetUserByID", ctx, suite.extUser.UserID).Return(suite.extUser, nil).Once()
	suite.mockClientSvc.On("GetClientForUser", ctx, suite.companyID, suite.extUser.UserID).Return(nil, apperrors.ErrNotFound).Once()

	orders, total, err := suite.service.ListOrders(ctx, suite.companyID, suite.extUser.UserID, 0, 20)

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
	suite.Equal(int64(0), total)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "ListOrdersByClient", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestListOrders_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockUserSvc.On("GetUserByID", ctx, suite.adminUser.UserID).Return(suite.adminUser, nil).Once()
	suite.mockOrderRepo.On("ListOrdersByCompany", ctx, suite.companyID, 20, 0).Return(nil, int64(0), expectedErr).Once()

	orders, total, err := suite.service.ListOrders(ctx, suite.companyID, suite.adminUser.UserID, 0, 20)

	suite.Require().Error(err)
	suite.Nil(orders)
	suite.Equal(int64(0), total)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestOrderService(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
