package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jpriva/orders_backend/internal/core/domain"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
	"github.com/jpriva/orders_backend/internal/dto"
	"github.com/jpriva/orders_backend/internal/handlers"
	"github.com/jpriva/orders_backend/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context, companyID string) ([]domain.Product, error) {
	args := m.Called(ctx, companyID)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductService) ResolvePrice(ctx context.Context, productID, currencyCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, productID, currencyCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockProductService) CreateProduct(ctx context.Context, companyID string, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	args := m.Called(ctx, companyID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) SetProductPrice(ctx context.Context, productID string, req dto.SetProductPriceRequest, updaterUserID string) (*domain.Product, error) {
	args := m.Called(ctx, productID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) IncreaseStock(ctx context.Context, productID string, req dto.IncreaseStockRequest, updaterUserID string) (*domain.Product, error) {
	args := m.Called(ctx, productID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) InventoryReportPDF(ctx context.Context, companyID string) ([]byte, error) {
	args := m.Called(ctx, companyID)
	var pdf []byte
	if args.Get(0) != nil {
		pdf = args.Get(0).([]byte)
	}
	return pdf, args.Error(1)
}

func (m *MockReportService) EmailInventoryReport(ctx context.Context, companyID, email string) error {
	args := m.Called(ctx, companyID, email)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)

// --- Test Suite ---
type ProductHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockProductService *MockProductService
	mockReportService  *MockReportService
	jwtSecret          string
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockProductService = new(MockProductService)
	suite.mockReportService = new(MockReportService)
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterProductRoutes(v1, suite.mockProductService, suite.mockReportService, middleware.RequireRole(domain.RoleAdmin))
}

func (suite *ProductHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	claims := middleware.AccessClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "orders-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ProductHandlerTestSuite) doRequest(method, url, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func testProduct(companyID string) domain.Product {
	return domain.Product{
		ProductID:     uuid.NewString(),
		CompanyID:     companyID,
		CategoryID:    uuid.NewString(),
		SKU:           "SKU-001",
		Name:          "Widget",
		StockQuantity: 7,
		Prices:        map[string]decimal.Decimal{"USD": decimal.RequireFromString("20.00")},
	}
}

// --- Test Cases ---

func (suite *ProductHandlerTestSuite) TestIncreaseStock_AmountFromQuery() {
	companyID := uuid.NewString()
	userID := uuid.NewString()
	product := testProduct(companyID)
	token := suite.generateTestToken(userID, domain.RoleAdmin)

	suite.mockProductService.On("IncreaseStock",
		mock.AnythingOfType("*context.valueCtx"),
		product.ProductID,
		dto.IncreaseStockRequest{Amount: 5},
		userID,
	).Return(&product, nil).Once()

	url := fmt.Sprintf("/api/v1/products/%s/stock?amount=5", product.ProductID)
	w := suite.doRequest(http.MethodPut, url, "", token)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(product.ProductID, resp.ProductID)
	suite.Equal(int64(7), resp.StockQuantity)
	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestIncreaseStock_MissingAmountRejected() {
	productID := uuid.NewString()
	token := suite.generateTestToken(uuid.NewString(), domain.RoleAdmin)

	url := fmt.Sprintf("/api/v1/products/%s/stock", productID)
	w := suite.doRequest(http.MethodPut, url, "", token)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProductService.AssertNotCalled(suite.T(), "IncreaseStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProductHandlerTestSuite) TestIncreaseStock_ForbiddenForExternal() {
	productID := uuid.NewString()
	token := suite.generateTestToken(uuid.NewString(), domain.RoleExternal)

	url := fmt.Sprintf("/api/v1/products/%s/stock?amount=5", productID)
	w := suite.doRequest(http.MethodPut, url, "", token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockProductService.AssertNotCalled(suite.T(), "IncreaseStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProductHandlerTestSuite) TestEmailInventory_RecipientFromQuery() {
	companyID := uuid.NewString()
	token := suite.generateTestToken(uuid.NewString(), domain.RoleAdmin)

	suite.mockReportService.On("EmailInventoryReport",
		mock.AnythingOfType("*context.valueCtx"),
		companyID,
		"owner@example.com",
	).Return(nil).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/products/email?email=owner@example.com", companyID)
	w := suite.doRequest(http.MethodGet, url, "", token)

	suite.Equal(http.StatusAccepted, w.Code)
	suite.mockReportService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestEmailInventory_InvalidRecipientRejected() {
	companyID := uuid.NewString()
	token := suite.generateTestToken(uuid.NewString(), domain.RoleAdmin)

	url := fmt.Sprintf("/api/v1/companies/%s/products/email?email=not-an-address", companyID)
	w := suite.doRequest(http.MethodGet, url, "", token)

	suite.Equal(http.StatusBadRequest, w.Code)

	var problem dto.ProblemDetails
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &problem))
	suite.Equal(http.StatusBadRequest, problem.Status)
	suite.mockReportService.AssertNotCalled(suite.T(), "EmailInventoryReport", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestProductHandler(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
