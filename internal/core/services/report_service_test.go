package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jpriva/orders_backend/internal/apperrors"
	"github.com/jpriva/orders_backend/internal/core/domain"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
	"github.com/jpriva/orders_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PDFRenderer ---
type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	args := m.Called(ctx, html)
	var pdf []byte
	if args.Get(0) != nil {
		pdf = args.Get(0).([]byte)
	}
	return pdf, args.Error(1)
}

// --- Mock ObjectStore ---
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, key string, body []byte, contentType string) error {
	args := m.Called(ctx, key, body, contentType)
	return args.Error(0)
}

// --- Mock ReportEnqueuer ---
type MockReportEnqueuer struct {
	mock.Mock
}

func (m *MockReportEnqueuer) EnqueueReportEmail(ctx context.Context, fileName, email, companyName string) error {
	args := m.Called(ctx, fileName, email, companyName)
	return args.Error(0)
}

// --- Test Suite ---
type ReportServiceTestSuite struct {
	suite.Suite
	mockCompanyRepo *MockCompanyRepository
	mockProductSvc  *MockProductReaderSvc
	mockRenderer    *MockPDFRenderer
	mockStore       *MockObjectStore
	mockEnqueuer    *MockReportEnqueuer
	service         portssvc.ReportSvcFacade

	company *domain.Company
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockProductSvc = new(MockProductReaderSvc)
	suite.mockRenderer = new(MockPDFRenderer)
	suite.mockStore = new(MockObjectStore)
	suite.mockEnqueuer = new(MockReportEnqueuer)
	suite.service = services.NewReportService(
		suite.mockCompanyRepo,
		suite.mockProductSvc,
		suite.mockRenderer,
		suite.mockStore,
		suite.mockEnqueuer,
	)
	suite.company = &domain.Company{CompanyID: uuid.NewString(), Name: "Acme Ltda", TaxID: "900123456-7"}
}

// --- InventoryReportPDF Tests ---

func (suite *ReportServiceTestSuite) TestInventoryReportPDF_RendersProductTable() {
	ctx := context.Background()
	products := []domain.Product{{
		ProductID:     uuid.NewString(),
		CompanyID:     suite.company.CompanyID,
		SKU:           "SKU-001",
		Name:          "Widget",
		StockQuantity: 7,
		Prices:        map[string]decimal.Decimal{"USD": decimal.RequireFromString("20.00")},
	}}
	pdf := []byte("%PDF-1.4 fake")

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).Return(suite.company, nil).Once()
	suite.mockProductSvc.On("ListProducts", ctx, suite.company.CompanyID).Return(products, nil).Once()
	suite.mockRenderer.On("RenderHTML", ctx, mock.MatchedBy(func(html string) bool {
		return strings.Contains(html, "Acme Ltda") &&
			strings.Contains(html, "SKU-001") &&
			strings.Contains(html, "USD 20.00")
	})).Return(pdf, nil).Once()

	result, err := suite.service.InventoryReportPDF(ctx, suite.company.CompanyID)

	suite.Require().NoError(err)
	suite.Equal(pdf, result)
	suite.mockRenderer.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestInventoryReportPDF_CompanyNotFound() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, companyID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.InventoryReportPDF(ctx, companyID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRenderer.AssertNotCalled(suite.T(), "RenderHTML", mock.Anything, mock.Anything)
}

// --- EmailInventoryReport Tests ---

func (suite *ReportServiceTestSuite) TestEmailInventoryReport_StoresAndEnqueues() {
	ctx := context.Background()
	email := "owner@example.com"
	pdf := []byte("%PDF-1.4 fake")

	// The company is loaded once and reused for rendering, key naming and
	// the queued payload.
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).Return(suite.company, nil).Once()
	suite.mockProductSvc.On("ListProducts", ctx, suite.company.CompanyID).Return([]domain.Product{}, nil).Once()
	suite.mockRenderer.On("RenderHTML", ctx, mock.AnythingOfType("string")).Return(pdf, nil).Once()

	var storedKey string
	suite.mockStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
		// Unsafe characters in the company name are replaced in the file key.
		return strings.HasPrefix(key, "Acme_Ltda_inv_") && strings.HasSuffix(key, ".pdf")
	}), pdf, "application/pdf").Run(func(args mock.Arguments) {
		storedKey = args.Get(1).(string)
	}).Return(nil).Once()
	suite.mockEnqueuer.On("EnqueueReportEmail", ctx, mock.MatchedBy(func(fileName string) bool {
		return fileName == storedKey
	}), email, suite.company.Name).Return(nil).Once()

	err := suite.service.EmailInventoryReport(ctx, suite.company.CompanyID, email)

	suite.Require().NoError(err)
	suite.mockStore.AssertExpectations(suite.T())
	suite.mockEnqueuer.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestEmailInventoryReport_StoreFailureSkipsEnqueue() {
	ctx := context.Background()
	expectedErr := assert.AnError
	pdf := []byte("%PDF-1.4 fake")

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).Return(suite.company, nil).Once()
	suite.mockProductSvc.On("ListProducts", ctx, suite.company.CompanyID).Return([]domain.Product{}, nil).Once()
	suite.mockRenderer.On("RenderHTML", ctx, mock.AnythingOfType("string")).Return(pdf, nil).Once()
	suite.mockStore.On("Put", ctx, mock.AnythingOfType("string"), pdf, "application/pdf").Return(expectedErr).Once()

	err := suite.service.EmailInventoryReport(ctx, suite.company.CompanyID, "owner@example.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockEnqueuer.AssertNotCalled(suite.T(), "EnqueueReportEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
