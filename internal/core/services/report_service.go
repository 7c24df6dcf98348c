package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jpriva/orders_backend/internal/core/domain"
	portsrepo "github.com/jpriva/orders_backend/internal/core/ports/repositories"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
	"github.com/jpriva/orders_backend/internal/report"
)

var reportKeyUnsafe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// reportService renders the inventory report and hands delivery off to the
// background worker.
type reportService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
	productSvc  portssvc.ProductReaderSvc
	renderer    portssvc.PDFRenderer
	store       portssvc.ObjectStore
	enqueuer    portssvc.ReportEnqueuer
}

// NewReportService creates a new report service.
func NewReportService(
	companyRepo portsrepo.CompanyRepositoryFacade,
	productSvc portssvc.ProductReaderSvc,
	renderer portssvc.PDFRenderer,
	store portssvc.ObjectStore,
	enqueuer portssvc.ReportEnqueuer,
) portssvc.ReportSvcFacade {
	return &reportService{
		companyRepo: companyRepo,
		productSvc:  productSvc,
		renderer:    renderer,
		store:       store,
		enqueuer:    enqueuer,
	}
}

// Ensure implementation matches interface
var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// InventoryReportPDF renders the company's inventory report as PDF bytes.
func (s *reportService) InventoryReportPDF(ctx context.Context, companyID string) ([]byte, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company %s: %w", companyID, err)
	}
	return s.renderInventoryPDF(ctx, company)
}

// renderInventoryPDF builds the report for an already loaded company.
func (s *reportService) renderInventoryPDF(ctx context.Context, company *domain.Company) ([]byte, error) {
	products, err := s.productSvc.ListProducts(ctx, company.CompanyID)
	if err != nil {
		return nil, err
	}

	html, err := report.InventoryHTML(*company, products, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to build inventory report: %w", err)
	}

	pdf, err := s.renderer.RenderHTML(ctx, html)
	if err != nil {
		s.LogError(ctx, err, "failed to render inventory report", slog.String("company_id", company.CompanyID))
		return nil, fmt.Errorf("failed to render inventory report: %w", err)
	}

	return pdf, nil
}

// EmailInventoryReport renders the report, stores it under a unique key and
// enqueues the email delivery for the background worker.
func (s *reportService) EmailInventoryReport(ctx context.Context, companyID, email string) error {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return fmt.Errorf("failed to get company %s: %w", companyID, err)
	}

	pdf, err := s.renderInventoryPDF(ctx, company)
	if err != nil {
		return err
	}

	fileName := fmt.Sprintf("%s_inv_%s.pdf", reportKeyUnsafe.ReplaceAllString(company.Name, "_"), uuid.NewString())
	if err := s.store.Put(ctx, fileName, pdf, "application/pdf"); err != nil {
		s.LogError(ctx, err, "failed to store inventory report", slog.String("file_name", fileName))
		return fmt.Errorf("failed to store inventory report: %w", err)
	}

	if err := s.enqueuer.EnqueueReportEmail(ctx, fileName, email, company.Name); err != nil {
		s.LogError(ctx, err, "failed to enqueue report email", slog.String("file_name", fileName))
		return fmt.Errorf("failed to enqueue report email: %w", err)
	}

	s.LogInfo(ctx, "inventory report queued for delivery",
		slog.String("company_id", companyID),
		slog.String("file_name", fileName))
	return nil
}
