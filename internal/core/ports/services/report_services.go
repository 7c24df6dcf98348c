package services

import "context"

// PDFRenderer converts an HTML document into PDF bytes.
type PDFRenderer interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

// ObjectStore persists generated report files.
type ObjectStore interface {
	// Put stores an object under the given key.
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// ReportEnqueuer hands the email delivery of a stored report off to the
// background worker.
type ReportEnqueuer interface {
	EnqueueReportEmail(ctx context.Context, fileName, email, companyName string) error
}

// ReportSvcFacade defines inventory report generation and delivery.
type ReportSvcFacade interface {
	// InventoryReportPDF renders the company's inventory report as PDF bytes.
	InventoryReportPDF(ctx context.Context, companyID string) ([]byte, error)

	// EmailInventoryReport renders the report, stores it, and enqueues the
	// email delivery for the background worker.
	EmailInventoryReport(ctx context.Context, companyID, email string) error
}
