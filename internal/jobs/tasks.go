package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeReportEmail is the task type for delivering inventory reports.
	TaskTypeReportEmail = "report:email"
)

// reportLinkExpiry is how long the download link in the email stays valid.
const reportLinkExpiry = time.Hour

// ReportEmailPayload describes a stored report awaiting email delivery.
type ReportEmailPayload struct {
	FileName    string `json:"fileName"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
}

// NewReportEmailTask constructs an Asynq task.
func NewReportEmailTask(payload ReportEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeReportEmail, data), nil
}

// Presigner produces time-limited download URLs for stored report files.
type Presigner interface {
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// EmailSender delivers a single HTML email.
type EmailSender interface {
	SendHTML(ctx context.Context, to, subject, htmlBody string) error
}

// NewReportEmailHandler builds the handler for TaskTypeReportEmail tasks.
// A malformed payload is dropped; presign and delivery failures are returned
// so Asynq retries the task.
func NewReportEmailHandler(presigner Presigner, sender EmailSender, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ReportEmailPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Error("dropping report email task with bad payload", slog.String("error", err.Error()))
			return asynq.SkipRetry
		}

		url, err := presigner.PresignGet(ctx, payload.FileName, reportLinkExpiry)
		if err != nil {
			logger.Warn("failed to presign report file",
				slog.String("file_name", payload.FileName),
				slog.String("error", err.Error()))
			return err
		}

		subject := fmt.Sprintf("Inventory Report - %s", payload.CompanyName)
		if err := sender.SendHTML(ctx, payload.Email, subject, reportEmailHTML(payload.CompanyName, url)); err != nil {
			logger.Warn("failed to send report email",
				slog.String("file_name", payload.FileName),
				slog.String("error", err.Error()))
			return err
		}

		logger.Info("report email delivered",
			slog.String("file_name", payload.FileName),
			slog.String("company_name", payload.CompanyName))
		return nil
	}
}

// reportEmailHTML builds the delivery email body with the download link.
func reportEmailHTML(companyName, url string) string {
	return fmt.Sprintf(`<html>
<body style="font-family: Helvetica, Arial, sans-serif; color: #222;">
<h2>Inventory Report - %s</h2>
<p>Your inventory report is ready. Click the link below to download it.</p>
<p><a href="%s">Download report</a></p>
<p>This link will expire in 1 hour.</p>
</body>
</html>`, companyName, url)
}
