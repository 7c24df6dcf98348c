package jobs

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
)

// Client submits report delivery jobs to the queue.
type Client struct {
	client *asynq.Client
}

// NewClient constructs an Asynq client.
func NewClient(redisOpts asynq.RedisClientOpt) *Client {
	return &Client{client: asynq.NewClient(redisOpts)}
}

// Ensure implementation matches interface
var _ portssvc.ReportEnqueuer = (*Client)(nil)

// EnqueueReportEmail queues the email delivery of a stored report.
func (c *Client) EnqueueReportEmail(ctx context.Context, fileName, email, companyName string) error {
	task, err := NewReportEmailTask(ReportEmailPayload{
		FileName:    fileName,
		Email:       email,
		CompanyName: companyName,
	})
	if err != nil {
		return fmt.Errorf("failed to build report email task: %w", err)
	}
	if _, err := c.client.EnqueueContext(ctx, task, asynq.Queue(QueueDefault)); err != nil {
		return fmt.Errorf("failed to enqueue report email task: %w", err)
	}
	return nil
}

// Close releases client resources.
func (c *Client) Close() error {
	return c.client.Close()
}
