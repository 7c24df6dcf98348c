package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESSender delivers HTML emails through Amazon SES.
type SESSender struct {
	client *sesv2.Client
	from   string
}

// NewSESSender creates a sender using the given sender address.
func NewSESSender(awsCfg aws.Config, from string) *SESSender {
	return &SESSender{
		client: sesv2.NewFromConfig(awsCfg),
		from:   from,
	}
}

// SendHTML sends a single HTML email to one recipient.
func (s *SESSender) SendHTML(ctx context.Context, to, subject, htmlBody string) error {
	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
