package utils

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SESMailer sends plain-text mail through Amazon SES.
type SESMailer struct {
	client *ses.Client
	sender string
}

func NewSESMailer(ctx context.Context, region, sender string) (*SESMailer, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), sender: sender}, nil
}

func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.sender),
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// LogMailer only logs; used when no SES sender is configured.
type LogMailer struct {
	Log *zap.Logger
}

func (m LogMailer) Send(_ context.Context, to, subject, _ string) error {
	m.Log.Info("mail not sent, no sender configured", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func SendPaymentConfirmation(ctx context.Context, m Mailer, to string, months int, endsAt string) error {
	subject := "Your coaching subscription"
	body := fmt.Sprintf("Thanks for your payment. Your %d-month coaching subscription is active until %s.", months, endsAt)
	return m.Send(ctx, to, subject, body)
}

func SendSubscriptionExpired(ctx context.Context, m Mailer, to string) error {
	subject := "Your coaching subscription has ended"
	body := "Your coaching subscription has expired. Renew it any time from the app."
	return m.Send(ctx, to, subject, body)
}
