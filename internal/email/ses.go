package email

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog/log"

	"github.com/hightidestudios/website/internal/booking"
)

// SESRelay delivers booking requests to the studio inbox through AWS
// SESv2. It satisfies booking.Relay.
type SESRelay struct {
	client    *sesv2.Client
	sender    string
	recipient string
}

// NewSESRelay initializes the relay using static credentials and region.
func NewSESRelay(accessKeyID, secretAccessKey, region, sender, recipient string) (*SESRelay, error) {
	if accessKeyID == "" || secretAccessKey == "" || region == "" {
		return nil, fmt.Errorf("ses credentials and region are required")
	}
	if sender == "" || recipient == "" {
		return nil, fmt.Errorf("ses sender and recipient are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &SESRelay{
		client:    sesv2.NewFromConfig(awsCfg),
		sender:    sender,
		recipient: recipient,
	}, nil
}

// Send delivers one booking request. Exactly one SES call per
// submission; retries are the visitor's decision, not ours.
func (r *SESRelay) Send(ctx context.Context, payload booking.Payload) error {
	if r == nil || r.client == nil {
		return fmt.Errorf("ses relay is not initialized")
	}

	subject := fmt.Sprintf("Booking request from %s - %s", payload.FromName, payload.Package)
	input := &sesv2.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{r.recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(RenderBody(payload))},
				},
			},
		},
		FromEmailAddress: aws.String(r.sender),
		ReplyToAddresses: []string{payload.ReplyTo},
	}

	if _, err := r.client.SendEmail(ctx, input); err != nil {
		log.Error().
			Err(err).
			Str("recipient", r.recipient).
			Str("subject", subject).
			Time("timestamp", time.Now().UTC()).
			Msg("Failed to send SES email")
		return fmt.Errorf("send ses email: %w", err)
	}

	return nil
}

// RenderBody lays the payload out as the plain-text booking request the
// studio reads.
func RenderBody(payload booking.Payload) string {
	return fmt.Sprintf(`New booking request for %s.

Name: %s
Email: %s
Phone: %s
Company / Podcast: %s

Package: %s
Package price: %s
Deposit (10%%): %s
Balance due: %s

Preferred dates:
• %s

Notes: %s

Reply to: %s
`,
		payload.ToName,
		payload.FromName,
		payload.FromEmail,
		payload.Phone,
		payload.Company,
		payload.Package,
		payload.PackagePrice,
		payload.DepositAmount,
		payload.BalanceDue,
		payload.PreferredDates,
		payload.Notes,
		payload.ReplyTo,
	)
}
