package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"gstportal/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendCertificateUploadedEmail(ctx context.Context, toEmail, toName, formType, financialYear string) error {
	formLabel := "Form 16"
	if formType == "form16a" {
		formLabel = "Form 16A"
	}

	subject := fmt.Sprintf("%s for FY %s is available", formLabel, financialYear)
	htmlBody := buildCertificateUploadedHTML(toName, formLabel, financialYear)
	textBody := fmt.Sprintf("Dear %s,\n\nYour %s for financial year %s has been uploaded and is now available for download from the portal.\n\nGST Portal", toName, formLabel, financialYear)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildCertificateUploadedHTML(name, formLabel, financialYear string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s available for download</h2>
  <p>Dear %s,</p>
  <p>Your %s for financial year %s has been uploaded and is now available for download from the portal.</p>
  <p>Please sign in to view and download the certificate.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">GST Portal - Billing &amp; Administration</p>
</body>
</html>`, formLabel, name, formLabel, financialYear)
}
