package port

import "context"

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	SendCertificateUploadedEmail(ctx context.Context, toEmail, toName, formType, financialYear string) error
}
