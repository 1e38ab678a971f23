package noop

import (
	"context"
	"log"

	"gstportal/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs notifications to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendCertificateUploadedEmail(_ context.Context, toEmail, toName, formType, financialYear string) error {
	log.Printf("[NOOP EMAIL] Certificate %s (FY %s) uploaded notification for %s (%s)", formType, financialYear, toName, toEmail)
	return nil
}
