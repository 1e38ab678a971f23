package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendCertificateUploadedEmail(ctx context.Context, toEmail, toName, formType, financialYear string) error {
	args := m.Called(ctx, toEmail, toName, formType, financialYear)
	return args.Error(0)
}
