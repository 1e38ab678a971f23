package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstportal/internal/domain"
	"gstportal/internal/service"
)

// MockCertificateService is a mock implementation of service.CertificateService.
type MockCertificateService struct {
	mock.Mock
}

func (m *MockCertificateService) Upload(ctx context.Context, input service.CertificateUploadInput) (*domain.Certificate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

func (m *MockCertificateService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Certificate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

func (m *MockCertificateService) ListByDDO(ctx context.Context, ddoCode string, offset, limit int) ([]domain.Certificate, int, error) {
	args := m.Called(ctx, ddoCode, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Certificate), args.Int(1), args.Error(2)
}

func (m *MockCertificateService) GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockCertificateService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
