package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstportal/internal/domain"
)

// MockCertificateRepo is a mock implementation of port.CertificateRepository.
type MockCertificateRepo struct {
	mock.Mock
}

func (m *MockCertificateRepo) Create(ctx context.Context, cert *domain.Certificate) error {
	args := m.Called(ctx, cert)
	return args.Error(0)
}

func (m *MockCertificateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Certificate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepo) ListByDDO(ctx context.Context, ddoCode string, offset, limit int) ([]domain.Certificate, int, error) {
	args := m.Called(ctx, ddoCode, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Certificate), args.Int(1), args.Error(2)
}

func (m *MockCertificateRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CertificateStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCertificateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
