package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstportal/internal/domain"
)

// MockGSTINRepo is a mock implementation of port.GSTINRepository.
type MockGSTINRepo struct {
	mock.Mock
}

func (m *MockGSTINRepo) Create(ctx context.Context, rec *domain.GSTINRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockGSTINRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.GSTINRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTINRecord), args.Error(1)
}

func (m *MockGSTINRepo) GetByGSTIN(ctx context.Context, gstin string) (*domain.GSTINRecord, error) {
	args := m.Called(ctx, gstin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTINRecord), args.Error(1)
}

func (m *MockGSTINRepo) List(ctx context.Context, offset, limit int) ([]domain.GSTINRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.GSTINRecord), args.Int(1), args.Error(2)
}

func (m *MockGSTINRepo) Update(ctx context.Context, rec *domain.GSTINRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockGSTINRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
