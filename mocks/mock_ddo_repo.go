package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstportal/internal/domain"
)

// MockDDORepo is a mock implementation of port.DDORepository.
type MockDDORepo struct {
	mock.Mock
}

func (m *MockDDORepo) Create(ctx context.Context, ddo *domain.DDO) error {
	args := m.Called(ctx, ddo)
	return args.Error(0)
}

func (m *MockDDORepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DDO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DDO), args.Error(1)
}

func (m *MockDDORepo) GetByCode(ctx context.Context, code string) (*domain.DDO, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DDO), args.Error(1)
}

func (m *MockDDORepo) List(ctx context.Context, offset, limit int) ([]domain.DDO, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DDO), args.Int(1), args.Error(2)
}

func (m *MockDDORepo) Update(ctx context.Context, ddo *domain.DDO) error {
	args := m.Called(ctx, ddo)
	return args.Error(0)
}

func (m *MockDDORepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
