package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstportal/internal/domain"
	"gstportal/internal/service"
)

// MockDDOService is a mock implementation of service.DDOService.
type MockDDOService struct {
	mock.Mock
}

func (m *MockDDOService) Create(ctx context.Context, input service.CreateDDOInput) (*domain.DDO, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DDO), args.Error(1)
}

func (m *MockDDOService) GetByID(ctx context.Context, id uuid.UUID) (*domain.DDO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DDO), args.Error(1)
}

func (m *MockDDOService) GetByCode(ctx context.Context, code string) (*domain.DDO, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DDO), args.Error(1)
}

func (m *MockDDOService) List(ctx context.Context, offset, limit int) ([]domain.DDO, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DDO), args.Int(1), args.Error(2)
}

func (m *MockDDOService) Update(ctx context.Context, id uuid.UUID, input service.UpdateDDOInput) (*domain.DDO, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DDO), args.Error(1)
}

func (m *MockDDOService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
