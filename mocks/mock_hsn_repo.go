package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstportal/internal/domain"
)

// MockHSNRepo is a mock implementation of port.HSNRepository.
type MockHSNRepo struct {
	mock.Mock
}

func (m *MockHSNRepo) Create(ctx context.Context, code *domain.HSNCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockHSNRepo) GetByCode(ctx context.Context, code string) (*domain.HSNCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HSNCode), args.Error(1)
}

func (m *MockHSNRepo) Search(ctx context.Context, prefix string, offset, limit int) ([]domain.HSNCode, int, error) {
	args := m.Called(ctx, prefix, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.HSNCode), args.Int(1), args.Error(2)
}

func (m *MockHSNRepo) LoadAll(ctx context.Context) ([]domain.HSNCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HSNCode), args.Error(1)
}
