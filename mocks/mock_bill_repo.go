package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstportal/internal/domain"
	"gstportal/internal/port"
)

// MockBillRepo is a mock implementation of port.BillRepository.
type MockBillRepo struct {
	mock.Mock
}

func (m *MockBillRepo) Create(ctx context.Context, bill *domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepo) List(ctx context.Context, filter port.BillFilter, offset, limit int) ([]domain.Bill, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Bill), args.Int(1), args.Error(2)
}

func (m *MockBillRepo) ListForExport(ctx context.Context, filter port.BillFilter) ([]domain.Bill, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BillStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBillRepo) NextBillNumber(ctx context.Context, ddoCode string, billType domain.BillType) (string, error) {
	args := m.Called(ctx, ddoCode, billType)
	return args.String(0), args.Error(1)
}
