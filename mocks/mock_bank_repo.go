package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstportal/internal/domain"
)

// MockBankAccountRepo is a mock implementation of port.BankAccountRepository.
type MockBankAccountRepo struct {
	mock.Mock
}

func (m *MockBankAccountRepo) Create(ctx context.Context, acct *domain.BankAccount) error {
	args := m.Called(ctx, acct)
	return args.Error(0)
}

func (m *MockBankAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BankAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepo) ListByDDO(ctx context.Context, ddoCode string, offset, limit int) ([]domain.BankAccount, int, error) {
	args := m.Called(ctx, ddoCode, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.BankAccount), args.Int(1), args.Error(2)
}

func (m *MockBankAccountRepo) Update(ctx context.Context, acct *domain.BankAccount) error {
	args := m.Called(ctx, acct)
	return args.Error(0)
}

func (m *MockBankAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
