package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstportal/internal/domain"
	"gstportal/internal/service"
)

// MockMasterService is a mock implementation of service.MasterService.
type MockMasterService struct {
	mock.Mock
}

func (m *MockMasterService) CreateGSTIN(ctx context.Context, input service.CreateGSTINInput) (*domain.GSTINRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTINRecord), args.Error(1)
}

func (m *MockMasterService) GetGSTIN(ctx context.Context, gstin string) (*domain.GSTINRecord, error) {
	args := m.Called(ctx, gstin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTINRecord), args.Error(1)
}

func (m *MockMasterService) ListGSTINs(ctx context.Context, offset, limit int) ([]domain.GSTINRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.GSTINRecord), args.Int(1), args.Error(2)
}

func (m *MockMasterService) DeleteGSTIN(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMasterService) CreateBankAccount(ctx context.Context, input service.CreateBankAccountInput) (*domain.BankAccount, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockMasterService) ListBankAccounts(ctx context.Context, ddoCode string, offset, limit int) ([]domain.BankAccount, int, error) {
	args := m.Called(ctx, ddoCode, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.BankAccount), args.Int(1), args.Error(2)
}

func (m *MockMasterService) DeleteBankAccount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMasterService) GetHSN(ctx context.Context, code string) (*domain.HSNCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HSNCode), args.Error(1)
}

func (m *MockMasterService) SearchHSN(ctx context.Context, prefix string, offset, limit int) ([]domain.HSNCode, int, error) {
	args := m.Called(ctx, prefix, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.HSNCode), args.Int(1), args.Error(2)
}
