package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gstportal/internal/domain"
	"gstportal/internal/gst"
	"gstportal/internal/port"
	"gstportal/internal/validator"
)

// CreateGSTINInput is the DTO for registering a customer GSTIN.
type CreateGSTINInput struct {
	GSTIN     string `json:"gstin" binding:"required"`
	LegalName string `json:"legal_name" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	PINCode   string `json:"pin_code" binding:"required"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
}

// CreateBankAccountInput is the DTO for registering a DDO bank account.
type CreateBankAccountInput struct {
	DDOCode       string `json:"ddo_code" binding:"required"`
	BankName      string `json:"bank_name" binding:"required"`
	BranchName    string `json:"branch_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	IFSC          string `json:"ifsc" binding:"required"`
	MICR          string `json:"micr"`
}

// MasterService manages the GSTIN, bank account, and HSN master data.
type MasterService interface {
	CreateGSTIN(ctx context.Context, input CreateGSTINInput) (*domain.GSTINRecord, error)
	GetGSTIN(ctx context.Context, gstin string) (*domain.GSTINRecord, error)
	ListGSTINs(ctx context.Context, offset, limit int) ([]domain.GSTINRecord, int, error)
	DeleteGSTIN(ctx context.Context, id uuid.UUID) error

	CreateBankAccount(ctx context.Context, input CreateBankAccountInput) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, ddoCode string, offset, limit int) ([]domain.BankAccount, int, error)
	DeleteBankAccount(ctx context.Context, id uuid.UUID) error

	GetHSN(ctx context.Context, code string) (*domain.HSNCode, error)
	SearchHSN(ctx context.Context, prefix string, offset, limit int) ([]domain.HSNCode, int, error)
}

type masterService struct {
	gstinRepo port.GSTINRepository
	bankRepo  port.BankAccountRepository
	hsnRepo   port.HSNRepository
	ddoRepo   port.DDORepository
}

// NewMasterService creates a new MasterService implementation.
func NewMasterService(
	gstinRepo port.GSTINRepository,
	bankRepo port.BankAccountRepository,
	hsnRepo port.HSNRepository,
	ddoRepo port.DDORepository,
) MasterService {
	return &masterService{
		gstinRepo: gstinRepo,
		bankRepo:  bankRepo,
		hsnRepo:   hsnRepo,
		ddoRepo:   ddoRepo,
	}
}

func (s *masterService) CreateGSTIN(ctx context.Context, input CreateGSTINInput) (*domain.GSTINRecord, error) {
	gstin := strings.ToUpper(strings.TrimSpace(input.GSTIN))

	checks := []struct {
		field validator.FieldType
		value string
	}{
		{validator.FieldGSTIN, gstin},
		{validator.FieldName, input.LegalName},
		{validator.FieldAddress, input.Address},
		{validator.FieldCity, input.City},
		{validator.FieldPIN, input.PINCode},
	}
	for _, c := range checks {
		if res := validator.Validate(c.field, c.value); !res.Valid {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
		}
	}
	if input.Email != "" {
		if res := validator.Validate(validator.FieldEmail, input.Email); !res.Valid {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
		}
	}
	if input.Mobile != "" {
		if res := validator.Validate(validator.FieldMobile, input.Mobile); !res.Valid {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
		}
	}

	stateCode, ok := gst.ExtractStateCode(gstin)
	if !ok {
		return nil, fmt.Errorf("%w: GSTIN state code is invalid", domain.ErrValidationFailed)
	}

	rec := &domain.GSTINRecord{
		GSTIN:     gstin,
		LegalName: strings.TrimSpace(input.LegalName),
		Address:   strings.TrimSpace(input.Address),
		City:      strings.TrimSpace(input.City),
		PINCode:   input.PINCode,
		StateCode: stateCode,
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Mobile:    input.Mobile,
		IsActive:  true,
	}

	if err := s.gstinRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *masterService) GetGSTIN(ctx context.Context, gstin string) (*domain.GSTINRecord, error) {
	return s.gstinRepo.GetByGSTIN(ctx, strings.ToUpper(strings.TrimSpace(gstin)))
}

func (s *masterService) ListGSTINs(ctx context.Context, offset, limit int) ([]domain.GSTINRecord, int, error) {
	return s.gstinRepo.List(ctx, offset, limit)
}

func (s *masterService) DeleteGSTIN(ctx context.Context, id uuid.UUID) error {
	return s.gstinRepo.Delete(ctx, id)
}

func (s *masterService) CreateBankAccount(ctx context.Context, input CreateBankAccountInput) (*domain.BankAccount, error) {
	ifsc := strings.ToUpper(strings.TrimSpace(input.IFSC))

	checks := []struct {
		field validator.FieldType
		value string
	}{
		{validator.FieldDDOCode, input.DDOCode},
		{validator.FieldName, input.BankName},
		{validator.FieldName, input.BranchName},
		{validator.FieldAccountNumber, input.AccountNumber},
		{validator.FieldIFSC, ifsc},
	}
	for _, c := range checks {
		if res := validator.Validate(c.field, c.value); !res.Valid {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
		}
	}
	if input.MICR != "" {
		if res := validator.Validate(validator.FieldMICR, input.MICR); !res.Valid {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
		}
	}

	// Accounts hang off a registered DDO office.
	if _, err := s.ddoRepo.GetByCode(ctx, input.DDOCode); err != nil {
		return nil, err
	}

	acct := &domain.BankAccount{
		DDOCode:       input.DDOCode,
		BankName:      strings.TrimSpace(input.BankName),
		BranchName:    strings.TrimSpace(input.BranchName),
		AccountNumber: input.AccountNumber,
		IFSC:          ifsc,
		MICR:          input.MICR,
		IsActive:      true,
	}

	if err := s.bankRepo.Create(ctx, acct); err != nil {
		return nil, err
	}
	return acct, nil
}

func (s *masterService) ListBankAccounts(ctx context.Context, ddoCode string, offset, limit int) ([]domain.BankAccount, int, error) {
	return s.bankRepo.ListByDDO(ctx, ddoCode, offset, limit)
}

func (s *masterService) DeleteBankAccount(ctx context.Context, id uuid.UUID) error {
	return s.bankRepo.Delete(ctx, id)
}

func (s *masterService) GetHSN(ctx context.Context, code string) (*domain.HSNCode, error) {
	if res := validator.Validate(validator.FieldHSN, code); !res.Valid {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
	}
	return s.hsnRepo.GetByCode(ctx, code)
}

func (s *masterService) SearchHSN(ctx context.Context, prefix string, offset, limit int) ([]domain.HSNCode, int, error) {
	return s.hsnRepo.Search(ctx, prefix, offset, limit)
}
