package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gstportal/internal/domain"
	"gstportal/internal/port"
	"gstportal/internal/validator"
)

// CreateDDOInput is the DTO for DDO office registration.
type CreateDDOInput struct {
	Code        string `json:"code" binding:"required"`
	OfficeName  string `json:"office_name" binding:"required"`
	OfficerName string `json:"officer_name" binding:"required"`
	TAN         string `json:"tan" binding:"required"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	PINCode     string `json:"pin_code" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Mobile      string `json:"mobile" binding:"required"`
}

// UpdateDDOInput is the DTO for DDO updates. Nil fields are left unchanged.
type UpdateDDOInput struct {
	OfficeName  *string `json:"office_name"`
	OfficerName *string `json:"officer_name"`
	TAN         *string `json:"tan"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	PINCode     *string `json:"pin_code"`
	Email       *string `json:"email"`
	Mobile      *string `json:"mobile"`
	IsActive    *bool   `json:"is_active"`
}

// DDOService defines the DDO master data contract.
type DDOService interface {
	Create(ctx context.Context, input CreateDDOInput) (*domain.DDO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DDO, error)
	GetByCode(ctx context.Context, code string) (*domain.DDO, error)
	List(ctx context.Context, offset, limit int) ([]domain.DDO, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateDDOInput) (*domain.DDO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ddoService struct {
	ddoRepo port.DDORepository
}

// NewDDOService creates a new DDOService implementation.
func NewDDOService(ddoRepo port.DDORepository) DDOService {
	return &ddoService{ddoRepo: ddoRepo}
}

func (s *ddoService) Create(ctx context.Context, input CreateDDOInput) (*domain.DDO, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	tan := strings.ToUpper(strings.TrimSpace(input.TAN))

	checks := []struct {
		field validator.FieldType
		value string
	}{
		{validator.FieldDDOCode, code},
		{validator.FieldName, input.OfficeName},
		{validator.FieldName, input.OfficerName},
		{validator.FieldTAN, tan},
		{validator.FieldAddress, input.Address},
		{validator.FieldCity, input.City},
		{validator.FieldPIN, input.PINCode},
		{validator.FieldEmail, input.Email},
		{validator.FieldMobile, input.Mobile},
	}
	for _, c := range checks {
		if res := validator.Validate(c.field, c.value); !res.Valid {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
		}
	}

	ddo := &domain.DDO{
		Code:        code,
		OfficeName:  strings.TrimSpace(input.OfficeName),
		OfficerName: strings.TrimSpace(input.OfficerName),
		TAN:         tan,
		Address:     strings.TrimSpace(input.Address),
		City:        strings.TrimSpace(input.City),
		PINCode:     input.PINCode,
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Mobile:      input.Mobile,
		IsActive:    true,
	}

	if err := s.ddoRepo.Create(ctx, ddo); err != nil {
		return nil, err
	}
	return ddo, nil
}

func (s *ddoService) GetByID(ctx context.Context, id uuid.UUID) (*domain.DDO, error) {
	return s.ddoRepo.GetByID(ctx, id)
}

func (s *ddoService) GetByCode(ctx context.Context, code string) (*domain.DDO, error) {
	return s.ddoRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

func (s *ddoService) List(ctx context.Context, offset, limit int) ([]domain.DDO, int, error) {
	return s.ddoRepo.List(ctx, offset, limit)
}

func (s *ddoService) Update(ctx context.Context, id uuid.UUID, input UpdateDDOInput) (*domain.DDO, error) {
	ddo, err := s.ddoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Upper-case TAN ahead of validation, matching Create.
	if input.TAN != nil {
		tan := strings.ToUpper(strings.TrimSpace(*input.TAN))
		input.TAN = &tan
	}

	apply := []struct {
		field validator.FieldType
		value *string
		dest  *string
	}{
		{validator.FieldName, input.OfficeName, &ddo.OfficeName},
		{validator.FieldName, input.OfficerName, &ddo.OfficerName},
		{validator.FieldTAN, input.TAN, &ddo.TAN},
		{validator.FieldAddress, input.Address, &ddo.Address},
		{validator.FieldCity, input.City, &ddo.City},
		{validator.FieldPIN, input.PINCode, &ddo.PINCode},
		{validator.FieldEmail, input.Email, &ddo.Email},
		{validator.FieldMobile, input.Mobile, &ddo.Mobile},
	}
	for _, a := range apply {
		if a.value == nil {
			continue
		}
		if res := validator.Validate(a.field, *a.value); !res.Valid {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
		}
		*a.dest = strings.TrimSpace(*a.value)
	}
	if input.Email != nil {
		ddo.Email = strings.ToLower(ddo.Email)
	}
	if input.IsActive != nil {
		ddo.IsActive = *input.IsActive
	}

	if err := s.ddoRepo.Update(ctx, ddo); err != nil {
		return nil, err
	}
	return ddo, nil
}

func (s *ddoService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.ddoRepo.Delete(ctx, id)
}
