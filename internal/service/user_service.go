package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gstportal/internal/domain"
	"gstportal/internal/port"
	"gstportal/internal/validator"
)

// CreateUserInput is the DTO for user creation requests.
type CreateUserInput struct {
	Email    string          `json:"email" binding:"required"`
	Password string          `json:"password" binding:"required"`
	FullName string          `json:"full_name" binding:"required"`
	Mobile   string          `json:"mobile" binding:"required"`
	DDOCode  string          `json:"ddo_code" binding:"required"`
	Role     domain.UserRole `json:"role"`
}

// UpdateUserInput is the DTO for user update requests. Nil fields are left unchanged.
type UpdateUserInput struct {
	FullName *string          `json:"full_name"`
	Mobile   *string          `json:"mobile"`
	Role     *domain.UserRole `json:"role"`
	IsActive *bool            `json:"is_active"`
}

// ChangePasswordInput is the DTO for password change requests.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// UserService defines the user management contract.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	userRepo port.UserRepository
	ddoRepo  port.DDORepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(userRepo port.UserRepository, ddoRepo port.DDORepository) UserService {
	return &userService{
		userRepo: userRepo,
		ddoRepo:  ddoRepo,
	}
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	checks := map[validator.FieldType]string{
		validator.FieldEmail:    input.Email,
		validator.FieldPassword: input.Password,
		validator.FieldName:     input.FullName,
		validator.FieldMobile:   input.Mobile,
		validator.FieldDDOCode:  input.DDOCode,
	}
	for field, value := range checks {
		if res := validator.Validate(field, value); !res.Valid {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
		}
	}

	// The DDO office must exist before users can be attached to it.
	if _, err := s.ddoRepo.GetByCode(ctx, input.DDOCode); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown DDO code %s", domain.ErrValidationFailed, input.DDOCode)
		}
		return nil, fmt.Errorf("userService.Create: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleDDO
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(input.FullName),
		Mobile:       input.Mobile,
		DDOCode:      input.DDOCode,
		Role:         role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int, error) {
	return s.userRepo.List(ctx, offset, limit)
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		if res := validator.Validate(validator.FieldName, *input.FullName); !res.Valid {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
		}
		user.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Mobile != nil {
		if res := validator.Validate(validator.FieldMobile, *input.Mobile); !res.Valid {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
		}
		user.Mobile = *input.Mobile
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	if res := validator.Validate(validator.FieldPassword, input.NewPassword); !res.Valid {
		return fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	user.PasswordHash = string(hash)

	return s.userRepo.Update(ctx, user)
}

func (s *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.userRepo.Delete(ctx, userID)
}
