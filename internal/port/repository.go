package port

import (
	"context"

	"github.com/google/uuid"

	"gstportal/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// DDORepository defines the contract for DDO master persistence.
type DDORepository interface {
	Create(ctx context.Context, ddo *domain.DDO) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DDO, error)
	GetByCode(ctx context.Context, code string) (*domain.DDO, error)
	List(ctx context.Context, offset, limit int) ([]domain.DDO, int, error)
	Update(ctx context.Context, ddo *domain.DDO) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GSTINRepository defines the contract for customer GSTIN master persistence.
type GSTINRepository interface {
	Create(ctx context.Context, rec *domain.GSTINRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GSTINRecord, error)
	GetByGSTIN(ctx context.Context, gstin string) (*domain.GSTINRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.GSTINRecord, int, error)
	Update(ctx context.Context, rec *domain.GSTINRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BankAccountRepository defines the contract for bank detail persistence.
type BankAccountRepository interface {
	Create(ctx context.Context, acct *domain.BankAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BankAccount, error)
	ListByDDO(ctx context.Context, ddoCode string, offset, limit int) ([]domain.BankAccount, int, error)
	Update(ctx context.Context, acct *domain.BankAccount) error
	Delete(ctx context.Context, id uuid.UUID) error
}
