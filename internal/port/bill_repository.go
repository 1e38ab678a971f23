package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gstportal/internal/domain"
)

// BillFilter narrows bill listings and exports.
type BillFilter struct {
	DDOCode  string
	BillType domain.BillType
	Status   domain.BillStatus
	FromDate *time.Time
	ToDate   *time.Time
}

// BillRepository defines the contract for bill persistence. Create stores
// the bill and its line items in one transaction.
type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error)
	List(ctx context.Context, filter BillFilter, offset, limit int) ([]domain.Bill, int, error)
	ListForExport(ctx context.Context, filter BillFilter) ([]domain.Bill, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BillStatus) error
	NextBillNumber(ctx context.Context, ddoCode string, billType domain.BillType) (string, error)
}

// CertificateRepository defines the contract for Form 16/16A metadata persistence.
type CertificateRepository interface {
	Create(ctx context.Context, cert *domain.Certificate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Certificate, error)
	ListByDDO(ctx context.Context, ddoCode string, offset, limit int) ([]domain.Certificate, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CertificateStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
