package port

import (
	"context"

	"gstportal/internal/domain"
)

// HSNRepository defines the contract for HSN code master data access.
type HSNRepository interface {
	Create(ctx context.Context, code *domain.HSNCode) error
	GetByCode(ctx context.Context, code string) (*domain.HSNCode, error)
	Search(ctx context.Context, prefix string, offset, limit int) ([]domain.HSNCode, int, error)
	LoadAll(ctx context.Context) ([]domain.HSNCode, error)
}
