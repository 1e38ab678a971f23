package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstportal/internal/domain"
	"gstportal/internal/port"
)

type hsnRepo struct {
	db *sqlx.DB
}

// NewHSNRepo creates a new PostgreSQL-backed HSNRepository.
func NewHSNRepo(db *sqlx.DB) port.HSNRepository {
	return &hsnRepo{db: db}
}

func (r *hsnRepo) Create(ctx context.Context, code *domain.HSNCode) error {
	code.ID = uuid.New()
	code.CreatedAt = time.Now().UTC()

	query := `INSERT INTO hsn_codes
		(id, code, description, gst_rate, condition_desc, parent_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (code) DO UPDATE
		SET description = EXCLUDED.description,
		    gst_rate = EXCLUDED.gst_rate,
		    condition_desc = EXCLUDED.condition_desc,
		    parent_code = EXCLUDED.parent_code`

	_, err := r.db.ExecContext(ctx, query,
		code.ID, code.Code, code.Description, code.GSTRate,
		code.ConditionDesc, code.ParentCode, code.CreatedAt)
	if err != nil {
		return fmt.Errorf("hsnRepo.Create: %w", err)
	}
	return nil
}

func (r *hsnRepo) GetByCode(ctx context.Context, code string) (*domain.HSNCode, error) {
	var hsn domain.HSNCode
	err := r.db.GetContext(ctx, &hsn, "SELECT * FROM hsn_codes WHERE code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("hsnRepo.GetByCode: %w", err)
	}
	return &hsn, nil
}

func (r *hsnRepo) Search(ctx context.Context, prefix string, offset, limit int) ([]domain.HSNCode, int, error) {
	pattern := strings.TrimSpace(prefix) + "%"

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM hsn_codes WHERE code LIKE $1", pattern)
	if err != nil {
		return nil, 0, fmt.Errorf("hsnRepo.Search count: %w", err)
	}

	var codes []domain.HSNCode
	err = r.db.SelectContext(ctx, &codes,
		"SELECT * FROM hsn_codes WHERE code LIKE $1 ORDER BY code LIMIT $2 OFFSET $3",
		pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("hsnRepo.Search: %w", err)
	}
	return codes, total, nil
}

func (r *hsnRepo) LoadAll(ctx context.Context) ([]domain.HSNCode, error) {
	var codes []domain.HSNCode
	err := r.db.SelectContext(ctx, &codes, "SELECT * FROM hsn_codes ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("hsnRepo.LoadAll: %w", err)
	}
	return codes, nil
}
