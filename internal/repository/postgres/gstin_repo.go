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

type gstinRepo struct {
	db *sqlx.DB
}

// NewGSTINRepo creates a new PostgreSQL-backed GSTINRepository.
func NewGSTINRepo(db *sqlx.DB) port.GSTINRepository {
	return &gstinRepo{db: db}
}

func (r *gstinRepo) Create(ctx context.Context, rec *domain.GSTINRecord) error {
	rec.ID = uuid.New()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	query := `INSERT INTO gstin_records
		(id, gstin, legal_name, address, city, pin_code, state_code, email, mobile, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.GSTIN, rec.LegalName, rec.Address, rec.City, rec.PINCode,
		rec.StateCode, rec.Email, rec.Mobile, rec.IsActive, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateGSTIN
		}
		return fmt.Errorf("gstinRepo.Create: %w", err)
	}
	return nil
}

func (r *gstinRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.GSTINRecord, error) {
	var rec domain.GSTINRecord
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM gstin_records WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("gstinRepo.GetByID: %w", err)
	}
	return &rec, nil
}

func (r *gstinRepo) GetByGSTIN(ctx context.Context, gstin string) (*domain.GSTINRecord, error) {
	var rec domain.GSTINRecord
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM gstin_records WHERE gstin = $1", gstin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("gstinRepo.GetByGSTIN: %w", err)
	}
	return &rec, nil
}

func (r *gstinRepo) List(ctx context.Context, offset, limit int) ([]domain.GSTINRecord, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM gstin_records")
	if err != nil {
		return nil, 0, fmt.Errorf("gstinRepo.List count: %w", err)
	}

	var recs []domain.GSTINRecord
	err = r.db.SelectContext(ctx, &recs,
		"SELECT * FROM gstin_records ORDER BY legal_name LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("gstinRepo.List: %w", err)
	}
	return recs, total, nil
}

func (r *gstinRepo) Update(ctx context.Context, rec *domain.GSTINRecord) error {
	rec.UpdatedAt = time.Now().UTC()
	query := `UPDATE gstin_records SET legal_name = $1, address = $2, city = $3, pin_code = $4,
		state_code = $5, email = $6, mobile = $7, is_active = $8, updated_at = $9 WHERE id = $10`
	result, err := r.db.ExecContext(ctx, query,
		rec.LegalName, rec.Address, rec.City, rec.PINCode, rec.StateCode,
		rec.Email, rec.Mobile, rec.IsActive, rec.UpdatedAt, rec.ID)
	if err != nil {
		return fmt.Errorf("gstinRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *gstinRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM gstin_records WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("gstinRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
