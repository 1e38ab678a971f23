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

type ddoRepo struct {
	db *sqlx.DB
}

// NewDDORepo creates a new PostgreSQL-backed DDORepository.
func NewDDORepo(db *sqlx.DB) port.DDORepository {
	return &ddoRepo{db: db}
}

func (r *ddoRepo) Create(ctx context.Context, ddo *domain.DDO) error {
	ddo.ID = uuid.New()
	now := time.Now().UTC()
	ddo.CreatedAt = now
	ddo.UpdatedAt = now

	query := `INSERT INTO ddos
		(id, code, office_name, officer_name, tan, address, city, pin_code, email, mobile, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		ddo.ID, ddo.Code, ddo.OfficeName, ddo.OfficerName, ddo.TAN, ddo.Address,
		ddo.City, ddo.PINCode, ddo.Email, ddo.Mobile, ddo.IsActive, ddo.CreatedAt, ddo.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateDDOCode
		}
		return fmt.Errorf("ddoRepo.Create: %w", err)
	}
	return nil
}

func (r *ddoRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DDO, error) {
	var ddo domain.DDO
	err := r.db.GetContext(ctx, &ddo, "SELECT * FROM ddos WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ddoRepo.GetByID: %w", err)
	}
	return &ddo, nil
}

func (r *ddoRepo) GetByCode(ctx context.Context, code string) (*domain.DDO, error) {
	var ddo domain.DDO
	err := r.db.GetContext(ctx, &ddo, "SELECT * FROM ddos WHERE code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ddoRepo.GetByCode: %w", err)
	}
	return &ddo, nil
}

func (r *ddoRepo) List(ctx context.Context, offset, limit int) ([]domain.DDO, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM ddos")
	if err != nil {
		return nil, 0, fmt.Errorf("ddoRepo.List count: %w", err)
	}

	var ddos []domain.DDO
	err = r.db.SelectContext(ctx, &ddos,
		"SELECT * FROM ddos ORDER BY code LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ddoRepo.List: %w", err)
	}
	return ddos, total, nil
}

func (r *ddoRepo) Update(ctx context.Context, ddo *domain.DDO) error {
	ddo.UpdatedAt = time.Now().UTC()
	query := `UPDATE ddos SET office_name = $1, officer_name = $2, tan = $3, address = $4,
		city = $5, pin_code = $6, email = $7, mobile = $8, is_active = $9, updated_at = $10
		WHERE id = $11`
	result, err := r.db.ExecContext(ctx, query,
		ddo.OfficeName, ddo.OfficerName, ddo.TAN, ddo.Address, ddo.City,
		ddo.PINCode, ddo.Email, ddo.Mobile, ddo.IsActive, ddo.UpdatedAt, ddo.ID)
	if err != nil {
		return fmt.Errorf("ddoRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ddoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM ddos WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ddoRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
