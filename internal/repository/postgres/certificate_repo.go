package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstportal/internal/domain"
	"gstportal/internal/port"
)

type certificateRepo struct {
	db *sqlx.DB
}

// NewCertificateRepo creates a new PostgreSQL-backed CertificateRepository.
func NewCertificateRepo(db *sqlx.DB) port.CertificateRepository {
	return &certificateRepo{db: db}
}

func (r *certificateRepo) Create(ctx context.Context, cert *domain.Certificate) error {
	cert.ID = uuid.New()
	now := time.Now().UTC()
	cert.CreatedAt = now
	cert.UpdatedAt = now

	query := `INSERT INTO certificates
		(id, ddo_code, tan, form_type, financial_year, quarter, deductee_pan,
		 original_name, file_size, s3_bucket, s3_key, content_type, status,
		 uploaded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(ctx, query,
		cert.ID, cert.DDOCode, cert.TAN, cert.FormType, cert.FinancialYear,
		cert.Quarter, cert.DeducteePAN, cert.OriginalName, cert.FileSize,
		cert.S3Bucket, cert.S3Key, cert.ContentType, cert.Status,
		cert.UploadedBy, cert.CreatedAt, cert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("certificateRepo.Create: %w", err)
	}
	return nil
}

func (r *certificateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Certificate, error) {
	var cert domain.Certificate
	err := r.db.GetContext(ctx, &cert, "SELECT * FROM certificates WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("certificateRepo.GetByID: %w", err)
	}
	return &cert, nil
}

func (r *certificateRepo) ListByDDO(ctx context.Context, ddoCode string, offset, limit int) ([]domain.Certificate, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM certificates WHERE ddo_code = $1 AND status != $2",
		ddoCode, domain.CertificateStatusDeleted)
	if err != nil {
		return nil, 0, fmt.Errorf("certificateRepo.ListByDDO count: %w", err)
	}

	var certs []domain.Certificate
	err = r.db.SelectContext(ctx, &certs,
		`SELECT * FROM certificates WHERE ddo_code = $1 AND status != $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		ddoCode, domain.CertificateStatusDeleted, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("certificateRepo.ListByDDO: %w", err)
	}
	return certs, total, nil
}

func (r *certificateRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CertificateStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE certificates SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("certificateRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *certificateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.UpdateStatus(ctx, id, domain.CertificateStatusDeleted)
}
