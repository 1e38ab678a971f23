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

type bankAccountRepo struct {
	db *sqlx.DB
}

// NewBankAccountRepo creates a new PostgreSQL-backed BankAccountRepository.
func NewBankAccountRepo(db *sqlx.DB) port.BankAccountRepository {
	return &bankAccountRepo{db: db}
}

func (r *bankAccountRepo) Create(ctx context.Context, acct *domain.BankAccount) error {
	acct.ID = uuid.New()
	now := time.Now().UTC()
	acct.CreatedAt = now
	acct.UpdatedAt = now

	query := `INSERT INTO bank_accounts
		(id, ddo_code, bank_name, branch_name, account_number, ifsc, micr, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		acct.ID, acct.DDOCode, acct.BankName, acct.BranchName, acct.AccountNumber,
		acct.IFSC, acct.MICR, acct.IsActive, acct.CreatedAt, acct.UpdatedAt)
	if err != nil {
		return fmt.Errorf("bankAccountRepo.Create: %w", err)
	}
	return nil
}

func (r *bankAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BankAccount, error) {
	var acct domain.BankAccount
	err := r.db.GetContext(ctx, &acct, "SELECT * FROM bank_accounts WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("bankAccountRepo.GetByID: %w", err)
	}
	return &acct, nil
}

func (r *bankAccountRepo) ListByDDO(ctx context.Context, ddoCode string, offset, limit int) ([]domain.BankAccount, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM bank_accounts WHERE ddo_code = $1", ddoCode)
	if err != nil {
		return nil, 0, fmt.Errorf("bankAccountRepo.ListByDDO count: %w", err)
	}

	var accts []domain.BankAccount
	err = r.db.SelectContext(ctx, &accts,
		"SELECT * FROM bank_accounts WHERE ddo_code = $1 ORDER BY bank_name LIMIT $2 OFFSET $3",
		ddoCode, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("bankAccountRepo.ListByDDO: %w", err)
	}
	return accts, total, nil
}

func (r *bankAccountRepo) Update(ctx context.Context, acct *domain.BankAccount) error {
	acct.UpdatedAt = time.Now().UTC()
	query := `UPDATE bank_accounts SET bank_name = $1, branch_name = $2, account_number = $3,
		ifsc = $4, micr = $5, is_active = $6, updated_at = $7 WHERE id = $8`
	result, err := r.db.ExecContext(ctx, query,
		acct.BankName, acct.BranchName, acct.AccountNumber, acct.IFSC, acct.MICR,
		acct.IsActive, acct.UpdatedAt, acct.ID)
	if err != nil {
		return fmt.Errorf("bankAccountRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bankAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM bank_accounts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("bankAccountRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
