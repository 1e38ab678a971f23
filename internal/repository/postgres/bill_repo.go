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

type billRepo struct {
	db *sqlx.DB
}

// NewBillRepo creates a new PostgreSQL-backed BillRepository.
func NewBillRepo(db *sqlx.DB) port.BillRepository {
	return &billRepo{db: db}
}

// Create inserts the bill and all of its line items in a single transaction.
func (r *billRepo) Create(ctx context.Context, bill *domain.Bill) error {
	bill.ID = uuid.New()
	now := time.Now().UTC()
	bill.CreatedAt = now
	bill.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("billRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	billQuery := `INSERT INTO bills
		(id, bill_number, bill_type, ddo_code, bill_date, buyer_gstin, buyer_name,
		 taxable_value, gst_applicable, is_government, is_home_state, gst_rate,
		 cgst, sgst, igst, gst_amount, final_amount, amount_in_words, status,
		 created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`

	_, err = tx.ExecContext(ctx, billQuery,
		bill.ID, bill.BillNumber, bill.BillType, bill.DDOCode, bill.BillDate,
		bill.BuyerGSTIN, bill.BuyerName, bill.TaxableValue, bill.GSTApplicable,
		bill.IsGovernment, bill.IsHomeState, bill.GSTRate, bill.CGST, bill.SGST,
		bill.IGST, bill.GSTAmount, bill.FinalAmount, bill.AmountInWords,
		bill.Status, bill.CreatedBy, bill.CreatedAt, bill.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "bill_number") {
			return domain.ErrDuplicateBillNumber
		}
		return fmt.Errorf("billRepo.Create bill: %w", err)
	}

	itemQuery := `INSERT INTO bill_line_items
		(id, bill_id, serial_no, description, amount, hsn_code)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for i := range bill.LineItems {
		item := &bill.LineItems[i]
		item.ID = uuid.New()
		item.BillID = bill.ID
		_, err = tx.ExecContext(ctx, itemQuery,
			item.ID, item.BillID, item.SerialNo, item.Description, item.Amount, item.HSNCode)
		if err != nil {
			return fmt.Errorf("billRepo.Create line item %d: %w", item.SerialNo, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("billRepo.Create commit: %w", err)
	}
	return nil
}

func (r *billRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error) {
	var bill domain.Bill
	err := r.db.GetContext(ctx, &bill, "SELECT * FROM bills WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("billRepo.GetByID: %w", err)
	}

	err = r.db.SelectContext(ctx, &bill.LineItems,
		"SELECT * FROM bill_line_items WHERE bill_id = $1 ORDER BY serial_no", id)
	if err != nil {
		return nil, fmt.Errorf("billRepo.GetByID items: %w", err)
	}
	return &bill, nil
}

func (r *billRepo) List(ctx context.Context, filter port.BillFilter, offset, limit int) ([]domain.Bill, int, error) {
	where, args := buildBillFilter(filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM bills" + where
	err := r.db.GetContext(ctx, &total, r.db.Rebind(countQuery), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("billRepo.List count: %w", err)
	}

	listQuery := "SELECT * FROM bills" + where + " ORDER BY bill_date DESC, bill_number DESC LIMIT ? OFFSET ?"
	listArgs := append(append([]interface{}{}, args...), limit, offset)

	var bills []domain.Bill
	err = r.db.SelectContext(ctx, &bills, r.db.Rebind(listQuery), listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("billRepo.List: %w", err)
	}
	return bills, total, nil
}

func (r *billRepo) ListForExport(ctx context.Context, filter port.BillFilter) ([]domain.Bill, error) {
	where, args := buildBillFilter(filter)
	query := "SELECT * FROM bills" + where + " ORDER BY bill_date, bill_number"

	var bills []domain.Bill
	err := r.db.SelectContext(ctx, &bills, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("billRepo.ListForExport: %w", err)
	}
	return bills, nil
}

func (r *billRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BillStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE bills SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("billRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextBillNumber allocates the next sequential number for a DDO within the
// current financial year, formatted as <type-prefix>/<ddo>/<fy>/<seq>.
func (r *billRepo) NextBillNumber(ctx context.Context, ddoCode string, billType domain.BillType) (string, error) {
	fy := financialYear(time.Now().UTC())
	prefix := "BILL"
	if billType == domain.BillTypeProforma {
		prefix = "PRO"
	}

	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM bills WHERE ddo_code = $1 AND bill_type = $2 AND bill_number LIKE $3",
		ddoCode, billType, fmt.Sprintf("%s/%s/%s/%%", prefix, ddoCode, fy))
	if err != nil {
		return "", fmt.Errorf("billRepo.NextBillNumber: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s/%04d", prefix, ddoCode, fy, count+1), nil
}

func buildBillFilter(filter port.BillFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if filter.DDOCode != "" {
		conds = append(conds, "ddo_code = ?")
		args = append(args, filter.DDOCode)
	}
	if filter.BillType != "" {
		conds = append(conds, "bill_type = ?")
		args = append(args, filter.BillType)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.FromDate != nil {
		conds = append(conds, "bill_date >= ?")
		args = append(args, *filter.FromDate)
	}
	if filter.ToDate != nil {
		conds = append(conds, "bill_date <= ?")
		args = append(args, *filter.ToDate)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// financialYear formats the Indian financial year, e.g. "2025-26" for any
// date between 1 Apr 2025 and 31 Mar 2026.
func financialYear(t time.Time) string {
	year := t.Year()
	if t.Month() < time.April {
		year--
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}
