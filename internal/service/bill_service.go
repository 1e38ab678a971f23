package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gstportal/internal/config"
	"gstportal/internal/csvexport"
	"gstportal/internal/domain"
	"gstportal/internal/gst"
	"gstportal/internal/port"
	"gstportal/internal/validator"
)

// BillLineItemInput is one charged line on a bill creation request.
type BillLineItemInput struct {
	SerialNo    int     `json:"serial_no" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	HSNCode     string  `json:"hsn_code"`
}

// CreateBillInput is the DTO for bill creation requests.
type CreateBillInput struct {
	BillType   domain.BillType     `json:"bill_type" binding:"required"`
	DDOCode    string              `json:"ddo_code" binding:"required"`
	BillDate   string              `json:"bill_date" binding:"required"`
	BuyerGSTIN string              `json:"buyer_gstin"`
	BuyerName  string              `json:"buyer_name" binding:"required"`
	LineItems  []BillLineItemInput `json:"line_items" binding:"required"`
	CreatedBy  uuid.UUID           `json:"-"`
}

// CalculateInput is the DTO for on-the-fly tax calculation requests.
type CalculateInput struct {
	BuyerGSTIN   string  `json:"buyer_gstin"`
	TaxableValue float64 `json:"taxable_value" binding:"required"`
}

// BillService defines the billing contract.
type BillService interface {
	Create(ctx context.Context, input CreateBillInput) (*domain.Bill, error)
	Calculate(buyerGSTIN string, taxableValue float64) gst.Result
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error)
	List(ctx context.Context, filter port.BillFilter, offset, limit int) ([]domain.Bill, int, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	ExportCSV(ctx context.Context, filter port.BillFilter) ([]byte, string, error)
}

type billService struct {
	billRepo  port.BillRepository
	ddoRepo   port.DDORepository
	hsnLookup *HSNLookup
	calc      *gst.Calculator
}

// NewBillService creates a new BillService implementation. The hsnLookup may
// be nil, in which case line item HSN codes are only checked for shape.
func NewBillService(
	billRepo port.BillRepository,
	ddoRepo port.DDORepository,
	hsnLookup *HSNLookup,
	gstCfg config.GSTConfig,
) BillService {
	return &billService{
		billRepo:  billRepo,
		ddoRepo:   ddoRepo,
		hsnLookup: hsnLookup,
		calc:      gst.NewCalculator(policyFromConfig(gstCfg)),
	}
}

// policyFromConfig translates the configured billing policy into calculator
// constants, falling back to the production defaults for blank fields.
func policyFromConfig(cfg config.GSTConfig) gst.Policy {
	policy := gst.DefaultPolicy()
	if cfg.HomeStateCode > 0 {
		policy.HomeStateCode = cfg.HomeStateCode
	}
	if cfg.StandardRatePct > 0 {
		policy.StandardRatePct = cfg.StandardRatePct
	}
	if cfg.GovernmentMarker != "" {
		policy.GovernmentMarker = cfg.GovernmentMarker[0]
	}
	policy.ExemptGovtIntraState = cfg.ExemptGovtIntraState
	return policy
}

func (s *billService) Create(ctx context.Context, input CreateBillInput) (*domain.Bill, error) {
	if input.BillType != domain.BillTypeBill && input.BillType != domain.BillTypeProforma {
		return nil, fmt.Errorf("%w: unknown bill type %q", domain.ErrValidationFailed, input.BillType)
	}

	if res := validator.Validate(validator.FieldBillDate, input.BillDate); !res.Valid {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
	}
	billDate, err := validator.ParseBillDate(input.BillDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, err)
	}

	if res := validator.Validate(validator.FieldName, input.BuyerName); !res.Valid {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
	}

	buyerGSTIN := strings.ToUpper(strings.TrimSpace(input.BuyerGSTIN))
	if buyerGSTIN != "" {
		if res := validator.Validate(validator.FieldGSTIN, buyerGSTIN); !res.Valid {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
		}
	}

	ddo, err := s.ddoRepo.GetByCode(ctx, input.DDOCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown DDO code %s", domain.ErrValidationFailed, input.DDOCode)
		}
		return nil, fmt.Errorf("billService.Create: %w", err)
	}

	taxable, items, err := s.validateLineItems(input.LineItems)
	if err != nil {
		return nil, err
	}

	result := s.calc.Calculate(buyerGSTIN, taxable)

	billNumber, err := s.billRepo.NextBillNumber(ctx, ddo.Code, input.BillType)
	if err != nil {
		return nil, fmt.Errorf("billService.Create: %w", err)
	}

	bill := &domain.Bill{
		BillNumber:    billNumber,
		BillType:      input.BillType,
		DDOCode:       ddo.Code,
		BillDate:      billDate,
		BuyerGSTIN:    buyerGSTIN,
		BuyerName:     strings.TrimSpace(input.BuyerName),
		TaxableValue:  result.TaxableValue,
		GSTApplicable: result.GSTApplicable,
		IsGovernment:  result.IsGovernment,
		IsHomeState:   result.IsHomeState,
		GSTRate:       result.GSTRate,
		CGST:          result.CGST,
		SGST:          result.SGST,
		IGST:          result.IGST,
		GSTAmount:     result.GSTAmount,
		FinalAmount:   result.FinalAmount,
		AmountInWords: gst.AmountInWords(result.FinalAmount),
		Status:        domain.BillStatusGenerated,
		CreatedBy:     input.CreatedBy,
		LineItems:     items,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// validateLineItems checks each line and returns the taxable total. Serial
// numbers must run contiguously from 1 in the order given.
func (s *billService) validateLineItems(inputs []BillLineItemInput) (float64, []domain.BillLineItem, error) {
	if len(inputs) == 0 {
		return 0, nil, domain.ErrEmptyBill
	}

	var taxable float64
	items := make([]domain.BillLineItem, 0, len(inputs))
	for i, in := range inputs {
		if in.SerialNo != i+1 {
			return 0, nil, fmt.Errorf("%w: line %d has serial number %d, want %d",
				domain.ErrValidationFailed, i+1, in.SerialNo, i+1)
		}
		if res := validator.Validate(validator.FieldDescription, in.Description); !res.Valid {
			return 0, nil, fmt.Errorf("%w: line %d: %s", domain.ErrValidationFailed, in.SerialNo, res.Message)
		}
		if res := validator.ValidateAmountValue(in.Amount); !res.Valid {
			return 0, nil, fmt.Errorf("%w: line %d: %s", domain.ErrValidationFailed, in.SerialNo, res.Message)
		}
		if in.HSNCode != "" {
			if res := validator.Validate(validator.FieldHSN, in.HSNCode); !res.Valid {
				return 0, nil, fmt.Errorf("%w: line %d: %s", domain.ErrValidationFailed, in.SerialNo, res.Message)
			}
			if s.hsnLookup != nil && !s.hsnLookup.Exists(in.HSNCode) {
				return 0, nil, fmt.Errorf("%w: line %d: HSN code %s is not in the master list",
					domain.ErrValidationFailed, in.SerialNo, in.HSNCode)
			}
		}

		taxable += in.Amount
		items = append(items, domain.BillLineItem{
			SerialNo:    in.SerialNo,
			Description: strings.TrimSpace(in.Description),
			Amount:      in.Amount,
			HSNCode:     in.HSNCode,
		})
	}
	return taxable, items, nil
}

func (s *billService) Calculate(buyerGSTIN string, taxableValue float64) gst.Result {
	return s.calc.Calculate(strings.ToUpper(strings.TrimSpace(buyerGSTIN)), taxableValue)
}

func (s *billService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error) {
	return s.billRepo.GetByID(ctx, id)
}

func (s *billService) List(ctx context.Context, filter port.BillFilter, offset, limit int) ([]domain.Bill, int, error) {
	return s.billRepo.List(ctx, filter, offset, limit)
}

// Cancel marks a bill cancelled. Cancelled bills stay in the register for
// audit; the number is never reissued.
func (s *billService) Cancel(ctx context.Context, id uuid.UUID) error {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bill.Status == domain.BillStatusCancelled {
		return domain.ErrBillNotEditable
	}
	return s.billRepo.UpdateStatus(ctx, id, domain.BillStatusCancelled)
}

// ExportCSV renders the bill register matching the filter as CSV. The
// returned name is suitable for a Content-Disposition header.
func (s *billService) ExportCSV(ctx context.Context, filter port.BillFilter) ([]byte, string, error) {
	bills, err := s.billRepo.ListForExport(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)

	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, "", fmt.Errorf("billService.ExportCSV header: %w", err)
	}
	if err := w.WriteBills(bills); err != nil {
		return nil, "", fmt.Errorf("billService.ExportCSV rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("billService.ExportCSV flush: %w", err)
	}

	return buf.Bytes(), csvexport.BuildFilename(filter.DDOCode), nil
}
