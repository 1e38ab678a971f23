package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("user is inactive")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrDuplicateDDOCode     = errors.New("DDO code already exists")
	ErrDuplicateGSTIN       = errors.New("GSTIN already exists")
	ErrDuplicateBillNumber  = errors.New("bill number already exists")
	ErrValidationFailed     = errors.New("field validation failed")
	ErrEmptyBill            = errors.New("bill must have at least one line item")
	ErrBillNotEditable      = errors.New("bill is not in an editable state")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed         = errors.New("file upload to storage failed")
	ErrInvalidQuarter       = errors.New("invalid quarter; allowed: Q1-Q4")
	ErrInvalidFinancialYear = errors.New("invalid financial year; expected e.g. 2025-26")
)
