package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a portal login belonging to a DDO office.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Mobile       string    `db:"mobile" json:"mobile"`
	DDOCode      string    `db:"ddo_code" json:"ddo_code"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// DDO represents a Drawing and Disbursing Officer office.
type DDO struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Code        string    `db:"code" json:"code"`
	OfficeName  string    `db:"office_name" json:"office_name"`
	OfficerName string    `db:"officer_name" json:"officer_name"`
	TAN         string    `db:"tan" json:"tan"`
	Address     string    `db:"address" json:"address"`
	City        string    `db:"city" json:"city"`
	PINCode     string    `db:"pin_code" json:"pin_code"`
	Email       string    `db:"email" json:"email"`
	Mobile      string    `db:"mobile" json:"mobile"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// GSTINRecord is a master-data entry for a registered customer party.
type GSTINRecord struct {
	ID        uuid.UUID `db:"id" json:"id"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	LegalName string    `db:"legal_name" json:"legal_name"`
	Address   string    `db:"address" json:"address"`
	City      string    `db:"city" json:"city"`
	PINCode   string    `db:"pin_code" json:"pin_code"`
	StateCode int       `db:"state_code" json:"state_code"`
	Email     string    `db:"email" json:"email"`
	Mobile    string    `db:"mobile" json:"mobile"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// BankAccount is a master-data entry for a DDO's bank details.
type BankAccount struct {
	ID            uuid.UUID `db:"id" json:"id"`
	DDOCode       string    `db:"ddo_code" json:"ddo_code"`
	BankName      string    `db:"bank_name" json:"bank_name"`
	BranchName    string    `db:"branch_name" json:"branch_name"`
	AccountNumber string    `db:"account_number" json:"account_number"`
	IFSC          string    `db:"ifsc" json:"ifsc"`
	MICR          string    `db:"micr" json:"micr"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// HSNCode is a master-data entry for an HSN/SAC code and its GST rate.
type HSNCode struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Code          string    `db:"code" json:"code"`
	Description   string    `db:"description" json:"description"`
	GSTRate       float64   `db:"gst_rate" json:"gst_rate"`
	ConditionDesc string    `db:"condition_desc" json:"condition_desc"`
	ParentCode    *string   `db:"parent_code" json:"parent_code,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Bill represents a generated bill or proforma advice with its tax breakdown
// frozen at creation time.
type Bill struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	BillNumber    string     `db:"bill_number" json:"bill_number"`
	BillType      BillType   `db:"bill_type" json:"bill_type"`
	DDOCode       string     `db:"ddo_code" json:"ddo_code"`
	BillDate      time.Time  `db:"bill_date" json:"bill_date"`
	BuyerGSTIN    string     `db:"buyer_gstin" json:"buyer_gstin"`
	BuyerName     string     `db:"buyer_name" json:"buyer_name"`
	TaxableValue  float64    `db:"taxable_value" json:"taxable_value"`
	GSTApplicable bool       `db:"gst_applicable" json:"gst_applicable"`
	IsGovernment  bool       `db:"is_government" json:"is_government"`
	IsHomeState   bool       `db:"is_home_state" json:"is_home_state"`
	GSTRate       float64    `db:"gst_rate" json:"gst_rate"`
	CGST          float64    `db:"cgst" json:"cgst"`
	SGST          float64    `db:"sgst" json:"sgst"`
	IGST          float64    `db:"igst" json:"igst"`
	GSTAmount     float64    `db:"gst_amount" json:"gst_amount"`
	FinalAmount   float64    `db:"final_amount" json:"final_amount"`
	AmountInWords string     `db:"amount_in_words" json:"amount_in_words"`
	Status        BillStatus `db:"status" json:"status"`
	CreatedBy     uuid.UUID  `db:"created_by" json:"created_by"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`

	// LineItems are loaded separately; not a DB column.
	LineItems []BillLineItem `db:"-" json:"line_items,omitempty"`
}

// BillLineItem is a single charged line on a bill.
type BillLineItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	BillID      uuid.UUID `db:"bill_id" json:"bill_id"`
	SerialNo    int       `db:"serial_no" json:"serial_no"`
	Description string    `db:"description" json:"description"`
	Amount      float64   `db:"amount" json:"amount"`
	HSNCode     string    `db:"hsn_code" json:"hsn_code"`
}

// Certificate stores metadata for an uploaded Form 16/16A file.
type Certificate struct {
	ID            uuid.UUID         `db:"id" json:"id"`
	DDOCode       string            `db:"ddo_code" json:"ddo_code"`
	TAN           string            `db:"tan" json:"tan"`
	FormType      CertificateType   `db:"form_type" json:"form_type"`
	FinancialYear string            `db:"financial_year" json:"financial_year"`
	Quarter       string            `db:"quarter" json:"quarter"`
	DeducteePAN   string            `db:"deductee_pan" json:"deductee_pan"`
	OriginalName  string            `db:"original_name" json:"original_name"`
	FileSize      int64             `db:"file_size" json:"file_size"`
	S3Bucket      string            `db:"s3_bucket" json:"s3_bucket"`
	S3Key         string            `db:"s3_key" json:"s3_key"`
	ContentType   string            `db:"content_type" json:"content_type"`
	Status        CertificateStatus `db:"status" json:"status"`
	UploadedBy    uuid.UUID         `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt     time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at" json:"updated_at"`
}
