package domain

// UserRole defines the portal role hierarchy.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleDDO   UserRole = "ddo"
)

// BillType distinguishes final bills from proforma advices.
type BillType string

const (
	BillTypeBill     BillType = "bill"
	BillTypeProforma BillType = "proforma"
)

// BillStatus represents the bill lifecycle.
type BillStatus string

const (
	BillStatusDraft     BillStatus = "draft"
	BillStatusGenerated BillStatus = "generated"
	BillStatusCancelled BillStatus = "cancelled"
)

// CertificateType identifies the TDS certificate form.
type CertificateType string

const (
	CertificateForm16  CertificateType = "form16"
	CertificateForm16A CertificateType = "form16a"
)

// Quarters accepted on Form 16A uploads.
var ValidQuarters = map[string]bool{
	"Q1": true, "Q2": true, "Q3": true, "Q4": true,
}

// CertificateStatus represents the upload lifecycle of a certificate file.
type CertificateStatus string

const (
	CertificateStatusPending  CertificateStatus = "pending"
	CertificateStatusUploaded CertificateStatus = "uploaded"
	CertificateStatusFailed   CertificateStatus = "failed"
	CertificateStatusDeleted  CertificateStatus = "deleted"
)

// AllowedCertificateTypes maps upload extensions to MIME content types.
// Certificates are PDF only.
var AllowedCertificateTypes = map[string]string{
	"pdf": "application/pdf",
}

// AllowedCertificateContentTypes is the reverse lookup for magic-byte checks.
var AllowedCertificateContentTypes = map[string]bool{
	"application/pdf": true,
}
