package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"gstportal/internal/config"
	"gstportal/internal/domain"
	"gstportal/internal/port"
	"gstportal/internal/validator"
)

// financialYearPattern matches "2024-25" style financial year labels.
var financialYearPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// CertificateUploadInput is the DTO for Form 16/16A upload requests.
type CertificateUploadInput struct {
	DDOCode       string
	FormType      domain.CertificateType
	FinancialYear string
	Quarter       string
	DeducteePAN   string
	UploadedBy    uuid.UUID
	File          multipart.File
	Header        *multipart.FileHeader
}

// CertificateService defines the Form 16/16A management contract.
type CertificateService interface {
	Upload(ctx context.Context, input CertificateUploadInput) (*domain.Certificate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Certificate, error)
	ListByDDO(ctx context.Context, ddoCode string, offset, limit int) ([]domain.Certificate, int, error)
	GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type certificateService struct {
	certRepo port.CertificateRepository
	ddoRepo  port.DDORepository
	storage  port.ObjectStorage
	email    port.EmailSender
	cfg      *config.S3Config
}

// NewCertificateService creates a new CertificateService implementation.
func NewCertificateService(
	certRepo port.CertificateRepository,
	ddoRepo port.DDORepository,
	storage port.ObjectStorage,
	email port.EmailSender,
	cfg *config.S3Config,
) CertificateService {
	return &certificateService{
		certRepo: certRepo,
		ddoRepo:  ddoRepo,
		storage:  storage,
		email:    email,
		cfg:      cfg,
	}
}

func (s *certificateService) Upload(ctx context.Context, input CertificateUploadInput) (*domain.Certificate, error) {
	if input.FormType != domain.CertificateForm16 && input.FormType != domain.CertificateForm16A {
		return nil, fmt.Errorf("%w: unknown form type %q", domain.ErrValidationFailed, input.FormType)
	}
	if !financialYearPattern.MatchString(input.FinancialYear) {
		return nil, domain.ErrInvalidFinancialYear
	}
	// Form 16A is quarterly; Form 16 is annual and carries no quarter.
	if input.FormType == domain.CertificateForm16A {
		if !domain.ValidQuarters[input.Quarter] {
			return nil, domain.ErrInvalidQuarter
		}
	} else if input.Quarter != "" {
		return nil, domain.ErrInvalidQuarter
	}
	if res := validator.Validate(validator.FieldPAN, input.DeducteePAN); !res.Valid {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidationFailed, res.Message)
	}

	ddo, err := s.ddoRepo.GetByCode(ctx, input.DDOCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown DDO code %s", domain.ErrValidationFailed, input.DDOCode)
		}
		return nil, fmt.Errorf("certificateService.Upload: %w", err)
	}

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	contentType, ok := domain.AllowedCertificateTypes[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])
	if !domain.AllowedCertificateContentTypes[detectedType] {
		return nil, domain.ErrUnsupportedFileType
	}

	// Seek back to beginning for upload
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	certID := uuid.New()
	s3Key := fmt.Sprintf("ddos/%s/certificates/%s/%s/%s", ddo.Code, input.FinancialYear, certID, input.Header.Filename)

	cert := &domain.Certificate{
		DDOCode:       ddo.Code,
		TAN:           ddo.TAN,
		FormType:      input.FormType,
		FinancialYear: input.FinancialYear,
		Quarter:       input.Quarter,
		DeducteePAN:   strings.ToUpper(input.DeducteePAN),
		OriginalName:  input.Header.Filename,
		FileSize:      input.Header.Size,
		S3Bucket:      s.cfg.Bucket,
		S3Key:         s3Key,
		ContentType:   contentType,
		Status:        domain.CertificateStatusPending,
		UploadedBy:    input.UploadedBy,
	}

	log.Printf("certificateService.Upload: uploading %s (%s, %d bytes) for DDO %s",
		input.Header.Filename, input.FormType, input.Header.Size, ddo.Code)

	// Persist metadata with pending status
	if err := s.certRepo.Create(ctx, cert); err != nil {
		log.Printf("certificateService.Upload: failed to create metadata: %v", err)
		return nil, fmt.Errorf("creating certificate metadata: %w", err)
	}

	// Upload to S3
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("certificateService.Upload: S3 upload failed for %s: %v", cert.ID, err)
		_ = s.certRepo.UpdateStatus(ctx, cert.ID, domain.CertificateStatusFailed)
		return nil, domain.ErrUploadFailed
	}

	if err := s.certRepo.UpdateStatus(ctx, cert.ID, domain.CertificateStatusUploaded); err != nil {
		return nil, fmt.Errorf("updating certificate status: %w", err)
	}
	cert.Status = domain.CertificateStatusUploaded

	// Notify the DDO office. Delivery failures don't fail the upload.
	if err := s.email.SendCertificateUploadedEmail(ctx, ddo.Email, ddo.OfficerName,
		string(cert.FormType), cert.FinancialYear); err != nil {
		log.Printf("certificateService.Upload: notification email failed for %s: %v", cert.ID, err)
	}

	return cert, nil
}

func (s *certificateService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Certificate, error) {
	return s.certRepo.GetByID(ctx, id)
}

func (s *certificateService) ListByDDO(ctx context.Context, ddoCode string, offset, limit int) ([]domain.Certificate, int, error) {
	return s.certRepo.ListByDDO(ctx, ddoCode, offset, limit)
}

func (s *certificateService) GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	cert, err := s.certRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if cert.Status != domain.CertificateStatusUploaded {
		return "", domain.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, cert.S3Bucket, cert.S3Key, s.cfg.PresignExpiry)
}

func (s *certificateService) Delete(ctx context.Context, id uuid.UUID) error {
	cert, err := s.certRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, cert.S3Bucket, cert.S3Key); err != nil {
		log.Printf("certificateService.Delete: S3 delete failed for %s: %v", cert.ID, err)
	}
	return s.certRepo.Delete(ctx, id)
}
