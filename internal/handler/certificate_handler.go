package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstportal/internal/domain"
	"gstportal/internal/service"
)

// CertificateHandler handles Form 16/16A endpoints.
type CertificateHandler struct {
	certService service.CertificateService
}

// NewCertificateHandler creates a new CertificateHandler.
func NewCertificateHandler(certService service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certService: certService}
}

// Upload handles POST /api/v1/certificates (multipart form).
func (h *CertificateHandler) Upload(c *gin.Context) {
	userID, role, ddoCode, ok := extractAuthContext(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "file form field is required")
		return
	}
	defer file.Close()

	input := service.CertificateUploadInput{
		DDOCode:       c.PostForm("ddo_code"),
		FormType:      domain.CertificateType(c.PostForm("form_type")),
		FinancialYear: c.PostForm("financial_year"),
		Quarter:       c.PostForm("quarter"),
		DeducteePAN:   c.PostForm("deductee_pan"),
		UploadedBy:    userID,
		File:          file,
		Header:        header,
	}
	if role != domain.RoleAdmin {
		input.DDOCode = ddoCode
	}

	cert, err := h.certService.Upload(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, cert)
}

// List handles GET /api/v1/certificates
func (h *CertificateHandler) List(c *gin.Context) {
	_, role, ddoCode, ok := extractAuthContext(c)
	if !ok {
		return
	}

	queryDDO := c.Query("ddo_code")
	if role != domain.RoleAdmin || queryDDO == "" {
		queryDDO = ddoCode
	}
	if queryDDO == "" {
		RespondError(c, http.StatusBadRequest, "ddo_code query parameter is required")
		return
	}

	offset, limit := parsePagination(c)

	certs, total, err := h.certService.ListByDDO(c.Request.Context(), queryDDO, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, certs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Download handles GET /api/v1/certificates/:id/download. It returns a
// short-lived presigned URL rather than proxying the file.
func (h *CertificateHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid certificate id")
		return
	}

	url, err := h.certService.GetDownloadURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}

// Delete handles DELETE /api/v1/certificates/:id
func (h *CertificateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid certificate id")
		return
	}

	if err := h.certService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "certificate deleted"})
}
