package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstportal/internal/domain"
	"gstportal/internal/middleware"
)

// APIResponse is the standard {status, data, message} envelope for all
// API responses.
type APIResponse struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Status: "success", Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Status: "success", Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Status: "success", Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, APIResponse{Status: "error", Message: msg})
}

// MapDomainError translates domain errors to HTTP status codes and messages.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrValidationFailed):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "user is inactive"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, domain.ErrDuplicateDDOCode):
		return http.StatusConflict, "DDO code already registered"
	case errors.Is(err, domain.ErrDuplicateGSTIN):
		return http.StatusConflict, "GSTIN already registered"
	case errors.Is(err, domain.ErrDuplicateBillNumber):
		return http.StatusConflict, "bill number already exists"
	case errors.Is(err, domain.ErrEmptyBill):
		return http.StatusBadRequest, "bill must have at least one line item"
	case errors.Is(err, domain.ErrBillNotEditable):
		return http.StatusConflict, "bill is not editable in its current status"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "unsupported file type; allowed: pdf"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "file upload to storage failed"
	case errors.Is(err, domain.ErrInvalidQuarter):
		return http.StatusBadRequest, "quarter must be one of Q1-Q4 for Form 16A and empty for Form 16"
	case errors.Is(err, domain.ErrInvalidFinancialYear):
		return http.StatusBadRequest, "financial year must look like 2024-25"
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// extractAuthContext extracts user ID, role, and DDO code from the request
// context. Returns false if auth context is missing (error response already
// written).
func extractAuthContext(c *gin.Context) (userID uuid.UUID, role domain.UserRole, ddoCode string, ok bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "missing user context")
		return uuid.Nil, "", "", false
	}
	role = domain.UserRole(middleware.GetRole(c))
	ddoCode = middleware.GetDDOCode(c)
	return userID, role, ddoCode, true
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, msg)
}
