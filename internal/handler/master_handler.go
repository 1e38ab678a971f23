package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstportal/internal/middleware"
	"gstportal/internal/service"
)

// MasterHandler handles GSTIN, bank account, and HSN master data endpoints.
type MasterHandler struct {
	masterService service.MasterService
}

// NewMasterHandler creates a new MasterHandler.
func NewMasterHandler(masterService service.MasterService) *MasterHandler {
	return &MasterHandler{masterService: masterService}
}

// CreateGSTIN handles POST /api/v1/master/gstins
func (h *MasterHandler) CreateGSTIN(c *gin.Context) {
	var input service.CreateGSTINInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.masterService.CreateGSTIN(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, rec)
}

// GetGSTIN handles GET /api/v1/master/gstins/:gstin
func (h *MasterHandler) GetGSTIN(c *gin.Context) {
	rec, err := h.masterService.GetGSTIN(c.Request.Context(), c.Param("gstin"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rec)
}

// ListGSTINs handles GET /api/v1/master/gstins
func (h *MasterHandler) ListGSTINs(c *gin.Context) {
	offset, limit := parsePagination(c)

	recs, total, err := h.masterService.ListGSTINs(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, recs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// DeleteGSTIN handles DELETE /api/v1/master/gstins/:id
func (h *MasterHandler) DeleteGSTIN(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid gstin record id")
		return
	}

	if err := h.masterService.DeleteGSTIN(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "gstin record deleted"})
}

// CreateBankAccount handles POST /api/v1/master/bank-accounts
func (h *MasterHandler) CreateBankAccount(c *gin.Context) {
	var input service.CreateBankAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	acct, err := h.masterService.CreateBankAccount(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, acct)
}

// ListBankAccounts handles GET /api/v1/master/bank-accounts?ddo_code=...
func (h *MasterHandler) ListBankAccounts(c *gin.Context) {
	ddoCode := c.Query("ddo_code")
	if ddoCode == "" {
		// DDO users default to their own office.
		ddoCode = middleware.GetDDOCode(c)
	}
	if ddoCode == "" {
		RespondError(c, http.StatusBadRequest, "ddo_code query parameter is required")
		return
	}

	offset, limit := parsePagination(c)

	accts, total, err := h.masterService.ListBankAccounts(c.Request.Context(), ddoCode, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, accts, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// DeleteBankAccount handles DELETE /api/v1/master/bank-accounts/:id
func (h *MasterHandler) DeleteBankAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid bank account id")
		return
	}

	if err := h.masterService.DeleteBankAccount(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "bank account deleted"})
}

// GetHSN handles GET /api/v1/master/hsn/:code
func (h *MasterHandler) GetHSN(c *gin.Context) {
	hsn, err := h.masterService.GetHSN(c.Request.Context(), c.Param("code"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, hsn)
}

// SearchHSN handles GET /api/v1/master/hsn?prefix=...
func (h *MasterHandler) SearchHSN(c *gin.Context) {
	offset, limit := parsePagination(c)

	codes, total, err := h.masterService.SearchHSN(c.Request.Context(), c.Query("prefix"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, codes, PagMeta{Total: total, Offset: offset, Limit: limit})
}
