package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstportal/internal/service"
)

// DDOHandler handles DDO master data endpoints.
type DDOHandler struct {
	ddoService service.DDOService
}

// NewDDOHandler creates a new DDOHandler.
func NewDDOHandler(ddoService service.DDOService) *DDOHandler {
	return &DDOHandler{ddoService: ddoService}
}

// Create handles POST /api/v1/ddos
func (h *DDOHandler) Create(c *gin.Context) {
	var input service.CreateDDOInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ddo, err := h.ddoService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, ddo)
}

// List handles GET /api/v1/ddos
func (h *DDOHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	ddos, total, err := h.ddoService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, ddos, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/ddos/:id
func (h *DDOHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid ddo id")
		return
	}

	ddo, err := h.ddoService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ddo)
}

// GetByCode handles GET /api/v1/ddos/code/:code
func (h *DDOHandler) GetByCode(c *gin.Context) {
	ddo, err := h.ddoService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ddo)
}

// Update handles PATCH /api/v1/ddos/:id
func (h *DDOHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid ddo id")
		return
	}

	var input service.UpdateDDOInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ddo, err := h.ddoService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ddo)
}

// Delete handles DELETE /api/v1/ddos/:id
func (h *DDOHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid ddo id")
		return
	}

	if err := h.ddoService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "ddo deleted"})
}
