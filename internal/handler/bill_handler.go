package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstportal/internal/domain"
	"gstportal/internal/gst"
	"gstportal/internal/port"
	"gstportal/internal/service"
	"gstportal/internal/validator"
)

// BillHandler handles billing endpoints.
type BillHandler struct {
	billService service.BillService
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// Create handles POST /api/v1/bills
func (h *BillHandler) Create(c *gin.Context) {
	userID, role, ddoCode, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	input.CreatedBy = userID

	// DDO users can only raise bills for their own office.
	if role != domain.RoleAdmin {
		input.DDOCode = ddoCode
	}

	bill, err := h.billService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, billView(bill))
}

// Calculate handles POST /api/v1/billing/calculate. It runs the tax
// decision without persisting anything, for live preview on entry screens.
func (h *BillHandler) Calculate(c *gin.Context) {
	var input service.CalculateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := h.billService.Calculate(input.BuyerGSTIN, input.TaxableValue)

	RespondOK(c, gin.H{
		"result":            result,
		"formatted_amount":  gst.FormatCurrency(result.FinalAmount),
		"amount_in_words":   gst.AmountInWords(result.FinalAmount),
		"formatted_taxable": gst.FormatCurrency(result.TaxableValue),
	})
}

// Get handles GET /api/v1/bills/:id
func (h *BillHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid bill id")
		return
	}

	bill, err := h.billService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, billView(bill))
}

// List handles GET /api/v1/bills
func (h *BillHandler) List(c *gin.Context) {
	_, role, ddoCode, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filter, err := parseBillFilter(c, role, ddoCode)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	offset, limit := parsePagination(c)

	bills, total, err := h.billService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, bills, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Cancel handles POST /api/v1/bills/:id/cancel
func (h *BillHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid bill id")
		return
	}

	if err := h.billService.Cancel(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "bill cancelled"})
}

// ExportCSV handles GET /api/v1/bills/export
func (h *BillHandler) ExportCSV(c *gin.Context) {
	_, role, ddoCode, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filter, err := parseBillFilter(c, role, ddoCode)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	data, filename, err := h.billService.ExportCSV(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// parseBillFilter builds a register filter from query params. Non-admin
// callers are pinned to their own DDO office.
func parseBillFilter(c *gin.Context, role domain.UserRole, ddoCode string) (port.BillFilter, error) {
	filter := port.BillFilter{
		DDOCode:  c.Query("ddo_code"),
		BillType: domain.BillType(c.Query("bill_type")),
		Status:   domain.BillStatus(c.Query("status")),
	}
	if role != domain.RoleAdmin {
		filter.DDOCode = ddoCode
	}

	if from := c.Query("from_date"); from != "" {
		t, err := validator.ParseBillDate(from)
		if err != nil {
			return port.BillFilter{}, fmt.Errorf("invalid from_date: %s", from)
		}
		filter.FromDate = &t
	}
	if to := c.Query("to_date"); to != "" {
		t, err := validator.ParseBillDate(to)
		if err != nil {
			return port.BillFilter{}, fmt.Errorf("invalid to_date: %s", to)
		}
		filter.ToDate = &t
	}
	return filter, nil
}

// billView decorates a bill with the display strings entry screens render.
func billView(bill *domain.Bill) gin.H {
	return gin.H{
		"bill":             bill,
		"formatted_amount": gst.FormatCurrency(bill.FinalAmount),
	}
}
