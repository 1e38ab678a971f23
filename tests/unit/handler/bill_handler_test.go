package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstportal/internal/domain"
	"gstportal/internal/gst"
	"gstportal/internal/handler"
	"gstportal/internal/middleware"
	"gstportal/internal/port"
	"gstportal/internal/service"
	"gstportal/mocks"
)

// setAuthContext injects the context values the auth middleware would set.
func setAuthContext(c *gin.Context, userID uuid.UUID, role domain.UserRole, ddoCode string) {
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, string(role))
	c.Set(middleware.ContextKeyDDOCode, ddoCode)
}

func sampleBill() *domain.Bill {
	return &domain.Bill{
		ID:            uuid.New(),
		BillNumber:    "BILL/0200KC0001/2025-26/0001",
		BillType:      domain.BillTypeBill,
		DDOCode:       "0200KC0001",
		BillDate:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		BuyerName:     "Acme Traders",
		TaxableValue:  1000,
		GSTApplicable: true,
		FinalAmount:   1180,
		Status:        domain.BillStatusGenerated,
	}
}

func TestBillHandler_Create_DDOUserPinnedToOwnOffice(t *testing.T) {
	mockBills := new(mocks.MockBillService)
	h := handler.NewBillHandler(mockBills)

	userID := uuid.New()
	// The request names another office; the handler overrides it.
	mockBills.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateBillInput) bool {
		return in.DDOCode == "0200KC0001" && in.CreatedBy == userID
	})).Return(sampleBill(), nil)

	w, c := postJSON(t, "/api/v1/bills", map[string]interface{}{
		"bill_type":  "bill",
		"ddo_code":   "9999XX9999",
		"bill_date":  "2025-06-15",
		"buyer_name": "Acme Traders",
		"line_items": []map[string]interface{}{
			{"serial_no": 1, "description": "Water charges", "amount": 1000},
		},
	})
	setAuthContext(c, userID, domain.RoleDDO, "0200KC0001")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockBills.AssertExpectations(t)
}

func TestBillHandler_Create_AdminMayChooseOffice(t *testing.T) {
	mockBills := new(mocks.MockBillService)
	h := handler.NewBillHandler(mockBills)

	mockBills.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateBillInput) bool {
		return in.DDOCode == "9999XX9999"
	})).Return(sampleBill(), nil)

	w, c := postJSON(t, "/api/v1/bills", map[string]interface{}{
		"bill_type":  "bill",
		"ddo_code":   "9999XX9999",
		"bill_date":  "2025-06-15",
		"buyer_name": "Acme Traders",
		"line_items": []map[string]interface{}{
			{"serial_no": 1, "description": "Water charges", "amount": 1000},
		},
	})
	setAuthContext(c, uuid.New(), domain.RoleAdmin, "")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockBills.AssertExpectations(t)
}

func TestBillHandler_Create_MissingAuthContext(t *testing.T) {
	h := handler.NewBillHandler(new(mocks.MockBillService))

	w, c := postJSON(t, "/api/v1/bills", map[string]interface{}{})

	h.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBillHandler_Create_EmptyBill(t *testing.T) {
	mockBills := new(mocks.MockBillService)
	h := handler.NewBillHandler(mockBills)

	mockBills.On("Create", mock.Anything, mock.AnythingOfType("service.CreateBillInput")).
		Return(nil, domain.ErrEmptyBill)

	w, c := postJSON(t, "/api/v1/bills", map[string]interface{}{
		"bill_type":  "bill",
		"ddo_code":   "0200KC0001",
		"bill_date":  "2025-06-15",
		"buyer_name": "Acme Traders",
		"line_items": []map[string]interface{}{},
	})
	setAuthContext(c, uuid.New(), domain.RoleDDO, "0200KC0001")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBillHandler_Calculate(t *testing.T) {
	mockBills := new(mocks.MockBillService)
	h := handler.NewBillHandler(mockBills)

	mockBills.On("Calculate", "29ABCDE1234F1Z5", 1000.0).Return(gst.Result{
		TaxableValue:  1000,
		GSTApplicable: true,
		IsHomeState:   true,
		GSTRate:       18,
		CGST:          90,
		SGST:          90,
		GSTAmount:     180,
		FinalAmount:   1180,
	})

	w, c := postJSON(t, "/api/v1/billing/calculate", map[string]interface{}{
		"buyer_gstin":   "29ABCDE1234F1Z5",
		"taxable_value": 1000,
	})

	h.Calculate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "₹1,180.00", data["formatted_amount"])
	assert.Equal(t, "One Thousand One Hundred Eighty Only", data["amount_in_words"])
	assert.Equal(t, "₹1,000.00", data["formatted_taxable"])
}

func TestBillHandler_Get(t *testing.T) {
	bill := sampleBill()
	mockBills := new(mocks.MockBillService)
	mockBills.On("GetByID", mock.Anything, bill.ID).Return(bill, nil)

	h := handler.NewBillHandler(mockBills)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/bills/"+bill.ID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: bill.ID.String()}}

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBillHandler_Get_BadID(t *testing.T) {
	h := handler.NewBillHandler(new(mocks.MockBillService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/bills/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBillHandler_List_DDOUserPinnedFilter(t *testing.T) {
	mockBills := new(mocks.MockBillService)
	mockBills.On("List", mock.Anything, mock.MatchedBy(func(f port.BillFilter) bool {
		return f.DDOCode == "0200KC0001"
	}), 0, 20).Return([]domain.Bill{*sampleBill()}, 1, nil)

	h := handler.NewBillHandler(mockBills)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/bills?ddo_code=9999XX9999", nil)
	setAuthContext(c, uuid.New(), domain.RoleDDO, "0200KC0001")

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Total)
	mockBills.AssertExpectations(t)
}

func TestBillHandler_List_BadDateFilter(t *testing.T) {
	h := handler.NewBillHandler(new(mocks.MockBillService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/bills?from_date=junk", nil)
	setAuthContext(c, uuid.New(), domain.RoleAdmin, "")

	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBillHandler_Cancel_AlreadyCancelled(t *testing.T) {
	id := uuid.New()
	mockBills := new(mocks.MockBillService)
	mockBills.On("Cancel", mock.Anything, id).Return(domain.ErrBillNotEditable)

	h := handler.NewBillHandler(mockBills)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/bills/"+id.String()+"/cancel", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Cancel(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBillHandler_ExportCSV(t *testing.T) {
	mockBills := new(mocks.MockBillService)
	mockBills.On("ExportCSV", mock.Anything, mock.MatchedBy(func(f port.BillFilter) bool {
		return f.DDOCode == "0200KC0001"
	})).Return([]byte("\xEF\xBB\xBFBill Number\r\n"), "bill_register_0200KC0001_2025-08-31.csv", nil)

	h := handler.NewBillHandler(mockBills)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/bills/export", nil)
	setAuthContext(c, uuid.New(), domain.RoleDDO, "0200KC0001")

	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment; filename="bill_register_0200KC0001_2025-08-31.csv"`)
	assert.Contains(t, w.Body.String(), "Bill Number")
}
