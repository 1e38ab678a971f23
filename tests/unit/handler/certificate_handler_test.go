package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstportal/internal/domain"
	"gstportal/internal/handler"
	"gstportal/internal/service"
	"gstportal/mocks"
)

// multipartUpload builds a multipart request body with a file part and form fields.
func multipartUpload(t *testing.T, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestCertificateHandler_Upload_DDOUserPinnedToOwnOffice(t *testing.T) {
	mockCerts := new(mocks.MockCertificateService)
	h := handler.NewCertificateHandler(mockCerts)

	userID := uuid.New()
	mockCerts.On("Upload", mock.Anything, mock.MatchedBy(func(in service.CertificateUploadInput) bool {
		return in.DDOCode == "0200KC0001" &&
			in.FormType == domain.CertificateForm16A &&
			in.FinancialYear == "2024-25" &&
			in.Quarter == "Q1" &&
			in.UploadedBy == userID
	})).Return(&domain.Certificate{
		ID:      uuid.New(),
		DDOCode: "0200KC0001",
		Status:  domain.CertificateStatusUploaded,
	}, nil)

	body, contentType := multipartUpload(t, "form16a.pdf", []byte("%PDF-1.4 test"), map[string]string{
		"ddo_code":       "9999XX9999",
		"form_type":      "form16a",
		"financial_year": "2024-25",
		"quarter":        "Q1",
		"deductee_pan":   "ABCDE1234F",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/certificates", body)
	c.Request.Header.Set("Content-Type", contentType)
	setAuthContext(c, userID, domain.RoleDDO, "0200KC0001")

	h.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockCerts.AssertExpectations(t)
}

func TestCertificateHandler_Upload_MissingFile(t *testing.T) {
	h := handler.NewCertificateHandler(new(mocks.MockCertificateService))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("form_type", "form16a"))
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/certificates", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())
	setAuthContext(c, uuid.New(), domain.RoleDDO, "0200KC0001")

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCertificateHandler_Upload_UnsupportedType(t *testing.T) {
	mockCerts := new(mocks.MockCertificateService)
	mockCerts.On("Upload", mock.Anything, mock.AnythingOfType("service.CertificateUploadInput")).
		Return(nil, domain.ErrUnsupportedFileType)

	h := handler.NewCertificateHandler(mockCerts)

	body, contentType := multipartUpload(t, "form16a.docx", []byte("not a pdf"), map[string]string{
		"form_type":      "form16a",
		"financial_year": "2024-25",
		"quarter":        "Q1",
		"deductee_pan":   "ABCDE1234F",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/certificates", body)
	c.Request.Header.Set("Content-Type", contentType)
	setAuthContext(c, uuid.New(), domain.RoleDDO, "0200KC0001")

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCertificateHandler_List_DDOUserPinned(t *testing.T) {
	mockCerts := new(mocks.MockCertificateService)
	mockCerts.On("ListByDDO", mock.Anything, "0200KC0001", 0, 20).
		Return([]domain.Certificate{{DDOCode: "0200KC0001"}}, 1, nil)

	h := handler.NewCertificateHandler(mockCerts)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/certificates?ddo_code=9999XX9999", nil)
	setAuthContext(c, uuid.New(), domain.RoleDDO, "0200KC0001")

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCerts.AssertExpectations(t)
}

func TestCertificateHandler_List_AdminMayQueryAnyOffice(t *testing.T) {
	mockCerts := new(mocks.MockCertificateService)
	mockCerts.On("ListByDDO", mock.Anything, "9999XX9999", 0, 20).
		Return([]domain.Certificate{}, 0, nil)

	h := handler.NewCertificateHandler(mockCerts)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/certificates?ddo_code=9999XX9999", nil)
	setAuthContext(c, uuid.New(), domain.RoleAdmin, "")

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCerts.AssertExpectations(t)
}

func TestCertificateHandler_Download(t *testing.T) {
	id := uuid.New()
	mockCerts := new(mocks.MockCertificateService)
	mockCerts.On("GetDownloadURL", mock.Anything, id).
		Return("https://presigned.example.com/form.pdf", nil)

	h := handler.NewCertificateHandler(mockCerts)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/certificates/"+id.String()+"/download", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "https://presigned.example.com/form.pdf", data["download_url"])
}

func TestCertificateHandler_Download_NotUploaded(t *testing.T) {
	id := uuid.New()
	mockCerts := new(mocks.MockCertificateService)
	mockCerts.On("GetDownloadURL", mock.Anything, id).Return("", domain.ErrNotFound)

	h := handler.NewCertificateHandler(mockCerts)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/certificates/"+id.String()+"/download", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Download(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCertificateHandler_Delete(t *testing.T) {
	id := uuid.New()
	mockCerts := new(mocks.MockCertificateService)
	mockCerts.On("Delete", mock.Anything, id).Return(nil)

	h := handler.NewCertificateHandler(mockCerts)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/certificates/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCerts.AssertExpectations(t)
}
