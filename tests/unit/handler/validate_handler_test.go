package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstportal/internal/handler"
)

func TestValidateHandler_ValidField(t *testing.T) {
	h := handler.NewValidateHandler()

	w, c := postJSON(t, "/api/v1/validate", map[string]string{
		"field": "gstin",
		"value": "29ABCDE1234F1Z5",
	})

	h.Validate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, true, data["valid"])
}

func TestValidateHandler_InvalidValue(t *testing.T) {
	h := handler.NewValidateHandler()

	w, c := postJSON(t, "/api/v1/validate", map[string]string{
		"field": "mobile",
		"value": "5123456789",
	})

	h.Validate(c)

	// Validation outcomes are data, not HTTP errors.
	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, false, data["valid"])
	assert.NotEmpty(t, data["message"])
}

func TestValidateHandler_UnknownField(t *testing.T) {
	h := handler.NewValidateHandler()

	w, c := postJSON(t, "/api/v1/validate", map[string]string{
		"field": "aadhaar",
		"value": "123412341234",
	})

	h.Validate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, false, data["valid"])
}

func TestValidateHandler_MissingField(t *testing.T) {
	h := handler.NewValidateHandler()

	w, c := postJSON(t, "/api/v1/validate", map[string]string{
		"value": "whatever",
	})

	h.Validate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
