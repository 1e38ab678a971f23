package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstportal/internal/validator"
)

// ValidateHandler exposes the field validators so entry screens can check
// values as the user types, with the same rules the services enforce.
type ValidateHandler struct{}

// NewValidateHandler creates a new ValidateHandler.
func NewValidateHandler() *ValidateHandler {
	return &ValidateHandler{}
}

// ValidateFieldInput is the DTO for single-field validation requests.
type ValidateFieldInput struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// Validate handles POST /api/v1/validate
func (h *ValidateHandler) Validate(c *gin.Context) {
	var input ValidateFieldInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := validator.Validate(validator.FieldType(input.Field), input.Value)
	RespondOK(c, result)
}
