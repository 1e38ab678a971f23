package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gstportal/internal/domain"
	"gstportal/internal/handler"
	"gstportal/internal/service"
	"gstportal/mocks"
)

func TestUserHandler_Create_Success(t *testing.T) {
	mockUsers := new(mocks.MockUserService)
	h := handler.NewUserHandler(mockUsers)

	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("service.CreateUserInput")).
		Return(&domain.User{
			ID:      uuid.New(),
			Email:   "new.ddo@treasury.kar.nic.in",
			Role:    domain.RoleDDO,
			DDOCode: "0200KC0001",
		}, nil)

	w, c := postJSON(t, "/api/v1/users", map[string]string{
		"email":     "new.ddo@treasury.kar.nic.in",
		"password":  "Sup3r$ecret",
		"full_name": "New DDO User",
		"mobile":    "9876543210",
		"ddo_code":  "0200KC0001",
	})

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUsers.AssertExpectations(t)
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	mockUsers := new(mocks.MockUserService)
	h := handler.NewUserHandler(mockUsers)

	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("service.CreateUserInput")).
		Return(nil, domain.ErrDuplicateEmail)

	w, c := postJSON(t, "/api/v1/users", map[string]string{
		"email":     "taken@treasury.kar.nic.in",
		"password":  "Sup3r$ecret",
		"full_name": "New DDO User",
		"mobile":    "9876543210",
		"ddo_code":  "0200KC0001",
	})

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUserHandler_Me(t *testing.T) {
	userID := uuid.New()
	mockUsers := new(mocks.MockUserService)
	mockUsers.On("GetByID", mock.Anything, userID).Return(&domain.User{
		ID:      userID,
		Email:   "ddo@treasury.kar.nic.in",
		DDOCode: "0200KC0001",
	}, nil)

	h := handler.NewUserHandler(mockUsers)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	setAuthContext(c, userID, domain.RoleDDO, "0200KC0001")

	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUsers.AssertExpectations(t)
}

func TestUserHandler_ChangePassword_WrongCurrent(t *testing.T) {
	userID := uuid.New()
	mockUsers := new(mocks.MockUserService)
	mockUsers.On("ChangePassword", mock.Anything, userID, service.ChangePasswordInput{
		CurrentPassword: "wrong-password",
		NewPassword:     "An0ther$ecret",
	}).Return(domain.ErrInvalidCredentials)

	h := handler.NewUserHandler(mockUsers)

	w, c := postJSON(t, "/api/v1/users/me/password", map[string]string{
		"current_password": "wrong-password",
		"new_password":     "An0ther$ecret",
	})
	setAuthContext(c, userID, domain.RoleDDO, "0200KC0001")

	h.ChangePassword(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserHandler_Get_BadID(t *testing.T) {
	h := handler.NewUserHandler(new(mocks.MockUserService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/users/nope", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	userID := uuid.New()
	mockUsers := new(mocks.MockUserService)
	mockUsers.On("GetByID", mock.Anything, userID).Return(nil, domain.ErrNotFound)

	h := handler.NewUserHandler(mockUsers)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/users/"+userID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
