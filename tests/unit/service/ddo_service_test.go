package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstportal/internal/domain"
	"gstportal/internal/service"
	"gstportal/mocks"
)

func validDDOInput() service.CreateDDOInput {
	return service.CreateDDOInput{
		Code:        "0200kc0001",
		OfficeName:  "Office of the Executive Engineer",
		OfficerName: "Test Officer",
		TAN:         "blrg12345d",
		Address:     "1 MG Road",
		City:        "Bengaluru",
		PINCode:     "560001",
		Email:       "DDO@treasury.kar.nic.in",
		Mobile:      "9876543210",
	}
}

func TestDDOService_Create_Success(t *testing.T) {
	ddoRepo := new(mocks.MockDDORepo)
	ddoRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.DDO")).Return(nil)

	svc := service.NewDDOService(ddoRepo)

	ddo, err := svc.Create(context.Background(), validDDOInput())

	require.NoError(t, err)
	assert.Equal(t, "0200KC0001", ddo.Code)
	assert.Equal(t, "BLRG12345D", ddo.TAN)
	assert.Equal(t, "ddo@treasury.kar.nic.in", ddo.Email)
	assert.True(t, ddo.IsActive)

	ddoRepo.AssertExpectations(t)
}

func TestDDOService_Create_InvalidFields(t *testing.T) {
	svc := service.NewDDOService(new(mocks.MockDDORepo))

	cases := []struct {
		name   string
		mutate func(*service.CreateDDOInput)
	}{
		{"bad code", func(in *service.CreateDDOInput) { in.Code = "0200-KC-0001" }},
		{"empty office name", func(in *service.CreateDDOInput) { in.OfficeName = "  " }},
		{"bad TAN", func(in *service.CreateDDOInput) { in.TAN = "12345BLRGD" }},
		{"bad PIN", func(in *service.CreateDDOInput) { in.PINCode = "5600" }},
		{"bad email", func(in *service.CreateDDOInput) { in.Email = "not-an-email" }},
		{"bad mobile", func(in *service.CreateDDOInput) { in.Mobile = "12345" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validDDOInput()
			tc.mutate(&input)
			_, err := svc.Create(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrValidationFailed)
		})
	}
}

func TestDDOService_Create_DuplicateCode(t *testing.T) {
	ddoRepo := new(mocks.MockDDORepo)
	ddoRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.DDO")).Return(domain.ErrDuplicateDDOCode)

	svc := service.NewDDOService(ddoRepo)

	_, err := svc.Create(context.Background(), validDDOInput())

	assert.ErrorIs(t, err, domain.ErrDuplicateDDOCode)
}

func TestDDOService_Update_PartialFields(t *testing.T) {
	ddo := testDDO()
	ddoRepo := new(mocks.MockDDORepo)
	ddoRepo.On("GetByID", mock.Anything, ddo.ID).Return(ddo, nil)
	ddoRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.DDO")).Return(nil)

	svc := service.NewDDOService(ddoRepo)

	newOfficer := "Replacement Officer"
	updated, err := svc.Update(context.Background(), ddo.ID, service.UpdateDDOInput{
		OfficerName: &newOfficer,
	})

	require.NoError(t, err)
	assert.Equal(t, "Replacement Officer", updated.OfficerName)
	assert.Equal(t, "0200KC0001", updated.Code)
}

func TestDDOService_Update_LowercaseTAN(t *testing.T) {
	ddo := testDDO()
	ddoRepo := new(mocks.MockDDORepo)
	ddoRepo.On("GetByID", mock.Anything, ddo.ID).Return(ddo, nil)
	ddoRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.DDO")).Return(nil)

	svc := service.NewDDOService(ddoRepo)

	newTAN := " mumg54321e "
	updated, err := svc.Update(context.Background(), ddo.ID, service.UpdateDDOInput{TAN: &newTAN})

	require.NoError(t, err)
	assert.Equal(t, "MUMG54321E", updated.TAN)
	ddoRepo.AssertExpectations(t)
}

func TestDDOService_Update_BadTAN(t *testing.T) {
	ddo := testDDO()
	ddoRepo := new(mocks.MockDDORepo)
	ddoRepo.On("GetByID", mock.Anything, ddo.ID).Return(ddo, nil)

	svc := service.NewDDOService(ddoRepo)

	bad := "NOTATAN"
	_, err := svc.Update(context.Background(), ddo.ID, service.UpdateDDOInput{TAN: &bad})

	assert.ErrorIs(t, err, domain.ErrValidationFailed)
	ddoRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDDOService_GetByCode(t *testing.T) {
	ddo := testDDO()
	ddoRepo := new(mocks.MockDDORepo)
	ddoRepo.On("GetByCode", mock.Anything, "0200KC0001").Return(ddo, nil)

	svc := service.NewDDOService(ddoRepo)

	got, err := svc.GetByCode(context.Background(), "0200KC0001")

	require.NoError(t, err)
	assert.Equal(t, ddo.Code, got.Code)
}
