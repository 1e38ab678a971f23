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

func newMasterService(
	gstinRepo *mocks.MockGSTINRepo,
	bankRepo *mocks.MockBankAccountRepo,
	hsnRepo *mocks.MockHSNRepo,
	ddoRepo *mocks.MockDDORepo,
) service.MasterService {
	return service.NewMasterService(gstinRepo, bankRepo, hsnRepo, ddoRepo)
}

func validGSTINInput() service.CreateGSTINInput {
	return service.CreateGSTINInput{
		GSTIN:     "29abcde1234f1z5",
		LegalName: "Acme Traders",
		Address:   "1 MG Road",
		City:      "Bengaluru",
		PINCode:   "560001",
	}
}

func TestMasterService_CreateGSTIN_Success(t *testing.T) {
	gstinRepo := new(mocks.MockGSTINRepo)
	gstinRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.GSTINRecord")).Return(nil)

	svc := newMasterService(gstinRepo, new(mocks.MockBankAccountRepo), new(mocks.MockHSNRepo), new(mocks.MockDDORepo))

	rec, err := svc.CreateGSTIN(context.Background(), validGSTINInput())

	require.NoError(t, err)
	assert.Equal(t, "29ABCDE1234F1Z5", rec.GSTIN)
	assert.Equal(t, 29, rec.StateCode)
	assert.True(t, rec.IsActive)

	gstinRepo.AssertExpectations(t)
}

func TestMasterService_CreateGSTIN_InvalidGSTIN(t *testing.T) {
	svc := newMasterService(new(mocks.MockGSTINRepo), new(mocks.MockBankAccountRepo),
		new(mocks.MockHSNRepo), new(mocks.MockDDORepo))

	input := validGSTINInput()
	input.GSTIN = "29ABCDE"
	_, err := svc.CreateGSTIN(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}

func TestMasterService_CreateGSTIN_OptionalContactValidated(t *testing.T) {
	svc := newMasterService(new(mocks.MockGSTINRepo), new(mocks.MockBankAccountRepo),
		new(mocks.MockHSNRepo), new(mocks.MockDDORepo))

	input := validGSTINInput()
	input.Email = "not-an-email"
	_, err := svc.CreateGSTIN(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrValidationFailed)

	input = validGSTINInput()
	input.Mobile = "12345"
	_, err = svc.CreateGSTIN(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}

func TestMasterService_CreateGSTIN_Duplicate(t *testing.T) {
	gstinRepo := new(mocks.MockGSTINRepo)
	gstinRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.GSTINRecord")).Return(domain.ErrDuplicateGSTIN)

	svc := newMasterService(gstinRepo, new(mocks.MockBankAccountRepo), new(mocks.MockHSNRepo), new(mocks.MockDDORepo))

	_, err := svc.CreateGSTIN(context.Background(), validGSTINInput())

	assert.ErrorIs(t, err, domain.ErrDuplicateGSTIN)
}

func TestMasterService_GetGSTIN_NormalizesInput(t *testing.T) {
	gstinRepo := new(mocks.MockGSTINRepo)
	gstinRepo.On("GetByGSTIN", mock.Anything, "29ABCDE1234F1Z5").
		Return(&domain.GSTINRecord{GSTIN: "29ABCDE1234F1Z5"}, nil)

	svc := newMasterService(gstinRepo, new(mocks.MockBankAccountRepo), new(mocks.MockHSNRepo), new(mocks.MockDDORepo))

	rec, err := svc.GetGSTIN(context.Background(), " 29abcde1234f1z5 ")

	require.NoError(t, err)
	assert.Equal(t, "29ABCDE1234F1Z5", rec.GSTIN)
	gstinRepo.AssertExpectations(t)
}

func validBankInput() service.CreateBankAccountInput {
	return service.CreateBankAccountInput{
		DDOCode:       "0200KC0001",
		BankName:      "State Bank of India",
		BranchName:    "Treasury Branch",
		AccountNumber: "123456789012",
		IFSC:          "sbin0001234",
	}
}

func TestMasterService_CreateBankAccount_Success(t *testing.T) {
	bankRepo := new(mocks.MockBankAccountRepo)
	ddoRepo := new(mocks.MockDDORepo)
	ddoRepo.On("GetByCode", mock.Anything, "0200KC0001").Return(testDDO(), nil)
	bankRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.BankAccount")).Return(nil)

	svc := newMasterService(new(mocks.MockGSTINRepo), bankRepo, new(mocks.MockHSNRepo), ddoRepo)

	acct, err := svc.CreateBankAccount(context.Background(), validBankInput())

	require.NoError(t, err)
	assert.Equal(t, "SBIN0001234", acct.IFSC)
	assert.True(t, acct.IsActive)
	bankRepo.AssertExpectations(t)
}

func TestMasterService_CreateBankAccount_BadIFSC(t *testing.T) {
	svc := newMasterService(new(mocks.MockGSTINRepo), new(mocks.MockBankAccountRepo),
		new(mocks.MockHSNRepo), new(mocks.MockDDORepo))

	input := validBankInput()
	input.IFSC = "SBIN1001234"
	_, err := svc.CreateBankAccount(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}

func TestMasterService_CreateBankAccount_BadMICR(t *testing.T) {
	svc := newMasterService(new(mocks.MockGSTINRepo), new(mocks.MockBankAccountRepo),
		new(mocks.MockHSNRepo), new(mocks.MockDDORepo))

	input := validBankInput()
	input.MICR = "12AB"
	_, err := svc.CreateBankAccount(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}

func TestMasterService_CreateBankAccount_UnknownDDO(t *testing.T) {
	ddoRepo := new(mocks.MockDDORepo)
	ddoRepo.On("GetByCode", mock.Anything, "0200KC0001").Return(nil, domain.ErrNotFound)

	svc := newMasterService(new(mocks.MockGSTINRepo), new(mocks.MockBankAccountRepo),
		new(mocks.MockHSNRepo), ddoRepo)

	_, err := svc.CreateBankAccount(context.Background(), validBankInput())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMasterService_GetHSN(t *testing.T) {
	hsnRepo := new(mocks.MockHSNRepo)
	hsnRepo.On("GetByCode", mock.Anything, "9954").
		Return(&domain.HSNCode{Code: "9954", Description: "Construction services", GSTRate: 18}, nil)

	svc := newMasterService(new(mocks.MockGSTINRepo), new(mocks.MockBankAccountRepo), hsnRepo, new(mocks.MockDDORepo))

	code, err := svc.GetHSN(context.Background(), "9954")

	require.NoError(t, err)
	assert.Equal(t, 18.0, code.GSTRate)
}

func TestMasterService_GetHSN_BadShape(t *testing.T) {
	svc := newMasterService(new(mocks.MockGSTINRepo), new(mocks.MockBankAccountRepo),
		new(mocks.MockHSNRepo), new(mocks.MockDDORepo))

	_, err := svc.GetHSN(context.Background(), "99")

	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}

func TestMasterService_SearchHSN(t *testing.T) {
	hsnRepo := new(mocks.MockHSNRepo)
	hsnRepo.On("Search", mock.Anything, "99", 0, 20).Return([]domain.HSNCode{
		{Code: "9954"}, {Code: "9983"},
	}, 2, nil)

	svc := newMasterService(new(mocks.MockGSTINRepo), new(mocks.MockBankAccountRepo), hsnRepo, new(mocks.MockDDORepo))

	codes, total, err := svc.SearchHSN(context.Background(), "99", 0, 20)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, codes, 2)
}
