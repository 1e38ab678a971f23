// Package validator holds the portal's field-level validation rules. Every
// rule returns a Result rather than an error so callers can surface inline
// field messages without exception plumbing; rules never log and never panic.
package validator

// Result is the uniform outcome of every field validation.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func ok() Result {
	return Result{Valid: true}
}

func fail(message string) Result {
	return Result{Valid: false, Message: message}
}

// FieldType tags a value with the rule that applies to it. Handlers map
// request fields to a FieldType explicitly instead of inferring the rule
// from the field's name.
type FieldType string

const (
	FieldGSTIN         FieldType = "gstin"
	FieldPAN           FieldType = "pan"
	FieldTAN           FieldType = "tan"
	FieldIFSC          FieldType = "ifsc"
	FieldMICR          FieldType = "micr"
	FieldAccountNumber FieldType = "account_number"
	FieldHSN           FieldType = "hsn"
	FieldGSTRate       FieldType = "gst_rate"
	FieldEmail         FieldType = "email"
	FieldMobile        FieldType = "mobile"
	FieldPIN           FieldType = "pin"
	FieldStateCode     FieldType = "state_code"
	FieldDDOCode       FieldType = "ddo_code"
	FieldName          FieldType = "name"
	FieldAddress       FieldType = "address"
	FieldCity          FieldType = "city"
	FieldDescription   FieldType = "description"
	FieldAmount        FieldType = "amount"
	FieldPassword      FieldType = "password"
	FieldBillDate      FieldType = "bill_date"
)

// rules maps each FieldType to its validation function.
var rules = map[FieldType]func(string) Result{
	FieldGSTIN:         ValidateGSTIN,
	FieldPAN:           ValidatePAN,
	FieldTAN:           ValidateTAN,
	FieldIFSC:          ValidateIFSC,
	FieldMICR:          ValidateMICR,
	FieldAccountNumber: ValidateAccountNumber,
	FieldHSN:           ValidateHSN,
	FieldGSTRate:       ValidateGSTRate,
	FieldEmail:         ValidateEmail,
	FieldMobile:        ValidateMobile,
	FieldPIN:           ValidatePIN,
	FieldStateCode:     ValidateStateCode,
	FieldDDOCode:       ValidateDDOCode,
	FieldName:          ValidateName,
	FieldAddress:       ValidateAddress,
	FieldCity:          ValidateCity,
	FieldDescription:   ValidateDescription,
	FieldAmount:        ValidateAmount,
	FieldPassword:      ValidatePassword,
	FieldBillDate:      ValidateBillDate,
}

// Validate dispatches a value to the rule registered for its field type.
// An unknown field type fails rather than silently passing.
func Validate(field FieldType, value string) Result {
	rule, exists := rules[field]
	if !exists {
		return fail("no validation rule registered for field type " + string(field))
	}
	return rule(value)
}
