package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstportal/internal/domain"
)

func sampleBill() domain.Bill {
	return domain.Bill{
		ID:            uuid.New(),
		BillNumber:    "BILL/0200KC0001/2025-26/0001",
		BillType:      domain.BillTypeBill,
		DDOCode:       "0200KC0001",
		BillDate:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		BuyerGSTIN:    "29ABCDE1234F1Z5",
		BuyerName:     "Acme Traders",
		TaxableValue:  1000,
		GSTApplicable: true,
		IsHomeState:   true,
		GSTRate:       18,
		CGST:          90,
		SGST:          90,
		GSTAmount:     180,
		FinalAmount:   1180,
		AmountInWords: "One Thousand One Hundred Eighty Only",
		Status:        domain.BillStatusGenerated,
		CreatedAt:     time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestWriter_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteBills([]domain.Bill{sampleBill()}))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header := records[0]
	assert.Equal(t, "Bill Number", header[0])
	assert.Equal(t, "Final Amount (Formatted)", header[15])
	assert.Equal(t, "Created At", header[18])

	row := records[1]
	require.Len(t, row, len(header))
	assert.Equal(t, "BILL/0200KC0001/2025-26/0001", row[0])
	assert.Equal(t, "bill", row[1])
	assert.Equal(t, "15-06-2025", row[2])
	assert.Equal(t, "No", row[6])  // government buyer
	assert.Equal(t, "Yes", row[7]) // home state
	assert.Equal(t, "1000.00", row[8])
	assert.Equal(t, "90.00", row[10])
	assert.Equal(t, "1180.00", row[14])
	assert.Equal(t, "₹1,180.00", row[15])
	assert.Equal(t, "One Thousand One Hundred Eighty Only", row[16])
	assert.Equal(t, "generated", row[17])
	assert.Equal(t, "2025-06-15T10:30:00Z", row[18])
}

func TestWriter_EmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteBills(nil))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "0200KC0001", SanitizeFilename("0200KC0001"))
	assert.Equal(t, "bill_register", SanitizeFilename("bill register"))
	assert.Equal(t, "a_b", SanitizeFilename("a///***b"))
	assert.Equal(t, "trimmed", SanitizeFilename("__trimmed__"))
	assert.Equal(t, "", SanitizeFilename("###"))

	long := SanitizeFilename(string(bytes.Repeat([]byte{'a'}, 150)))
	assert.Len(t, long, 100)
}

func TestBuildFilename(t *testing.T) {
	date := time.Now().Format("2006-01-02")

	assert.Equal(t, fmt.Sprintf("bill_register_0200KC0001_%s.csv", date), BuildFilename("0200KC0001"))
	assert.Equal(t, fmt.Sprintf("bill_register_%s.csv", date), BuildFilename(""))
	assert.Equal(t, fmt.Sprintf("bill_register_%s.csv", date), BuildFilename("###"))
}
