package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gstportal/internal/domain"
	"gstportal/internal/gst"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the bill register CSV header row.
var columns = []string{
	"Bill Number",
	"Bill Type",
	"Bill Date",
	"DDO Code",
	"Buyer Name",
	"Buyer GSTIN",
	"Government Buyer",
	"Home State",
	"Taxable Value",
	"GST Rate (%)",
	"CGST",
	"SGST",
	"IGST",
	"GST Amount",
	"Final Amount",
	"Final Amount (Formatted)",
	"Amount In Words",
	"Status",
	"Created At",
}

// Writer wraps csv.Writer for exporting the bill register as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteBills converts a batch of bills to CSV rows and writes them.
func (w *Writer) WriteBills(bills []domain.Bill) error {
	for i := range bills {
		row := billToRow(&bills[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func billToRow(bill *domain.Bill) []string {
	row := make([]string, len(columns))

	row[0] = bill.BillNumber
	row[1] = string(bill.BillType)
	row[2] = bill.BillDate.Format("02-01-2006")
	row[3] = bill.DDOCode
	row[4] = bill.BuyerName
	row[5] = bill.BuyerGSTIN
	row[6] = formatBool(bill.IsGovernment)
	row[7] = formatBool(bill.IsHomeState)
	row[8] = formatMoney(bill.TaxableValue)
	row[9] = formatMoney(bill.GSTRate)
	row[10] = formatMoney(bill.CGST)
	row[11] = formatMoney(bill.SGST)
	row[12] = formatMoney(bill.IGST)
	row[13] = formatMoney(bill.GSTAmount)
	row[14] = formatMoney(bill.FinalAmount)
	row[15] = gst.FormatCurrency(bill.FinalAmount)
	row[16] = bill.AmountInWords
	row[17] = string(bill.Status)
	row[18] = bill.CreatedAt.Format(time.RFC3339)

	return row
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a DDO code or register name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: bill_register_{sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	if sanitized == "" {
		return fmt.Sprintf("bill_register_%s.csv", date)
	}
	return fmt.Sprintf("bill_register_%s_%s.csv", sanitized, date)
}
