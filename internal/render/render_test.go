package render_test

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"
	"strings"
	"testing"
	"time"
	"unicode/utf16"

	"docgen/internal/model"
	"docgen/internal/render"
	"docgen/internal/sample"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var opts = render.Options{Author: "docgen", Creator: "docgen", OwnerPassword: "owner-secret"}

func TestBuilders_ProducePDF(t *testing.T) {
	tests := []struct {
		name  string
		build func() ([]byte, error)
	}{
		{"tax invoice", func() ([]byte, error) { return render.TaxInvoice(sample.TaxInvoice(), opts) }},
		{"receipt", func() ([]byte, error) { return render.Receipt(sample.Receipt(), opts) }},
		{"purchase order", func() ([]byte, error) { return render.PurchaseOrder(sample.PurchaseOrder(), opts) }},
		{"payslip", func() ([]byte, error) { return render.EmployeePayslip(sample.EmployeePayslip(), opts) }},
		{"protected payslip", func() ([]byte, error) {
			return render.EmployeePayslip(sample.EmployeePayslipWithPassword(), opts)
		}},
		{"employee report", func() ([]byte, error) { return render.EmployeeReport(sample.EmployeeReport(), opts) }},
		{"dynamic report", func() ([]byte, error) {
			return render.DynamicColumnReport(sample.DynamicColumnReport(), opts)
		}},
		{"budget analysis", func() ([]byte, error) { return render.DynamicColumnReport(sample.BudgetAnalysis(), opts) }},
		{"project timeline", func() ([]byte, error) {
			return render.DynamicColumnReport(sample.ProjectTimeline(), opts)
		}},
		{"generic report", func() ([]byte, error) { return render.GenericReport(sample.GenericReport(), opts) }},
		{"product catalog", func() ([]byte, error) { return render.ProductCatalog(sample.ProductCatalog(), opts) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.build()
			require.NoError(t, err)
			require.NotEmpty(t, out)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "missing PDF header")
			assert.True(t, bytes.Contains(out, []byte("%%EOF")), "missing PDF trailer")
		})
	}
}

func TestBuilders_Deterministic(t *testing.T) {
	first, err := render.TaxInvoice(sample.TaxInvoice(), opts)
	require.NoError(t, err)
	second, err := render.TaxInvoice(sample.TaxInvoice(), opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	p1, err := render.EmployeePayslip(sample.EmployeePayslipWithPassword(), opts)
	require.NoError(t, err)
	p2, err := render.EmployeePayslip(sample.EmployeePayslipWithPassword(), opts)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestEmployeePayslip_PasswordEncrypts(t *testing.T) {
	plain, err := render.EmployeePayslip(sample.EmployeePayslip(), opts)
	require.NoError(t, err)
	protected, err := render.EmployeePayslip(sample.EmployeePayslipWithPassword(), opts)
	require.NoError(t, err)

	assert.NotEqual(t, plain, protected)
	assert.False(t, bytes.Contains(plain, []byte("/Encrypt")))
	assert.True(t, bytes.Contains(protected, []byte("/Encrypt")))
}

func TestBuilders_ToleratesSparseModels(t *testing.T) {
	_, err := render.TaxInvoice(&model.TaxInvoice{TaxInvoiceNumber: "X"}, render.Options{})
	assert.NoError(t, err)

	_, err = render.GenericReport(&model.GenericReport{
		ReportName:  "Sparse",
		ColumnNames: []string{"a", "b"},
		Data:        []map[string]any{{"a": "only a"}, {"b": float64(2.5)}},
	}, render.Options{})
	assert.NoError(t, err)

	_, err = render.DynamicColumnReport(&model.DynamicColumnReport{ReportTitle: "Empty"}, render.Options{})
	assert.NoError(t, err)
}

func TestBuilders_LongTablesPaginate(t *testing.T) {
	m := &model.EmployeeReport{
		ReportTitle: "Large",
		Department:  "All",
		ReportDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for i := 0; i < 120; i++ {
		m.Employees = append(m.Employees, model.EmployeeRecord{EmployeeID: "E", FullName: "Name", Salary: 1000})
	}
	out, err := render.EmployeeReport(m, opts)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, bytes.Count(out, []byte("/Type /Page\n")), 3)
}

func TestReceipt_LongDescriptionRendersQuickly(t *testing.T) {
	m := sample.Receipt()
	m.Items[0].Description = strings.Repeat("Espresso beans, single origin. ", 20000)

	start := time.Now()
	out, err := render.Receipt(m, opts)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestGenericReport_ArabicKeepsGlyphs(t *testing.T) {
	out, err := render.GenericReport(sample.GenericReportArabic(), opts)
	require.NoError(t, err)

	content := inflateStreams(t, out)
	// Right-to-left text is written in visual order.
	for _, word := range []string{"تقرير", "الرياض", "الدمام"} {
		assert.True(t, bytes.Contains(content, utf16BE(reverse(word))), "missing glyphs for %q", word)
	}
	assert.True(t, bytes.Contains(out, []byte("/FontFile2")), "font not embedded")
}

func TestReceipt_NonLatinNames(t *testing.T) {
	m := sample.Receipt()
	m.Customer.Name = "Дмитрий Иванов"

	out, err := render.Receipt(m, opts)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(inflateStreams(t, out), utf16BE("Дмитрий")))
}

// inflateStreams concatenates every Flate-compressed stream of a PDF.
func inflateStreams(t *testing.T, pdf []byte) []byte {
	t.Helper()
	var all bytes.Buffer
	rest := pdf
	for {
		i := bytes.Index(rest, []byte("stream\n"))
		if i < 0 {
			break
		}
		rest = rest[i+len("stream\n"):]
		j := bytes.Index(rest, []byte("\nendstream"))
		if j < 0 {
			break
		}
		if r, err := zlib.NewReader(bytes.NewReader(rest[:j])); err == nil {
			b, _ := io.ReadAll(r)
			all.Write(b)
		}
		rest = rest[j+len("\nendstream"):]
	}
	require.NotZero(t, all.Len(), "no readable streams")
	return all.Bytes()
}

func utf16BE(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.BigEndian.PutUint16(b[2*i:], u)
	}
	return b
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
