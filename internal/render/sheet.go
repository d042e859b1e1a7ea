package render

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Options control document metadata and protection.
type Options struct {
	Author  string
	Creator string
	// OwnerPassword grants full access to protected documents. When empty the
	// user password is reused.
	OwnerPassword string
}

const (
	margin       = 15.0
	bottomMargin = 18.0
	lineHeight   = 6.0
	rowHeight    = 7.0
	ellipsis     = "..."
)

// fallbackStamp is used as creation date when a model carries no date,
// so identical input always yields identical bytes.
var fallbackStamp = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type column struct {
	header string
	width  float64 // fraction of the content width
	align  string
}

// sheet wraps an fpdf document with the few layout primitives the builders share.
type sheet struct {
	pdf   *fpdf.Fpdf
	width float64
}

func newSheet(title string, stamp time.Time, landscape bool, opt Options) *sheet {
	orientation := "P"
	if landscape {
		orientation = "L"
	}
	if stamp.IsZero() {
		stamp = fallbackStamp
	}

	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	pdf.SetTitle(clean(title), true)
	pdf.SetAuthor(opt.Author, true)
	pdf.SetCreator(opt.Creator, true)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.AliasNbPages("")
	pdf.AddUTF8FontFromBytes(fontFamily, "", fontRegular)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", fontBold)

	pageW, _ := pdf.GetPageSize()
	s := &sheet{
		pdf:   pdf,
		width: pageW - 2*margin,
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(s.width/2, 5, s.tr(title), "", 0, "L", false, 0, "")
		pdf.CellFormat(s.width/2, 5, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()
	return s
}

// protect encrypts the document; readers may only print it.
func (s *sheet) protect(userPassword, ownerPassword string) {
	if ownerPassword == "" {
		ownerPassword = userPassword
	}
	s.pdf.SetProtection(fpdf.CnProtectPrint, userPassword, ownerPassword)
}

func (s *sheet) rtl() { s.pdf.RTL() }

func (s *sheet) tr(text string) string { return clean(text) }

func (s *sheet) heading(title, subtitle string) {
	s.pdf.SetTextColor(33, 37, 41)
	s.pdf.SetFont(fontFamily, "B", 18)
	s.pdf.CellFormat(s.width, 10, s.tr(title), "", 1, "L", false, 0, "")
	if subtitle != "" {
		s.pdf.SetFont(fontFamily, "", 11)
		s.pdf.SetTextColor(90, 90, 90)
		s.pdf.CellFormat(s.width, lineHeight, s.tr(subtitle), "", 1, "L", false, 0, "")
	}
	s.rule()
}

func (s *sheet) rule() {
	y := s.pdf.GetY() + 2
	s.pdf.SetDrawColor(200, 200, 200)
	s.pdf.SetLineWidth(0.3)
	s.pdf.Line(margin, y, margin+s.width, y)
	s.pdf.Ln(5)
}

func (s *sheet) section(title string) {
	s.pdf.Ln(2)
	s.pdf.SetFont(fontFamily, "B", 12)
	s.pdf.SetTextColor(33, 37, 41)
	s.pdf.CellFormat(s.width, lineHeight+1, s.tr(title), "", 1, "L", false, 0, "")
}

// keyValues prints label/value pairs; empty values are skipped.
func (s *sheet) keyValues(pairs [][2]string) {
	labelW := s.width * 0.3
	for _, kv := range pairs {
		if kv[1] == "" {
			continue
		}
		s.pdf.SetFont(fontFamily, "B", 10)
		s.pdf.SetTextColor(90, 90, 90)
		s.pdf.CellFormat(labelW, lineHeight, s.tr(kv[0]), "", 0, "L", false, 0, "")
		s.pdf.SetFont(fontFamily, "", 10)
		s.pdf.SetTextColor(33, 37, 41)
		s.pdf.CellFormat(s.width-labelW, lineHeight, s.tr(kv[1]), "", 1, "L", false, 0, "")
	}
	s.pdf.Ln(2)
}

// parties prints two address blocks side by side.
func (s *sheet) parties(leftTitle string, left []string, rightTitle string, right []string) {
	half := s.width / 2
	s.pdf.SetFont(fontFamily, "B", 10)
	s.pdf.SetTextColor(90, 90, 90)
	s.pdf.CellFormat(half, lineHeight, s.tr(leftTitle), "", 0, "L", false, 0, "")
	s.pdf.CellFormat(half, lineHeight, s.tr(rightTitle), "", 1, "L", false, 0, "")

	s.pdf.SetFont(fontFamily, "", 10)
	s.pdf.SetTextColor(33, 37, 41)
	n := max(len(left), len(right))
	for i := 0; i < n; i++ {
		s.pdf.CellFormat(half, 5, s.tr(at(left, i)), "", 0, "L", false, 0, "")
		s.pdf.CellFormat(half, 5, s.tr(at(right, i)), "", 1, "L", false, 0, "")
	}
	s.pdf.Ln(4)
}

// table draws a header row and body rows, repeating the header after page breaks.
func (s *sheet) table(cols []column, rows [][]string) {
	widths := make([]float64, len(cols))
	for i, c := range cols {
		widths[i] = c.width * s.width
	}

	header := func() {
		s.pdf.SetFont(fontFamily, "B", 9)
		s.pdf.SetFillColor(52, 73, 94)
		s.pdf.SetTextColor(255, 255, 255)
		for i, c := range cols {
			s.pdf.CellFormat(widths[i], rowHeight, s.fit(c.header, widths[i]), "1", 0, alignOf(c.align), true, 0, "")
		}
		s.pdf.Ln(-1)
		s.pdf.SetFont(fontFamily, "", 9)
		s.pdf.SetTextColor(33, 37, 41)
	}

	_, pageH := s.pdf.GetPageSize()
	header()
	for r, row := range rows {
		if s.pdf.GetY()+rowHeight > pageH-bottomMargin {
			s.pdf.AddPage()
			header()
		}
		fill := r%2 == 1
		s.pdf.SetFillColor(244, 246, 248)
		for i, c := range cols {
			s.pdf.CellFormat(widths[i], rowHeight, s.fit(at(row, i), widths[i]), "1", 0, alignOf(c.align), fill, 0, "")
		}
		s.pdf.Ln(-1)
	}
	s.pdf.Ln(3)
}

// totals prints right-aligned label/amount pairs; the last pair is bold.
func (s *sheet) totals(pairs [][2]string) {
	labelW := s.width * 0.25
	amountW := s.width * 0.2
	for i, kv := range pairs {
		style := ""
		if i == len(pairs)-1 {
			style = "B"
		}
		s.pdf.SetFont(fontFamily, style, 10)
		s.pdf.SetX(margin + s.width - labelW - amountW)
		s.pdf.CellFormat(labelW, lineHeight, s.tr(kv[0]), "", 0, "R", false, 0, "")
		s.pdf.CellFormat(amountW, lineHeight, s.tr(kv[1]), "", 1, "R", false, 0, "")
	}
	s.pdf.Ln(3)
}

func (s *sheet) paragraph(label, text string) {
	if text == "" {
		return
	}
	if label != "" {
		s.section(label)
	}
	s.pdf.SetFont(fontFamily, "", 10)
	s.pdf.SetTextColor(33, 37, 41)
	s.pdf.MultiCell(s.width, 5, s.tr(text), "", "L", false)
	s.pdf.Ln(2)
}

// fit truncates text to the given cell width, marking the cut with "...".
func (s *sheet) fit(text string, width float64) string {
	out := s.tr(text)
	limit := width - 2*s.pdf.GetCellMargin()
	if s.pdf.GetStringWidth(out) <= limit {
		return out
	}
	// Widths grow with the prefix, so the longest prefix that fits is found
	// by bisection instead of trimming one character at a time.
	runes := []rune(out)
	n := sort.Search(len(runes)+1, func(i int) bool {
		return s.pdf.GetStringWidth(string(runes[:i])+ellipsis) > limit
	}) - 1
	if n < 0 {
		n = 0
	}
	return string(runes[:n]) + ellipsis
}

func (s *sheet) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func alignOf(a string) string {
	if a == "" {
		return "L"
	}
	return a
}

func at(items []string, i int) string {
	if i < len(items) {
		return items[i]
	}
	return ""
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006")
}

// formatAmount renders v with two decimals and thousands separators.
func formatAmount(v float64) string {
	neg := v < 0
	cents := int64(math.Round(math.Abs(v) * 100))
	whole := fmt.Sprintf("%d", cents/100)

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := fmt.Sprintf("%s.%02d", b.String(), cents%100)
	if neg {
		return "-" + out
	}
	return out
}

func formatMoney(currency string, v float64) string {
	if currency == "" {
		return formatAmount(v)
	}
	return currency + " " + formatAmount(v)
}

func formatQuantity(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
