package render

import (
	"fmt"
	"strconv"

	"docgen/internal/model"
)

// DynamicColumnReport builds a table with caller-defined columns. Column
// widths are shared equally.
func DynamicColumnReport(m *model.DynamicColumnReport, opt Options) ([]byte, error) {
	s := newSheet(m.ReportTitle, m.ReportDate, m.Landscape, opt)
	s.heading(m.ReportTitle, m.Subtitle)
	s.keyValues([][2]string{{"Report Date", formatDate(m.ReportDate)}})

	cols := evenColumns(m.ColumnHeaders)
	rows := m.DataRows
	if len(m.SummaryRow) > 0 {
		rows = append(rows[:len(rows):len(rows)], m.SummaryRow)
	}
	s.table(cols, rows)
	s.paragraph("", m.FooterNote)
	return s.bytes()
}

// GenericReport builds a report from keyed rows. Cells are looked up by
// column name; missing keys render empty.
func GenericReport(m *model.GenericReport, opt Options) ([]byte, error) {
	s := newSheet(m.ReportName, m.ReportDate, len(m.ColumnNames) > 6, opt)
	if m.IsRightToLeft {
		s.rtl()
	}
	s.heading(m.ReportName, m.Description)
	s.keyValues([][2]string{
		{"Report Date", formatDate(m.ReportDate)},
		{"Author", m.Author},
	})

	rows := make([][]string, 0, len(m.Data))
	for _, record := range m.Data {
		row := make([]string, len(m.ColumnNames))
		for i, name := range m.ColumnNames {
			row[i] = cellText(record[name])
		}
		rows = append(rows, row)
	}
	s.table(evenColumns(m.ColumnNames), rows)
	s.keyValues([][2]string{{"Total Records", strconv.Itoa(len(m.Data))}})
	return s.bytes()
}

// ProductCatalog builds a catalog with one table per category.
func ProductCatalog(m *model.ProductCatalog, opt Options) ([]byte, error) {
	s := newSheet(m.CatalogTitle, m.EffectiveDate, false, opt)
	s.heading(m.CatalogTitle, m.CompanyName)
	s.keyValues([][2]string{
		{"Effective Date", formatDate(m.EffectiveDate)},
		{"Currency", m.Currency},
	})

	for _, cat := range m.Categories {
		s.section(cat.Name)
		s.paragraph("", cat.Description)
		rows := make([][]string, 0, len(cat.Products))
		for _, p := range cat.Products {
			stock := "Out of stock"
			if p.InStock {
				stock = "In stock"
			}
			rows = append(rows, []string{p.SKU, p.Name, p.Description, formatAmount(p.Price), stock})
		}
		s.table([]column{
			{header: "SKU", width: 0.14},
			{header: "Product", width: 0.24},
			{header: "Description", width: 0.32},
			{header: "Price", width: 0.15, align: "R"},
			{header: "Availability", width: 0.15, align: "C"},
		}, rows)
	}
	return s.bytes()
}

func evenColumns(headers []string) []column {
	cols := make([]column, len(headers))
	if len(headers) == 0 {
		return cols
	}
	w := 1 / float64(len(headers))
	for i, h := range headers {
		cols[i] = column{header: h, width: w}
	}
	return cols
}

func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', 2, 64)
	default:
		return fmt.Sprint(t)
	}
}
