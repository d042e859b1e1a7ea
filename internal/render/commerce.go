package render

import (
	"strconv"
	"strings"

	"docgen/internal/model"
)

// TaxInvoice builds a standard tax invoice.
func TaxInvoice(m *model.TaxInvoice, opt Options) ([]byte, error) {
	s := newSheet("Tax Invoice "+m.TaxInvoiceNumber, m.IssueDate, false, opt)
	s.heading("TAX INVOICE", m.TaxInvoiceNumber)

	s.keyValues([][2]string{
		{"Invoice Number", m.TaxInvoiceNumber},
		{"Issue Date", formatDate(m.IssueDate)},
		{"Due Date", formatDate(m.DueDate)},
		{"Currency", m.Currency},
	})
	s.parties("Seller", companyLines(m.Seller), "Bill To", companyLines(m.Customer))

	rows := make([][]string, 0, len(m.Items))
	var subtotal float64
	for i, it := range m.Items {
		subtotal += it.Total()
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			it.Description,
			formatQuantity(it.Quantity),
			formatAmount(it.UnitPrice),
			formatAmount(it.Total()),
		})
	}
	s.table([]column{
		{header: "#", width: 0.06, align: "C"},
		{header: "Description", width: 0.46},
		{header: "Qty", width: 0.12, align: "R"},
		{header: "Unit Price", width: 0.18, align: "R"},
		{header: "Amount", width: 0.18, align: "R"},
	}, rows)

	tax := subtotal * m.TaxRate / 100
	s.totals([][2]string{
		{"Subtotal", formatMoney(m.Currency, subtotal)},
		{"Tax (" + formatQuantity(m.TaxRate) + "%)", formatMoney(m.Currency, tax)},
		{"Total Due", formatMoney(m.Currency, subtotal+tax)},
	})
	s.paragraph("Notes", m.Notes)
	return s.bytes()
}

// Receipt builds a payment receipt.
func Receipt(m *model.Receipt, opt Options) ([]byte, error) {
	s := newSheet("Receipt "+m.ReceiptNumber, m.Date, false, opt)
	s.heading("RECEIPT", m.ReceiptNumber)

	var payer []string
	if m.Customer != nil {
		payer = nonEmpty(m.Customer.Name, m.Customer.Email, m.Customer.Phone)
	}
	s.parties("Received By", companyLines(m.Merchant), "Received From", payer)
	s.keyValues([][2]string{
		{"Receipt Number", m.ReceiptNumber},
		{"Date", formatDate(m.Date)},
		{"Payment Method", m.PaymentMethod},
	})

	rows := make([][]string, 0, len(m.Items))
	var total float64
	for _, it := range m.Items {
		total += it.Amount
		rows = append(rows, []string{it.Description, formatAmount(it.Amount)})
	}
	s.table([]column{
		{header: "Description", width: 0.75},
		{header: "Amount", width: 0.25, align: "R"},
	}, rows)
	s.totals([][2]string{{"Total Paid", formatMoney(m.Currency, total)}})
	s.paragraph("Notes", m.Notes)
	return s.bytes()
}

// PurchaseOrder builds a purchase order.
func PurchaseOrder(m *model.PurchaseOrder, opt Options) ([]byte, error) {
	s := newSheet("Purchase Order "+m.PONumber, m.OrderDate, false, opt)
	s.heading("PURCHASE ORDER", m.PONumber)

	s.keyValues([][2]string{
		{"PO Number", m.PONumber},
		{"Order Date", formatDate(m.OrderDate)},
		{"Delivery Date", formatDate(m.DeliveryDate)},
		{"Payment Terms", m.PaymentTerms},
		{"Shipping Terms", m.ShippingTerms},
	})
	s.parties("Buyer", companyLines(m.Buyer), "Supplier", companyLines(m.Supplier))

	rows := make([][]string, 0, len(m.Items))
	var subtotal float64
	for _, it := range m.Items {
		subtotal += it.Total()
		rows = append(rows, []string{
			it.ItemCode,
			it.Description,
			formatQuantity(it.Quantity),
			formatAmount(it.UnitPrice),
			formatAmount(it.Total()),
		})
	}
	s.table([]column{
		{header: "Item Code", width: 0.14},
		{header: "Description", width: 0.40},
		{header: "Qty", width: 0.10, align: "R"},
		{header: "Unit Price", width: 0.18, align: "R"},
		{header: "Amount", width: 0.18, align: "R"},
	}, rows)

	tax := subtotal * m.TaxRate / 100
	s.totals([][2]string{
		{"Subtotal", formatMoney(m.Currency, subtotal)},
		{"Tax (" + formatQuantity(m.TaxRate) + "%)", formatMoney(m.Currency, tax)},
		{"Order Total", formatMoney(m.Currency, subtotal+tax)},
	})
	return s.bytes()
}

func companyLines(c *model.Company) []string {
	if c == nil {
		return nil
	}
	lines := nonEmpty(c.CompanyName)
	if a := c.Address; a != nil {
		lines = append(lines, nonEmpty(a.Street, strings.TrimSpace(strings.Join(nonEmpty(a.City, a.State, a.PostalCode), " ")), a.Country)...)
	}
	if c.TaxNumber != "" {
		lines = append(lines, "Tax No: "+c.TaxNumber)
	}
	return append(lines, nonEmpty(c.Phone, c.Email)...)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
