// Package sample provides fixed demonstration models for every document
// type. Each call returns a fresh value built from the same constants.
package sample

import (
	"time"

	"docgen/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seller() *model.Company {
	return &model.Company{
		CompanyName: "Northwind Traders Ltd",
		TaxNumber:   "TX-4471-0093",
		Address: &model.Address{
			Street:     "12 Harbour Road",
			City:       "Wellington",
			PostalCode: "6011",
			Country:    "New Zealand",
		},
		Phone: "+64 4 555 0100",
		Email: "billing@northwind.example",
	}
}

func customer() *model.Company {
	return &model.Company{
		CompanyName: "Contoso Engineering",
		TaxNumber:   "TX-8820-1145",
		Address: &model.Address{
			Street:     "480 Queen Street",
			City:       "Auckland",
			PostalCode: "1010",
			Country:    "New Zealand",
		},
		Email: "accounts@contoso.example",
	}
}

// TaxInvoice returns the sample tax invoice.
func TaxInvoice() *model.TaxInvoice {
	return &model.TaxInvoice{
		TaxInvoiceNumber: "INV-2024-0042",
		IssueDate:        day(2024, time.March, 1),
		DueDate:          day(2024, time.March, 31),
		Currency:         "USD",
		Seller:           seller(),
		Customer:         customer(),
		Items: []model.InvoiceItem{
			{Description: "Consulting services (hours)", Quantity: 12, UnitPrice: 150},
			{Description: "Hosting plan, annual", Quantity: 1, UnitPrice: 1200},
			{Description: "Support retainer", Quantity: 3, UnitPrice: 275.5},
		},
		TaxRate: 15,
		Notes:   "Payment due within 30 days. Please quote the invoice number with your remittance.",
	}
}

// Receipt returns the sample receipt.
func Receipt() *model.Receipt {
	return &model.Receipt{
		ReceiptNumber: "RCT-2024-0117",
		Date:          day(2024, time.March, 5),
		Currency:      "USD",
		Merchant:      seller(),
		Customer: &model.ReceiptPayer{
			Name:  "Jane Cooper",
			Email: "jane.cooper@example.com",
			Phone: "+64 21 555 0199",
		},
		Items: []model.ReceiptItem{
			{Description: "Office chair", Amount: 349},
			{Description: "Standing desk", Amount: 899.99},
			{Description: "Delivery", Amount: 45},
		},
		PaymentMethod: "Credit Card",
		Notes:         "Thank you for your purchase.",
	}
}

// PurchaseOrder returns the sample purchase order.
func PurchaseOrder() *model.PurchaseOrder {
	return &model.PurchaseOrder{
		PONumber:     "PO-2024-0310",
		OrderDate:    day(2024, time.March, 10),
		DeliveryDate: day(2024, time.March, 24),
		Currency:     "USD",
		Buyer:        customer(),
		Supplier:     seller(),
		Items: []model.OrderItem{
			{ItemCode: "STL-100", Description: "Steel bracket, galvanised", Quantity: 250, UnitPrice: 3.4},
			{ItemCode: "BLT-M8", Description: "M8 bolt, box of 100", Quantity: 20, UnitPrice: 18.75},
			{ItemCode: "WSH-M8", Description: "M8 washer, box of 100", Quantity: 20, UnitPrice: 6.2},
		},
		TaxRate:       15,
		PaymentTerms:  "Net 30",
		ShippingTerms: "FOB Destination",
	}
}

// EmployeePayslip returns the sample payslip.
func EmployeePayslip() *model.EmployeePayslip {
	return &model.EmployeePayslip{
		PayslipNumber:  "PS-2024-03-0007",
		PayPeriodStart: day(2024, time.March, 1),
		PayPeriodEnd:   day(2024, time.March, 31),
		PayDate:        day(2024, time.March, 28),
		Currency:       "USD",
		Company:        seller(),
		Employee: &model.PayslipHolder{
			EmployeeID:  "EMP-0007",
			FullName:    "Michael Chen",
			Department:  "Engineering",
			Position:    "Senior Developer",
			BankAccount: "****4821",
		},
		Earnings: []model.PayComponent{
			{Description: "Basic salary", Amount: 6500},
			{Description: "Overtime", Amount: 420},
			{Description: "Transport allowance", Amount: 150},
		},
		Deductions: []model.PayComponent{
			{Description: "Income tax", Amount: 1380},
			{Description: "Pension contribution", Amount: 325},
			{Description: "Health insurance", Amount: 95},
		},
	}
}

// EmployeePayslipWithPassword returns the sample payslip with a user password set.
func EmployeePayslipWithPassword() *model.EmployeePayslip {
	p := EmployeePayslip()
	p.Password = "EMP-0007"
	return p
}

// EmployeeReport returns the sample department report.
func EmployeeReport() *model.EmployeeReport {
	return &model.EmployeeReport{
		ReportTitle: "Employee Report",
		Department:  "Engineering",
		ReportDate:  day(2024, time.March, 31),
		PreparedBy:  "Human Resources",
		Employees: []model.EmployeeRecord{
			{EmployeeID: "EMP-0001", FullName: "Sarah Johnson", Position: "Engineering Manager", HireDate: day(2016, time.May, 2), Salary: 9800, Status: "Active"},
			{EmployeeID: "EMP-0007", FullName: "Michael Chen", Position: "Senior Developer", HireDate: day(2019, time.August, 19), Salary: 6500, Status: "Active"},
			{EmployeeID: "EMP-0012", FullName: "Priya Patel", Position: "QA Engineer", HireDate: day(2021, time.January, 11), Salary: 5200, Status: "Active"},
			{EmployeeID: "EMP-0019", FullName: "Tom Walker", Position: "Developer", HireDate: day(2022, time.October, 3), Salary: 4800, Status: "On Leave"},
		},
	}
}

// DynamicColumnReport returns the sample quarterly sales table.
func DynamicColumnReport() *model.DynamicColumnReport {
	return &model.DynamicColumnReport{
		ReportTitle:   "Quarterly Sales by Region",
		Subtitle:      "Fiscal year 2024",
		ReportDate:    day(2024, time.April, 2),
		ColumnHeaders: []string{"Region", "Q1", "Q2", "Q3", "Q4", "Total"},
		DataRows: [][]string{
			{"North", "120,400", "131,250", "128,900", "140,100", "520,650"},
			{"South", "98,300", "102,750", "110,200", "115,400", "426,650"},
			{"East", "143,800", "139,600", "150,050", "162,300", "595,750"},
			{"West", "87,900", "94,100", "99,750", "104,600", "386,350"},
		},
		SummaryRow: []string{"All regions", "450,400", "467,700", "488,900", "522,400", "1,929,400"},
		FooterNote: "Figures in USD, unaudited.",
	}
}

// BudgetAnalysis returns the budget analysis report, a landscape dynamic report.
func BudgetAnalysis() *model.DynamicColumnReport {
	return &model.DynamicColumnReport{
		ReportTitle:   "Budget Analysis",
		Subtitle:      "Operating budget versus actuals, Q1 2024",
		ReportDate:    day(2024, time.April, 5),
		ColumnHeaders: []string{"Department", "Budget", "Actual", "Variance", "Variance %", "Status"},
		DataRows: [][]string{
			{"Engineering", "450,000", "438,200", "11,800", "2.6%", "Under"},
			{"Marketing", "180,000", "196,500", "-16,500", "-9.2%", "Over"},
			{"Sales", "220,000", "214,900", "5,100", "2.3%", "Under"},
			{"Operations", "160,000", "161,300", "-1,300", "-0.8%", "Over"},
			{"Administration", "90,000", "84,750", "5,250", "5.8%", "Under"},
		},
		SummaryRow: []string{"Total", "1,100,000", "1,095,650", "4,350", "0.4%", "Under"},
		FooterNote: "Variance is budget minus actual. Negative values indicate overspend.",
		Landscape:  true,
	}
}

// ProjectTimeline returns the project timeline report, a landscape dynamic report.
func ProjectTimeline() *model.DynamicColumnReport {
	return &model.DynamicColumnReport{
		ReportTitle:   "Project Timeline",
		Subtitle:      "Customer portal rebuild",
		ReportDate:    day(2024, time.February, 12),
		ColumnHeaders: []string{"Phase", "Owner", "Start", "End", "Duration", "Progress"},
		DataRows: [][]string{
			{"Discovery", "Sarah Johnson", "2024-01-08", "2024-01-26", "3 weeks", "100%"},
			{"Design", "Priya Patel", "2024-01-29", "2024-02-23", "4 weeks", "60%"},
			{"Build", "Michael Chen", "2024-02-26", "2024-05-03", "10 weeks", "0%"},
			{"Testing", "Priya Patel", "2024-05-06", "2024-05-31", "4 weeks", "0%"},
			{"Launch", "Tom Walker", "2024-06-03", "2024-06-07", "1 week", "0%"},
		},
		FooterNote: "Dates are planned and subject to change.",
		Landscape:  true,
	}
}

// GenericReport returns the sample keyed-row report.
func GenericReport() *model.GenericReport {
	return &model.GenericReport{
		ReportName:  "Inventory Summary",
		Description: "Stock levels across warehouses",
		ReportDate:  day(2024, time.March, 15),
		Author:      "Warehouse Operations",
		ColumnNames: []string{"Warehouse", "Item", "On Hand", "Reorder Level", "Unit Cost"},
		Data: []map[string]any{
			{"Warehouse": "Auckland", "Item": "Steel bracket", "On Hand": float64(1250), "Reorder Level": float64(400), "Unit Cost": 3.4},
			{"Warehouse": "Auckland", "Item": "M8 bolt box", "On Hand": float64(86), "Reorder Level": float64(50), "Unit Cost": 18.75},
			{"Warehouse": "Wellington", "Item": "Steel bracket", "On Hand": float64(310), "Reorder Level": float64(400), "Unit Cost": 3.4},
			{"Warehouse": "Wellington", "Item": "M8 washer box", "On Hand": float64(140), "Reorder Level": float64(60), "Unit Cost": 6.2},
		},
	}
}

// GenericReportArabic returns a right-to-left sample. Core PDF fonts cannot
// draw Arabic script, so it is served as JSON only.
func GenericReportArabic() *model.GenericReport {
	return &model.GenericReport{
		ReportName:  "تقرير المبيعات الشهري",
		Description: "ملخص المبيعات حسب المنطقة",
		ReportDate:  day(2024, time.March, 31),
		Author:      "قسم المالية",
		ColumnNames: []string{"المنطقة", "المبيعات", "الهدف"},
		Data: []map[string]any{
			{"المنطقة": "الرياض", "المبيعات": float64(125000), "الهدف": float64(120000)},
			{"المنطقة": "جدة", "المبيعات": float64(98000), "الهدف": float64(100000)},
			{"المنطقة": "الدمام", "المبيعات": float64(76000), "الهدف": float64(70000)},
		},
		IsRightToLeft: true,
	}
}

// ProductCatalog returns the sample catalog.
func ProductCatalog() *model.ProductCatalog {
	return &model.ProductCatalog{
		CatalogTitle:  "Product Catalog 2024",
		CompanyName:   "Northwind Traders Ltd",
		EffectiveDate: day(2024, time.January, 1),
		Currency:      "USD",
		Categories: []model.ProductCategory{
			{
				Name:        "Office Furniture",
				Description: "Ergonomic furniture for the modern workplace.",
				Products: []model.Product{
					{SKU: "OF-CH-01", Name: "Ergo Chair", Description: "Mesh back, adjustable lumbar", Price: 349, InStock: true},
					{SKU: "OF-DK-02", Name: "Standing Desk", Description: "Dual motor, 160 x 80 cm", Price: 899.99, InStock: true},
					{SKU: "OF-CB-03", Name: "Filing Cabinet", Description: "Three drawer, lockable", Price: 219, InStock: false},
				},
			},
			{
				Name:        "Hardware",
				Description: "Fasteners and fittings sold by the box.",
				Products: []model.Product{
					{SKU: "HW-BR-10", Name: "Steel Bracket", Description: "Galvanised, 90 degree", Price: 3.4, InStock: true},
					{SKU: "HW-BT-M8", Name: "M8 Bolt Box", Description: "Box of 100", Price: 18.75, InStock: true},
				},
			},
		},
	}
}
