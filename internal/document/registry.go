package document

import (
	"fmt"
	"strings"
	"time"

	"docgen/internal/model"
	"docgen/internal/render"
	"docgen/internal/sample"
	v "docgen/internal/validation"
)

// Registry is an ordered, read-only set of descriptors keyed by slug.
type Registry struct {
	order  []Descriptor
	bySlug map[string]Descriptor
}

// NewRegistry indexes ds in the given order. Slugs must be unique.
func NewRegistry(ds ...Descriptor) (*Registry, error) {
	r := &Registry{bySlug: make(map[string]Descriptor, len(ds))}
	for _, d := range ds {
		key := strings.ToLower(d.Slug())
		if _, dup := r.bySlug[key]; dup {
			return nil, fmt.Errorf("duplicate document type %q", d.Slug())
		}
		r.bySlug[key] = d
		r.order = append(r.order, d)
	}
	return r, nil
}

// Lookup finds a descriptor by slug, ignoring case.
func (r *Registry) Lookup(slug string) (Descriptor, bool) {
	d, ok := r.bySlug[strings.ToLower(slug)]
	return d, ok
}

// All returns the descriptors in registration order.
func (r *Registry) All() []Descriptor {
	return append([]Descriptor(nil), r.order...)
}

// Default returns the registry of every built-in document type.
func Default() *Registry {
	r, err := NewRegistry(
		TaxInvoice,
		Receipt,
		PurchaseOrder,
		EmployeePayslip,
		EmployeeReport,
		DynamicColumnReport,
		GenericReport,
		ProductCatalog,
		BudgetAnalysis,
		ProjectTimeline,
	)
	if err != nil {
		panic(err)
	}
	return r
}

func companyNameMissing(c *model.Company) bool {
	return c == nil || v.Blank(c.CompanyName)
}

var TaxInvoice = &Type[model.TaxInvoice]{
	slug:           "tax-invoice",
	title:          "Tax Invoice",
	sample:         sample.TaxInvoice,
	sampleFilename: "tax-invoice-" + sample.TaxInvoice().TaxInvoiceNumber + ".pdf",
	rules: []v.Rule[*model.TaxInvoice]{
		{Message: "TaxInvoiceNumber is required", Violated: func(m *model.TaxInvoice) bool { return v.Blank(m.TaxInvoiceNumber) }},
		{Message: "Seller CompanyName is required", Violated: func(m *model.TaxInvoice) bool { return companyNameMissing(m.Seller) }},
		{Message: "Customer CompanyName is required", Violated: func(m *model.TaxInvoice) bool { return companyNameMissing(m.Customer) }},
		{Message: "At least one item is required", Violated: func(m *model.TaxInvoice) bool { return v.Empty(m.Items) }},
		{Message: "All items must have quantity greater than 0", Violated: func(m *model.TaxInvoice) bool {
			return v.Any(m.Items, func(it model.InvoiceItem) bool { return v.NotPositive(it.Quantity) })
		}},
		{Message: "All items must have non-negative unit price", Violated: func(m *model.TaxInvoice) bool {
			return v.Any(m.Items, func(it model.InvoiceItem) bool { return v.Negative(it.UnitPrice) })
		}},
	},
	build: render.TaxInvoice,
	filename: func(m *model.TaxInvoice, _ time.Time) string {
		return "tax-invoice-" + m.TaxInvoiceNumber + ".pdf"
	},
	reference: func(m *model.TaxInvoice) string { return m.TaxInvoiceNumber },
}

var Receipt = &Type[model.Receipt]{
	slug:           "receipt",
	title:          "Receipt",
	sample:         sample.Receipt,
	sampleFilename: "receipt-" + sample.Receipt().ReceiptNumber + ".pdf",
	rules: []v.Rule[*model.Receipt]{
		{Message: "ReceiptNumber is required", Violated: func(m *model.Receipt) bool { return v.Blank(m.ReceiptNumber) }},
		{Message: "Customer Name is required", Violated: func(m *model.Receipt) bool {
			return m.Customer == nil || v.Blank(m.Customer.Name)
		}},
		{Message: "At least one item is required", Violated: func(m *model.Receipt) bool { return v.Empty(m.Items) }},
		{Message: "All items must have non-negative amounts", Violated: func(m *model.Receipt) bool {
			return v.Any(m.Items, func(it model.ReceiptItem) bool { return v.Negative(it.Amount) })
		}},
	},
	build: render.Receipt,
	filename: func(m *model.Receipt, _ time.Time) string {
		return "receipt-" + m.ReceiptNumber + ".pdf"
	},
	reference: func(m *model.Receipt) string { return m.ReceiptNumber },
}

var PurchaseOrder = &Type[model.PurchaseOrder]{
	slug:           "purchase-order",
	title:          "Purchase Order",
	sample:         sample.PurchaseOrder,
	sampleFilename: "purchase-order-" + sample.PurchaseOrder().PONumber + ".pdf",
	rules: []v.Rule[*model.PurchaseOrder]{
		{Message: "PONumber is required", Violated: func(m *model.PurchaseOrder) bool { return v.Blank(m.PONumber) }},
		{Message: "Buyer CompanyName is required", Violated: func(m *model.PurchaseOrder) bool { return companyNameMissing(m.Buyer) }},
		{Message: "Supplier CompanyName is required", Violated: func(m *model.PurchaseOrder) bool { return companyNameMissing(m.Supplier) }},
		{Message: "At least one item is required", Violated: func(m *model.PurchaseOrder) bool { return v.Empty(m.Items) }},
		{Message: "All items must have quantity greater than 0", Violated: func(m *model.PurchaseOrder) bool {
			return v.Any(m.Items, func(it model.OrderItem) bool { return v.NotPositive(it.Quantity) })
		}},
	},
	build: render.PurchaseOrder,
	filename: func(m *model.PurchaseOrder, _ time.Time) string {
		return "purchase-order-" + m.PONumber + ".pdf"
	},
	reference: func(m *model.PurchaseOrder) string { return m.PONumber },
}

var EmployeePayslip = &Type[model.EmployeePayslip]{
	slug:           "employee-payslip",
	title:          "Employee Payslip",
	sample:         sample.EmployeePayslip,
	sampleFilename: "payslip-" + sample.EmployeePayslip().PayslipNumber + ".pdf",
	rules: []v.Rule[*model.EmployeePayslip]{
		{Message: "PayslipNumber is required", Violated: func(m *model.EmployeePayslip) bool { return v.Blank(m.PayslipNumber) }},
		{Message: "Employee FullName is required", Violated: func(m *model.EmployeePayslip) bool {
			return m.Employee == nil || v.Blank(m.Employee.FullName)
		}},
		{Message: "Employee EmployeeId is required", Violated: func(m *model.EmployeePayslip) bool {
			return m.Employee == nil || v.Blank(m.Employee.EmployeeID)
		}},
		{Message: "At least one earning item is required", Violated: func(m *model.EmployeePayslip) bool { return v.Empty(m.Earnings) }},
	},
	build: render.EmployeePayslip,
	filename: func(m *model.EmployeePayslip, _ time.Time) string {
		return "payslip-" + m.PayslipNumber + ".pdf"
	},
	reference: func(m *model.EmployeePayslip) string { return m.PayslipNumber },
	variants: []Variant{{
		Path:     "sample/password-protected",
		Format:   FormatPDF,
		Filename: "payslip-" + sample.EmployeePayslipWithPassword().PayslipNumber + "-protected.pdf",
		Model:    func() any { return sample.EmployeePayslipWithPassword() },
	}},
}

var EmployeeReport = &Type[model.EmployeeReport]{
	slug:           "employee-report",
	title:          "Employee Report",
	sample:         sample.EmployeeReport,
	sampleFilename: "employee-report-sample.pdf",
	rules: []v.Rule[*model.EmployeeReport]{
		{Message: "ReportTitle is required", Violated: func(m *model.EmployeeReport) bool { return v.Blank(m.ReportTitle) }},
		{Message: "Department is required", Violated: func(m *model.EmployeeReport) bool { return v.Blank(m.Department) }},
		{Message: "At least one employee is required", Violated: func(m *model.EmployeeReport) bool { return v.Empty(m.Employees) }},
	},
	build: render.EmployeeReport,
	filename: func(_ *model.EmployeeReport, now time.Time) string {
		return dated("employee-report", now)
	},
	reference: func(m *model.EmployeeReport) string { return m.ReportTitle },
}

var dynamicRules = []v.Rule[*model.DynamicColumnReport]{
	{Message: "ReportTitle is required", Violated: func(m *model.DynamicColumnReport) bool { return v.Blank(m.ReportTitle) }},
	{Message: "ColumnHeaders are required", Violated: func(m *model.DynamicColumnReport) bool { return v.Empty(m.ColumnHeaders) }},
	{Message: "At least one data row is required", Violated: func(m *model.DynamicColumnReport) bool { return v.Empty(m.DataRows) }},
}

func dynamicReference(m *model.DynamicColumnReport) string { return m.ReportTitle }

var DynamicColumnReport = &Type[model.DynamicColumnReport]{
	slug:           "dynamic-column-report",
	title:          "Dynamic Column Report",
	sample:         sample.DynamicColumnReport,
	sampleFilename: "dynamic-report-sample.pdf",
	rules:          dynamicRules,
	build:          render.DynamicColumnReport,
	filename: func(_ *model.DynamicColumnReport, now time.Time) string {
		return dated("dynamic-report", now)
	},
	reference: dynamicReference,
}

// BudgetAnalysis and ProjectTimeline are fixed layouts of the dynamic report.
var BudgetAnalysis = &Type[model.DynamicColumnReport]{
	slug:           "budget-analysis",
	title:          "Budget Analysis",
	sampleOnly:     true,
	sample:         sample.BudgetAnalysis,
	sampleFilename: "budget-analysis-sample.pdf",
	rules:          dynamicRules,
	build:          render.DynamicColumnReport,
	reference:      dynamicReference,
}

var ProjectTimeline = &Type[model.DynamicColumnReport]{
	slug:           "project-timeline",
	title:          "Project Timeline",
	sampleOnly:     true,
	sample:         sample.ProjectTimeline,
	sampleFilename: "project-timeline-sample.pdf",
	rules:          dynamicRules,
	build:          render.DynamicColumnReport,
	reference:      dynamicReference,
}

var GenericReport = &Type[model.GenericReport]{
	slug:           "generic-report",
	title:          "Generic Report",
	sample:         sample.GenericReport,
	sampleFilename: "generic-report-sample.pdf",
	rules: []v.Rule[*model.GenericReport]{
		{Message: "ReportName is required", Violated: func(m *model.GenericReport) bool { return v.Blank(m.ReportName) }},
		{Message: "ColumnNames are required", Violated: func(m *model.GenericReport) bool { return v.Empty(m.ColumnNames) }},
		{Message: "At least one data row is required", Violated: func(m *model.GenericReport) bool { return v.Empty(m.Data) }},
	},
	build: render.GenericReport,
	filename: func(_ *model.GenericReport, now time.Time) string {
		return dated("generic-report", now)
	},
	reference: func(m *model.GenericReport) string { return m.ReportName },
	variants: []Variant{{
		Path:   "sample/arabic/json",
		Format: FormatJSON,
		Model:  func() any { return sample.GenericReportArabic() },
	}},
}

var ProductCatalog = &Type[model.ProductCatalog]{
	slug:           "product-catalog",
	title:          "Product Catalog",
	sample:         sample.ProductCatalog,
	sampleFilename: "product-catalog-sample.pdf",
	rules: []v.Rule[*model.ProductCatalog]{
		{Message: "CatalogTitle is required", Violated: func(m *model.ProductCatalog) bool { return v.Blank(m.CatalogTitle) }},
		{Message: "At least one category is required", Violated: func(m *model.ProductCatalog) bool { return v.Empty(m.Categories) }},
	},
	build: render.ProductCatalog,
	filename: func(_ *model.ProductCatalog, now time.Time) string {
		return dated("product-catalog", now)
	},
	reference: func(m *model.ProductCatalog) string { return m.CatalogTitle },
}
