package render

import "docgen/internal/model"

// EmployeePayslip builds a payslip. When the model carries a password the
// document is encrypted with it.
func EmployeePayslip(m *model.EmployeePayslip, opt Options) ([]byte, error) {
	s := newSheet("Payslip "+m.PayslipNumber, m.PayDate, false, opt)
	if m.Password != "" {
		s.protect(m.Password, opt.OwnerPassword)
	}
	s.heading("PAYSLIP", m.PayslipNumber)

	var holder []string
	if e := m.Employee; e != nil {
		holder = nonEmpty(e.FullName, "Employee ID: "+e.EmployeeID, e.Position, e.Department)
		if e.BankAccount != "" {
			holder = append(holder, "Bank Account: "+e.BankAccount)
		}
	}
	s.parties("Employer", companyLines(m.Company), "Employee", holder)

	period := ""
	if !m.PayPeriodStart.IsZero() || !m.PayPeriodEnd.IsZero() {
		period = formatDate(m.PayPeriodStart) + " - " + formatDate(m.PayPeriodEnd)
	}
	s.keyValues([][2]string{
		{"Pay Period", period},
		{"Pay Date", formatDate(m.PayDate)},
		{"Currency", m.Currency},
	})

	s.section("Earnings")
	s.table(amountColumns(), componentRows(m.Earnings))
	s.totals([][2]string{{"Gross Pay", formatMoney(m.Currency, m.GrossPay())}})

	if len(m.Deductions) > 0 {
		s.section("Deductions")
		s.table(amountColumns(), componentRows(m.Deductions))
		s.totals([][2]string{{"Total Deductions", formatMoney(m.Currency, m.TotalDeductions())}})
	}

	s.rule()
	s.totals([][2]string{{"Net Pay", formatMoney(m.Currency, m.NetPay())}})
	return s.bytes()
}

// EmployeeReport builds a department staff listing.
func EmployeeReport(m *model.EmployeeReport, opt Options) ([]byte, error) {
	s := newSheet(m.ReportTitle, m.ReportDate, false, opt)
	s.heading(m.ReportTitle, m.Department)
	s.keyValues([][2]string{
		{"Report Date", formatDate(m.ReportDate)},
		{"Prepared By", m.PreparedBy},
	})

	rows := make([][]string, 0, len(m.Employees))
	var payroll float64
	for _, e := range m.Employees {
		payroll += e.Salary
		rows = append(rows, []string{
			e.EmployeeID,
			e.FullName,
			e.Position,
			formatDate(e.HireDate),
			formatAmount(e.Salary),
			e.Status,
		})
	}
	s.table([]column{
		{header: "ID", width: 0.12},
		{header: "Name", width: 0.24},
		{header: "Position", width: 0.22},
		{header: "Hire Date", width: 0.14},
		{header: "Salary", width: 0.16, align: "R"},
		{header: "Status", width: 0.12, align: "C"},
	}, rows)
	s.totals([][2]string{
		{"Employees", formatQuantity(float64(len(m.Employees)))},
		{"Total Salary", formatAmount(payroll)},
	})
	return s.bytes()
}

func amountColumns() []column {
	return []column{
		{header: "Description", width: 0.75},
		{header: "Amount", width: 0.25, align: "R"},
	}
}

func componentRows(items []model.PayComponent) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{it.Description, formatAmount(it.Amount)})
	}
	return rows
}
