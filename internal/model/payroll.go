package model

import "time"

// EmployeePayslip is a single pay period statement for one employee.
type EmployeePayslip struct {
	PayslipNumber  string         `json:"payslipNumber"`
	PayPeriodStart time.Time      `json:"payPeriodStart"`
	PayPeriodEnd   time.Time      `json:"payPeriodEnd"`
	PayDate        time.Time      `json:"payDate"`
	Currency       string         `json:"currency"`
	Company        *Company       `json:"company"`
	Employee       *PayslipHolder `json:"employee"`
	Earnings       []PayComponent `json:"earnings"`
	Deductions     []PayComponent `json:"deductions"`

	// Password, when set, encrypts the generated PDF with it as the user password.
	Password string `json:"password,omitempty"`
}

// PayslipHolder is the employee a payslip is issued to.
type PayslipHolder struct {
	EmployeeID  string `json:"employeeId"`
	FullName    string `json:"fullName"`
	Department  string `json:"department,omitempty"`
	Position    string `json:"position,omitempty"`
	BankAccount string `json:"bankAccount,omitempty"`
}

// PayComponent is an earning or a deduction line.
type PayComponent struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// GrossPay sums the earnings.
func (p *EmployeePayslip) GrossPay() float64 { return sumComponents(p.Earnings) }

// TotalDeductions sums the deductions.
func (p *EmployeePayslip) TotalDeductions() float64 { return sumComponents(p.Deductions) }

// NetPay is gross pay minus deductions.
func (p *EmployeePayslip) NetPay() float64 { return p.GrossPay() - p.TotalDeductions() }

func sumComponents(items []PayComponent) float64 {
	var total float64
	for _, it := range items {
		total += it.Amount
	}
	return total
}

// EmployeeReport lists the employees of a department.
type EmployeeReport struct {
	ReportTitle string           `json:"reportTitle"`
	Department  string           `json:"department"`
	ReportDate  time.Time        `json:"reportDate"`
	PreparedBy  string           `json:"preparedBy,omitempty"`
	Employees   []EmployeeRecord `json:"employees"`
}

// EmployeeRecord is one row of an employee report.
type EmployeeRecord struct {
	EmployeeID string    `json:"employeeId"`
	FullName   string    `json:"fullName"`
	Position   string    `json:"position"`
	HireDate   time.Time `json:"hireDate"`
	Salary     float64   `json:"salary"`
	Status     string    `json:"status"`
}
