package model

import "time"

// TaxInvoice is a standard tax invoice issued by a seller to a customer.
type TaxInvoice struct {
	TaxInvoiceNumber string        `json:"taxInvoiceNumber"`
	IssueDate        time.Time     `json:"issueDate"`
	DueDate          time.Time     `json:"dueDate"`
	Currency         string        `json:"currency"`
	Seller           *Company      `json:"seller"`
	Customer         *Company      `json:"customer"`
	Items            []InvoiceItem `json:"items"`
	TaxRate          float64       `json:"taxRate"` // percent
	Notes            string        `json:"notes,omitempty"`
}

// InvoiceItem is a single billed line.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Total returns quantity times unit price.
func (i InvoiceItem) Total() float64 { return i.Quantity * i.UnitPrice }

// Receipt acknowledges a payment received from a customer.
type Receipt struct {
	ReceiptNumber string        `json:"receiptNumber"`
	Date          time.Time     `json:"date"`
	Currency      string        `json:"currency"`
	Merchant      *Company      `json:"merchant"`
	Customer      *ReceiptPayer `json:"customer"`
	Items         []ReceiptItem `json:"items"`
	PaymentMethod string        `json:"paymentMethod"`
	Notes         string        `json:"notes,omitempty"`
}

// ReceiptPayer is the paying customer.
type ReceiptPayer struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ReceiptItem is a paid line.
type ReceiptItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// PurchaseOrder is an order placed by a buyer with a supplier.
type PurchaseOrder struct {
	PONumber      string      `json:"poNumber"`
	OrderDate     time.Time   `json:"orderDate"`
	DeliveryDate  time.Time   `json:"deliveryDate"`
	Currency      string      `json:"currency"`
	Buyer         *Company    `json:"buyer"`
	Supplier      *Company    `json:"supplier"`
	Items         []OrderItem `json:"items"`
	TaxRate       float64     `json:"taxRate"` // percent
	PaymentTerms  string      `json:"paymentTerms,omitempty"`
	ShippingTerms string      `json:"shippingTerms,omitempty"`
}

// OrderItem is a single ordered line.
type OrderItem struct {
	ItemCode    string  `json:"itemCode"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Total returns quantity times unit price.
func (i OrderItem) Total() float64 { return i.Quantity * i.UnitPrice }
