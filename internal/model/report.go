package model

import "time"

// DynamicColumnReport is a table whose columns are chosen by the caller.
// Budget analysis and project timeline documents use the same shape.
type DynamicColumnReport struct {
	ReportTitle   string     `json:"reportTitle"`
	Subtitle      string     `json:"subtitle,omitempty"`
	ReportDate    time.Time  `json:"reportDate"`
	ColumnHeaders []string   `json:"columnHeaders"`
	DataRows      [][]string `json:"dataRows"`
	SummaryRow    []string   `json:"summaryRow,omitempty"`
	FooterNote    string     `json:"footerNote,omitempty"`
	Landscape     bool       `json:"landscape,omitempty"`
}

// GenericReport is a keyed-row report: each row maps column names to values.
type GenericReport struct {
	ReportName    string           `json:"reportName"`
	Description   string           `json:"description,omitempty"`
	ReportDate    time.Time        `json:"reportDate"`
	Author        string           `json:"author,omitempty"`
	ColumnNames   []string         `json:"columnNames"`
	Data          []map[string]any `json:"data"`
	IsRightToLeft bool             `json:"isRightToLeft,omitempty"`
}

// ProductCatalog groups products into categories.
type ProductCatalog struct {
	CatalogTitle  string            `json:"catalogTitle"`
	CompanyName   string            `json:"companyName"`
	EffectiveDate time.Time         `json:"effectiveDate"`
	Currency      string            `json:"currency"`
	Categories    []ProductCategory `json:"categories"`
}

// ProductCategory is a named group of products.
type ProductCategory struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Products    []Product `json:"products"`
}

// Product is one catalog entry.
type Product struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	InStock     bool    `json:"inStock"`
}
