package model

// Address is a postal address printed in document headers.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Company identifies a seller, buyer, supplier or employer.
type Company struct {
	CompanyName string   `json:"companyName"`
	TaxNumber   string   `json:"taxNumber,omitempty"`
	Address     *Address `json:"address,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Email       string   `json:"email,omitempty"`
}
