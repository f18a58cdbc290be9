package model

import "github.com/shopspring/decimal"

// Address is the postal contact block shared by all business entities.
type Address struct {
	Name  string
	Addr1 string
	Addr2 string
	Addr3 string
	Addr4 string
	Phone string
	Email string
}

// Vendor is a supplier the book owner buys from.
type Vendor struct {
	GUID        string
	ID          string
	Name        string
	Active      bool
	Currency    *Commodity
	Addr        Address
	Notes       string
	TaxIncluded bool
	Terms       string
}

// Customer is a client the book owner sells to.
type Customer struct {
	GUID     string
	ID       string
	Name     string
	Active   bool
	Currency *Commodity
	Addr     Address
	Notes    string
	Discount decimal.Decimal
	Credit   decimal.Decimal
}

// Employee draws a wage from the book owner.
type Employee struct {
	GUID     string
	ID       string
	Name     string
	Active   bool
	Currency *Commodity
	Addr     Address
	Username string
	Rate     decimal.Decimal
}
