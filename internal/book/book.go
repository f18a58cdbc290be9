// Package book reads and writes accounting-book files. A book file is a
// SQLite database holding the account tree, the commodity table, committed
// transactions, and the business entities (vendors, customers, employees).
package book

import (
	"github.com/shopspring/decimal"

	"github.com/bookroll-dev/bookroll/internal/guid"
	"github.com/bookroll-dev/bookroll/internal/model"
)

// Book is the in-memory form of one book file. It is loaded whole by a
// Session and written back whole by Save.
type Book struct {
	GUID string

	root         *model.Account
	commodities  *model.CommodityTable
	transactions []*model.Transaction

	vendors   []*model.Vendor
	customers []*model.Customer
	employees []*model.Employee
}

// NewBook returns an empty book with a fresh root account.
func NewBook() *Book {
	return &Book{
		GUID: guid.New(),
		root: &model.Account{
			GUID: guid.New(),
			Name: "Root Account",
			Type: model.AccountTypeRoot,
		},
		commodities: model.NewCommodityTable(),
	}
}

// RootAccount returns the root of the account tree.
func (b *Book) RootAccount() *model.Account {
	return b.root
}

// Commodities returns the book's commodity table.
func (b *Book) Commodities() *model.CommodityTable {
	return b.commodities
}

// Transactions returns all transactions in the book.
func (b *Book) Transactions() []*model.Transaction {
	return b.transactions
}

// AppendTransaction adds t to the book. Only committed transactions are
// persisted by Save.
func (b *Book) AppendTransaction(t *model.Transaction) {
	b.transactions = append(b.transactions, t)
}

// Balance returns the account's balance in its own commodity: the sum of
// the quantities of every split posted to it.
func (b *Book) Balance(a *model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, t := range b.transactions {
		for _, s := range t.Splits {
			if s.Account == a {
				total = total.Add(s.Quantity)
			}
		}
	}
	return total
}

// Vendors returns all vendors in the book.
func (b *Book) Vendors() []*model.Vendor { return b.vendors }

// Customers returns all customers in the book.
func (b *Book) Customers() []*model.Customer { return b.customers }

// Employees returns all employees in the book.
func (b *Book) Employees() []*model.Employee { return b.employees }

// AddVendor registers v in the book.
func (b *Book) AddVendor(v *model.Vendor) { b.vendors = append(b.vendors, v) }

// AddCustomer registers c in the book.
func (b *Book) AddCustomer(c *model.Customer) { b.customers = append(b.customers, c) }

// AddEmployee registers e in the book.
func (b *Book) AddEmployee(e *model.Employee) { b.employees = append(b.employees, e) }
