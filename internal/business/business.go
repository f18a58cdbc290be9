// Package business duplicates the business entities of a book: vendors,
// customers, and employees. The set of kinds is closed.
package business

import (
	"github.com/bookroll-dev/bookroll/internal/book"
	"github.com/bookroll-dev/bookroll/internal/guid"
	"github.com/bookroll-dev/bookroll/internal/model"
)

// EnsureCurrency maps a source commodity to its destination-book
// counterpart, creating it if needed.
type EnsureCurrency func(*model.Commodity) *model.Commodity

// DuplicateAll clones every vendor, customer, and employee from src into
// dest. Entity currencies are re-resolved against the destination book via
// ensure.
func DuplicateAll(src, dest *book.Book, ensure EnsureCurrency) {
	for _, v := range src.Vendors() {
		dest.AddVendor(cloneVendor(v, ensure))
	}
	for _, c := range src.Customers() {
		dest.AddCustomer(cloneCustomer(c, ensure))
	}
	for _, e := range src.Employees() {
		dest.AddEmployee(cloneEmployee(e, ensure))
	}
}

func cloneCurrency(c *model.Commodity, ensure EnsureCurrency) *model.Commodity {
	if c == nil {
		return nil
	}
	return ensure(c)
}

func cloneVendor(v *model.Vendor, ensure EnsureCurrency) *model.Vendor {
	return &model.Vendor{
		GUID:        guid.New(),
		ID:          v.ID,
		Name:        v.Name,
		Active:      v.Active,
		Currency:    cloneCurrency(v.Currency, ensure),
		Addr:        v.Addr,
		Notes:       v.Notes,
		TaxIncluded: v.TaxIncluded,
		Terms:       v.Terms,
	}
}

func cloneCustomer(c *model.Customer, ensure EnsureCurrency) *model.Customer {
	return &model.Customer{
		GUID:     guid.New(),
		ID:       c.ID,
		Name:     c.Name,
		Active:   c.Active,
		Currency: cloneCurrency(c.Currency, ensure),
		Addr:     c.Addr,
		Notes:    c.Notes,
		Discount: c.Discount,
		Credit:   c.Credit,
	}
}

func cloneEmployee(e *model.Employee, ensure EnsureCurrency) *model.Employee {
	return &model.Employee{
		GUID:     guid.New(),
		ID:       e.ID,
		Name:     e.Name,
		Active:   e.Active,
		Currency: cloneCurrency(e.Currency, ensure),
		Addr:     e.Addr,
		Username: e.Username,
		Rate:     e.Rate,
	}
}
