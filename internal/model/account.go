package model

import "strings"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeBank       AccountType = "bank"
	AccountTypeCash       AccountType = "cash"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeAsset      AccountType = "asset"
	AccountTypeLiability  AccountType = "liability"
	AccountTypeStock      AccountType = "stock"
	AccountTypeMutual     AccountType = "mutual"
	AccountTypeCurrency   AccountType = "currency"
	AccountTypeIncome     AccountType = "income"
	AccountTypeExpense    AccountType = "expense"
	AccountTypeEquity     AccountType = "equity"
	AccountTypeReceivable AccountType = "receivable"
	AccountTypePayable    AccountType = "payable"
	AccountTypeRoot       AccountType = "root"
	AccountTypeTrading    AccountType = "trading"
)

var knownTypes = map[AccountType]bool{
	AccountTypeBank:       true,
	AccountTypeCash:       true,
	AccountTypeCredit:     true,
	AccountTypeAsset:      true,
	AccountTypeLiability:  true,
	AccountTypeStock:      true,
	AccountTypeMutual:     true,
	AccountTypeCurrency:   true,
	AccountTypeIncome:     true,
	AccountTypeExpense:    true,
	AccountTypeEquity:     true,
	AccountTypeReceivable: true,
	AccountTypePayable:    true,
	AccountTypeRoot:       true,
	AccountTypeTrading:    true,
}

// Known reports whether t is one of the recognized account types.
func (t AccountType) Known() bool {
	return knownTypes[t]
}

// EligibleForOpening reports whether accounts of this type receive an
// opening-balance split when a book is rolled over. Income and expense
// accounts belong in retained earnings, and the lot-based types (stock,
// mutual, receivable, payable, trading) must be opened by hand.
func (t AccountType) EligibleForOpening() bool {
	switch t {
	case AccountTypeBank, AccountTypeCash, AccountTypeCredit,
		AccountTypeAsset, AccountTypeLiability, AccountTypeEquity:
		return true
	}
	return false
}

// Account is a node in a book's account tree.
type Account struct {
	GUID        string
	Name        string
	Type        AccountType
	Description string
	Notes       string
	Code        string
	Color       string
	TaxRelated  bool
	Placeholder bool
	Hidden      bool
	Commodity   *Commodity

	Parent   *Account
	Children []*Account
}

// AppendChild attaches child to a, setting its parent pointer.
func (a *Account) AppendChild(child *Account) {
	child.Parent = a
	a.Children = append(a.Children, child)
}

// ChildByName returns the direct child with the given name, or nil.
func (a *Account) ChildByName(name string) *Account {
	for _, c := range a.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FullName returns the colon-joined path from (but excluding) the root,
// e.g. "Assets:Bank:Checking". The root account itself has an empty full name.
func (a *Account) FullName() string {
	var parts []string
	for node := a; node != nil && node.Type != AccountTypeRoot; node = node.Parent {
		parts = append(parts, node.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ":")
}

// Walk visits a and every descendant in depth-first pre-order.
func (a *Account) Walk(fn func(*Account)) {
	fn(a)
	for _, c := range a.Children {
		c.Walk(fn)
	}
}
