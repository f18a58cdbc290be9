package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Split is one leg of a double-entry transaction. Value is denominated in
// the transaction currency, Quantity in the account's own commodity. For
// same-currency transactions the two are equal.
type Split struct {
	GUID     string
	Account  *Account
	Memo     string
	Value    decimal.Decimal
	Quantity decimal.Decimal
}

// Transaction is a balanced set of splits posted on a single date.
// A transaction is built open and sealed by Commit; committed transactions
// must not be modified further.
type Transaction struct {
	GUID        string
	Currency    *Commodity
	PostDate    time.Time
	Description string
	Splits      []*Split

	committed bool
}

// AppendSplit adds s to the transaction.
func (t *Transaction) AppendSplit(s *Split) {
	t.Splits = append(t.Splits, s)
}

// Imbalance returns the sum of all split values. A transaction ready for
// commit has an imbalance of exactly zero.
func (t *Transaction) Imbalance() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range t.Splits {
		sum = sum.Add(s.Value)
	}
	return sum
}

// Committed reports whether the transaction has been sealed.
func (t *Transaction) Committed() bool {
	return t.committed
}

// Commit seals the transaction after verifying that its splits sum to zero.
// Committing twice is a logic fault.
func (t *Transaction) Commit() error {
	if t.committed {
		return fmt.Errorf("transaction %s already committed", t.GUID)
	}
	if imbalance := t.Imbalance(); !imbalance.IsZero() {
		return fmt.Errorf("transaction %s does not balance: imbalance %s", t.GUID, imbalance)
	}
	t.committed = true
	return nil
}
