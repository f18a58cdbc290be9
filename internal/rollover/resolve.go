package rollover

import (
	"errors"
	"fmt"

	"github.com/bookroll-dev/bookroll/internal/guid"
	"github.com/bookroll-dev/bookroll/internal/model"
)

// Resolver finds or creates the account that absorbs a bucket's opening
// balance, disambiguating by currency suffix when the canonical path is
// already claimed by a different currency.
type Resolver struct {
	root *model.Account
}

// NewResolver returns a Resolver rooted at the destination book's root.
func NewResolver(root *model.Account) *Resolver {
	return &Resolver{root: root}
}

// ResolveOpening returns the opening account for the given path and
// currency. If canonical is true the unsuffixed path is tried first; a
// currency mismatch there falls back to the suffixed path. Non-canonical
// currencies go straight to the suffixed path. A mismatch on the suffixed
// path is fatal.
func (r *Resolver) ResolveOpening(path []string, currency *model.Commodity, canonical bool) (*model.Account, error) {
	if canonical {
		account, err := r.findOrMake(path, currency)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, ErrAccountNotFound) {
			return nil, err
		}
	}

	suffixed := suffixPath(path, currency.Mnemonic)
	account, err := r.findOrMake(suffixed, currency)
	if errors.Is(err, ErrAccountNotFound) {
		return nil, &AccountConflictError{Path: suffixed, Currency: currency.Key()}
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

// findOrMake walks path from the root, creating missing intermediate
// accounts with the given currency. At the leaf the commodity must match
// exactly; otherwise ErrAccountNotFound is returned.
func (r *Resolver) findOrMake(path []string, currency *model.Commodity) (*model.Account, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("empty opening account path")
	}

	current := r.root
	for _, name := range path {
		next := current.ChildByName(name)
		if next == nil {
			next = &model.Account{
				GUID:      guid.New(),
				Name:      name,
				Type:      model.AccountTypeEquity,
				Commodity: currency,
			}
			current.AppendChild(next)
		}
		current = next
	}

	if !current.Commodity.SameAs(currency) {
		return nil, fmt.Errorf("%w at %s", ErrAccountNotFound, current.FullName())
	}
	return current, nil
}

// suffixPath returns path with " - <mnemonic>" appended to its final
// component, e.g. Equity:Opening Balances -> Equity:Opening Balances - USD.
func suffixPath(path []string, mnemonic string) []string {
	out := make([]string, len(path))
	copy(out, path)
	out[len(out)-1] += " - " + mnemonic
	return out
}
