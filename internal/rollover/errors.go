package rollover

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bookroll-dev/bookroll/internal/model"
)

// ErrAccountNotFound is returned by the resolver when the account at the
// requested path exists but is denominated in a different commodity. The
// caller reacts by retrying with a currency-suffixed path.
var ErrAccountNotFound = errors.New("account currency and name mismatch")

// AccountConflictError means an opening-balance path is claimed by an
// incompatible commodity even after suffix disambiguation. It is fatal and
// aborts the whole rollover.
type AccountConflictError struct {
	Path     []string
	Currency model.CommodityKey
}

func (e *AccountConflictError) Error() string {
	return fmt.Sprintf("opening account %s conflicts with an existing account of a different commodity (wanted %s:%s)",
		strings.Join(e.Path, ":"), e.Currency.Namespace, e.Currency.Mnemonic)
}

// Warning kinds surfaced by a rollover run. Warnings do not abort the run
// but are reported to the operator.
const (
	WarnUnknownAccountType = "unknown-account-type"
	WarnDestinationExists  = "destination-exists"
)

// Warning describes a non-fatal condition encountered during a run.
type Warning struct {
	Kind   string
	Detail string
}

func (w Warning) String() string {
	return w.Kind + ": " + w.Detail
}
