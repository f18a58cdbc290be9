// Package rollover duplicates a book's account tree and business entities
// into a new book file and posts per-currency opening-balance transactions
// so the new book starts with the carried-over balances.
package rollover

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bookroll-dev/bookroll/internal/book"
	"github.com/bookroll-dev/bookroll/internal/business"
	"github.com/bookroll-dev/bookroll/internal/model"
)

// DefaultOpeningPath is where opening balances are booked unless a type
// target overrides it.
var DefaultOpeningPath = []string{"Equity", "Opening Balances"}

// DefaultDescription is the description stamped on opening transactions.
const DefaultDescription = "Opening Balance"

// Options configures one rollover run.
type Options struct {
	SourcePath string
	DestPath   string

	// OpeningPath is the default target for opening balances. Empty means
	// DefaultOpeningPath.
	OpeningPath []string
	// AssetPath and LiabilityPath, when set, give asset and liability
	// buckets their own target paths instead of the wildcard bucket.
	AssetPath     []string
	LiabilityPath []string

	// PreferredCurrency is the mnemonic granted the unsuffixed opening
	// account name. When no bucket carries it, the first currency
	// encountered during accumulation is used instead.
	PreferredCurrency string

	// Date is the posting date of the opening transactions; zero means
	// January 1 of the current year.
	Date time.Time
	// Description overrides DefaultDescription.
	Description string

	// OnBucket, if set, is called for each bucket just before it is
	// finalized.
	OnBucket func(*Bucket)
}

// Result summarizes a completed run.
type Result struct {
	Warnings           []Warning
	Buckets            []*Bucket
	AccountsReplicated int
}

// ParsePath splits a colon-separated account path like
// "Equity:Opening Balances" into its components.
func ParsePath(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ":")
}

// Run performs the whole rollover: create the destination book if needed,
// replicate the account tree while accumulating balances, post one opening
// transaction per (type bucket, currency), duplicate the business entities,
// and save. There is no partial-success mode; any error aborts the run and
// the operator restarts it, typically after deleting the partial
// destination file.
func Run(opts Options) (*Result, error) {
	openingPath := opts.OpeningPath
	if len(openingPath) == 0 {
		openingPath = DefaultOpeningPath
	}
	date := opts.Date
	if date.IsZero() {
		date = time.Date(time.Now().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	description := opts.Description
	if description == "" {
		description = DefaultDescription
	}

	res := &Result{}
	warn := func(w Warning) { res.Warnings = append(res.Warnings, w) }

	// The destination file is created before any account or transaction
	// work, so a crash mid-run leaves a recoverable partial file.
	if _, err := os.Stat(opts.DestPath); err == nil {
		warn(Warning{
			Kind:   WarnDestinationExists,
			Detail: fmt.Sprintf("destination %s already exists; proceeding against the existing file", opts.DestPath),
		})
	} else {
		created, err := book.Open(opts.DestPath, book.CreateNew)
		if err != nil {
			return nil, fmt.Errorf("creating destination book: %w", err)
		}
		if err := created.Close(); err != nil {
			return nil, fmt.Errorf("creating destination book: %w", err)
		}
	}

	srcSession, err := book.Open(opts.SourcePath, book.ReadOnly)
	if err != nil {
		return nil, fmt.Errorf("opening source book: %w", err)
	}
	defer srcSession.Close()

	destSession, err := book.Open(opts.DestPath, book.ReadWrite)
	if err != nil {
		return nil, fmt.Errorf("opening destination book: %w", err)
	}
	defer destSession.Close()

	// Without this early save, later lookups against the destination's
	// commodity table misbehave.
	if err := destSession.Save(); err != nil {
		return nil, err
	}

	srcBook := srcSession.Book()
	destBook := destSession.Book()

	targets := map[string][]string{WildcardBucket: openingPath}
	var tracked []model.AccountType
	if len(opts.AssetPath) > 0 {
		tracked = append(tracked, model.AccountTypeAsset)
		targets[string(model.AccountTypeAsset)] = opts.AssetPath
	}
	if len(opts.LiabilityPath) > 0 {
		tracked = append(tracked, model.AccountTypeLiability)
		targets[string(model.AccountTypeLiability)] = opts.LiabilityPath
	}

	bridge := NewBridge(destBook.Commodities())
	acc := NewAccumulator(tracked, srcBook.Balance, destBook.AppendTransaction, warn)
	NewReplicator(bridge, acc).Replicate(srcBook.RootAccount(), destBook.RootAccount())

	srcBook.RootAccount().Walk(func(*model.Account) { res.AccountsReplicated++ })
	res.AccountsReplicated-- // the root itself is not replicated

	main := mainCurrency(opts.PreferredCurrency, acc)
	resolver := NewResolver(destBook.RootAccount())

	for _, bucket := range acc.Buckets() {
		if opts.OnBucket != nil {
			opts.OnBucket(bucket)
		}

		currency := destBook.Commodities().Lookup(bucket.Key.Commodity.Namespace, bucket.Key.Commodity.Mnemonic)
		if currency == nil {
			return nil, fmt.Errorf("currency %s:%s missing from destination commodity table",
				bucket.Key.Commodity.Namespace, bucket.Key.Commodity.Mnemonic)
		}

		target, ok := targets[bucket.Key.TypeBucket]
		if !ok {
			target = openingPath
		}
		canonical := main != nil && bucket.Key.Commodity == *main

		opening, err := resolver.ResolveOpening(target, currency, canonical)
		if err != nil {
			return nil, err
		}
		if err := Finalize(bucket, opening, currency, date, description); err != nil {
			return nil, err
		}
	}
	res.Buckets = acc.Buckets()

	business.DuplicateAll(srcBook, destBook, bridge.Ensure)

	if err := destSession.Save(); err != nil {
		return nil, err
	}
	return res, nil
}

// mainCurrency picks the currency that owns the unsuffixed opening account
// names: the preferred mnemonic when some bucket carries it, otherwise the
// first currency seen during accumulation.
func mainCurrency(preferred string, acc *Accumulator) *model.CommodityKey {
	if preferred != "" {
		key := model.CommodityKey{Namespace: model.NamespaceCurrency, Mnemonic: preferred}
		for _, bucket := range acc.Buckets() {
			if bucket.Key.Commodity == key {
				return &key
			}
		}
	}
	return acc.FirstCurrency()
}
