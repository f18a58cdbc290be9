package rollover

import (
	"github.com/shopspring/decimal"

	"github.com/bookroll-dev/bookroll/internal/guid"
	"github.com/bookroll-dev/bookroll/internal/model"
)

// WildcardBucket collects eligible account types that have no explicitly
// configured target path of their own.
const WildcardBucket = "*"

// BucketKey identifies one pending opening-balance transaction: a type
// bucket (a tracked account type or the wildcard) plus a currency.
type BucketKey struct {
	TypeBucket string
	Commodity  model.CommodityKey
}

// Bucket is a pending opening-balance transaction and its running total.
// The total is the negated sum of all balances folded in, i.e. the amount
// the final balancing split must carry for the transaction to sum to zero.
type Bucket struct {
	Key   BucketKey
	Tx    *model.Transaction
	Total decimal.Decimal
}

// Accumulator folds replicated account balances into per-(type, currency)
// buckets.
type Accumulator struct {
	buckets map[BucketKey]*Bucket
	order   []BucketKey
	tracked map[model.AccountType]bool

	// balance reads a source account's final balance.
	balance func(*model.Account) decimal.Decimal
	// register is told about each newly created pending transaction, so
	// the destination book owns it from the start.
	register func(*model.Transaction)
	warn     func(Warning)

	// firstCurrency is the first currency that contributed a balance,
	// the main-currency fallback when no preference matches.
	firstCurrency *model.CommodityKey
}

// NewAccumulator returns an Accumulator. tracked lists the account types
// with their own bucket; every other eligible type shares the wildcard
// bucket. Either hook may be nil.
func NewAccumulator(tracked []model.AccountType, balance func(*model.Account) decimal.Decimal,
	register func(*model.Transaction), warn func(Warning)) *Accumulator {
	trackedSet := make(map[model.AccountType]bool, len(tracked))
	for _, t := range tracked {
		trackedSet[t] = true
	}
	if register == nil {
		register = func(*model.Transaction) {}
	}
	if warn == nil {
		warn = func(Warning) {}
	}
	return &Accumulator{
		buckets:  make(map[BucketKey]*Bucket),
		tracked:  trackedSet,
		balance:  balance,
		register: register,
		warn:     warn,
	}
}

// Accumulate folds the source account's balance into the bucket keyed by
// the destination account's type and commodity. Ineligible types and exact
// zero balances contribute nothing. Must be called exactly once per
// replicated account; a second call would double-count its balance.
func (ac *Accumulator) Accumulate(src, dest *model.Account) {
	typ := dest.Type
	if !typ.Known() {
		ac.warn(Warning{
			Kind:   WarnUnknownAccountType,
			Detail: "account " + dest.FullName() + " has unrecognized type " + string(typ) + "; skipped",
		})
		return
	}
	if !typ.EligibleForOpening() {
		return
	}
	if dest.Commodity == nil {
		return
	}

	balance := ac.balance(src)
	if balance.IsZero() {
		return
	}

	key := BucketKey{TypeBucket: WildcardBucket, Commodity: dest.Commodity.Key()}
	if ac.tracked[typ] {
		key.TypeBucket = string(typ)
	}

	bucket, ok := ac.buckets[key]
	if !ok {
		tx := &model.Transaction{GUID: guid.New()}
		ac.register(tx)
		bucket = &Bucket{Key: key, Tx: tx, Total: decimal.Zero}
		ac.buckets[key] = bucket
		ac.order = append(ac.order, key)
	}
	if ac.firstCurrency == nil {
		first := key.Commodity
		ac.firstCurrency = &first
	}

	bucket.Tx.AppendSplit(&model.Split{
		GUID:     guid.New(),
		Account:  dest,
		Value:    balance,
		Quantity: balance,
	})
	bucket.Total = bucket.Total.Sub(balance)
}

// Buckets returns all open buckets in creation order.
func (ac *Accumulator) Buckets() []*Bucket {
	out := make([]*Bucket, 0, len(ac.order))
	for _, key := range ac.order {
		out = append(out, ac.buckets[key])
	}
	return out
}

// FirstCurrency returns the first currency that contributed a balance, or
// nil if nothing was accumulated.
func (ac *Accumulator) FirstCurrency() *model.CommodityKey {
	return ac.firstCurrency
}
