package rollover

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookroll-dev/bookroll/internal/guid"
	"github.com/bookroll-dev/bookroll/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func accountWith(typ model.AccountType, c *model.Commodity) *model.Account {
	return &model.Account{GUID: guid.New(), Name: string(typ), Type: typ, Commodity: c}
}

// balances maps accounts to fixed balances for tests.
type balances map[*model.Account]decimal.Decimal

func (b balances) get(a *model.Account) decimal.Decimal {
	return b[a]
}

func TestAccumulate_CreatesBucketWithNegatedTotal(t *testing.T) {
	eur := currency("EUR")
	src := accountWith(model.AccountTypeBank, eur)
	dest := accountWith(model.AccountTypeBank, eur)
	bal := balances{src: dec("100.00")}

	var registered []*model.Transaction
	acc := NewAccumulator(nil, bal.get, func(tx *model.Transaction) { registered = append(registered, tx) }, nil)
	acc.Accumulate(src, dest)

	buckets := acc.Buckets()
	require.Len(t, buckets, 1)
	b := buckets[0]
	assert.Equal(t, WildcardBucket, b.Key.TypeBucket)
	assert.Equal(t, eur.Key(), b.Key.Commodity)
	assert.True(t, b.Total.Equal(dec("-100.00")))

	require.Len(t, b.Tx.Splits, 1)
	assert.Same(t, dest, b.Tx.Splits[0].Account)
	assert.True(t, b.Tx.Splits[0].Value.Equal(dec("100.00")))

	require.Len(t, registered, 1)
	assert.Same(t, b.Tx, registered[0])
}

func TestAccumulate_SharedBucketPerCurrency(t *testing.T) {
	eur := currency("EUR")
	srcBank := accountWith(model.AccountTypeBank, eur)
	destBank := accountWith(model.AccountTypeBank, eur)
	srcCash := accountWith(model.AccountTypeCash, eur)
	destCash := accountWith(model.AccountTypeCash, eur)
	bal := balances{srcBank: dec("100.00"), srcCash: dec("-30.00")}

	acc := NewAccumulator(nil, bal.get, nil, nil)
	acc.Accumulate(srcBank, destBank)
	acc.Accumulate(srcCash, destCash)

	buckets := acc.Buckets()
	require.Len(t, buckets, 1)
	assert.Len(t, buckets[0].Tx.Splits, 2)
	assert.True(t, buckets[0].Total.Equal(dec("-70.00")))
}

func TestAccumulate_TrackedTypeGetsOwnBucket(t *testing.T) {
	eur := currency("EUR")
	srcAsset := accountWith(model.AccountTypeAsset, eur)
	destAsset := accountWith(model.AccountTypeAsset, eur)
	srcBank := accountWith(model.AccountTypeBank, eur)
	destBank := accountWith(model.AccountTypeBank, eur)
	bal := balances{srcAsset: dec("10.00"), srcBank: dec("20.00")}

	acc := NewAccumulator([]model.AccountType{model.AccountTypeAsset}, bal.get, nil, nil)
	acc.Accumulate(srcAsset, destAsset)
	acc.Accumulate(srcBank, destBank)

	buckets := acc.Buckets()
	require.Len(t, buckets, 2)
	assert.Equal(t, string(model.AccountTypeAsset), buckets[0].Key.TypeBucket)
	assert.Equal(t, WildcardBucket, buckets[1].Key.TypeBucket)
}

func TestAccumulate_SkipsIneligibleType(t *testing.T) {
	eur := currency("EUR")
	src := accountWith(model.AccountTypeIncome, eur)
	dest := accountWith(model.AccountTypeIncome, eur)
	bal := balances{src: dec("500.00")}

	acc := NewAccumulator(nil, bal.get, nil, nil)
	acc.Accumulate(src, dest)
	assert.Empty(t, acc.Buckets())
}

func TestAccumulate_SkipsZeroBalance(t *testing.T) {
	eur := currency("EUR")
	src := accountWith(model.AccountTypeBank, eur)
	dest := accountWith(model.AccountTypeBank, eur)

	acc := NewAccumulator(nil, balances{}.get, nil, nil)
	acc.Accumulate(src, dest)

	assert.Empty(t, acc.Buckets())
	assert.Nil(t, acc.FirstCurrency())
}

func TestAccumulate_WarnsOnUnknownType(t *testing.T) {
	eur := currency("EUR")
	src := accountWith(model.AccountType("moneymrkt"), eur)
	dest := accountWith(model.AccountType("moneymrkt"), eur)
	bal := balances{src: dec("5.00")}

	var warnings []Warning
	acc := NewAccumulator(nil, bal.get, nil, func(w Warning) { warnings = append(warnings, w) })
	acc.Accumulate(src, dest)

	assert.Empty(t, acc.Buckets())
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnUnknownAccountType, warnings[0].Kind)
	assert.Contains(t, warnings[0].Detail, "moneymrkt")
}

func TestFirstCurrency(t *testing.T) {
	eur := currency("EUR")
	usd := currency("USD")
	srcEUR := accountWith(model.AccountTypeBank, eur)
	destEUR := accountWith(model.AccountTypeBank, eur)
	srcUSD := accountWith(model.AccountTypeCash, usd)
	destUSD := accountWith(model.AccountTypeCash, usd)
	bal := balances{srcEUR: dec("1.00"), srcUSD: dec("2.00")}

	acc := NewAccumulator(nil, bal.get, nil, nil)
	acc.Accumulate(srcEUR, destEUR)
	acc.Accumulate(srcUSD, destUSD)

	require.NotNil(t, acc.FirstCurrency())
	assert.Equal(t, eur.Key(), *acc.FirstCurrency())
}
