package rollover

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookroll-dev/bookroll/internal/model"
)

func openBucket(t *testing.T, eur *model.Commodity, amounts ...string) *Bucket {
	t.Helper()
	bal := balances{}
	var sources []*model.Account
	for _, amount := range amounts {
		src := accountWith(model.AccountTypeBank, eur)
		bal[src] = dec(amount)
		sources = append(sources, src)
	}
	acc := NewAccumulator(nil, bal.get, nil, nil)
	for _, src := range sources {
		acc.Accumulate(src, accountWith(model.AccountTypeBank, eur))
	}
	buckets := acc.Buckets()
	require.Len(t, buckets, 1)
	return buckets[0]
}

func TestFinalize_AddsBalancingSplit(t *testing.T) {
	eur := currency("EUR")
	bucket := openBucket(t, eur, "100.00", "25.50")
	opening := accountWith(model.AccountTypeEquity, eur)
	date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, Finalize(bucket, opening, eur, date, "Opening Balance"))

	tx := bucket.Tx
	assert.True(t, tx.Committed())
	assert.Equal(t, date, tx.PostDate)
	assert.Same(t, eur, tx.Currency)
	assert.Equal(t, "Opening Balance", tx.Description)

	// Balance conservation: contributions plus the balancing split sum to zero.
	assert.True(t, tx.Imbalance().IsZero())
	require.Len(t, tx.Splits, 3)
	last := tx.Splits[len(tx.Splits)-1]
	assert.Same(t, opening, last.Account)
	assert.True(t, last.Value.Equal(dec("-125.50")))
}

func TestFinalize_ZeroTotalSkipsOpeningAccount(t *testing.T) {
	eur := currency("EUR")
	bucket := openBucket(t, eur, "75.00", "-75.00")
	opening := accountWith(model.AccountTypeEquity, eur)

	require.NoError(t, Finalize(bucket, opening, eur, time.Now(), "Opening Balance"))

	// Contributions cancel out, so no split touches the opening account.
	require.Len(t, bucket.Tx.Splits, 2)
	for _, s := range bucket.Tx.Splits {
		assert.NotSame(t, opening, s.Account)
	}
	assert.True(t, bucket.Tx.Committed())
}

func TestFinalize_Twice(t *testing.T) {
	eur := currency("EUR")
	bucket := openBucket(t, eur, "10.00")
	opening := accountWith(model.AccountTypeEquity, eur)

	require.NoError(t, Finalize(bucket, opening, eur, time.Now(), "Opening Balance"))
	err := Finalize(bucket, opening, eur, time.Now(), "Opening Balance")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already finalized")
}
