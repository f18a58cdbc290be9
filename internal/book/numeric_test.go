package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatFromDecimal_CommodityFraction(t *testing.T) {
	num, denom, err := ratFromDecimal(dec("123.45"), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), num)
	assert.Equal(t, int64(100), denom)
}

func TestRatFromDecimal_FinerThanFraction(t *testing.T) {
	// 0.125 does not fit a cent denominator; fall back to powers of ten.
	num, denom, err := ratFromDecimal(dec("0.125"), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(125), num)
	assert.Equal(t, int64(1000), denom)
}

func TestRatFromDecimal_Integer(t *testing.T) {
	num, denom, err := ratFromDecimal(dec("42"), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(42), num)
	assert.Equal(t, int64(1), denom)
}

func TestRatFromDecimal_Negative(t *testing.T) {
	num, denom, err := ratFromDecimal(dec("-0.01"), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), num)
	assert.Equal(t, int64(100), denom)
}

func TestDecimalFromRat(t *testing.T) {
	d, err := decimalFromRat(12345, 100)
	require.NoError(t, err)
	assert.True(t, d.Equal(dec("123.45")))

	_, err = decimalFromRat(1, 0)
	require.Error(t, err)
}

func TestRat_RoundTrip(t *testing.T) {
	for _, s := range []string{"0.01", "-999999.99", "100", "0.125"} {
		num, denom, err := ratFromDecimal(dec(s), 100)
		require.NoError(t, err)
		back, err := decimalFromRat(num, denom)
		require.NoError(t, err)
		assert.True(t, back.Equal(dec(s)), "value %s", s)
	}
}
