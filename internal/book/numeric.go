package book

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amounts are persisted as exact num/denom pairs so that no precision is
// lost on disk, matching the storage convention of the host application.

// ratFromDecimal converts d to a num/denom pair. The commodity fraction is
// tried first; if d needs more precision than the fraction allows, a
// power-of-ten denominator derived from d's own scale is used instead.
func ratFromDecimal(d decimal.Decimal, fraction int64) (num, denom int64, err error) {
	if fraction > 0 {
		scaled := d.Mul(decimal.NewFromInt(fraction))
		if scaled.IsInteger() {
			return scaled.IntPart(), fraction, nil
		}
	}

	exp := d.Exponent()
	if exp >= 0 {
		return d.IntPart(), 1, nil
	}
	denom = int64(1)
	for i := int32(0); i < -exp; i++ {
		denom *= 10
	}
	scaled := d.Mul(decimal.NewFromInt(denom))
	if !scaled.IsInteger() {
		return 0, 0, fmt.Errorf("amount %s is not representable as an exact fraction", d)
	}
	return scaled.IntPart(), denom, nil
}

// decimalFromRat converts a stored num/denom pair back to a decimal.
func decimalFromRat(num, denom int64) (decimal.Decimal, error) {
	if denom == 0 {
		return decimal.Zero, fmt.Errorf("zero denominator for numerator %d", num)
	}
	return decimal.NewFromInt(num).Div(decimal.NewFromInt(denom)), nil
}
