package rollover

import (
	"fmt"
	"time"

	"github.com/bookroll-dev/bookroll/internal/guid"
	"github.com/bookroll-dev/bookroll/internal/model"
)

// Finalize seals a bucket's transaction: it posts the balancing split on
// the opening account (unless the contributions already cancel out), stamps
// date, currency and description, and commits. Each bucket is finalized
// exactly once.
func Finalize(bucket *Bucket, opening *model.Account, currency *model.Commodity, date time.Time, description string) error {
	if bucket.Tx.Committed() {
		return fmt.Errorf("bucket %s/%s already finalized",
			bucket.Key.TypeBucket, bucket.Key.Commodity.Mnemonic)
	}

	if !bucket.Total.IsZero() {
		bucket.Tx.AppendSplit(&model.Split{
			GUID:     guid.New(),
			Account:  opening,
			Value:    bucket.Total,
			Quantity: bucket.Total,
		})
	}

	bucket.Tx.PostDate = date
	bucket.Tx.Currency = currency
	bucket.Tx.Description = description
	if err := bucket.Tx.Commit(); err != nil {
		return fmt.Errorf("committing opening transaction for %s/%s: %w",
			bucket.Key.TypeBucket, bucket.Key.Commodity.Mnemonic, err)
	}
	return nil
}
