package rollover

import (
	"github.com/bookroll-dev/bookroll/internal/guid"
	"github.com/bookroll-dev/bookroll/internal/model"
)

// Bridge maps source-book commodities onto the destination book's commodity
// table, cloning definitions the destination has not seen yet. Each
// (namespace, mnemonic) pair is created at most once.
type Bridge struct {
	table *model.CommodityTable
}

// NewBridge returns a Bridge backed by the destination commodity table.
func NewBridge(table *model.CommodityTable) *Bridge {
	return &Bridge{table: table}
}

// Ensure returns the destination commodity matching src, cloning and
// registering it first if necessary. Repeated calls with the same identity
// return the same instance.
func (b *Bridge) Ensure(src *model.Commodity) *model.Commodity {
	if existing := b.table.Lookup(src.Namespace, src.Mnemonic); existing != nil {
		return existing
	}
	clone := &model.Commodity{
		GUID:      guid.New(),
		Namespace: src.Namespace,
		Mnemonic:  src.Mnemonic,
		FullName:  src.FullName,
		Fraction:  src.Fraction,
	}
	b.table.Insert(clone)
	return clone
}
