package rollover

import (
	"github.com/bookroll-dev/bookroll/internal/guid"
	"github.com/bookroll-dev/bookroll/internal/model"
)

// Replicator mirrors a source account tree into a destination book,
// bridging commodities and feeding each replicated account through the
// balance accumulator.
type Replicator struct {
	bridge *Bridge
	acc    *Accumulator
}

// NewReplicator returns a Replicator using the given bridge and accumulator.
func NewReplicator(bridge *Bridge, acc *Accumulator) *Replicator {
	return &Replicator{bridge: bridge, acc: acc}
}

// Replicate copies every descendant of srcParent under destParent,
// depth-first, parents before children. The roots themselves are not
// duplicated. Destination accounts only ever grow; nothing is removed or
// reparented.
func (r *Replicator) Replicate(srcParent, destParent *model.Account) {
	for _, src := range srcParent.Children {
		dest := copyAccount(src)
		if src.Commodity != nil {
			dest.Commodity = r.bridge.Ensure(src.Commodity)
		}
		destParent.AppendChild(dest)

		r.acc.Accumulate(src, dest)
		r.Replicate(src, dest)
	}
}

// copyAccount clones the structural attributes of src into a fresh account.
// The commodity is bridged separately and the tree links are set by the
// caller.
func copyAccount(src *model.Account) *model.Account {
	return &model.Account{
		GUID:        guid.New(),
		Name:        src.Name,
		Type:        src.Type,
		Description: src.Description,
		Notes:       src.Notes,
		Code:        src.Code,
		Color:       src.Color,
		TaxRelated:  src.TaxRelated,
		Placeholder: src.Placeholder,
		Hidden:      src.Hidden,
	}
}
