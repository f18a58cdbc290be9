package model

// NamespaceCurrency is the namespace shared by all ISO currencies.
const NamespaceCurrency = "CURRENCY"

// Commodity is a currency or security traded in a book.
type Commodity struct {
	GUID      string
	Namespace string
	Mnemonic  string
	FullName  string
	// Fraction is the smallest representable unit, e.g. 100 for cents.
	Fraction int64
}

// Key returns the (namespace, mnemonic) identity of the commodity.
func (c *Commodity) Key() CommodityKey {
	return CommodityKey{Namespace: c.Namespace, Mnemonic: c.Mnemonic}
}

// SameAs reports whether two commodities share the same (namespace, mnemonic)
// identity, regardless of which book they belong to.
func (c *Commodity) SameAs(other *Commodity) bool {
	return c != nil && other != nil && c.Key() == other.Key()
}

// CommodityKey identifies a commodity within a book.
type CommodityKey struct {
	Namespace string
	Mnemonic  string
}

// CommodityTable holds the commodities of one book, unique per key.
type CommodityTable struct {
	byKey map[CommodityKey]*Commodity
	order []*Commodity
}

// NewCommodityTable returns an empty table.
func NewCommodityTable() *CommodityTable {
	return &CommodityTable{byKey: make(map[CommodityKey]*Commodity)}
}

// Lookup returns the commodity for the given namespace and mnemonic, or nil.
func (t *CommodityTable) Lookup(namespace, mnemonic string) *Commodity {
	return t.byKey[CommodityKey{Namespace: namespace, Mnemonic: mnemonic}]
}

// Insert registers c in the table. Inserting a key that is already present
// is a no-op; the existing commodity wins.
func (t *CommodityTable) Insert(c *Commodity) {
	key := c.Key()
	if _, ok := t.byKey[key]; ok {
		return
	}
	t.byKey[key] = c
	t.order = append(t.order, c)
}

// All returns the commodities in insertion order.
func (t *CommodityTable) All() []*Commodity {
	return t.order
}
