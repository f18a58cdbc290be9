package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommodityTable_LookupInsert(t *testing.T) {
	table := NewCommodityTable()
	eur := &Commodity{GUID: "a", Namespace: NamespaceCurrency, Mnemonic: "EUR", Fraction: 100}
	table.Insert(eur)

	assert.Same(t, eur, table.Lookup(NamespaceCurrency, "EUR"))
	assert.Nil(t, table.Lookup(NamespaceCurrency, "USD"))
}

func TestCommodityTable_InsertDuplicateKeepsFirst(t *testing.T) {
	table := NewCommodityTable()
	first := &Commodity{GUID: "a", Namespace: NamespaceCurrency, Mnemonic: "EUR"}
	second := &Commodity{GUID: "b", Namespace: NamespaceCurrency, Mnemonic: "EUR"}
	table.Insert(first)
	table.Insert(second)

	assert.Same(t, first, table.Lookup(NamespaceCurrency, "EUR"))
	require.Len(t, table.All(), 1)
}

func TestCommodity_SameAs(t *testing.T) {
	eur1 := &Commodity{GUID: "a", Namespace: NamespaceCurrency, Mnemonic: "EUR"}
	eur2 := &Commodity{GUID: "b", Namespace: NamespaceCurrency, Mnemonic: "EUR"}
	usd := &Commodity{GUID: "c", Namespace: NamespaceCurrency, Mnemonic: "USD"}

	assert.True(t, eur1.SameAs(eur2))
	assert.False(t, eur1.SameAs(usd))
	assert.False(t, eur1.SameAs(nil))
}
