package report

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bookroll-dev/bookroll/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleTree() (*model.Account, *model.Account) {
	eur := &model.Commodity{Namespace: model.NamespaceCurrency, Mnemonic: "EUR"}
	root := &model.Account{Name: "Root Account", Type: model.AccountTypeRoot}
	assets := &model.Account{Name: "Assets", Type: model.AccountTypeAsset, Commodity: eur}
	bank := &model.Account{Name: "Bank", Type: model.AccountTypeBank, Commodity: eur}
	root.AppendChild(assets)
	assets.AppendChild(bank)
	return root, bank
}

func TestTransaction(t *testing.T) {
	_, bank := sampleTree()
	tx := &model.Transaction{Description: "Opening Balance"}
	tx.AppendSplit(&model.Split{Account: bank, Value: dec("100.00")})

	var buf bytes.Buffer
	Transaction(&buf, tx)
	out := buf.String()

	assert.Contains(t, out, "100.00")
	assert.Contains(t, out, "Assets:Bank")
	assert.Contains(t, out, "Imbalance: 100.00")
}

func TestTransaction_Balanced(t *testing.T) {
	_, bank := sampleTree()
	tx := &model.Transaction{}
	tx.AppendSplit(&model.Split{Account: bank, Value: dec("42.00")})
	tx.AppendSplit(&model.Split{Account: bank, Value: dec("-42.00")})

	var buf bytes.Buffer
	Transaction(&buf, tx)
	assert.Contains(t, buf.String(), "Imbalance: 0.00")
}

func TestBucketHeader(t *testing.T) {
	var buf bytes.Buffer
	BucketHeader(&buf, "asset", "EUR")
	assert.Contains(t, buf.String(), "== asset / EUR ==")
}

func TestAccountTree(t *testing.T) {
	root, bank := sampleTree()
	balance := func(a *model.Account) decimal.Decimal {
		if a == bank {
			return dec("100.00")
		}
		return decimal.Zero
	}

	var buf bytes.Buffer
	AccountTree(&buf, root, balance)
	out := buf.String()

	assert.NotContains(t, out, "Root Account")
	assert.Contains(t, out, "Assets [EUR]")
	assert.Contains(t, out, "  Bank [EUR]")
	assert.Contains(t, out, "100.00")
}

func TestAccountTree_NilBalance(t *testing.T) {
	root, _ := sampleTree()

	var buf bytes.Buffer
	AccountTree(&buf, root, nil)
	assert.Contains(t, buf.String(), "Assets [EUR]")
}
