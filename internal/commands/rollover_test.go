package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookroll-dev/bookroll/internal/book"
	"github.com/bookroll-dev/bookroll/internal/guid"
	"github.com/bookroll-dev/bookroll/internal/model"
	"github.com/bookroll-dev/bookroll/internal/runlog"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func writeSourceBook(t *testing.T, path string) {
	t.Helper()

	s, err := book.Open(path, book.CreateNew)
	require.NoError(t, err)
	b := s.Book()

	eur := &model.Commodity{GUID: guid.New(), Namespace: model.NamespaceCurrency, Mnemonic: "EUR", Fraction: 100}
	b.Commodities().Insert(eur)

	bank := &model.Account{GUID: guid.New(), Name: "Bank", Type: model.AccountTypeBank, Commodity: eur}
	income := &model.Account{GUID: guid.New(), Name: "Income", Type: model.AccountTypeIncome, Commodity: eur}
	b.RootAccount().AppendChild(bank)
	b.RootAccount().AppendChild(income)

	tx := &model.Transaction{GUID: guid.New(), Currency: eur, PostDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Description: "seed"}
	tx.AppendSplit(&model.Split{GUID: guid.New(), Account: bank, Value: dec("100.00"), Quantity: dec("100.00")})
	tx.AppendSplit(&model.Split{GUID: guid.New(), Account: income, Value: dec("-100.00"), Quantity: dec("-100.00")})
	require.NoError(t, tx.Commit())
	b.AppendTransaction(tx)

	require.NoError(t, s.Save())
	require.NoError(t, s.Close())
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRollover_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "old.book")
	dst := filepath.Join(dir, "new.book")
	writeSourceBook(t, src)

	out, _, err := execute(t, "rollover", "-i", src, "-o", dst, "--currency", "EUR", "--date", "2026-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Rolled 2 accounts")
	assert.Contains(t, out, "== * / EUR ==")
	assert.Contains(t, out, "Bank")

	_, statErr := os.Stat(dst)
	require.NoError(t, statErr)

	entries, err := runlog.Read(runlog.PathFor(dst))
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "bucket-finalized", entries[0].Event)
	assert.Equal(t, "run-completed", entries[len(entries)-1].Event)
}

func TestRollover_MissingInfile(t *testing.T) {
	_, _, err := execute(t, "rollover", "-o", filepath.Join(t.TempDir(), "new.book"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source file")
}

func TestRollover_ConfigSuppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "old.book")
	dst := filepath.Join(dir, "new.book")
	writeSourceBook(t, src)

	conf := filepath.Join(dir, "bookroll.yaml")
	require.NoError(t, os.WriteFile(conf, []byte(
		"infile: "+src+"\noutfile: "+dst+"\npreferred_currency: EUR\nopening_date: 2026-01-01\n"), 0o644))

	out, _, err := execute(t, "rollover", "--conf", conf)
	require.NoError(t, err)
	assert.Contains(t, out, "Rolled 2 accounts")
}

func TestRollover_FlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "old.book")
	dstFlag := filepath.Join(dir, "flag.book")
	writeSourceBook(t, src)

	conf := filepath.Join(dir, "bookroll.yaml")
	require.NoError(t, os.WriteFile(conf, []byte(
		"infile: "+src+"\noutfile: "+filepath.Join(dir, "conf.book")+"\n"), 0o644))

	_, _, err := execute(t, "rollover", "--conf", conf, "-o", dstFlag)
	require.NoError(t, err)

	_, statErr := os.Stat(dstFlag)
	require.NoError(t, statErr)
}

func TestRollover_BadDate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "old.book")
	writeSourceBook(t, src)

	_, _, err := execute(t, "rollover", "-i", src, "-o", filepath.Join(dir, "new.book"), "--date", "January 1st")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing --date")
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "old.book")
	writeSourceBook(t, src)

	out, _, err := execute(t, "inspect", "-i", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Bank [EUR]")
	assert.Contains(t, out, "100.00")
}

func TestInspect_Transactions(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "old.book")
	writeSourceBook(t, src)

	out, _, err := execute(t, "inspect", "-i", src, "--transactions")
	require.NoError(t, err)
	assert.Contains(t, out, "seed")
	assert.Contains(t, out, "Imbalance: 0.00")
}
