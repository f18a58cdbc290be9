// Package report renders transactions and account trees for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"github.com/bookroll-dev/bookroll/internal/model"
)

const amountWidth = 12

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	amountStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	negativeStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	pathStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"})
	imbalanceStyle = lipgloss.NewStyle().Faint(true)
)

// BucketHeader prints the heading shown before a bucket's transaction,
// e.g. "== asset / EUR ==".
func BucketHeader(w io.Writer, typeBucket, mnemonic string) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("== %s / %s ==", typeBucket, mnemonic)))
}

// Transaction prints one line per split (amount | full account path) and an
// imbalance footer.
func Transaction(w io.Writer, t *model.Transaction) {
	for _, s := range t.Splits {
		fmt.Fprintf(w, "%s  |  %s\n", amount(s.Value), pathStyle.Render(s.Account.FullName()))
	}
	fmt.Fprintln(w, strings.Repeat("-", 45))
	fmt.Fprintln(w, imbalanceStyle.Render(fmt.Sprintf("Imbalance: %s", t.Imbalance().StringFixed(2))))
}

// AccountTree prints the tree under root, indented by depth, with each
// account's balance when nonzero. balance may be nil to omit balances.
func AccountTree(w io.Writer, root *model.Account, balance func(*model.Account) decimal.Decimal) {
	var walk func(a *model.Account, depth int)
	walk = func(a *model.Account, depth int) {
		if a.Type != model.AccountTypeRoot {
			line := strings.Repeat("  ", depth-1) + a.Name
			if a.Commodity != nil {
				line += " [" + a.Commodity.Mnemonic + "]"
			}
			if balance != nil {
				if bal := balance(a); !bal.IsZero() {
					line = runewidth.FillRight(line, 40) + amount(bal)
				}
			}
			fmt.Fprintln(w, line)
		}
		for _, c := range a.Children {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
}

// amount right-aligns a fixed two-decimal rendering of d, colored by sign.
func amount(d decimal.Decimal) string {
	s := runewidth.FillLeft(d.StringFixed(2), amountWidth)
	if d.Sign() < 0 {
		return negativeStyle.Render(s)
	}
	return amountStyle.Render(s)
}
