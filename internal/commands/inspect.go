package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookroll-dev/bookroll/internal/book"
	"github.com/bookroll-dev/bookroll/internal/report"
)

func newInspectCommand() *cobra.Command {
	var (
		infile       string
		transactions bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the account tree and balances of a book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := book.Open(infile, book.ReadOnly)
			if err != nil {
				return err
			}
			defer session.Close()

			b := session.Book()
			out := cmd.OutOrStdout()
			report.AccountTree(out, b.RootAccount(), b.Balance)

			if transactions {
				for _, t := range b.Transactions() {
					fmt.Fprintf(out, "\n%s  %s\n", t.PostDate.Format("2006-01-02"), t.Description)
					report.Transaction(out, t)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&infile, "infile", "i", "", "book file to inspect (required)")
	_ = cmd.MarkFlagRequired("infile")
	cmd.Flags().BoolVar(&transactions, "transactions", false, "also print every transaction")

	return cmd
}
