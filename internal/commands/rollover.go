package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bookroll-dev/bookroll/internal/config"
	"github.com/bookroll-dev/bookroll/internal/report"
	"github.com/bookroll-dev/bookroll/internal/rollover"
	"github.com/bookroll-dev/bookroll/internal/runlog"
)

func newRolloverCommand() *cobra.Command {
	var (
		infile          string
		outfile         string
		confPath        string
		targetAsset     string
		targetLiability string
		currency        string
		dateStr         string
		description     string
	)

	cmd := &cobra.Command{
		Use:   "rollover",
		Short: "Duplicate a book into a new file with opening balances",
		Long: `Duplicate the account tree and business entities of a book into a new
book file and post per-currency opening-balance transactions, so the new
book starts the period with the carried-over balances. Lot-based accounts
(stock, mutual fund, receivable, payable, trading) are copied without an
opening balance and must be reconciled by hand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := rollover.Options{}

			if confPath != "" {
				cfg, err := config.Load(confPath)
				if err != nil {
					return err
				}
				applyConfig(&opts, cfg, &infile, &outfile, cmd)
			}

			if infile == "" {
				return fmt.Errorf("must give a source file via --infile or the config file")
			}
			if outfile == "" {
				return fmt.Errorf("must give a destination file via --outfile or the config file")
			}
			opts.SourcePath = infile
			opts.DestPath = outfile

			if cmd.Flags().Changed("target-asset") {
				opts.AssetPath = rollover.ParsePath(targetAsset)
			}
			if cmd.Flags().Changed("target-liability") {
				opts.LiabilityPath = rollover.ParsePath(targetLiability)
			}
			if cmd.Flags().Changed("currency") {
				opts.PreferredCurrency = currency
			}
			if cmd.Flags().Changed("description") {
				opts.Description = description
			}
			if cmd.Flags().Changed("date") {
				d, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("parsing --date %q: %w", dateStr, err)
				}
				opts.Date = d
			}

			return runRollover(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&infile, "infile", "i", "", "source book of the closing period")
	cmd.Flags().StringVarP(&outfile, "outfile", "o", "", "book file to create for the new period")
	cmd.Flags().StringVarP(&confPath, "conf", "c", "", "config file supplying defaults")
	cmd.Flags().StringVar(&targetAsset, "target-asset", "", "account path absorbing asset opening balances, e.g. 'Opening:Assets'")
	cmd.Flags().StringVar(&targetLiability, "target-liability", "", "account path absorbing liability opening balances, e.g. 'Opening:Liabilities'")
	cmd.Flags().StringVar(&currency, "currency", "", "preferred currency mnemonic for the unsuffixed opening account")
	cmd.Flags().StringVar(&dateStr, "date", "", "posting date of the opening transactions (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "description stamped on the opening transactions")

	return cmd
}

// applyConfig fills unset options from the config file. Flags given on the
// command line keep precedence.
func applyConfig(opts *rollover.Options, cfg *config.Config, infile, outfile *string, cmd *cobra.Command) {
	if *infile == "" {
		*infile = cfg.Infile
	}
	if *outfile == "" {
		*outfile = cfg.Outfile
	}
	if cfg.OpeningAccount != "" {
		opts.OpeningPath = rollover.ParsePath(cfg.OpeningAccount)
	}
	if cfg.TargetAsset != "" && !cmd.Flags().Changed("target-asset") {
		opts.AssetPath = rollover.ParsePath(cfg.TargetAsset)
	}
	if cfg.TargetLiability != "" && !cmd.Flags().Changed("target-liability") {
		opts.LiabilityPath = rollover.ParsePath(cfg.TargetLiability)
	}
	if cfg.PreferredCurrency != "" {
		opts.PreferredCurrency = cfg.PreferredCurrency
	}
	if cfg.Description != "" {
		opts.Description = cfg.Description
	}
	if cfg.OpeningDate != "" {
		if d, err := time.Parse("2006-01-02", cfg.OpeningDate); err == nil {
			opts.Date = d
		}
	}
}

func runRollover(cmd *cobra.Command, opts rollover.Options) error {
	out := cmd.OutOrStdout()

	var logEntries []runlog.Entry
	opts.OnBucket = func(b *rollover.Bucket) {
		report.BucketHeader(out, b.Key.TypeBucket, b.Key.Commodity.Mnemonic)
		report.Transaction(out, b.Tx)
		logEntries = append(logEntries, runlog.Entry{
			Timestamp: time.Now(),
			Event:     "bucket-finalized",
			Detail:    b.Key.TypeBucket,
			Currency:  b.Key.Commodity.Mnemonic,
			Amount:    b.Total.StringFixed(2),
		})
	}

	res, err := rollover.Run(opts)
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
		logEntries = append(logEntries, runlog.Entry{
			Timestamp: time.Now(),
			Event:     "warning",
			Detail:    w.String(),
		})
	}

	logEntries = append(logEntries, runlog.Entry{
		Timestamp: time.Now(),
		Event:     "run-completed",
		Detail:    fmt.Sprintf("%s -> %s: %d accounts, %d opening transactions", opts.SourcePath, opts.DestPath, res.AccountsReplicated, len(res.Buckets)),
	})
	if err := runlog.Append(runlog.PathFor(opts.DestPath), logEntries); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: writing run log: %v\n", err)
	}

	fmt.Fprintf(out, "Rolled %d accounts into %s (%d opening transactions)\n",
		res.AccountsReplicated, opts.DestPath, len(res.Buckets))
	return nil
}
