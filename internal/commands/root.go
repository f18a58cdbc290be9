package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookroll-dev/bookroll/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bookroll",
		Short:   "Roll an accounting book over into a new period",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRolloverCommand())
	rootCmd.AddCommand(newInspectCommand())

	return rootCmd
}
