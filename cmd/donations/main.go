package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/donations/internal/cli"
	"github.com/example/donations/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "donations",
		Short:   "Blood donation registry backed by a CSV file",
		Version: version.String(),
		Long: `donations maintains a list of blood donation records stored one per line
in a comma-separated text file. Run without a subcommand for the interactive menu.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: cli.Bootstrap,
		PersistentPostRun: cli.Shutdown,
		RunE:              cli.RunShell,
	}
	cli.RegisterGlobalFlags(rootCmd)

	// Interactive
	rootCmd.AddCommand(cli.ShellCmd())

	// Record commands
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.DeleteCmd())

	// Setup and audit
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.LogCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
