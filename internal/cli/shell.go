package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/donations/internal/wire"
)

// RunShell starts the interactive menu, trying the configured data file first.
func RunShell(cmd *cobra.Command, args []string) error {
	return wire.Shell().Run(NewContext(), dataFile)
}

// ShellCmd returns the shell command
func ShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Long: `Start the interactive menu: choose a data file, then list, insert
and delete donations until you exit.`,
		Args: cobra.NoArgs,
		RunE: RunShell,
	}
}
