// Package cli provides CLI commands for the donations application.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/donations/internal/config"
	"github.com/example/donations/internal/wire"
)

// globalFlags holds the persistent flags shared by every command.
var globalFlags struct {
	file    string
	auditDB string
	verbose bool
}

// dataFile is the data file path resolved from flags and config at startup.
var dataFile string

// RegisterGlobalFlags adds the persistent flags to the root command.
func RegisterGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVarP(&globalFlags.file, "file", "f", "", "Path of the donations CSV file (overrides config)")
	root.PersistentFlags().StringVar(&globalFlags.auditDB, "audit-db", "", "Path of the sqlite audit trail (overrides config)")
	root.PersistentFlags().BoolVarP(&globalFlags.verbose, "verbose", "v", false, "Write diagnostic logs to stderr")
}

// Bootstrap loads .donations/config.yaml from the working directory, applies flag
// overrides and configures the wiring. Should be called in PersistentPreRunE.
func Bootstrap(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadOrDefault(cwd)
	if err != nil {
		return err
	}

	dataFile = cfg.DataFile
	if globalFlags.file != "" {
		dataFile = globalFlags.file
	}

	auditDB := cfg.AuditDB
	if globalFlags.auditDB != "" {
		auditDB = globalFlags.auditDB
	}

	wire.Configure(wire.Options{
		Verbose: globalFlags.verbose,
		AuditDB: auditDB,
	})
	wire.Logger().Debugw("bootstrap", "command", cmd.Name(), "data_file", dataFile, "audit_db", auditDB)
	return nil
}

// Shutdown releases wired resources. Should be called in PersistentPostRun.
func Shutdown(cmd *cobra.Command, args []string) {
	wire.Close()
}

// NewContext creates the context for a CLI invocation.
func NewContext() context.Context {
	return context.Background()
}

// requireDataFile returns the resolved data file or an error naming how to set one.
func requireDataFile() (string, error) {
	if dataFile == "" {
		return "", fmt.Errorf("no data file given\nHint: pass --file or run `donations init <csv-path>`")
	}
	return dataFile, nil
}
