package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/donations/internal/adapters/filesystem"
	"github.com/example/donations/internal/app"
	"github.com/example/donations/internal/config"
	"github.com/example/donations/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [csv-path]",
		Short: "Remember a data file for this directory",
		Long: `Write .donations/config.yaml in the current directory so that other
commands and the shell use the given data file without asking.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			create, _ := cmd.Flags().GetBool("create")
			audit, _ := cmd.Flags().GetBool("audit")

			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve path: %w", err)
			}

			if create {
				f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
				if err != nil {
					return fmt.Errorf("failed to create data file: %w", err)
				}
				f.Close()
			}

			if _, err := app.OpenSession(ctx, filesystem.NewLineStore(nil), path); err != nil {
				return err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			cfg := &config.Config{DataFile: path}
			if audit {
				cfg.AuditDB = db.DefaultPath(cwd)
			}
			if err := config.SaveConfig(cwd, cfg); err != nil {
				return err
			}

			fmt.Printf("✓ Data file set to %s\n", path)
			if cfg.AuditDB != "" {
				fmt.Printf("✓ Audit trail at %s\n", cfg.AuditDB)
			}
			fmt.Printf("  Config: %s\n", config.Path(cwd))
			return nil
		},
	}

	cmd.Flags().Bool("create", false, "Create the data file if it does not exist")
	cmd.Flags().Bool("audit", false, "Enable the sqlite audit trail under .donations/")
	return cmd
}
