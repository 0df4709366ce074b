package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/donations/internal/ports/primary"
	"github.com/example/donations/internal/wire"
)

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "View the audit trail",
		Long:  "View inserts and deletes recorded in the audit database (newest first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			limit, _ := cmd.Flags().GetInt("limit")
			action, _ := cmd.Flags().GetString("action")

			if action != "" && action != "create" && action != "delete" {
				return fmt.Errorf("invalid action: %s\nValid actions: create, delete", action)
			}
			if limit <= 0 {
				limit = 50
			}

			adapter, err := wire.AuditAdapter()
			if err != nil {
				return err
			}
			return adapter.List(ctx, primary.AuditLogFilters{
				Action: action,
				Limit:  limit,
			})
		},
	}

	cmd.Flags().IntP("limit", "n", 50, "Maximum number of entries")
	cmd.Flags().String("action", "", "Only show create or delete entries")
	return cmd
}
