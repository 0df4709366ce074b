package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/donations/internal/ports/primary"
	"github.com/example/donations/internal/wire"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every donation line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			path, err := requireDataFile()
			if err != nil {
				return err
			}

			adapter, err := wire.DonationAdapter(ctx, path)
			if err != nil {
				return err
			}
			return adapter.List(ctx)
		},
	}
}

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a donation with the next id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			name, _ := cmd.Flags().GetString("name")
			nationalID, _ := cmd.Flags().GetString("national-id")
			birthDate, _ := cmd.Flags().GetString("birth-date")
			bloodType, _ := cmd.Flags().GetString("blood-type")
			volume, _ := cmd.Flags().GetInt("volume")

			path, err := requireDataFile()
			if err != nil {
				return err
			}

			adapter, err := wire.DonationAdapter(ctx, path)
			if err != nil {
				return err
			}
			return adapter.Insert(ctx, primary.InsertDonationRequest{
				Name:       name,
				NationalID: nationalID,
				BirthDate:  birthDate,
				BloodType:  bloodType,
				VolumeML:   volume,
			})
		},
	}

	cmd.Flags().String("name", "", "Donor name")
	cmd.Flags().String("national-id", "", "Donor national id")
	cmd.Flags().String("birth-date", "", "Donor birth date (YYYY-MM-DD)")
	cmd.Flags().String("blood-type", "", "Blood type (e.g. O+)")
	cmd.Flags().Int("volume", 0, "Volume donated in ml")
	for _, name := range []string{"name", "national-id", "birth-date", "blood-type", "volume"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

// DeleteCmd returns the delete command
func DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete the first donation with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid donation id %q: must be a number", args[0])
			}

			path, err := requireDataFile()
			if err != nil {
				return err
			}

			adapter, err := wire.DonationAdapter(ctx, path)
			if err != nil {
				return err
			}
			return adapter.Delete(ctx, id)
		},
	}
}
