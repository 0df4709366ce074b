package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/donations/internal/core/donation"
	"github.com/example/donations/internal/ports/primary"
)

// DonationAdapter is a thin adapter that translates CLI operations to DonationService calls.
// It depends only on the DonationService interface, enabling easy testing with mocks.
type DonationAdapter struct {
	service primary.DonationService
	out     io.Writer
}

// NewDonationAdapter creates a new DonationAdapter with the given service.
func NewDonationAdapter(service primary.DonationService, out io.Writer) *DonationAdapter {
	return &DonationAdapter{
		service: service,
		out:     out,
	}
}

// List prints every line of the data file unmodified.
func (a *DonationAdapter) List(ctx context.Context) error {
	lines, err := a.service.ListDonations(ctx)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if len(lines) == 0 {
		fmt.Fprintln(a.out, dimStyle.Sprint("(no donations)"))
		return nil
	}

	for _, line := range lines {
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// PreviewID prints and returns the id the next insert will receive.
func (a *DonationAdapter) PreviewID(ctx context.Context) (int, error) {
	lastID, err := a.service.LastID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to insert donation: %w", err)
	}

	next := donation.NextID(lastID)
	fmt.Fprintf(a.out, "Auto-generated id: %d\n", next)
	return next, nil
}

// Insert appends a donation and prints its assigned id.
func (a *DonationAdapter) Insert(ctx context.Context, req primary.InsertDonationRequest) error {
	resp, err := a.service.InsertDonation(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to insert donation: %w", err)
	}

	fmt.Fprintf(a.out, "%s Donation %d added: %s\n", checkMark(), resp.DonationID, resp.Line)
	return nil
}

// Delete removes the first donation with the given id.
// A missing id is reported on output and is not an error.
func (a *DonationAdapter) Delete(ctx context.Context, donationID int) error {
	resp, err := a.service.DeleteDonation(ctx, donationID)
	if err != nil {
		return fmt.Errorf("failed to delete donation: %w", err)
	}

	if !resp.Found {
		fmt.Fprintf(a.out, "%s\n", warnStyle.Sprintf("Donation with id %d not found.", donationID))
		return nil
	}

	fmt.Fprintf(a.out, "%s Donation %d removed\n", checkMark(), resp.DonationID)
	return nil
}
