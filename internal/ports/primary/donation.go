// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the CLI drives the application.
package primary

import "context"

// DonationService defines the primary port for donation record operations.
// Every call re-reads the data file; nothing is cached between calls.
type DonationService interface {
	// ListDonations returns every line of the data file in file order, unmodified.
	ListDonations(ctx context.Context) ([]string, error)

	// LastID returns the id of the last record, or 0 for an empty file.
	// The next inserted record is assigned LastID + 1.
	LastID(ctx context.Context) (int, error)

	// InsertDonation appends a new record with an auto-assigned id.
	InsertDonation(ctx context.Context, req InsertDonationRequest) (*InsertDonationResponse, error)

	// DeleteDonation removes the first record with the given id.
	// An absent id is reported through the response, not as an error.
	DeleteDonation(ctx context.Context, donationID int) (*DeleteDonationResponse, error)
}

// InsertDonationRequest contains parameters for inserting a donation.
type InsertDonationRequest struct {
	Name       string
	NationalID string
	BirthDate  string // YYYY-MM-DD
	BloodType  string
	VolumeML   int
}

// InsertDonationResponse contains the result of inserting a donation.
type InsertDonationResponse struct {
	DonationID int
	Line       string
}

// DeleteDonationResponse contains the result of deleting a donation.
type DeleteDonationResponse struct {
	DonationID int
	Found      bool
	Line       string // removed line, empty when not found
}
