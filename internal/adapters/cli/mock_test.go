package cli

import (
	"context"

	"github.com/fatih/color"

	"github.com/example/donations/internal/ports/primary"
)

func init() {
	color.NoColor = true
}

// mockDonationService implements primary.DonationService for testing
type mockDonationService struct {
	listFn   func(ctx context.Context) ([]string, error)
	lastIDFn func(ctx context.Context) (int, error)
	insertFn func(ctx context.Context, req primary.InsertDonationRequest) (*primary.InsertDonationResponse, error)
	deleteFn func(ctx context.Context, id int) (*primary.DeleteDonationResponse, error)

	// Track calls for verification
	inserts []primary.InsertDonationRequest
	deletes []int
}

func (m *mockDonationService) ListDonations(ctx context.Context) ([]string, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []string{}, nil
}

func (m *mockDonationService) LastID(ctx context.Context) (int, error) {
	if m.lastIDFn != nil {
		return m.lastIDFn(ctx)
	}
	return 0, nil
}

func (m *mockDonationService) InsertDonation(ctx context.Context, req primary.InsertDonationRequest) (*primary.InsertDonationResponse, error) {
	m.inserts = append(m.inserts, req)
	if m.insertFn != nil {
		return m.insertFn(ctx, req)
	}
	return &primary.InsertDonationResponse{DonationID: 1, Line: "1," + req.Name}, nil
}

func (m *mockDonationService) DeleteDonation(ctx context.Context, id int) (*primary.DeleteDonationResponse, error) {
	m.deletes = append(m.deletes, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return &primary.DeleteDonationResponse{DonationID: id, Found: true}, nil
}

// mockAuditLogService implements primary.AuditLogService for testing
type mockAuditLogService struct {
	entries     []*primary.AuditEntry
	err         error
	lastFilters primary.AuditLogFilters
}

func (m *mockAuditLogService) ListEntries(ctx context.Context, filters primary.AuditLogFilters) ([]*primary.AuditEntry, error) {
	m.lastFilters = filters
	return m.entries, m.err
}
