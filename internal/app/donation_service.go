package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/donations/internal/core/donation"
	"github.com/example/donations/internal/ctxutil"
	"github.com/example/donations/internal/ports/primary"
	"github.com/example/donations/internal/ports/secondary"
)

// DonationServiceImpl implements the DonationService interface.
// Every operation reads the whole file again; mutations are read-modify-write without locking.
type DonationServiceImpl struct {
	store   secondary.LineStore
	audit   secondary.AuditLogWriter
	session *Session
	logger  *zap.SugaredLogger
}

// NewDonationService creates a new DonationService bound to session.
// A nil audit writer disables the audit trail; a nil logger disables diagnostics.
func NewDonationService(store secondary.LineStore, audit secondary.AuditLogWriter, session *Session, logger *zap.SugaredLogger) *DonationServiceImpl {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &DonationServiceImpl{
		store:   store,
		audit:   audit,
		session: session,
		logger:  logger.With("session", session.ID),
	}
}

// ListDonations returns every line of the data file in file order.
func (s *DonationServiceImpl) ListDonations(ctx context.Context) ([]string, error) {
	lines, err := s.store.ReadLines(ctx, s.session.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return lines, nil
}

// LastID returns the id of the last record, or 0 for an empty file.
func (s *DonationServiceImpl) LastID(ctx context.Context) (int, error) {
	lines, err := s.store.ReadLines(ctx, s.session.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to read donations: %w", err)
	}

	lastID, err := donation.LastID(lines)
	if err != nil {
		return 0, fmt.Errorf("failed to determine last donation id: %w", err)
	}
	return lastID, nil
}

// InsertDonation appends a new record with id LastID + 1.
func (s *DonationServiceImpl) InsertDonation(ctx context.Context, req primary.InsertDonationRequest) (*primary.InsertDonationResponse, error) {
	lastID, err := s.LastID(ctx)
	if err != nil {
		return nil, err
	}

	record := donation.Record{
		ID:         donation.NextID(lastID),
		Name:       req.Name,
		NationalID: req.NationalID,
		BirthDate:  req.BirthDate,
		BloodType:  req.BloodType,
		VolumeML:   req.VolumeML,
	}
	line := donation.FormatLine(record)

	if err := s.store.AppendLine(ctx, s.session.Path, line); err != nil {
		return nil, fmt.Errorf("failed to insert donation: %w", err)
	}
	s.logger.Debugw("inserted donation", "id", record.ID)

	if s.audit != nil {
		if err := s.audit.LogCreate(s.auditContext(ctx), s.session.Path, record.ID, line); err != nil {
			s.logger.Warnw("failed to record audit entry", "action", "create", "id", record.ID, "error", err)
		}
	}

	return &primary.InsertDonationResponse{
		DonationID: record.ID,
		Line:       line,
	}, nil
}

// DeleteDonation removes the first record whose id equals donationID and rewrites the file.
// When no record matches the file is left untouched.
func (s *DonationServiceImpl) DeleteDonation(ctx context.Context, donationID int) (*primary.DeleteDonationResponse, error) {
	lines, err := s.store.ReadLines(ctx, s.session.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read donations: %w", err)
	}

	plan, err := donation.PlanDelete(lines, donationID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete donation %d: %w", donationID, err)
	}

	if !plan.Found {
		s.logger.Debugw("donation not found", "id", donationID, "scanned", len(lines))
		return &primary.DeleteDonationResponse{DonationID: donationID}, nil
	}

	if err := s.store.Rewrite(ctx, s.session.Path, plan.Remaining); err != nil {
		return nil, fmt.Errorf("failed to delete donation %d: %w", donationID, err)
	}
	s.logger.Debugw("deleted donation", "id", donationID, "index", plan.Index)

	if s.audit != nil {
		if err := s.audit.LogDelete(s.auditContext(ctx), s.session.Path, donationID, plan.Removed); err != nil {
			s.logger.Warnw("failed to record audit entry", "action", "delete", "id", donationID, "error", err)
		}
	}

	return &primary.DeleteDonationResponse{
		DonationID: donationID,
		Found:      true,
		Line:       plan.Removed,
	}, nil
}

func (s *DonationServiceImpl) auditContext(ctx context.Context) context.Context {
	if ctxutil.SessionFromContext(ctx) != "" {
		return ctx
	}
	return ctxutil.WithSessionID(ctx, s.session.ID)
}

// Ensure DonationServiceImpl implements the interface
var _ primary.DonationService = (*DonationServiceImpl)(nil)
