package app

import (
	"context"
	"fmt"

	"github.com/example/donations/internal/ports/primary"
	"github.com/example/donations/internal/ports/secondary"
)

// AuditLogServiceImpl implements the AuditLogService interface.
type AuditLogServiceImpl struct {
	logRepo secondary.AuditLogRepository
}

// NewAuditLogService creates a new AuditLogService with injected dependencies.
func NewAuditLogService(logRepo secondary.AuditLogRepository) *AuditLogServiceImpl {
	return &AuditLogServiceImpl{
		logRepo: logRepo,
	}
}

// ListEntries retrieves audit entries matching the given filters.
func (s *AuditLogServiceImpl) ListEntries(ctx context.Context, filters primary.AuditLogFilters) ([]*primary.AuditEntry, error) {
	records, err := s.logRepo.List(ctx, secondary.AuditLogFilters{
		Action: filters.Action,
		Limit:  filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*primary.AuditEntry, len(records))
	for i, r := range records {
		entries[i] = s.recordToEntry(r)
	}
	return entries, nil
}

// Helper methods

func (s *AuditLogServiceImpl) recordToEntry(r *secondary.AuditLogRecord) *primary.AuditEntry {
	return &primary.AuditEntry{
		ID:        r.ID,
		SessionID: r.SessionID,
		DataFile:  r.DataFile,
		Action:    r.Action,
		RecordID:  r.RecordID,
		Line:      r.Line,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure AuditLogServiceImpl implements the interface
var _ primary.AuditLogService = (*AuditLogServiceImpl)(nil)
