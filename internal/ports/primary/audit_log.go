package primary

import "context"

// AuditLogService defines the primary port for reading the audit trail.
type AuditLogService interface {
	// ListEntries returns audit entries, newest first.
	ListEntries(ctx context.Context, filters AuditLogFilters) ([]*AuditEntry, error)
}

// AuditLogFilters contains filter options for listing audit entries.
type AuditLogFilters struct {
	Action string
	Limit  int
}

// AuditEntry represents one recorded change to the data file.
type AuditEntry struct {
	ID        string
	SessionID string
	DataFile  string
	Action    string
	RecordID  int
	Line      string
	CreatedAt string
}
