package secondary

import "context"

// AuditLogWriter defines the interface for recording changes to the data file.
// Implementations extract the session from context.
type AuditLogWriter interface {
	// LogCreate records an inserted line.
	LogCreate(ctx context.Context, dataFile string, recordID int, line string) error

	// LogDelete records a removed line.
	LogDelete(ctx context.Context, dataFile string, recordID int, line string) error
}

// AuditLogRepository defines the secondary port for audit entry persistence.
type AuditLogRepository interface {
	// Create persists a new audit entry.
	Create(ctx context.Context, entry *AuditLogRecord) error

	// GetByID retrieves an audit entry by its ID.
	GetByID(ctx context.Context, id string) (*AuditLogRecord, error)

	// List retrieves audit entries matching the given filters, newest first.
	List(ctx context.Context, filters AuditLogFilters) ([]*AuditLogRecord, error)
}

// AuditLogRecord represents an audit entry as stored in persistence.
type AuditLogRecord struct {
	ID        string
	SessionID string
	DataFile  string
	Action    string // "create" or "delete"
	RecordID  int
	Line      string
	CreatedAt string
}

// AuditLogFilters contains filter options for querying audit entries.
type AuditLogFilters struct {
	Action string
	Limit  int
}
