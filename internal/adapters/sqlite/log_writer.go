package sqlite

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/donations/internal/ctxutil"
	"github.com/example/donations/internal/ports/secondary"
)

// LogWriterAdapter implements secondary.AuditLogWriter using AuditLogRepository.
type LogWriterAdapter struct {
	logRepo secondary.AuditLogRepository
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(logRepo secondary.AuditLogRepository) *LogWriterAdapter {
	return &LogWriterAdapter{
		logRepo: logRepo,
	}
}

// LogCreate records an inserted line.
func (w *LogWriterAdapter) LogCreate(ctx context.Context, dataFile string, recordID int, line string) error {
	return w.writeLog(ctx, "create", dataFile, recordID, line)
}

// LogDelete records a removed line.
func (w *LogWriterAdapter) LogDelete(ctx context.Context, dataFile string, recordID int, line string) error {
	return w.writeLog(ctx, "delete", dataFile, recordID, line)
}

// writeLog writes an entry attributed to the session carried by ctx.
func (w *LogWriterAdapter) writeLog(ctx context.Context, action, dataFile string, recordID int, line string) error {
	return w.logRepo.Create(ctx, &secondary.AuditLogRecord{
		ID:        uuid.NewString(),
		SessionID: ctxutil.SessionFromContext(ctx),
		DataFile:  dataFile,
		Action:    action,
		RecordID:  recordID,
		Line:      line,
	})
}

// Ensure LogWriterAdapter implements the interface
var _ secondary.AuditLogWriter = (*LogWriterAdapter)(nil)
