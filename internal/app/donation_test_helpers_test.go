package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/donations/internal/core/donation"
	"github.com/example/donations/internal/ctxutil"
	"github.com/example/donations/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.LineStore          = (*mockLineStore)(nil)
	_ secondary.AuditLogWriter     = (*mockAuditLogWriter)(nil)
	_ secondary.AuditLogRepository = (*mockAuditLogRepository)(nil)
)

// mockLineStore implements secondary.LineStore for testing.
type mockLineStore struct {
	files      map[string][]string
	dirs       map[string]bool
	readErr    error
	appendErr  error
	rewriteErr error
	statErr    error

	rewrites int
}

func newMockLineStore() *mockLineStore {
	return &mockLineStore{
		files: make(map[string][]string),
		dirs:  make(map[string]bool),
	}
}

func (m *mockLineStore) ReadLines(ctx context.Context, path string) ([]string, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	lines, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s missing", donation.ErrIO, path)
	}
	return append([]string(nil), lines...), nil
}

func (m *mockLineStore) AppendLine(ctx context.Context, path, line string) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.files[path] = append(m.files[path], line)
	return nil
}

func (m *mockLineStore) Rewrite(ctx context.Context, path string, lines []string) error {
	if m.rewriteErr != nil {
		return m.rewriteErr
	}
	m.rewrites++
	m.files[path] = append([]string(nil), lines...)
	return nil
}

func (m *mockLineStore) Stat(ctx context.Context, path string) (bool, bool, error) {
	if m.statErr != nil {
		return false, false, m.statErr
	}
	if m.dirs[path] {
		return true, true, nil
	}
	_, ok := m.files[path]
	return ok, false, nil
}

// auditCall captures one call to mockAuditLogWriter.
type auditCall struct {
	action    string
	sessionID string
	dataFile  string
	recordID  int
	line      string
}

// mockAuditLogWriter implements secondary.AuditLogWriter for testing.
type mockAuditLogWriter struct {
	calls []auditCall
	err   error
}

func (m *mockAuditLogWriter) LogCreate(ctx context.Context, dataFile string, recordID int, line string) error {
	return m.record(ctx, "create", dataFile, recordID, line)
}

func (m *mockAuditLogWriter) LogDelete(ctx context.Context, dataFile string, recordID int, line string) error {
	return m.record(ctx, "delete", dataFile, recordID, line)
}

func (m *mockAuditLogWriter) record(ctx context.Context, action, dataFile string, recordID int, line string) error {
	m.calls = append(m.calls, auditCall{
		action:    action,
		sessionID: ctxutil.SessionFromContext(ctx),
		dataFile:  dataFile,
		recordID:  recordID,
		line:      line,
	})
	return m.err
}

// mockAuditLogRepository implements secondary.AuditLogRepository for testing.
type mockAuditLogRepository struct {
	entries     []*secondary.AuditLogRecord
	listErr     error
	lastFilters secondary.AuditLogFilters
}

func (m *mockAuditLogRepository) Create(ctx context.Context, entry *secondary.AuditLogRecord) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditLogRepository) GetByID(ctx context.Context, id string) (*secondary.AuditLogRecord, error) {
	for _, e := range m.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errors.New("audit entry not found")
}

func (m *mockAuditLogRepository) List(ctx context.Context, filters secondary.AuditLogFilters) ([]*secondary.AuditLogRecord, error) {
	m.lastFilters = filters
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.entries, nil
}
