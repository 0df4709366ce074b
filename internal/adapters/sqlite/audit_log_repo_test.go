package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/donations/internal/adapters/sqlite"
	"github.com/example/donations/internal/ctxutil"
	"github.com/example/donations/internal/ports/secondary"
)

func TestAuditLogRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAuditLogRepository(db)
	ctx := context.Background()

	record := &secondary.AuditLogRecord{
		ID:        "AUD-1",
		SessionID: "session-1",
		DataFile:  "/data/doacoes.csv",
		Action:    "create",
		RecordID:  2,
		Line:      "2,Bruno,222,1999-05-05,A-,500",
	}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "AUD-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.SessionID != "session-1" {
		t.Errorf("SessionID = %q, want %q", got.SessionID, "session-1")
	}
	if got.DataFile != "/data/doacoes.csv" {
		t.Errorf("DataFile = %q", got.DataFile)
	}
	if got.Action != "create" {
		t.Errorf("Action = %q, want %q", got.Action, "create")
	}
	if got.RecordID != 2 {
		t.Errorf("RecordID = %d, want 2", got.RecordID)
	}
	if got.Line != record.Line {
		t.Errorf("Line = %q, want %q", got.Line, record.Line)
	}
	if got.CreatedAt == "" {
		t.Error("expected CreatedAt to be set")
	}
}

func TestAuditLogRepository_Create_RejectsUnknownAction(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAuditLogRepository(db)

	err := repo.Create(context.Background(), &secondary.AuditLogRecord{
		ID:       "AUD-1",
		DataFile: "/f.csv",
		Action:   "update",
		RecordID: 1,
		Line:     "1,a",
	})
	if err == nil {
		t.Fatal("expected constraint violation for action 'update'")
	}
}

func TestAuditLogRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAuditLogRepository(db)

	if _, err := repo.GetByID(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for missing entry")
	}
}

func TestAuditLogRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAuditLogRepository(db)
	ctx := context.Background()

	entries := []*secondary.AuditLogRecord{
		{ID: "AUD-1", SessionID: "s", DataFile: "/f.csv", Action: "create", RecordID: 1, Line: "1,a"},
		{ID: "AUD-2", SessionID: "s", DataFile: "/f.csv", Action: "create", RecordID: 2, Line: "2,b"},
		{ID: "AUD-3", SessionID: "s", DataFile: "/f.csv", Action: "delete", RecordID: 1, Line: "1,a"},
	}
	for _, e := range entries {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	t.Run("newest first", func(t *testing.T) {
		got, err := repo.List(ctx, secondary.AuditLogFilters{})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(got))
		}
		if got[0].ID != "AUD-3" || got[2].ID != "AUD-1" {
			t.Errorf("unexpected order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
		}
	})

	t.Run("filter by action", func(t *testing.T) {
		got, err := repo.List(ctx, secondary.AuditLogFilters{Action: "delete"})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "AUD-3" {
			t.Errorf("unexpected entries: %+v", got)
		}
	})

	t.Run("limit", func(t *testing.T) {
		got, err := repo.List(ctx, secondary.AuditLogFilters{Limit: 2})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 entries, got %d", len(got))
		}
	})
}

func TestLogWriterAdapter(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAuditLogRepository(db)
	writer := sqlite.NewLogWriterAdapter(repo)
	ctx := ctxutil.WithSessionID(context.Background(), "session-9")

	if err := writer.LogCreate(ctx, "/f.csv", 1, "1,a"); err != nil {
		t.Fatalf("LogCreate failed: %v", err)
	}
	if err := writer.LogDelete(ctx, "/f.csv", 1, "1,a"); err != nil {
		t.Fatalf("LogDelete failed: %v", err)
	}

	got, err := repo.List(ctx, secondary.AuditLogFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for _, e := range got {
		if e.SessionID != "session-9" {
			t.Errorf("SessionID = %q, want %q", e.SessionID, "session-9")
		}
		if e.ID == "" {
			t.Error("expected generated ID")
		}
	}
	if got[0].Action != "delete" || got[1].Action != "create" {
		t.Errorf("unexpected actions: %s, %s", got[0].Action, got[1].Action)
	}
}
