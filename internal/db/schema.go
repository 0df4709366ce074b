package db

import "database/sql"

// SchemaSQL is the complete schema for a fresh audit database.
// It reflects the state after all migrations; keep the two in sync.
// Tests load it through GetSchemaSQL rather than declaring their own tables.
const SchemaSQL = `
-- Audit trail of changes made to donation data files
CREATE TABLE IF NOT EXISTS audit_log (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	data_file TEXT NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('create', 'delete')),
	record_id INTEGER NOT NULL,
	line TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_audit_log_created ON audit_log(created_at);
CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log(action);
`

// InitSchema creates the schema on a fresh database or runs pending migrations on an existing one.
func InitSchema(conn *sql.DB) error {
	var tableCount int
	err := conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(conn)
	}

	// Fresh install - create the current schema and mark every migration as applied
	if _, err := conn.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(conn); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := conn.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
