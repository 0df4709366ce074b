// Package wire provides dependency injection for the donations application.
// It creates singleton infrastructure with lazy initialization; sessions are created per data file.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/donations/internal/adapters/cli"
	"github.com/example/donations/internal/adapters/filesystem"
	"github.com/example/donations/internal/adapters/sqlite"
	"github.com/example/donations/internal/app"
	"github.com/example/donations/internal/db"
	"github.com/example/donations/internal/ports/primary"
	"github.com/example/donations/internal/ports/secondary"
)

// Options configures the shared infrastructure. Set with Configure before first use.
type Options struct {
	Verbose bool
	AuditDB string // empty disables the audit trail
}

var (
	options     Options
	logger      *zap.SugaredLogger
	lineStore   *filesystem.LineStore
	auditConn   *sql.DB
	auditRepo   *sqlite.AuditLogRepository
	auditWriter secondary.AuditLogWriter
	initErr     error
	once        sync.Once
)

// Configure sets the options used by the lazy initialization.
// Calls after the first service lookup have no effect.
func Configure(opts Options) {
	options = opts
}

// Logger returns the shared diagnostic logger.
func Logger() *zap.SugaredLogger {
	once.Do(initServices)
	return logger
}

// initServices initializes the logger, the line store and the optional audit trail.
// This is called once via sync.Once.
func initServices() {
	logger = newLogger(options.Verbose)
	lineStore = filesystem.NewLineStore(logger.Named("store"))

	if options.AuditDB == "" {
		return
	}

	conn, err := db.Open(options.AuditDB)
	if err != nil {
		initErr = fmt.Errorf("failed to open audit database: %w", err)
		return
	}
	auditConn = conn
	auditRepo = sqlite.NewAuditLogRepository(conn)
	auditWriter = sqlite.NewLogWriterAdapter(auditRepo)
	logger.Debugw("audit trail enabled", "path", options.AuditDB)
}

// newLogger builds a development logger on stderr when verbose, otherwise a no-op logger.
func newLogger(verbose bool) *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// OpenSession validates path and returns a DonationService bound to it.
// It satisfies cliadapter.SessionOpener.
func OpenSession(ctx context.Context, path string) (primary.DonationService, error) {
	once.Do(initServices)
	if initErr != nil {
		return nil, initErr
	}

	session, err := app.OpenSession(ctx, lineStore, path)
	if err != nil {
		return nil, err
	}
	logger.Debugw("session opened", "session", session.ID, "path", session.Path)

	return app.NewDonationService(lineStore, auditWriter, session, logger.Named("donations")), nil
}

// DonationAdapter returns a DonationAdapter bound to path, writing to stdout.
func DonationAdapter(ctx context.Context, path string) (*cliadapter.DonationAdapter, error) {
	return DonationAdapterWithOutput(ctx, path, os.Stdout)
}

// DonationAdapterWithOutput returns a DonationAdapter bound to path, writing to out.
func DonationAdapterWithOutput(ctx context.Context, path string, out io.Writer) (*cliadapter.DonationAdapter, error) {
	service, err := OpenSession(ctx, path)
	if err != nil {
		return nil, err
	}
	return cliadapter.NewDonationAdapter(service, out), nil
}

// Shell returns an interactive shell on stdin/stdout.
func Shell() *cliadapter.Shell {
	return cliadapter.NewShell(OpenSession, os.Stdin, os.Stdout)
}

// AuditAdapter returns an AuditAdapter writing to stdout.
// Fails when no audit database is configured.
func AuditAdapter() (*cliadapter.AuditAdapter, error) {
	once.Do(initServices)
	if initErr != nil {
		return nil, initErr
	}
	if auditRepo == nil {
		return nil, fmt.Errorf("audit trail disabled; set audit_db in config or pass --audit-db")
	}
	return cliadapter.NewAuditAdapter(app.NewAuditLogService(auditRepo), os.Stdout), nil
}

// Close releases the audit database and flushes the logger.
func Close() {
	if auditConn != nil {
		auditConn.Close()
	}
	if logger != nil {
		_ = logger.Sync()
	}
}
