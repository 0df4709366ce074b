package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/donations/internal/ports/primary"
)

// AuditAdapter is a thin adapter that translates CLI operations to AuditLogService calls.
type AuditAdapter struct {
	service primary.AuditLogService
	out     io.Writer
}

// NewAuditAdapter creates a new AuditAdapter with the given service.
func NewAuditAdapter(service primary.AuditLogService, out io.Writer) *AuditAdapter {
	return &AuditAdapter{
		service: service,
		out:     out,
	}
}

// List prints audit entries, newest first.
func (a *AuditAdapter) List(ctx context.Context, filters primary.AuditLogFilters) error {
	entries, err := a.service.ListEntries(ctx, filters)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No audit entries found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tACTION\tID\tFILE\tLINE")
	fmt.Fprintln(w, "----\t------\t--\t----\t----")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", e.CreatedAt, e.Action, e.RecordID, e.DataFile, e.Line)
	}
	return w.Flush()
}
