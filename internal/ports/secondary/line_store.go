// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// LineStore defines the secondary port for a line-oriented text file.
// Implementations hold no handle between calls.
type LineStore interface {
	// ReadLines returns every line in file order. A final line terminator does not
	// produce a trailing empty line.
	ReadLines(ctx context.Context, path string) ([]string, error)

	// AppendLine adds line at the end of the file, preceded by a line terminator
	// only when the previous content is not already terminated.
	AppendLine(ctx context.Context, path, line string) error

	// Rewrite replaces the entire file content with lines, each terminated.
	Rewrite(ctx context.Context, path string, lines []string) error

	// Stat reports whether path exists and whether it is a directory.
	Stat(ctx context.Context, path string) (exists, isDir bool, err error)
}
