// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/example/donations/internal/core/donation"
	"github.com/example/donations/internal/ports/secondary"
)

const lineTerminator = "\n"

// LineStore implements secondary.LineStore over a plain text file.
// Each call opens and closes its own handle.
type LineStore struct {
	logger *zap.SugaredLogger
}

// NewLineStore creates a new filesystem line store.
// A nil logger disables diagnostic logging.
func NewLineStore(logger *zap.SugaredLogger) *LineStore {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &LineStore{logger: logger}
}

// ReadLines returns every line of the file in order.
func (s *LineStore) ReadLines(ctx context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", donation.ErrIO, path, err)
	}

	lines := splitLines(string(data))
	s.logger.Debugw("read lines", "path", path, "lines", len(lines), "bytes", len(data))
	return lines, nil
}

// AppendLine adds line at the end of the file. The file must already exist.
func (s *LineStore) AppendLine(ctx context.Context, path, line string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("%w: failed to open %s: %v", donation.ErrIO, path, err)
	}

	prefix, err := separatorFor(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: failed to inspect %s: %v", donation.ErrIO, path, err)
	}

	if _, err := f.WriteString(prefix + line); err != nil {
		f.Close()
		return fmt.Errorf("%w: failed to append to %s: %v", donation.ErrIO, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %v", donation.ErrIO, path, err)
	}

	s.logger.Debugw("appended line", "path", path, "separated", prefix != "")
	return nil
}

// Rewrite replaces the file content with lines, each followed by a terminator.
func (s *LineStore) Rewrite(ctx context.Context, path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(lineTerminator)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("%w: failed to rewrite %s: %v", donation.ErrIO, path, err)
	}

	s.logger.Debugw("rewrote file", "path", path, "lines", len(lines))
	return nil
}

// Stat reports whether path exists and whether it is a directory.
func (s *LineStore) Stat(ctx context.Context, path string) (bool, bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("%w: failed to check %s: %v", donation.ErrIO, path, err)
	}
	return true, info.IsDir(), nil
}

// splitLines splits content on line terminators, dropping a trailing \r from each line.
// A final terminator does not yield an extra empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, lineTerminator)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// separatorFor returns the terminator to write before a new line so that it starts on its own line.
func separatorFor(f *os.File) (string, error) {
	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.Size() == 0 {
		return "", nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if last[0] == '\n' {
		return "", nil
	}
	return lineTerminator, nil
}

// Ensure LineStore implements the interface
var _ secondary.LineStore = (*LineStore)(nil)
