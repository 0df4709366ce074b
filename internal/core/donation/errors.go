package donation

import "errors"

// Error kinds surfaced by the record store and the shell.
// Callers classify with errors.Is; producers wrap with fmt.Errorf("...: %w", Err...).
var (
	ErrPathNotFound      = errors.New("file not found")
	ErrIO                = errors.New("i/o failure")
	ErrFormat            = errors.New("malformed record")
	ErrInvalidMenuChoice = errors.New("invalid menu choice")
	ErrNotFound          = errors.New("donation not found")
)
