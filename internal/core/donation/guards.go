package donation

import (
	"fmt"
	"strconv"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
// Denials wrap ErrPathNotFound so callers can re-prompt.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrPathNotFound, r.Reason)
}

// OpenStoreContext provides context for the store path guard.
type OpenStoreContext struct {
	Path   string
	Exists bool
	IsDir  bool
}

// CanOpenStore evaluates whether a path can back a record store.
// Rules:
// - Path must not be empty
// - Path must exist
// - Path must not be a directory
func CanOpenStore(ctx OpenStoreContext) GuardResult {
	if ctx.Path == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "no path given",
		}
	}

	if !ctx.Exists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s does not exist", ctx.Path),
		}
	}

	if ctx.IsDir {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s is a directory", ctx.Path),
		}
	}

	return GuardResult{Allowed: true}
}

// ParseMenuChoice converts raw menu input into an option number in [1, options].
// Non-integer or out-of-range input returns an error wrapping ErrInvalidMenuChoice.
func ParseMenuChoice(input string, options int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidMenuChoice, input)
	}
	if choice < 1 || choice > options {
		return 0, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidMenuChoice, choice, options)
	}
	return choice, nil
}
