// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle prompting and output formatting,
// but delegate record handling to services.
package cli

import "github.com/fatih/color"

// Output styles. fatih/color disables them when stdout is not a terminal or NO_COLOR is set.
var (
	successStyle = color.New(color.FgGreen)
	warnStyle    = color.New(color.FgYellow)
	errorStyle   = color.New(color.FgRed)
	headerStyle  = color.New(color.FgCyan, color.Bold)
	dimStyle     = color.New(color.Faint)
)

func checkMark() string {
	return successStyle.Sprint("✓")
}
