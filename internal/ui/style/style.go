// Package style holds the colors and status symbols the resolver's CLI
// output and log lines share, so resolve summaries and handler output
// render consistently.
package style

import "github.com/charmbracelet/lipgloss"

// Colors. Slate is the neutral tone for informational log lines; the
// rest mark resolution outcomes.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Status symbols prefixed to messages: Check for a completed resolve,
// Cross for errors, Warning for degraded results.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)
