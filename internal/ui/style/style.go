// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Summary renders a bold heading followed by dimmed detail, as printed after a build.
func Summary(heading, detail string) string {
	h := lipgloss.NewStyle().Bold(true).Foreground(Green).Render(Check + " " + heading)
	if detail == "" {
		return h
	}
	return h + " " + lipgloss.NewStyle().Foreground(Slate).Render(detail)
}
