package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette: named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: resource names, endpoint names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for success lines.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and changed entries.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for removed entries and failures.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles mapping domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (resource names, endpoint names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (kind tags, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSuccess styles added diff entries and success lines.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleWarning styles modified diff entries and warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleError styles removed diff entries and failures.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// minValueColumn is the minimum width of the key column in plan output so the
// values align consistently.
const minValueColumn = 32

// FormatResourceHeader renders a resource name with its dimmed kind tag.
func FormatResourceHeader(name, kind string) string {
	return StyleNoun.Render(name) + " " + StyleDim.Render("("+kind+")")
}

// FormatPlanLine renders an indented key/value line of the launch plan with
// the value column aligned.
func FormatPlanLine(key, value string) string {
	padding := minValueColumn - len(key)
	if padding < 2 {
		padding = 2
	}
	return "  " + key + strings.Repeat(" ", padding) + value
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCount renders "<n> <singular>" or "<n> <singular>s".
func FormatCount(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}
