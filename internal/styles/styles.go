// Package styles holds the colour palette and text styles for the
// human-facing lines the CLI writes to stderr. Command results on stdout
// are never styled.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	Gray   = lipgloss.Color("#888888")
	Muted  = lipgloss.Color("#555555")
	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
	Red    = lipgloss.Color("#FF8787")
)

var (
	// MutedText is for hints and progress lines.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	WarningText = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)
)

// StatusStyle returns the style for a task status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "running", "active", "complete", "success":
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	case "pending", "starting", "stopping", "installing":
		return lipgloss.NewStyle().Foreground(Yellow)
	case "failed", "error", "expired":
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	case "stopped", "off":
		return lipgloss.NewStyle().Foreground(Red)
	default:
		return lipgloss.NewStyle().Foreground(Gray)
	}
}

// StatusIndicator returns a dot and the status text in the status colour.
func StatusIndicator(status string) string {
	style := StatusStyle(status)
	return style.Render("●") + " " + style.Render(status)
}
