package converter

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	InputEchoStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(13)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	PreviewStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	DroppedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)

// RenderError renders err in the error style
func RenderError(err string) string {
	return ErrorMessageStyle.Render("Fehler: " + err)
}

// RenderHelp renders help text
func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
