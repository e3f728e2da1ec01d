package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/shsenroll/internal/config"
	"github.com/thenoetrevino/shsenroll/internal/services/student"
)

// Render renders a notification banner with the title as its header
func Render(colors config.ColorScheme, kind student.Kind, title, message string) string {
	style := styleFor(kind, colors)

	headerText := style.icon + " " + title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth)

	if kind == student.KindInfo {
		headerStyle = headerStyle.Background(lipgloss.Color(style.background))
	}

	header := headerStyle.Render(headerText)

	messageContent := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(maxWidth).
		Render(message)

	content := lipgloss.JoinVertical(lipgloss.Left, header, messageContent)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderInline renders a compact single line notification
func RenderInline(colors config.ColorScheme, kind student.Kind, title, message string) string {
	style := styleFor(kind, colors)

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + title + ": " + message)
}
