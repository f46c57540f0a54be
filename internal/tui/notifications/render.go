// Package notifications renders transient toast banners for the board, most
// importantly the move-failure notice shown after a rollback.
package notifications

import (
	"charm.land/lipgloss/v2"
)

type style struct {
	icon             string
	title            string
	foreground       string
	borderForeground string
}

func (s Severity) style() style {
	switch s {
	case Warning:
		return style{icon: "!", title: "Warning", foreground: "#f9e2af", borderForeground: "#f9e2af"}
	case Error:
		return style{icon: "✗", title: "Error", foreground: "#f38ba8", borderForeground: "#f38ba8"}
	default:
		return style{icon: "i", title: "Info", foreground: "#89b4fa", borderForeground: "#89b4fa"}
	}
}

// Render renders a notification banner based on severity level
func Render(severity Severity, message string) string {
	st := severity.style()

	headerText := st.icon + " " + st.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Width(maxWidth).
		Render(message)

	content := lipgloss.JoinVertical(lipgloss.Left, header, body)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.borderForeground)).
		Padding(0, 1).
		Render(content)
}

// RenderInline renders a compact single-line notification for the status bar
func RenderInline(severity Severity, message string) string {
	st := severity.style()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Bold(true).
		Render(st.icon + " " + message)
}
