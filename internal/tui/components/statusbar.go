package components

import (
	"charm.land/lipgloss/v2"

	"github.com/tavlaboard/tavla/internal/config"
)

// StatusBarProps configures the footer line
type StatusBarProps struct {
	Width  int
	Hint   string // context-sensitive key hints
	Inline string // inline notification, takes precedence over the hint
	Theme  config.Theme
}

// RenderStatusBar renders the single-row footer
func RenderStatusBar(p StatusBarProps) string {
	content := p.Hint
	if p.Inline != "" {
		content = p.Inline
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Theme.Muted)).
		Width(p.Width).
		Padding(0, 1).
		Render(content)
}
