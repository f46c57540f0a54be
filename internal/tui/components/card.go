package components

import (
	"charm.land/lipgloss/v2"

	"github.com/tavlaboard/tavla/internal/config"
)

// Card geometry is fixed so the drag handler and the renderer agree on where
// every card sits: one content row inside a rounded border.
const (
	CardHeight = 3
	CardGap    = 0
)

// CardProps configures one rendered card
type CardProps struct {
	Title    string
	Flagged  bool
	Selected bool
	Width    int
	Theme    config.Theme
}

// RenderCard renders a single item card
func RenderCard(p CardProps) string {
	borderColor := p.Theme.CardBorder
	if p.Selected {
		borderColor = p.Theme.CardSelected
	}

	title := p.Title
	if p.Flagged {
		title = lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Theme.FlagFg)).
			Render("⚑ ") + title
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(p.Width - 2).
		MaxHeight(CardHeight).
		Padding(0, 1).
		Render(title)
}
