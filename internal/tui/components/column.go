package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tavlaboard/tavla/internal/config"
	"github.com/tavlaboard/tavla/internal/models"
)

// ColumnProps configures one rendered column
type ColumnProps struct {
	Column        *models.Column
	Items         []*models.Item // sorted by rank; excludes the dragged item
	Selected      bool           // cursor is on this column
	SelectedIndex int            // highlighted card, -1 for none
	IndicatorAt   int            // insertion slot to mark during a drag, -1 for none
	Width         int
	Height        int
	Theme         config.Theme
}

// RenderColumn renders a column header, its cards in rank order, and the
// drop indicator when a drag hovers over this column.
func RenderColumn(p ColumnProps) string {
	innerWidth := p.Width - 2

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Width(innerWidth).
		Align(lipgloss.Center)
	header := headerStyle.Render(p.Column.Name)

	indicator := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Theme.Indicator)).
		Render(strings.Repeat("─", max(innerWidth, 1)))

	var rows []string
	rows = append(rows, header)
	for i, item := range p.Items {
		if i == p.IndicatorAt {
			rows = append(rows, indicator)
		}
		rows = append(rows, RenderCard(CardProps{
			Title:    item.Title,
			Flagged:  item.Flagged,
			Selected: p.Selected && i == p.SelectedIndex,
			Width:    innerWidth,
			Theme:    p.Theme,
		}))
	}
	// Appending past the last card
	if p.IndicatorAt == len(p.Items) {
		rows = append(rows, indicator)
	}

	borderColor := p.Theme.ColumnBorder
	if p.Selected {
		borderColor = p.Theme.SelectedBorder
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(p.Width).
		Height(p.Height).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
