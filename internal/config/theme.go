package config

// Theme holds the board's color scheme. Values are hex colors or ANSI color
// numbers understood by lipgloss.
type Theme struct {
	Background     string `yaml:"background"`
	ColumnBorder   string `yaml:"column_border"`
	SelectedBorder string `yaml:"selected_border"`
	CardBorder     string `yaml:"card_border"`
	CardSelected   string `yaml:"card_selected"`
	Indicator      string `yaml:"indicator"`
	Muted          string `yaml:"muted"`
	ErrorFg        string `yaml:"error_fg"`
	FlagFg         string `yaml:"flag_fg"`
}

// DefaultTheme returns the built-in color scheme
func DefaultTheme() Theme {
	return Theme{
		Background:     "#1e1e2e",
		ColumnBorder:   "240",
		SelectedBorder: "#89b4fa",
		CardBorder:     "238",
		CardSelected:   "#f9e2af",
		Indicator:      "#a6e3a1",
		Muted:          "243",
		ErrorFg:        "#f38ba8",
		FlagFg:         "#fab387",
	}
}

func (t *Theme) applyDefaults() {
	def := DefaultTheme()
	if t.Background == "" {
		t.Background = def.Background
	}
	if t.ColumnBorder == "" {
		t.ColumnBorder = def.ColumnBorder
	}
	if t.SelectedBorder == "" {
		t.SelectedBorder = def.SelectedBorder
	}
	if t.CardBorder == "" {
		t.CardBorder = def.CardBorder
	}
	if t.CardSelected == "" {
		t.CardSelected = def.CardSelected
	}
	if t.Indicator == "" {
		t.Indicator = def.Indicator
	}
	if t.Muted == "" {
		t.Muted = def.Muted
	}
	if t.ErrorFg == "" {
		t.ErrorFg = def.ErrorFg
	}
	if t.FlagFg == "" {
		t.FlagFg = def.FlagFg
	}
}
