package models

import "github.com/tavlaboard/tavla/internal/types"

// Column represents one of the board's ordered buckets (e.g. "To Do", "Done").
// Columns are configuration data; the board only needs the set of valid keys
// and their display order. Items within a column are ordered by ascending Rank.
type Column struct {
	Key      types.ColumnID // short config key, e.g. "todo"
	Name     string         // display name, used in history entries
	Position int            // left-to-right display order
}
