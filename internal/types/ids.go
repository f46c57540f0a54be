package types

// ID type aliases give the string identifiers flowing through the board
// semantic meaning. Items carry opaque UUIDs; columns are identified by the
// short keys defined in configuration (e.g. "todo", "done").

// ItemID identifies a single work item on the board.
// IDs are opaque, unique, and immutable after creation.
type ItemID string

// ColumnID identifies one of the board's ordered columns by its config key.
type ColumnID string

// String returns the raw identifier for logging and SQL parameters.
func (id ItemID) String() string {
	return string(id)
}

func (id ColumnID) String() string {
	return string(id)
}
