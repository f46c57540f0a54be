package models

import "testing"

func TestItemClone(t *testing.T) {
	original := &Item{
		ID:      "a",
		Column:  "todo",
		Rank:    1,
		Title:   "Task",
		History: []HistoryEntry{{Description: "Moved from To Do to Done"}},
	}

	clone := original.Clone()
	clone.Rank = 99
	clone.History[0].Description = "changed"
	clone.History = append(clone.History, HistoryEntry{Description: "extra"})

	if original.Rank != 1 {
		t.Errorf("Expected original rank untouched, got %d", original.Rank)
	}
	if original.History[0].Description != "Moved from To Do to Done" {
		t.Errorf("Expected original history untouched, got %q", original.History[0].Description)
	}
	if len(original.History) != 1 {
		t.Errorf("Expected original history length 1, got %d", len(original.History))
	}
}
